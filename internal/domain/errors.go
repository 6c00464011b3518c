package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Kind tags an error with the stage that produced it.
type Kind string

const (
	KindNone          Kind = ""
	KindConfiguration Kind = "configuration"
	KindConnection    Kind = "connection"
	KindEndpoint      Kind = "endpoint"
	KindAPIResponse   Kind = "api_response"
	KindSchema        Kind = "schema"
	KindUnknownStatus Kind = "unknown_status"
	KindDispatch      Kind = "dispatch"
	KindInternal      Kind = "internal"
)

type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return "missing required environment variables: " + strings.Join(e.Missing, ", ")
}

type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string { return "endpoint unreachable: " + e.Err.Error() }
func (e *ConnectionError) Unwrap() error { return e.Err }

type EndpointError struct {
	StatusCode int
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("endpoint returned HTTP %d", e.StatusCode)
}

// APIResponseError is an error/code pair reported by the API itself.
type APIResponseError struct {
	Detail string
	Code   string
}

func (e *APIResponseError) Error() string {
	return fmt.Sprintf("api error: %s (code %s)", e.Detail, e.Code)
}

type SchemaError struct {
	Reason string
	Field  string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return "invalid response: " + e.Reason + " " + e.Field
	}
	return "invalid response: " + e.Reason
}

type UnknownStatusError struct {
	Code string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown homework status %q", e.Code)
}

type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string { return "dispatch failed: " + e.Err.Error() }
func (e *DispatchError) Unwrap() error { return e.Err }

// KindOf classifies err. Errors outside the taxonomy are KindInternal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		cfg  *ConfigurationError
		conn *ConnectionError
		ep   *EndpointError
		api  *APIResponseError
		sch  *SchemaError
		st   *UnknownStatusError
		disp *DispatchError
	)

	switch {
	case errors.As(err, &cfg):
		return KindConfiguration
	case errors.As(err, &disp):
		return KindDispatch
	case errors.As(err, &conn):
		return KindConnection
	case errors.As(err, &ep):
		return KindEndpoint
	case errors.As(err, &api):
		return KindAPIResponse
	case errors.As(err, &sch):
		return KindSchema
	case errors.As(err, &st):
		return KindUnknownStatus
	default:
		return KindInternal
	}
}
