package practicum_http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/davarch/homework-watcher/internal/domain"
)

const maxBody = 1 << 20

type Client struct {
	endpoint string
	token    string
	hc       *http.Client

	retries uint64
	wait    time.Duration
}

type Option func(*Client)

// WithRetry sets how many times a transport error or 5xx is retried within a
// single fetch, and the constant pause between attempts.
func WithRetry(n uint64, wait time.Duration) Option {
	return func(c *Client) {
		c.retries = n
		c.wait = wait
	}
}

func New(endpoint string, token string, timeout time.Duration, opts ...Option) *Client {
	tr := &http.Transport{
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
		TLSHandshakeTimeout: 5 * time.Second,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		endpoint: strings.TrimSpace(endpoint),
		token:    token,
		hc:       &http.Client{Transport: tr, Timeout: timeout},
		retries:  2,
		wait:     time.Second,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Fetch requests status updates since fromDate and returns the decoded body.
func (c *Client) Fetch(ctx context.Context, fromDate int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("endpoint: %w", err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	var out any

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Authorization", "OAuth "+c.token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.hc.Do(req)
		if err != nil {
			return &domain.ConnectionError{Err: err}
		}

		defer func() { _ = resp.Body.Close() }()

		var body any
		dec := json.NewDecoder(io.LimitReader(resp.Body, maxBody))
		dec.UseNumber()
		decErr := dec.Decode(&body)

		if apiErr := apiError(body); apiErr != nil {
			return backoff.Permanent(apiErr)
		}

		if resp.StatusCode != http.StatusOK {
			e := &domain.EndpointError{StatusCode: resp.StatusCode}
			if resp.StatusCode >= 500 {
				return e
			}
			return backoff.Permanent(e)
		}

		if decErr != nil {
			return backoff.Permanent(&domain.SchemaError{Reason: "body is not JSON"})
		}

		out = body
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(c.wait), c.retries)
	if err := backoff.Retry(op, backoff.WithContext(bo, ctx)); err != nil {
		// shutdown stays a plain cancellation; a deadline is a transport failure
		if domain.KindOf(err) != domain.KindInternal || errors.Is(err, context.Canceled) {
			return nil, err
		}
		return nil, &domain.ConnectionError{Err: err}
	}
	return out, nil
}

// apiError recognises the error/code pair the API puts in failed responses.
func apiError(body any) *domain.APIResponseError {
	rec, ok := body.(map[string]any)
	if !ok {
		return nil
	}

	detail := rec["error"]
	code := rec["code"]
	hasErr, hasCode := detail != nil, code != nil
	if !hasErr && !hasCode {
		return nil
	}

	e := &domain.APIResponseError{}
	if hasErr {
		e.Detail = describe(detail)
	}
	if hasCode {
		e.Code = describe(code)
	}
	return e
}

func describe(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case map[string]any:
		if s, ok := x["error"].(string); ok {
			return s
		}
	}
	return fmt.Sprint(v)
}
