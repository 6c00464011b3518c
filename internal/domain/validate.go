package domain

import (
	"encoding/json"
	"math"
)

// Validate checks the shape of a decoded status response before any field
// access. An empty homeworks list is valid.
func Validate(payload any) (Batch, error) {
	rec, ok := payload.(map[string]any)
	if !ok {
		return Batch{}, &SchemaError{Reason: "not a record"}
	}

	raw, ok := rec["homeworks"]
	if !ok {
		return Batch{}, &SchemaError{Reason: "missing homeworks key"}
	}

	items, ok := raw.([]any)
	if !ok {
		return Batch{}, &SchemaError{Reason: "homeworks not a list"}
	}

	b := Batch{Items: items}
	if v, ok := rec["current_date"]; ok {
		b.CurrentDate, b.HasCurrentDate = asInt(v)
	}
	return b, nil
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	default:
		return 0, false
	}
}
