package domain

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(s), &v))
	return v
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		payload any
		reason  string
	}{
		{"nil", nil, "not a record"},
		{"list", decode(t, `[1,2]`), "not a record"},
		{"no key", decode(t, `{"current_date":1}`), "missing homeworks key"},
		{"not list", decode(t, `{"homeworks":{"a":1}}`), "homeworks not a list"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.payload)

			var se *SchemaError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.Equal(t, tc.reason, se.Reason)
			assert.Equal(t, KindSchema, KindOf(err))
		})
	}
}

func TestValidate_EmptyListIsValid(t *testing.T) {
	b, err := Validate(decode(t, `{"homeworks":[],"current_date":1200}`))
	require.NoError(t, err)
	assert.Empty(t, b.Items)
	assert.True(t, b.HasCurrentDate)
	assert.EqualValues(t, 1200, b.CurrentDate)
}

func TestValidate_KeepsOrder(t *testing.T) {
	b, err := Validate(decode(t, `{"homeworks":[{"homework_name":"b"},{"homework_name":"a"}]}`))
	require.NoError(t, err)
	require.Len(t, b.Items, 2)
	assert.Equal(t, "b", b.Items[0].(map[string]any)["homework_name"])
	assert.False(t, b.HasCurrentDate)
}

func TestValidate_IgnoresNonIntegerCurrentDate(t *testing.T) {
	b, err := Validate(decode(t, `{"homeworks":[],"current_date":"soon"}`))
	require.NoError(t, err)
	assert.False(t, b.HasCurrentDate)

	b, err = Validate(decode(t, `{"homeworks":[],"current_date":1.5}`))
	require.NoError(t, err)
	assert.False(t, b.HasCurrentDate)
}

func TestAsInt(t *testing.T) {
	n, ok := asInt(json.Number("42"))
	assert.True(t, ok)
	assert.EqualValues(t, 42, n)

	n, ok = asInt(int64(7))
	assert.True(t, ok)
	assert.EqualValues(t, 7, n)

	_, ok = asInt(json.Number("4.2"))
	assert.False(t, ok)
}
