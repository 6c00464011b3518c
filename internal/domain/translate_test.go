package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAndRender(t *testing.T) {
	it, err := Extract(decode(t, `{"homework_name":"hw1","status":"approved","current_date":1000}`))
	require.NoError(t, err)
	assert.Equal(t, TrackedItem{Name: "hw1", StatusCode: "approved", ObservedAt: 1000, HasObservedAt: true}, it)

	n, err := Render(it)
	require.NoError(t, err)
	assert.Equal(t,
		`Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`,
		n.Text)
}

func TestExtract_MissingFields(t *testing.T) {
	cases := map[string]string{
		`{"status":"approved"}`:            "homework_name",
		`{"homework_name":"hw1"}`:          "status",
		`{"homework_name":1,"status":"x"}`: "homework_name",
	}
	for in, field := range cases {
		_, err := Extract(decode(t, in))

		var se *SchemaError
		require.True(t, errors.As(err, &se), in)
		assert.Equal(t, "missing field", se.Reason)
		assert.Equal(t, field, se.Field)
	}

	_, err := Extract("hw1")
	assert.Equal(t, KindSchema, KindOf(err))
}

func TestRender_PropagatesUnknownStatus(t *testing.T) {
	_, err := Render(TrackedItem{Name: "hw1", StatusCode: "in_review"})

	var ue *UnknownStatusError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "in_review", ue.Code)
}

func TestFailureNotification(t *testing.T) {
	n := FailureNotification(&EndpointError{StatusCode: 503})
	assert.Equal(t, "Сбой в работе программы: endpoint returned HTTP 503", n.Text)
}

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{nil, KindNone},
		{&ConfigurationError{Missing: []string{"TELEGRAM_TOKEN"}}, KindConfiguration},
		{&ConnectionError{Err: errors.New("refused")}, KindConnection},
		{fmt.Errorf("fetch: %w", &EndpointError{StatusCode: 500}), KindEndpoint},
		{&APIResponseError{Detail: "bad", Code: "UnknownError"}, KindAPIResponse},
		{&SchemaError{Reason: "not a record"}, KindSchema},
		{&UnknownStatusError{Code: "x"}, KindUnknownStatus},
		{&DispatchError{Err: errors.New("403")}, KindDispatch},
		{errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, KindOf(tc.err), "%v", tc.err)
	}
}
