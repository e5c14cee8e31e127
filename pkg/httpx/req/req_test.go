package req_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"lead_qualifier/pkg/httpx/req"
)

type request struct {
	Query string `json:"query" validate:"max=5"`
	Low   *int   `json:"low" validate:"omitempty,gte=0"`
}

func TestRead(t *testing.T) {
	testCases := []struct {
		name     string
		body     string
		expected request
		invalid  bool
	}{
		{name: "empty body", body: ``, expected: request{}},
		{name: "fields", body: `{"query":"abc"}`, expected: request{Query: "abc"}},
		{name: "unknown field", body: `{"queri":"abc"}`, invalid: true},
		{name: "malformed", body: `{"query":`, invalid: true},
		{name: "too long", body: `{"query":"abcdef"}`, invalid: true},
		{name: "negative", body: `{"low":-5}`, invalid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.body))

			var dest request

			err := req.Read(r, &dest)
			if tc.invalid {
				rq.Error(err)
				rq.True(failure.IsInvalidArgumentError(err))

				return
			}

			rq.NoError(err)
			rq.Equal(tc.expected, dest)
		})
	}
}
