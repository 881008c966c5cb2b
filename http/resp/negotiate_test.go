package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute/http/resp"
	"github.com/stretchr/testify/require"
)

func TestAcceptsJSON(t *testing.T) {
	tcs := []struct {
		name        string
		contentType string
		accept      string
		expected    bool
	}{
		{"Zero-Value", "", "", false},
		{"Json-Body", "application/json", "", true},
		{"Json-Body-Charset", "application/json; charset=utf-8", "", true},
		{"Json-Suffix-Body", "application/vnd.api+json", "", true},
		{"Form-Body", "application/x-www-form-urlencoded", "", false},
		{"Accept-Json", "", "application/json", true},
		{"Accept-Html", "", "text/html", false},
		{"Accept-Wildcard", "", "*/*", false},
		{"Accept-Browser", "", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8", false},
		{"Accept-Json-Over-Html", "", "text/html;q=0.8,application/json", true},
		{"Accept-Html-Over-Json", "", "text/html,application/json;q=0.9", false},
		{"Accept-Json-Named-Tie", "", "application/json,*/*", true},
		{"Accept-Unrelated", "", "image/png", false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			r := httptest.NewRequest(http.MethodPost, "/test", nil)
			if tc.contentType != "" {
				r.Header.Set("Content-Type", tc.contentType)
			}
			if tc.accept != "" {
				r.Header.Set("Accept", tc.accept)
			}

			// Act + Assert
			require.Equal(t, tc.expected, resp.AcceptsJSON(r))
		})
	}
}
