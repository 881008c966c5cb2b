package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/middleware"
	"github.com/stretchr/testify/require"
)

func TestGetIPAddress(t *testing.T) {
	tcs := []struct {
		name     string
		header   http.Header
		expected string
	}{
		{"Zero-Value", http.Header{}, "0.0.0.0"},
		{"Forwarded-For", http.Header{"X-Forwarded-For": []string{"93.184.216.34"}}, "93.184.216.34"},
		{"Forwarded-Chain", http.Header{"X-Forwarded-For": []string{"93.184.216.34, 10.0.0.1"}}, "93.184.216.34"},
		{"Real-Ip", http.Header{"X-Real-Ip": []string{"93.184.216.34"}}, "93.184.216.34"},
		{"Private-Only", http.Header{"X-Forwarded-For": []string{"192.168.1.10"}}, "0.0.0.0"},
		{"Loopback", http.Header{"X-Forwarded-For": []string{"127.0.0.1"}}, "0.0.0.0"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, middleware.GetIPAddress(tc.header))
		})
	}
}

func TestInjectIPAddress(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	r.Header.Set("X-Forwarded-For", "93.184.216.34")

	handler := middleware.InjectIPAddress()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		// Assert
		require.Equal(t, "93.184.216.34", r.Context().Value(approute.IpAddrKey))
	}))

	// Act
	handler.ServeHTTP(w, r)
}
