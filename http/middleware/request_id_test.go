package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Run("Nil-Key", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		handler := middleware.RequestID(nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Assert
			require.Nil(t, r.Context().Value(approute.RequestIDKey))
		}))

		// Act
		handler.ServeHTTP(w, r)
	})

	t.Run("With-Key", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		handler := middleware.RequestID(approute.RequestIDKey)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Assert
			val, ok := r.Context().Value(approute.RequestIDKey).(string)
			require.True(t, ok)

			_, err := uuid.Parse(val)
			require.Nil(t, err)
		}))

		// Act
		handler.ServeHTTP(w, r)
	})
}
