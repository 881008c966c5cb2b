package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/middleware"
	"github.com/approute/approute/http/session"
	"github.com/stretchr/testify/require"
)

func TestInjectSession(t *testing.T) {
	t.Run("Zero-Value", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		handler := middleware.InjectSession(nil, nil)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Assert
			require.Nil(t, r.Context().Value(approute.SessionKey))
		}))

		// Act
		handler.ServeHTTP(w, r)
	})

	t.Run("With-Store", func(t *testing.T) {
		// Arrange
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		store := session.NewStub(0)

		handler := middleware.InjectSession(store, approute.SessionKey)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			// Assert
			_, ok := r.Context().Value(approute.SessionKey).(session.Session)
			require.True(t, ok)
		}))

		// Act
		handler.ServeHTTP(w, r)
	})
}
