package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/session"
	"github.com/stretchr/testify/require"
)

func TestNewStoreService(t *testing.T) {
	// Arrange
	notHex := "😅"
	cfg := session.Config{
		Env:         approute.Testing,
		SessionName: "approute-test",
		AuthKey:     notHex,
	}

	// Act
	svc, err := session.NewStoreService(cfg)

	// Assert
	require.NotNil(t, err)
	require.Zero(t, svc)

	// Arrange
	cfg.AuthKey = "ABCD"
	cfg.EncryptKey = notHex

	// Act
	svc, err = session.NewStoreService(cfg)

	// Assert
	require.NotNil(t, err)
	require.Zero(t, svc)

	// Arrange
	cfg.EncryptKey = "ABCD"
	cfg.SessionName = ""

	// Act
	svc, err = session.NewStoreService(cfg)

	// Assert
	require.ErrorIs(t, err, approute.ErrBadConfig)
	require.Zero(t, svc)

	// Arrange
	cfg.SessionName = "approute-test"
	r := httptest.NewRequest(http.MethodGet, "https://example.com", nil)

	// Act
	svc, err = session.NewStoreService(cfg)

	// Assert
	require.Nil(t, err)
	require.NotZero(t, svc)
	require.NotPanics(t, func() { svc.GetSession(r) })
}
