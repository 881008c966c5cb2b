package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute/http/session"
	gorilla "github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

func TestClassForCode(t *testing.T) {
	for _, tc := range []struct {
		code     int
		expected string
	}{
		{http.StatusOK, session.FlashSuccess},
		{http.StatusCreated, session.FlashSuccess},
		{http.StatusFound, session.FlashSuccess},
		{http.StatusBadRequest, session.FlashWarning},
		{http.StatusNotFound, session.FlashWarning},
		{http.StatusInternalServerError, session.FlashDanger},
		{http.StatusBadGateway, session.FlashDanger},
	} {
		t.Run(http.StatusText(tc.code), func(t *testing.T) {
			require.Equal(t, tc.expected, session.ClassForCode(tc.code))
		})
	}
}

func TestSessionFlashes(t *testing.T) {
	newSession := func(t *testing.T) (session.Session, *httptest.ResponseRecorder, *http.Request) {
		t.Helper()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
		s, err := session.NewStub(0).GetSession(r)
		require.Nil(t, err)
		return s, w, r
	}

	t.Run("Zero-Value", func(t *testing.T) {
		s, w, r := newSession(t)
		require.Empty(t, s.Flashes(w, r))
	})

	t.Run("Default-Stream", func(t *testing.T) {
		// Arrange
		s, w, r := newSession(t)
		f := session.Flash{Class: session.FlashSuccess, Msg: "it worked"}
		require.Nil(t, s.SetFlash(w, r, f))

		// Act
		actual := s.Flashes(w, r)

		// Assert
		require.Len(t, actual, 1)
		require.Equal(t, session.FlashSuccess, actual[0].Class)
		require.Equal(t, "it worked", actual[0].Msg)
		require.Equal(t, session.DefaultStream, actual[0].Stream)

		// flashes display once
		require.Empty(t, s.Flashes(w, r))
	})

	t.Run("Named-Stream", func(t *testing.T) {
		// Arrange
		s, w, r := newSession(t)
		f := session.Flash{Class: session.FlashWarning, Msg: "heads up", Stream: "banner"}
		require.Nil(t, s.SetFlash(w, r, f))

		// Act + Assert
		require.Empty(t, s.Flashes(w, r))

		actual := s.Flashes(w, r, "banner")
		require.Len(t, actual, 1)
		require.Equal(t, "banner", actual[0].Stream)
		require.Equal(t, "heads up", actual[0].Msg)
	})
}

func TestSessionFlashesCookieStore(t *testing.T) {
	// Arrange - a gorilla store built directly, not through NewStoreService
	store := gorilla.NewCookieStore([]byte("it's a secret to everybody"))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	g, err := store.Get(r, "test")
	require.Nil(t, err)
	s := session.NewSession(g)

	// Act
	err = s.SetFlash(w, r, session.Flash{Class: session.FlashSuccess, Msg: "it worked"})

	// Assert - the Flash survives a trip through the cookie codec
	require.Nil(t, err)

	r2 := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	for _, c := range w.Result().Cookies() {
		r2.AddCookie(c)
	}

	g2, err := store.Get(r2, "test")
	require.Nil(t, err)

	actual := session.NewSession(g2).Flashes(httptest.NewRecorder(), r2)
	require.Len(t, actual, 1)
	require.Equal(t, "it worked", actual[0].Msg)
}

// brokenStore fails every write, standing in for a backing store outage.
type brokenStore struct{}

func (brokenStore) Get(r *http.Request, name string) (*gorilla.Session, error) {
	return gorilla.NewSession(brokenStore{}, name), nil
}

func (brokenStore) New(r *http.Request, name string) (*gorilla.Session, error) {
	return gorilla.NewSession(brokenStore{}, name), nil
}

func (brokenStore) Save(_ *http.Request, _ http.ResponseWriter, _ *gorilla.Session) error {
	return errors.New("store is down")
}

func TestSessionFlashesSaveFailure(t *testing.T) {
	// Arrange
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	s := session.NewSession(gorilla.NewSession(brokenStore{}, "test"))

	f := session.Flash{Class: session.FlashSuccess, Msg: "it worked"}
	require.NotNil(t, s.SetFlash(w, r, f))

	// Act
	actual := s.Flashes(w, r)

	// Assert - the failed save must not eat flashes already pulled out
	require.Len(t, actual, 1)
	require.Equal(t, "it worked", actual[0].Msg)
}

func TestSessionUserID(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example.com", nil)

	t.Run("No-User", func(t *testing.T) {
		s, err := session.NewStub(0).GetSession(r)
		require.Nil(t, err)

		_, err = s.UserID()
		require.ErrorIs(t, err, session.ErrNoUser)
	})

	t.Run("With-User", func(t *testing.T) {
		s, err := session.NewStub(1).GetSession(r)
		require.Nil(t, err)

		id, err := s.UserID()
		require.Nil(t, err)
		require.Equal(t, uint(1), id)
	})
}
