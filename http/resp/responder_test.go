package resp_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/template/templatetest"
	"github.com/approute/approute/logger"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/require"
)

func TestResponderCurrentUser(t *testing.T) {
	// Arrange
	d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))

	// Act
	u, err := d.CurrentUser(context.Background())

	// Assert
	require.ErrorIs(t, err, resp.ErrNotFound)
	require.Nil(t, u)

	// Arrange
	ctx := context.WithValue(context.Background(), approute.CurrentUserKey, "alice")

	// Act
	u, err = d.CurrentUser(ctx)

	// Assert
	require.Nil(t, err)
	require.Equal(t, "alice", u)
}

func TestResponderSession(t *testing.T) {
	// Arrange
	d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))

	// Act
	_, err := d.Session(context.Background())

	// Assert
	require.ErrorIs(t, err, resp.ErrNotFound)

	// Arrange
	ctx := context.WithValue(context.Background(), approute.SessionKey, "oops")

	// Act
	_, err = d.Session(ctx)

	// Assert
	require.ErrorIs(t, err, resp.ErrInvalid)

	// Arrange
	r := httptest.NewRequest(http.MethodGet, "/test", nil)
	_, r = setupSession(t, r)

	// Act
	s, err := d.Session(r.Context())

	// Assert
	require.Nil(t, err)
	require.NotNil(t, s)
}

func TestResponderErr(t *testing.T) {
	tcs := []struct {
		name     string
		opts     []resp.Fn
		expected int
	}{
		{"Zero-Value", nil, http.StatusInternalServerError},
		{"With-Code", []resp.Fn{resp.Code(http.StatusBadGateway)}, http.StatusBadGateway},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			// Act
			d.Err(w, r, errors.New("oops"), tc.opts...)

			// Assert
			require.Equal(t, tc.expected, w.Code)
			require.Contains(t, w.Body.String(), "oops")
		})
	}
}

func TestResponderJson(t *testing.T) {
	tcs := []struct {
		name         string
		opts         []resp.Fn
		expectedCode int
		expectedBody string
	}{
		{"Zero-Value", nil, http.StatusOK, "{}\n"},
		{"With-Data", []resp.Fn{resp.Data(map[string]string{"message": "hi"})}, http.StatusOK, "{\"message\":\"hi\"}\n"},
		{"With-Code", []resp.Fn{resp.Code(http.StatusCreated), resp.Data([]int{1, 2})}, http.StatusCreated, "[1,2]\n"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			// Act
			err := d.Json(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, tc.expectedBody, w.Body.String())
			require.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"))
		})
	}
}

func TestResponderRedirect(t *testing.T) {
	tcs := []struct {
		name         string
		opts         []resp.Fn
		expectedCode int
		expectedLoc  string
	}{
		{"With-Url", []resp.Fn{resp.Url("/next")}, http.StatusFound, "/next"},
		{"With-3xx", []resp.Fn{resp.Url("/next"), resp.Code(http.StatusMovedPermanently)}, http.StatusMovedPermanently, "/next"},
		{"With-4xx", []resp.Fn{resp.Url("/next"), resp.Code(http.StatusUnauthorized)}, http.StatusSeeOther, "/next"},
		{"With-5xx", []resp.Fn{resp.Url("/next"), resp.Code(http.StatusBadGateway)}, http.StatusTemporaryRedirect, "/next"},
		{
			"With-Params",
			[]resp.Fn{resp.Url("/next"), resp.Params(map[string]string{"page": "2"})},
			http.StatusFound,
			"/next?page=2",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)

			// Act
			err := d.Redirect(w, r, tc.opts...)

			// Assert
			require.Nil(t, err)
			require.Equal(t, tc.expectedCode, w.Code)
			require.Equal(t, tc.expectedLoc, w.Header().Get("Location"))
		})
	}

	t.Run("To-Root", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithRootUrl("https://example.com"),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Redirect(w, r)

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusFound, w.Code)
		require.Equal(t, "https://example.com", w.Header().Get("Location"))
	})

	t.Run("No-Url", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Redirect(w, r)

		// Assert
		require.ErrorIs(t, err, resp.ErrBadConfig)
	})
}

func TestResponderHtml(t *testing.T) {
	t.Run("No-Parser", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Html(w, r, resp.Tmpls("test.tmpl"))

		// Assert
		require.ErrorIs(t, err, resp.ErrBadConfig)
		require.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("No-Tmpls", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithParser(templatetest.NewParser()),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Html(w, r)

		// Assert
		require.ErrorIs(t, err, resp.ErrMissingData)
	})

	t.Run("With-Data", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithParser(templatetest.NewParser(
				templatetest.NewMockFile("test.tmpl", []byte("hello {{.Data}}")),
			)),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Html(w, r, resp.Tmpls("test.tmpl"), resp.Data("world"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, "hello world", w.Body.String())
	})

	t.Run("With-Layout", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithLayoutTemplate("layout.tmpl"),
			resp.WithParser(templatetest.NewParser(
				templatetest.NewMockFile("layout.tmpl", []byte("<main>{{block \"content\" .}}{{end}}</main>")),
				templatetest.NewMockFile("test.tmpl", []byte("{{define \"content\"}}hello {{.Data}}{{end}}")),
			)),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Html(w, r, resp.Tmpls("test.tmpl"), resp.Layout(), resp.Data("world"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, "<main>hello world</main>", w.Body.String())
	})

	t.Run("With-Flash", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithParser(templatetest.NewParser(
				templatetest.NewMockFile(
					"test.tmpl",
					[]byte("{{range .Flashes}}[{{.Class}}:{{.Msg}}]{{end}}"),
				),
			)),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)
		_, r = setupSession(t, r)

		// Act
		err := d.Html(w, r,
			resp.Tmpls("test.tmpl"),
			resp.Success("saved!"),
		)

		// Assert
		require.Nil(t, err)
		require.Equal(t, "[success:saved!]", w.Body.String())
	})

	t.Run("Bad-Template", func(t *testing.T) {
		// Arrange
		d := resp.NewResponder(
			resp.WithLogger(logger.NewNoopLogger()),
			resp.WithErrTemplate("error.tmpl"),
			resp.WithContactErrMsg("help@example.com"),
			resp.WithParser(templatetest.NewParser(
				templatetest.NewMockFile("error.tmpl", []byte("contact {{.Contact}}")),
			)),
		)
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/test", nil)

		// Act
		err := d.Html(w, r, resp.Tmpls("missing.tmpl"))

		// Assert
		require.Nil(t, err)
		require.Equal(t, http.StatusInternalServerError, w.Code)
		require.True(t, strings.Contains(w.Body.String(), "contact help@example.com"))
	})
}

// setupSession stores a fresh cookie-backed session in the request's context.
func setupSession(t *testing.T, r *http.Request) (session.AppSessionable, *http.Request) {
	t.Helper()

	store := sessions.NewCookieStore([]byte("test-secret"))
	g, err := store.Get(r, "test-session")
	require.Nil(t, err)

	s := session.NewSession(g)
	ctx := context.WithValue(r.Context(), approute.SessionKey, s)
	return s, r.WithContext(ctx)
}
