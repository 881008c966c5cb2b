package resp_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/template/templatetest"
	"github.com/approute/approute/logger"
	"github.com/stretchr/testify/require"
)

func TestFnOrderIndependence(t *testing.T) {
	// Arrange
	d := resp.NewResponder(
		resp.WithLogger(logger.NewNoopLogger()),
		resp.WithLayoutTemplate("layout.tmpl"),
		resp.WithParser(templatetest.NewParser(
			templatetest.NewMockFile("layout.tmpl", []byte("<main>{{block \"content\" .}}{{end}}</main>")),
			templatetest.NewMockFile("test.tmpl", []byte("{{define \"content\"}}ok{{end}}")),
		)),
	)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	// Act
	//
	// Layout comes before Tmpls; the responder retries it once Tmpls lands.
	err := d.Html(w, r, resp.Layout(), resp.Tmpls("test.tmpl"))

	// Assert
	require.Nil(t, err)
	require.Equal(t, "<main>ok</main>", w.Body.String())
}

func TestFnFlash(t *testing.T) {
	tcs := []struct {
		name     string
		fn       resp.Fn
		expected session.Flash
	}{
		{"Success", resp.Success("yay"), session.Flash{Class: session.FlashSuccess, Msg: "yay", Stream: session.DefaultStream}},
		{"Warn", resp.Warn("hm"), session.Flash{Class: session.FlashWarning, Msg: "hm", Stream: session.DefaultStream}},
		{"Danger", resp.Danger("no"), session.Flash{Class: session.FlashDanger, Msg: "no", Stream: session.DefaultStream}},
		{
			"Custom-Stream",
			resp.Flash(session.Flash{Class: session.FlashInfo, Msg: "psst", Stream: "sidebar"}),
			session.Flash{Class: session.FlashInfo, Msg: "psst", Stream: "sidebar"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			s, r := setupSession(t, r)

			// Act
			err := d.Redirect(w, r, resp.Url("/next"), tc.fn)

			// Assert
			require.Nil(t, err)
			fs := s.Flashes(w, r, tc.expected.Stream)
			require.Equal(t, []session.Flash{tc.expected}, fs)
		})
	}
}

func TestFnFlashNoSession(t *testing.T) {
	// Arrange
	d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	// Act
	err := d.Redirect(w, r, resp.Url("/next"), resp.Success("yay"))

	// Assert
	require.ErrorIs(t, err, resp.ErrNotFound)
}

func TestFnGenericErr(t *testing.T) {
	tcs := []struct {
		name        string
		contactMsg  string
		expectedMsg string
	}{
		{"Default", "", session.DefaultErrMsg},
		{"Contact", "Reach us at help@example.com.", "Reach us at help@example.com."},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			opts := []resp.ResponderOptFn{resp.WithLogger(logger.NewNoopLogger())}
			if tc.contactMsg != "" {
				opts = append(opts, resp.WithContactErrMsg(tc.contactMsg))
			}
			d := resp.NewResponder(opts...)
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			s, r := setupSession(t, r)

			// Act
			err := d.Redirect(w, r, resp.Url("/next"), resp.GenericErr(errors.New("oops")))

			// Assert
			require.Nil(t, err)
			require.Equal(t, http.StatusTemporaryRedirect, w.Code)

			fs := s.Flashes(w, r)
			require.Len(t, fs, 1)
			require.Equal(t, session.FlashDanger, fs[0].Class)
			require.Equal(t, tc.expectedMsg, fs[0].Msg)
		})
	}
}

func TestFnUrlInvalid(t *testing.T) {
	// Arrange
	d := resp.NewResponder(resp.WithLogger(logger.NewNoopLogger()))
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	// Act
	err := d.Redirect(w, r, resp.Url("12%zz"))

	// Assert
	require.ErrorIs(t, err, resp.ErrInvalid)
}
