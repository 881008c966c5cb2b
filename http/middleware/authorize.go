package middleware

import (
	"net/http"

	"github.com/approute/approute"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/session"
)

// An AuthorizeApplicator constructs Adapters that apply custom authorization rules
// for users, as specified by type T.
type AuthorizeApplicator[T any] struct {
	d *resp.Responder
}

// NewAuthorizeApplicator constructs an AuthorizeApplicator for type T.
// Apply methods for the constructed AuthorizeApplicator will use the Responder for redirects.
// Apply methods will use approute.CurrentUserKey to pull a user out of the request Context.
func NewAuthorizeApplicator[T any](d *resp.Responder) AuthorizeApplicator[T] {
	return AuthorizeApplicator[T]{d}
}

// Apply wraps a custom function validating the authorization of a user,
// whose type is specified by T.
//
// Apply retrieves the value for the approute.CurrentUserKey from the request Context.
// Apply should not be used in a situation where the http.Request.Context
// in some cases stores the requisite value and others does not.
//
// The provided custom function returns either true and an empty string -
// meaning the user is authorized - or false and a valid URL as a string.
//
// If the custom function returns true,
// Apply passes the request to the next handler in the middleware stack.
//
// If the custom function returns false,
// Apply does not pass the request to the next handler in the middleware stack.
//
// Instead, a JSON request receives 401.
// An HTML request has a "no access" flash set on the session
// and redirects to the URL the custom function returned.
//
// If fn is nil, Apply returns a NoopAdapter.
func (aa AuthorizeApplicator[T]) Apply(fn func(user T) (string, bool)) Adapter {
	if fn == nil {
		return NoopAdapter
	}

	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			doRedirect := !resp.AcceptsJSON(r)

			val, ok := r.Context().Value(approute.CurrentUserKey).(T)
			if !ok {
				if doRedirect {
					f := session.Flash{Class: session.FlashWarning, Msg: session.NoAccessMsg}
					if err := aa.d.Redirect(w, r, resp.Flash(f)); err != nil {
						aa.d.Err(w, r, err)
					}

					return
				}

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			if url, ok := fn(val); !ok {
				if doRedirect {
					f := session.Flash{Class: session.FlashWarning, Msg: session.NoAccessMsg}
					if err := aa.d.Redirect(w, r, resp.Flash(f), resp.Url(url)); err != nil {
						aa.d.Err(w, r, err)
					}

					return
				}

				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			handler.ServeHTTP(w, r)
		})
	}
}
