package resp

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/approute/approute"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/logger"
)

// A Response is the internal object a Responder works on
// before writing a response to the client.
type Response struct {
	w http.ResponseWriter
	r *http.Request

	closeBody bool
	code      int
	data      any
	tmpls     []string
	url       *url.URL
	user      any
}

// A Fn is a functional option that mutates the state of the Response.
type Fn func(Responder, *Response) error

// Code sets the response status code.
func Code(c int) Fn {
	return func(_ Responder, r *Response) error {
		r.code = c
		return nil
	}
}

// Data stores the data to a write in a response.
func Data(d any) Fn {
	return func(_ Responder, r *Response) error {
		r.data = d
		return nil
	}
}

// Err reports err and sets the response status code to 500
// unless a code was already set.
func Err(err error) Fn {
	return func(doer Responder, r *Response) error {
		ctx := r.r.Context()
		doer.logger.Error(err.Error(), &logger.LogContext{
			Error:   err,
			Request: r.r,
			User:    currentLogUser(doer, ctx),
		})

		if r.code == 0 {
			return Code(http.StatusInternalServerError)(doer, r)
		}

		return nil
	}
}

// Danger sets a flash with the danger class in the session.
func Danger(msg string) Fn {
	return Flash(session.Flash{Class: session.FlashDanger, Msg: msg})
}

// Flash stores the flash in the session.
//
// An empty Stream falls back to session.DefaultStream.
func Flash(flash session.Flash) Fn {
	return func(doer Responder, r *Response) error {
		s, err := doer.Session(r.r.Context())
		if err != nil {
			return err
		}

		if flash.Stream == "" {
			flash.Stream = session.DefaultStream
		}

		return s.SetFlash(r.w, r.r, flash)
	}
}

// GenericErr composes Err and a user-facing flash.
//
// The flash message is the Responder's contact error message when one is configured,
// session.DefaultErrMsg otherwise.
func GenericErr(err error) Fn {
	return func(doer Responder, r *Response) error {
		if err := Err(err)(doer, r); err != nil {
			return err
		}

		msg := session.DefaultErrMsg
		if doer.contactErrMsg != "" {
			msg = doer.contactErrMsg
		}

		return Danger(msg)(doer, r)
	}
}

// Params appends the key-value pairs to the query string of the URL
// set by Url or ToRoot.
//
// Params requires one of those Fns to have successfully run already.
func Params(params map[string]string) Fn {
	return func(_ Responder, r *Response) error {
		if r.url == nil {
			return fmt.Errorf("%w: no URL to append %v to", ErrMissingData, params)
		}

		q := r.url.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		r.url.RawQuery = q.Encode()

		return nil
	}
}

// Success sets a flash with the success class in the session.
func Success(msg string) Fn {
	return Flash(session.Flash{Class: session.FlashSuccess, Msg: msg})
}

// Layout prepends the Responder's configured layout template
// to the templates set by Tmpls.
//
// Layout requires Tmpls to have successfully run already.
func Layout() Fn {
	return func(doer Responder, r *Response) error {
		if len(r.tmpls) == 0 {
			return fmt.Errorf("%w: no templates to wrap in a layout", ErrMissingData)
		}

		if doer.templates.layout == "" {
			return fmt.Errorf("%w: no layout template configured", ErrBadConfig)
		}

		if r.tmpls[0] == doer.templates.layout {
			return nil
		}

		r.tmpls = append([]string{doer.templates.layout}, r.tmpls...)
		return nil
	}
}

// Tmpls sets the templates to render for an HTML response.
//
// The first template is the one executed;
// those following define templates it relies upon.
func Tmpls(fps ...string) Fn {
	return func(_ Responder, r *Response) error {
		r.tmpls = append(r.tmpls, fps...)
		return nil
	}
}

// ToRoot sets the redirect destination to the Responder's root URL.
//
// ToRoot does not overwrite a URL already set by Url.
func ToRoot() Fn {
	return func(doer Responder, r *Response) error {
		if r.url != nil {
			return nil
		}

		if doer.rootUrl == nil {
			return fmt.Errorf("%w: no root URL configured", ErrBadConfig)
		}

		u := *doer.rootUrl
		r.url = &u
		return nil
	}
}

// Url parses u and sets it as the redirect destination.
func Url(u string) Fn {
	return func(_ Responder, r *Response) error {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return fmt.Errorf("%w: %q: %s", ErrInvalid, u, err)
		}

		r.url = parsed
		return nil
	}
}

// Warn sets a flash with the warning class in the session.
func Warn(msg string) Fn {
	return Flash(session.Flash{Class: session.FlashWarning, Msg: msg})
}

// User stores the user on the Response and in the session.
func User(u any) Fn {
	return func(doer Responder, r *Response) error {
		r.user = u

		ctx := context.WithValue(r.r.Context(), approute.CurrentUserKey, u)
		r.r = r.r.Clone(ctx)
		return nil
	}
}

// currentLogUser pulls the current user out of the context if it implements logger.LogUser.
func currentLogUser(doer Responder, ctx context.Context) logger.LogUser {
	val, err := doer.CurrentUser(ctx)
	if err != nil {
		return nil
	}

	if u, ok := val.(logger.LogUser); ok {
		return u
	}

	return nil
}
