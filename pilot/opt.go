package pilot

import (
	"context"
	"fmt"
	"net/http"

	"github.com/approute/approute"
	"github.com/approute/approute/http/keyring"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/router"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/template"
	"github.com/approute/approute/logger"
)

// An Option configures a *Pilot either (1) directly, immediately upon being called
// or (2) in the OptFollowup it returns.
// Some Options require data in others and thus an OptFollowup can be returned
// in order to be called at a later time when that data is available.
//
// WithKeyring is an example of the first.
// An unexported field on the passed in *Pilot is updated with the enclosed value.
//
// WithRouter is an example of the second.
// An unexported field on the passed in *Pilot
// is updated only when the closure it returns is called.
type Option func(p *Pilot) (OptFollowup, error)
type OptFollowup func() error

// setupLog reports how construction goes before the app's own logger exists.
var setupLog logger.Logger

// WithContext exposes the provided context.Context to the approute app.
func WithContext(ctx context.Context) Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.ctx = ctx
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using context %T", ctx), nil)
		}

		return nil, nil
	}
}

// WithEnv casts the provided string into a valid Environment,
// or, reads from the ENVIRONMENT environment variable a valid Environment.
//
// If both fail, the default Environment is Development.
func WithEnv(envVar string) Option {
	e := approute.Environment(envVar)
	if err := e.Valid(); err == nil {
		return func(p *Pilot) (OptFollowup, error) {
			p.env = e
			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using env %s", e), nil)
			}

			return nil, nil
		}
	}

	return func(p *Pilot) (OptFollowup, error) {
		p.env = approute.EnvVarOrEnv(envVar, approute.Development)
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using env %s", p.env), nil)
		}

		return nil, nil
	}
}

// WithKeyring exposes the provided keyring.Keyringable to the approute app.
func WithKeyring(k keyring.Keyringable) Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.kr = k
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using keyring %T", k), nil)
		}

		return nil, nil
	}
}

// WithLogger exposes the provided logger.Logger to the approute app.
func WithLogger(l logger.Logger) Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.l = l
		if setupLog == nil {
			setupLog = l
		}

		setupLog.Debug(fmt.Sprintf("using logger %T", l), nil)

		return nil, nil
	}
}

// WithParser exposes the provided *template.Parser to the approute app.
func WithParser(parser *template.Parser) Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.p = parser
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using parser %T", parser), nil)
		}

		return nil, nil
	}
}

// WithResponder constructs a followup option that, when called,
// exposes the *resp.Responder to the approute app.
func WithResponder(r *resp.Responder) Option {
	return func(p *Pilot) (OptFollowup, error) {
		return func() error {
			p.Responder = r
			if setupLog != nil {
				setupLog.Debug("using responder", nil)
			}

			return nil
		}, nil
	}
}

// WithRouter constructs a followup option that, when called,
// exposes the *router.Router to the approute app.
func WithRouter(r *router.Router) Option {
	return func(p *Pilot) (OptFollowup, error) {
		return func() error {
			if p.srv == nil {
				p.srv = defaultServer(p.ctx)
			}

			p.Router = r
			p.srv.Handler = r

			if setupLog != nil {
				setupLog.Debug(fmt.Sprintf("using router %T", r), nil)
				setupLog.Debug(fmt.Sprintf("using server %T", p.srv), nil)
			}

			return nil
		}, nil
	}
}

// WithSessionStore exposes the session.SessionStorer to the approute app.
func WithSessionStore(store session.SessionStorer) Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.sessions = store
		if setupLog != nil {
			setupLog.Debug(fmt.Sprintf("using session store %T", store), nil)
		}

		return nil, nil
	}
}

// WithServer exposes the *http.Server to the approute app.
func WithServer(s *http.Server) Option {
	return func(p *Pilot) (OptFollowup, error) {
		old := p.srv
		p.srv = s

		if old != nil {
			p.srv.Handler = old.Handler
		}

		return nil, nil
	}
}
