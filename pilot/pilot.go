package pilot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	// TODO: configurable env files
	_ "github.com/joho/godotenv/autoload"

	"github.com/approute/approute"
	"github.com/approute/approute/http/keyring"
	"github.com/approute/approute/http/middleware"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/router"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/template"
	"github.com/approute/approute/http/view"
	"github.com/approute/approute/logger"
)

// A Pilot manages and exposes all components of an approute app to one another.
type Pilot struct {
	*resp.Responder
	*router.Router

	ctx      context.Context
	env      approute.Environment
	kr       keyring.Keyringable
	l        logger.Logger
	p        *template.Parser
	sessions session.SessionStorer
	srv      *http.Server
	url      *url.URL
	views    *view.Dispatcher
}

// New constructs a Pilot from the provided options.
// Default options are applied first followed by the options passed into New.
// Options supplied to New overwrite default configurations.
func New(opts ...Option) (*Pilot, error) {
	p := new(Pilot)
	followups := make([]OptFollowup, 0)

	// NOTE: calling an option configures the *Pilot under construction.
	// Some options require data from other options.
	// These options, therefore, must delay configuring the *Pilot
	// until either (1) user supplied Options or (2) default Options
	// configure the *Pilot first.
	// They return an OptFollowup to be called after the initial set of options are run.
	for _, opt := range append(defaultOpts(), opts...) {
		fn, err := opt(p)
		if err != nil {
			return p, fmt.Errorf("%w: %s", approute.ErrBadConfig, err)
		}

		if fn != nil {
			followups = append(followups, fn)
		}
	}

	for _, fn := range followups {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%w: %s", approute.ErrBadConfig, err)
		}
	}

	p.views = view.NewDispatcher(p.Responder, view.WithURLer(p.Router), view.WithLayout())

	return p, nil
}

func (p *Pilot) EmitDispatcher() *view.Dispatcher       { return p.views }
func (p *Pilot) EmitKeyring() keyring.Keyringable       { return p.kr }
func (p *Pilot) EmitLogger() logger.Logger              { return p.l }
func (p *Pilot) EmitParser() *template.Parser           { return p.p }
func (p *Pilot) EmitSessionStore() session.SessionStorer { return p.sessions }

// Env returns the Environment the app is operating in.
func (p *Pilot) Env() approute.Environment { return p.env }

// HandleView registers v at path under the given route name,
// answering GET, HEAD and POST requests through the Pilot's view.Dispatcher.
func (p *Pilot) HandleView(path, name string, v view.View, middlewares ...middleware.Adapter) {
	p.Router.Handle(router.Route{
		Path:        path,
		Name:        name,
		Handler:     p.views.Handle(v),
		Middlewares: middlewares,
	})
}

// Fly begins the web server.
//
// These, and (*Pilot).Land, stop Fly:
//
// - os.Interrupt
// - os.Kill
// - syscall.SIGHUP
// - syscall.SIGINT
// - syscall.SIGQUIT
// - syscall.SIGTERM
func (p *Pilot) Fly() error {
	var cancel context.CancelFunc
	p.ctx, cancel = context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(
		ch,
		os.Interrupt,
		os.Kill,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)

	go func() {
		s := <-ch
		p.l.Info(fmt.Sprint("received shutdown signal: ", s), nil)
		cancel()
	}()

	go func() {
		p.l.Info(fmt.Sprintf("running web server at %s", p.srv.Addr), nil)
		p.srv.Handler = p.Router
		if err := p.srv.ListenAndServe(); err != http.ErrServerClosed {
			err = fmt.Errorf("could not listen: %w", err)
			p.l.Error(err.Error(), nil)
		}
	}()

	<-p.ctx.Done()
	return p.Land()
}

// Land shutdowns the web server.
func (p *Pilot) Land() error {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	p.l.Info("shutting down web server", nil)
	err := p.srv.Shutdown(shutdownCtx)
	if err == http.ErrServerClosed {
		p.l.Info("web server shutdown successfully", nil)
		return nil
	}

	if err != nil {
		return fmt.Errorf("could not shutdown: %w", err)
	}

	p.l.Info("web server shutdown successfully", nil)
	return nil
}

// MaintModeHandler responds to all requests with 503, Service Unavailable,
// asking clients to retry in 10 minutes.
//
// When the parser can find tmpl/maintenance.tmpl, that file renders as the response body
// with the contact email available under .Contact.
func MaintModeHandler(p *template.Parser, l logger.Logger, contact string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "600")
		w.WriteHeader(http.StatusServiceUnavailable)

		tmpl, err := p.Parse(defaultMaintTmpl)
		if err != nil {
			return
		}

		if err := tmpl.Execute(w, map[string]any{"Contact": contact}); err != nil {
			l.Error(fmt.Sprintf("could not render maintenance template: %s", err), nil)
		}
	}
}
