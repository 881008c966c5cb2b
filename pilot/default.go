package pilot

import (
	"context"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/approute/approute"
	"github.com/approute/approute/http/keyring"
	"github.com/approute/approute/http/middleware"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/router"
	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/template"
	"github.com/approute/approute/logger"
)

const (
	// Base URL defaults
	BaseURLEnvVar = "BASE_URL"

	// App metadata
	AppTitleEnvVar   = "APP_TITLE"
	ContactUsEnvVar  = "CONTACT_US_EMAIL"
	defaultContactUs = "hello@example.com"

	// Environment defaults
	environmentEnvVar = "ENVIRONMENT"

	// Log defaults
	logLevelEnvVar = "LOG_LEVEL"

	// Default HTML template files
	defaultTmplDir    = "tmpl"
	defaultErrTmpl    = defaultTmplDir + "/error.tmpl"
	defaultLayoutDir  = defaultTmplDir + "/layout"
	defaultLayoutTmpl = defaultLayoutDir + "/base.tmpl"
	defaultMaintTmpl  = defaultTmplDir + "/maintenance.tmpl"

	// Web server defaults
	DefaultHost               = "localhost"
	DefaultPort               = ":3000"
	portEnvVar                = "PORT"
	serverReadTimeoutEnvVar   = "SERVER_READ_TIMEOUT"
	DefaultServerReadTimeout  = 5 * time.Second
	serverIdleTimeoutEnvVar   = "SERVER_IDLE_TIMEOUT"
	DefaultServerIdleTimeout  = 120 * time.Second
	serverWriteTimeoutEnvVar  = "SERVER_WRITE_TIMEOUT"
	DefaultServerWriteTimeout = 5 * time.Second

	// Session defaults
	SessionAuthKeyEnvVar    = "SESSION_AUTH_KEY"
	SessionEncryptKeyEnvVar = "SESSION_ENCRYPTION_KEY"
	sessionRedisURIEnvVar   = "SESSION_REDIS_URI"
	sessionRedisPassEnvVar  = "SESSION_REDIS_PASSWORD"
)

var defaultBaseURL = "http://" + DefaultHost + DefaultPort

// defaultOpts are the Options New applies before any user supplied ones.
func defaultOpts() []Option {
	return []Option{
		WithEnv(environmentEnvVar),
		defaultURL(),
		defaultLogger(),
		defaultKeyring(),
		defaultParser(),
		defaultSessionStore(),
		defaultResponder(),
		defaultRouter(),
	}
}

// defaultURL reads the base URL the app runs on out of the BASE_URL env var.
func defaultURL() Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.url = approute.EnvVarOrURL(BaseURLEnvVar, defaultBaseURL)

		return nil, nil
	}
}

// defaultLogger constructs a logger.Logger configured by the LOG_LEVEL env var.
func defaultLogger() Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.l = logger.New(
			logger.WithEnv(p.env.String()),
			logger.WithLevel(envVarOrLogLevel(logLevelEnvVar, logger.LogLevelInfo)),
		)
		if setupLog == nil {
			setupLog = p.l
		}

		setupLog.Debug("setting up app logger", nil)

		return nil, nil
	}
}

// defaultKeyring collects the context keys an approute app stores data under.
func defaultKeyring() Option {
	return func(p *Pilot) (OptFollowup, error) {
		p.kr = keyring.NewKeyring(
			approute.SessionKey,
			approute.CurrentUserKey,
			approute.IpAddrKey,
			approute.RequestIDKey,
			approute.ResponderKey,
		)

		return nil, nil
	}
}

// defaultParser constructs a *template.Parser to be used
// when responding to HTTP requests with [*http/resp.Responder.Html].
//
// defaultParser makes available these functions in an HTML template:
//
//   - "env"
//   - "isDevelopment"
//   - "isStaging"
//   - "isProduction"
//
// NewResponder adds "nonce" and "rootUrl" when the parser reaches it.
func defaultParser() Option {
	return func(p *Pilot) (OptFollowup, error) {
		parser := template.NewParser([]fs.FS{os.DirFS(".")})
		parser = parser.AddFn(template.Env(p.env))
		parser = parser.AddFn("isDevelopment", p.env.IsDevelopment)
		parser = parser.AddFn("isStaging", p.env.IsStaging)
		parser = parser.AddFn("isProduction", p.env.IsProduction)

		p.p = parser

		return nil, nil
	}
}

// defaultSessionStore constructs a SessionStorer to be used for storing session data.
//
// defaultSessionStore relies on these env vars:
//   - APP_TITLE
//   - SESSION_AUTH_KEY
//   - SESSION_ENCRYPTION_KEY
//   - SESSION_REDIS_URI
//   - SESSION_REDIS_PASSWORD
//
// Both KEY env vars must be valid hex encoded values; cf. [encoding/hex].
// When neither KEY is set and the Environment allows stubbing,
// sessions are held in memory and shared by all requests.
func defaultSessionStore() Option {
	return func(p *Pilot) (OptFollowup, error) {
		ak := os.Getenv(SessionAuthKeyEnvVar)
		ek := os.Getenv(SessionEncryptKeyEnvVar)
		if ak == "" && ek == "" && p.env.CanUseServiceStub() {
			p.sessions = session.NewStub(0)
			if setupLog != nil {
				setupLog.Debug("using stubbed session store", nil)
			}

			return nil, nil
		}

		cfg := session.Config{
			AuthKey:     ak,
			EncryptKey:  ek,
			Env:         p.env,
			SessionName: sessionName(approute.EnvVarOrString(AppTitleEnvVar, "approute")),
		}

		args := []session.ServiceOpt{session.WithMaxAge(3600 * 24 * 7)}
		if uri := os.Getenv(sessionRedisURIEnvVar); uri != "" {
			args = append(args, session.WithRedis(uri, os.Getenv(sessionRedisPassEnvVar)))
		} else {
			args = append(args, session.WithCookie())
		}

		store, err := session.NewStoreService(cfg, args...)
		if err != nil {
			return nil, err
		}

		p.sessions = store

		return nil, nil
	}
}

// defaultResponder configures the *resp.Responder to be used by http.Handlers.
//
// defaultResponder runs as a followup so the parser, logger and base URL
// configured by other options are in place first.
func defaultResponder() Option {
	return func(p *Pilot) (OptFollowup, error) {
		return func() error {
			contact := approute.EnvVarOrString(ContactUsEnvVar, defaultContactUs)
			p.Responder = resp.NewResponder(
				resp.WithContactErrMsg(fmt.Sprintf(session.ContactUsErr, contact)),
				resp.WithErrTemplate(defaultErrTmpl),
				resp.WithLayoutTemplate(defaultLayoutTmpl),
				resp.WithLogger(p.l),
				resp.WithParser(p.p),
				resp.WithRootUrl(p.url.String()),
			)

			return nil
		}, nil
	}
}

// defaultRouter constructs a *router.Router to be used by the web server,
// running every request through the standard middleware stack.
func defaultRouter() Option {
	return func(p *Pilot) (OptFollowup, error) {
		return func() error {
			r := router.New(p.env, middleware.LogRequest(p.l))
			r.OnEveryRequest(
				middleware.RateLimit(middleware.NewVisitors()),
				middleware.ForceHTTPS(p.env),
				middleware.RequestID(approute.RequestIDKey),
				middleware.InjectIPAddress(),
				middleware.InjectSession(p.sessions, approute.SessionKey),
				middleware.InjectResponder(p.Responder, approute.ResponderKey),
			)

			p.Router = r
			if p.srv == nil {
				p.srv = defaultServer(p.ctx)
			}
			p.srv.Handler = r

			return nil
		}, nil
	}
}

// defaultServer constructs a default *http.Server.
func defaultServer(ctx context.Context) *http.Server {
	port := approute.EnvVarOrString(portEnvVar, DefaultPort)
	if port[0] != ':' {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		IdleTimeout:  approute.EnvVarOrDuration(serverIdleTimeoutEnvVar, DefaultServerIdleTimeout),
		ReadTimeout:  approute.EnvVarOrDuration(serverReadTimeoutEnvVar, DefaultServerReadTimeout),
		WriteTimeout: approute.EnvVarOrDuration(serverWriteTimeoutEnvVar, DefaultServerWriteTimeout),
	}
	if ctx != nil {
		srv.BaseContext = func(_ net.Listener) context.Context { return ctx }
	}

	return srv
}

// sessionName derives the name sessions are stored under from the app's title.
func sessionName(title string) string {
	title = strings.ToLower(title)
	title = regexp.MustCompile(`[,':]`).ReplaceAllString(title, "")
	title = regexp.MustCompile(`\s+`).ReplaceAllString(title, "-")

	return "approute-" + title
}

// envVarOrLogLevel gets the environment variable from the provided key,
// creates a logger.LogLevel from the retrieved value,
// or returns the provided default logger.LogLevel
// if the value is an unknown logger.LogLevel.
func envVarOrLogLevel(key string, def logger.LogLevel) logger.LogLevel {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	ll := logger.NewLogLevel(val)
	if ll == logger.LogLevelUnk {
		return def
	}

	return ll
}
