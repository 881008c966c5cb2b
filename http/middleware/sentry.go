package middleware

import (
	"net/http"

	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/approute/approute"
)

// ReportPanic recovers and reports panics to Sentry,
// except in development and testing environments,
// where the panic surfaces directly.
func ReportPanic(env approute.Environment) Adapter {
	if env.IsDevelopment() || env.IsTesting() {
		return NoopAdapter
	}

	sh := sentryhttp.New(sentryhttp.Options{
		Repanic:         false,
		WaitForDelivery: true,
	})

	return func(handler http.Handler) http.Handler {
		return sh.Handle(handler)
	}
}
