package resp

import (
	"net/url"

	"github.com/approute/approute/http/template"
	"github.com/approute/approute/logger"
)

// A ResponderOptFn configures a *Responder under construction in NewResponder.
type ResponderOptFn func(*Responder)

// WithContactErrMsg sets the error message displayed to a client
// when an application is in a bad state.
//
// Compose msg with session.ContactUsErr.
func WithContactErrMsg(msg string) ResponderOptFn {
	return func(d *Responder) { d.contactErrMsg = msg }
}

// WithErrTemplate sets the filepath for the root template rendered
// when no other response can be formed.
func WithErrTemplate(fp string) ResponderOptFn {
	return func(d *Responder) { d.templates.err = fp }
}

// WithLayoutTemplate sets the filepath for the layout template
// wrapping page templates rendered with Layout().
func WithLayoutTemplate(fp string) ResponderOptFn {
	return func(d *Responder) { d.templates.layout = fp }
}

// WithLogger sets the logger.Logger writing out errors encountered while responding.
func WithLogger(l logger.Logger) ResponderOptFn {
	return func(d *Responder) { d.logger = l }
}

// WithParser sets the *template.Parser rendering HTML responses.
func WithParser(p *template.Parser) ResponderOptFn {
	return func(d *Responder) { d.parser = p }
}

// WithRootUrl sets the URL to redirect to by default with ToRoot().
func WithRootUrl(u string) ResponderOptFn {
	return func(d *Responder) {
		parsed, err := url.ParseRequestURI(u)
		if err != nil {
			return
		}
		d.rootUrl = parsed
	}
}
