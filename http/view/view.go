package view

import (
	"net/http"
)

// statusCodeKey names the entry in a Values map
// overriding the status code of a JSON rendition of a page.
const statusCodeKey = "status_code"

// A View declares how one page answers GET and POST requests.
//
// Zero or more fields can be left unset:
// a View with no Populate renders its template with no data,
// a View with no HandlePost rejects submissions,
// and a View with no RedirectTo redirects submissions back to the page itself.
type View struct {
	// Template is the file rendered for HTML GET requests.
	Template string

	// TemplateFn dynamically picks the file rendered for HTML GET requests,
	// for pages whose template depends on some kind of state.
	//
	// When set, TemplateFn takes priority over Template.
	TemplateFn func(r *http.Request) string

	// RedirectTo names the route a successful submission redirects to.
	//
	// The name must be registered with the Dispatcher's URLer.
	// When unset, submissions redirect back to the page they came from.
	RedirectTo string

	// RedirectArgs fills in the variables of the named route.
	// Args beyond those the route declares become query parameters.
	RedirectArgs map[string]string

	// Populate gathers the data a GET request renders,
	// whether into the Template or directly as JSON.
	Populate func(r *http.Request) (Values, error)

	// HandlePost processes a submission, whether from an HTML form
	// or from an incoming JSON object.
	HandlePost func(r *http.Request, values Values) (*Result, error)
}

// templateName resolves the file rendered for an HTML GET request.
func (v View) templateName(r *http.Request) string {
	if v.TemplateFn != nil {
		return v.TemplateFn(r)
	}

	return v.Template
}

// Values holds the data flowing through a View:
// what Populate gathered for a page render,
// or what a client submitted to HandlePost.
type Values map[string]any

// String pulls the named value out as a string,
// returning "" when absent or not a string.
func (vals Values) String(key string) string {
	s, _ := vals[key].(string)
	return s
}

// statusCode reads the status code override out of the Values, if any.
func (vals Values) statusCode() int {
	switch c := vals[statusCodeKey].(type) {
	case int:
		return c
	case int64:
		return int(c)
	case float64:
		return int(c)
	}

	return 0
}
