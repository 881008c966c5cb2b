package view

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/approute/approute"
	"github.com/approute/approute/http/resp"
	"github.com/approute/approute/http/session"
)

// noOutputMsg answers JSON submissions whose Result carries neither payload nor message.
const noOutputMsg = "no output"

// maxMultipartMem caps how much of a multipart submission is held in memory,
// matching net/http's own default.
const maxMultipartMem = 32 << 20

// A URLer resolves a named route into a URL.
//
// Args filling in the route's variables beyond those the route declares
// become query parameters.
type URLer interface {
	URL(name string, args map[string]string) (*url.URL, error)
}

// A Dispatcher turns Views into http.HandlerFuncs.
//
// One Dispatcher serves an entire application,
// holding the pieces every View needs:
// the *resp.Responder writing responses
// and the URLer resolving the routes submissions redirect to.
type Dispatcher struct {
	responder *resp.Responder
	urls      URLer
	useLayout bool
}

// A DispatcherOptFn configures a *Dispatcher under construction in NewDispatcher.
type DispatcherOptFn func(*Dispatcher)

// WithLayout has the Dispatcher wrap every page template
// in the responder's configured layout.
func WithLayout() DispatcherOptFn {
	return func(d *Dispatcher) { d.useLayout = true }
}

// WithURLer sets the URLer resolving the named routes Views redirect to.
func WithURLer(u URLer) DispatcherOptFn {
	return func(d *Dispatcher) { d.urls = u }
}

// NewDispatcher constructs a *Dispatcher writing responses with responder.
func NewDispatcher(responder *resp.Responder, opts ...DispatcherOptFn) *Dispatcher {
	d := &Dispatcher{responder: responder}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Handle turns the View into an http.HandlerFunc.
//
// GET and HEAD requests render the View's data;
// POST requests process a submission.
// Anything else receives 405 Method Not Allowed.
func (d *Dispatcher) Handle(v View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead:
			d.get(w, r, v)
		case http.MethodPost:
			d.post(w, r, v)
		default:
			d.methodNotAllowed(w, r, v)
		}
	}
}

// get renders the View's data,
// as JSON when the client asked for it, as the View's template otherwise.
func (d *Dispatcher) get(w http.ResponseWriter, r *http.Request, v View) {
	data := Values{}
	if v.Populate != nil {
		var err error
		if data, err = v.Populate(r); err != nil {
			d.getErr(w, r, err)
			return
		}
	}

	if resp.AcceptsJSON(r) {
		opts := []resp.Fn{resp.Data(data)}
		if code := data.statusCode(); code != 0 {
			opts = append(opts, resp.Code(code))
		}

		_ = d.responder.Json(w, r, opts...)
		return
	}

	opts := []resp.Fn{resp.Tmpls(v.templateName(r)), resp.Data(data)}
	if d.useLayout {
		opts = append(opts, resp.Layout())
	}

	_ = d.responder.Html(w, r, opts...)
}

// getErr answers a failure gathering a page's data.
//
// An HTML client sees the error page; a JSON client, a generic message.
func (d *Dispatcher) getErr(w http.ResponseWriter, r *http.Request, err error) {
	if resp.AcceptsJSON(r) {
		_ = d.responder.Json(w, r,
			resp.Err(err),
			resp.Data(map[string]string{"message": session.DefaultErrMsg}),
		)
		return
	}

	// passing no templates lands in the responder's error page
	_ = d.responder.Html(w, r, resp.Err(err))
}

// post processes a submission and answers it,
// directly for JSON clients, with a redirect for HTML clients.
//
// Redirecting keeps a refresh of the next page from resubmitting the form.
func (d *Dispatcher) post(w http.ResponseWriter, r *http.Request, v View) {
	if v.HandlePost == nil {
		d.methodNotAllowed(w, r, v)
		return
	}

	isJSON := resp.AcceptsJSON(r)

	values, err := d.parseValues(r, isJSON)
	if err != nil {
		d.postErr(w, r, fmt.Errorf("%w: %s", approute.ErrNotValid, err), isJSON)
		return
	}

	result, err := v.HandlePost(r, values)
	if err != nil {
		d.postErr(w, r, err, isJSON)
		return
	}

	if result == nil {
		result = Respond("")
	}

	if isJSON {
		payload := result.Payload
		if payload == nil {
			msg := result.Msg
			if msg == "" {
				msg = noOutputMsg
			}

			payload = map[string]string{"message": msg}
		}

		_ = d.responder.Json(w, r, resp.Code(result.Code), resp.Data(payload))
		return
	}

	dest, err := d.redirectURL(r, v)
	if err != nil {
		d.postErr(w, r, err, isJSON)
		return
	}

	opts := make([]resp.Fn, 0, 2)
	if result.Msg != "" {
		opts = append(opts, resp.Flash(result.flash()))
	}

	opts = append(opts, resp.Url(dest))
	if err := d.responder.Redirect(w, r, opts...); err != nil {
		d.responder.Err(w, r, err)
	}
}

// postErr answers a failed submission.
//
// Bad input earns a 400 and a warning; anything else a 500 and the generic message.
// HTML clients are redirected back to the page they submitted from,
// with the notification flashed for the rerender.
func (d *Dispatcher) postErr(w http.ResponseWriter, r *http.Request, err error, isJSON bool) {
	code, msg, class := http.StatusInternalServerError, session.DefaultErrMsg, session.FlashDanger
	if errors.Is(err, approute.ErrNotValid) {
		code, msg, class = http.StatusBadRequest, session.BadInputMsg, session.FlashWarning
	}

	if isJSON {
		_ = d.responder.Json(w, r,
			resp.Err(err),
			resp.Code(code),
			resp.Data(map[string]string{"message": msg}),
		)
		return
	}

	// 303 turns the failed POST into a GET of the submitting page;
	// anything method-preserving would resubmit the form on refresh.
	nested := d.responder.Redirect(w, r,
		resp.Err(err),
		resp.Code(http.StatusSeeOther),
		resp.Flash(session.Flash{Class: class, Msg: msg}),
		resp.Url(r.URL.RequestURI()),
	)
	if nested != nil {
		d.responder.Err(w, r, nested)
	}
}

// methodNotAllowed rejects a request the View has no handler for.
func (d *Dispatcher) methodNotAllowed(w http.ResponseWriter, r *http.Request, v View) {
	allowed := "GET, HEAD"
	if v.HandlePost != nil {
		allowed += ", POST"
	}

	w.Header().Set("Allow", allowed)

	if resp.AcceptsJSON(r) {
		_ = d.responder.Json(w, r,
			resp.Code(http.StatusMethodNotAllowed),
			resp.Data(map[string]string{"message": http.StatusText(http.StatusMethodNotAllowed)}),
		)
		return
	}

	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

// parseValues pulls the submitted data out of the request,
// from its JSON body or its URL-encoded or multipart form fields.
func (d *Dispatcher) parseValues(r *http.Request, isJSON bool) (Values, error) {
	vals := Values{}

	if isJSON {
		defer r.Body.Close()
		err := json.NewDecoder(r.Body).Decode(&vals)
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: failed decoding submission: %s", approute.ErrBadFormat, err)
		}

		return vals, nil
	}

	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var err error
	if ct == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMultipartMem)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed reading form: %s", approute.ErrBadFormat, err)
	}

	for key, set := range r.PostForm {
		if len(set) == 1 {
			vals[key] = set[0]
			continue
		}

		vals[key] = set
	}

	return vals, nil
}

// redirectURL resolves where a successful HTML submission lands:
// the View's named route when set, the page itself otherwise.
func (d *Dispatcher) redirectURL(r *http.Request, v View) (string, error) {
	if v.RedirectTo == "" || d.urls == nil {
		return r.URL.RequestURI(), nil
	}

	u, err := d.urls.URL(v.RedirectTo, v.RedirectArgs)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve route %q: %s", approute.ErrBadConfig, v.RedirectTo, err)
	}

	return u.String(), nil
}
