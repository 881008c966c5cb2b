package session

import (
	"net/http"

	gorilla "github.com/gorilla/sessions"
)

// keys used internal to specific implementations of different interfaces.
const (
	sessionKey     = "approute-session-gorilla" // used by Service
	userSessionKey = sessionKey + "-user"       // used by Session
)

// The Sessionable wraps methods for adding values to, deleting, and getting values from a session
// associated with an *http.Request and saving those to the session store.
type Sessionable interface {
	Delete(w http.ResponseWriter, r *http.Request) error
	Get(key string) any
	ResetExpiry(w http.ResponseWriter, r *http.Request) error
	Save(w http.ResponseWriter, r *http.Request) error
	Set(w http.ResponseWriter, r *http.Request, key string, val any) error
}

// The UserSessionable wraps methods for adding, removing, and retrieving
// user IDs from a session.
type UserSessionable interface {
	DeregisterUser(w http.ResponseWriter, r *http.Request) error
	RegisterUser(w http.ResponseWriter, r *http.Request, ID uint) error
	UserID() (uint, error)
}

// The AppSessionable composes session's major interfaces.
type AppSessionable interface {
	FlashSessionable
	Sessionable
	UserSessionable
}

// A Session provides all functionality for managing a fully featured session.
//
// Its functionality is implemented by lightly wrapping a gorilla.Session.
type Session struct {
	s *gorilla.Session
}

// NewSession constructs a new Session as an implementation of AppSessionable
// from a *gorilla.Session.
//
// Typical usage is to pass in the value retrieved from a http.Request.Context.
// Given context keys are unexported, this package cannot perform that retrieval.
func NewSession(g *gorilla.Session) AppSessionable { return Session{s: g} }

// ClearFlashes drops any flashes accrued on the default stream without surfacing them.
func (s Session) ClearFlashes(w http.ResponseWriter, r *http.Request) {
	_ = s.Flashes(w, r)
}

// Delete removes a session by making the MaxAge negative.
func (s Session) Delete(w http.ResponseWriter, r *http.Request) error {
	s.s.Options.MaxAge = -1
	return s.Save(w, r)
}

// DeregisterUser removes the User from the session.
func (s Session) DeregisterUser(w http.ResponseWriter, r *http.Request) error {
	delete(s.s.Values, userSessionKey)
	return s.Save(w, r)
}

// Flashes retrieves the []Flash stored in the session under each named stream,
// or under DefaultStream when no streams are named.
//
// Flashes are displayed once: retrieving them removes them from the session.
func (s Session) Flashes(w http.ResponseWriter, r *http.Request, streams ...string) []Flash {
	if len(streams) == 0 {
		streams = []string{DefaultStream}
	}

	fs := make([]Flash, 0)
	for _, stream := range streams {
		for _, raw := range s.s.Flashes(stream) {
			f, ok := raw.(Flash)
			if !ok {
				continue
			}

			f.Stream = stream
			fs = append(fs, f)
		}
	}

	if len(fs) > 0 {
		// NOTE: flashes are removed when accessed,
		// but the session needs saving for the removal to stick.
		// The collected flashes are good either way.
		_ = s.Save(w, r)
	}

	return fs
}

// Get retrieves a value from the session according to the key passed in.
func (s Session) Get(key string) any {
	return s.s.Values[key]
}

// RegisterUser stores the user's ID in the session.
func (s Session) RegisterUser(w http.ResponseWriter, r *http.Request, ID uint) error {
	s.s.Values[userSessionKey] = ID
	return s.Save(w, r)
}

// ResetExpiry resets the expiration of the session by saving it.
func (s Session) ResetExpiry(w http.ResponseWriter, r *http.Request) error {
	return s.Save(w, r)
}

// Save wraps gorilla.Session.Save, saving the session in the request.
func (s Session) Save(w http.ResponseWriter, r *http.Request) error { return s.s.Save(r, w) }

// Set stores a value according to the key passed in on the session.
func (s Session) Set(w http.ResponseWriter, r *http.Request, key string, val any) error {
	s.s.Values[key] = val
	return s.Save(w, r)
}

// SetFlash stores the passed in Flash in the session,
// under the Flash's stream or DefaultStream when unset.
func (s Session) SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error {
	stream := flash.Stream
	if stream == "" {
		stream = DefaultStream
	}

	flash.Stream = ""
	s.s.AddFlash(flash, stream)
	return s.Save(w, r)
}

// UserID gets the user ID out of the session.
// A user ID should be present in a session if the user is successfully authenticated.
// If no user ID can be found, ErrNoUser is returned.
//
// If the value returned from the session is not a uint, ErrNotValid is returned
// and represents a programming error.
func (s Session) UserID() (uint, error) {
	intfVal, ok := s.s.Values[userSessionKey]
	if !ok {
		return 0, ErrNoUser
	}

	val, ok := intfVal.(uint)
	if !ok {
		return 0, ErrNotValid
	}

	return val, nil
}
