package session

import (
	"encoding/gob"
	"net/http"
)

// Sessions gob-encode their values.
// Flash must be registered no matter how the backing store was built.
func init() { gob.Register(Flash{}) }

const (
	// Default Flash Class
	FlashDanger  = "danger"
	FlashInfo    = "info"
	FlashSuccess = "success"
	FlashWarning = "warning"

	// DefaultStream is the flash stream used when one is not named.
	DefaultStream = "notification"

	// Default Flash Msg
	BadInputMsg   = "Hmm... check your form, something isn't correct."
	DefaultErrMsg = "Uh oh! We've run into an issue."
	NoAccessMsg   = "Oops, sending you back somewhere safe."
)

var ContactUsErr = DefaultErrMsg + " Please contact us at %s if the issue persists."

type FlashSessionable interface {
	ClearFlashes(w http.ResponseWriter, r *http.Request)
	Flashes(w http.ResponseWriter, r *http.Request, streams ...string) []Flash
	SetFlash(w http.ResponseWriter, r *http.Request, flash Flash) error
}

// A Flash is a notification shown to a user on the next page they view.
//
// A Flash belongs to a Stream, distinguishing sets of notifications
// an application renders in different ways or places.
// The zero-value Stream is DefaultStream.
type Flash struct {
	Class  string `json:"class"`
	Msg    string `json:"msg"`
	Stream string `json:"-"`
}

// ClassForCode derives the Flash class appropriate to an HTTP status code:
// 5xx is a danger, 4xx a warning, everything else a success.
func ClassForCode(code int) string {
	switch {
	case code >= http.StatusInternalServerError:
		return FlashDanger
	case code >= http.StatusBadRequest:
		return FlashWarning
	default:
		return FlashSuccess
	}
}
