package view

import (
	"net/http"

	"github.com/approute/approute/http/session"
)

// A Result is the outcome of handling a submission.
//
// How a Result reaches the client depends on what they asked for.
// A JSON client receives the Payload, or the Msg when there is no Payload,
// with Code as the response status.
// An HTML client receives a redirect carrying Msg
// as a session.Flash on the Stream.
type Result struct {
	// Msg is flashed to HTML clients,
	// or returned to JSON clients when no Payload is set.
	Msg string

	// Code is the status code for JSON responses
	// and decides the flash class when Class is unset.
	//
	// The zero value is http.StatusOK.
	Code int

	// Class styles the flash, one of the session.Flash* classes.
	//
	// When unset, Code picks the class, per session.ClassForCode.
	Class string

	// Stream is the flash stream the notification lands on.
	//
	// The zero value is session.DefaultStream.
	Stream string

	// Payload carries structured data for JSON clients,
	// taking priority over Msg.
	Payload any
}

// A ResultFn is a functional option mutating a *Result under construction.
type ResultFn func(*Result)

// Code sets the Result's status code.
func Code(c int) ResultFn {
	return func(res *Result) { res.Code = c }
}

// Class sets the class styling the Result's flash.
func Class(c string) ResultFn {
	return func(res *Result) { res.Class = c }
}

// Payload sets the structured data returned to JSON clients.
func Payload(p any) ResultFn {
	return func(res *Result) { res.Payload = p }
}

// Stream sets the flash stream the Result's notification lands on.
func Stream(s string) ResultFn {
	return func(res *Result) { res.Stream = s }
}

// Respond constructs a *Result around msg, applying each ResultFn to it.
func Respond(msg string, opts ...ResultFn) *Result {
	res := &Result{Msg: msg, Code: http.StatusOK}
	for _, opt := range opts {
		opt(res)
	}

	return res
}

// Manager returns a Result constructor whose notifications
// always land on the named flash stream.
//
// Manager suits applications rendering a dedicated stream of notifications
// somewhere other than the default notification area.
func Manager(stream string) func(msg string, opts ...ResultFn) *Result {
	return func(msg string, opts ...ResultFn) *Result {
		return Respond(msg, append([]ResultFn{Stream(stream)}, opts...)...)
	}
}

// Notify constructs a *Result whose notification lands on session.DefaultStream.
var Notify = Manager(session.DefaultStream)

// flash converts the Result into the session.Flash an HTML client sees.
func (res *Result) flash() session.Flash {
	class := res.Class
	if class == "" {
		class = session.ClassForCode(res.Code)
	}

	stream := res.Stream
	if stream == "" {
		stream = session.DefaultStream
	}

	return session.Flash{Class: class, Msg: res.Msg, Stream: stream}
}
