/*
Package approute is the root of the AppRoute web-view helper toolkit.

It holds the small set of types shared by every other package:
context keys, sentinel errors, the Environment enum,
and helpers for reading configuration out of environment variables.

The interesting parts live below:

  - http/view: declarative views dispatching GET renders and POST submissions
  - http/resp: the Responder writing HTML, JSON, and redirect responses
  - http/session: sessions and flashed messages
  - pilot: the app orchestrator tying the pieces together
*/
package approute
