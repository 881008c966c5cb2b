/*
Package middleware defines what a middleware is in approute and a set of basic middlewares.

The available middlewares are:
- CORS
- CurrentUser
- ForceHTTPS
- Idempotent
- InjectIPAddress
- InjectResponder
- InjectSession
- LogRequest
- RateLimit
- RequestID
- RequireAuthed
- RequireUnauthed

Due to the amount of configuration required, middleware does not provide a default middleware chain.
Instead, the following can be copy-pasted:

	vs := middleware.NewVisitors()
	adpts := []middleware.Adapter{
		middleware.RateLimit(vs),
		middleware.ForceHTTPS(env),
		middleware.RequestID(approute.RequestIDKey),
		middleware.InjectIPAddress(),
		middleware.LogRequest(log),
		middleware.InjectSession(sessionStore, approute.SessionKey),
		middleware.CurrentUser(responder, userStore, approute.SessionKey, approute.CurrentUserKey),
	}
*/
package middleware
