/*
Package pilot initializes and manages an approute app with sane defaults.

# Pilot

The main entrypoint to package pilot is the [Pilot] type.
A [Pilot] ought to be constructed with [New].

[*Pilot.Fly] begins an approute app's web server.
By default, [*Pilot.Fly] listens on [DefaultHost][DefaultPort] (localhost:3000),
assuming either a reverse proxy proxies requests
or only a client application makes direct requests to the approute web server.

Upon calling [*Pilot.Fly], all routes configured up to that point are now active.
Stop that web server with [*Pilot.Land]
or send a signal [*Pilot.Fly] listens for.

Pages are registered with [*Pilot.HandleView].
A [view.View] describes a page declaratively;
the [view.Dispatcher] a [Pilot] carries turns each one into an [http.HandlerFunc]
answering GET, HEAD and POST in both HTML and JSON.

# Configuration

A developer configures an approute app through environment variables
and through the [Option] functions passed to [New].
Environment variables ought to be set in a file called ".env"
found at the same directory the application is executed from.

Here are the available environment variables.
  - APP_TITLE: a short title for the application; also names the session cookie
  - BASE_URL: the base URL the application runs on; default: http://localhost:3000
  - CONTACT_US_EMAIL: the email address end users can reach the team at
  - ENVIRONMENT: the environment the application is running in; cf. [approute.Environment]
  - LOG_LEVEL: the level at which to begin logging; default: INFO; cf. [logger.LogLevel]
  - PORT: the port the application should listen on; default: :3000
  - SENTRY_DSN: when set, logs at ERROR and FATAL levels also report to Sentry
  - SERVER_IDLE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for idling between requests when using keep-alives; default: 120s
  - SERVER_READ_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for reading HTTP requests; default: 5s
  - SERVER_WRITE_TIMEOUT: the timeout - as understood by [time.ParseDuration] - for writing HTTP responses; default: 5s
  - SESSION_AUTH_KEY: a hex-encoded key for authenticating cookies; cf. [encoding/hex]
  - SESSION_ENCRYPTION_KEY: a hex-encoded key for encrypting cookies; cf. [encoding/hex]
  - SESSION_REDIS_URI: when set, sessions are held in Redis at this address instead of in cookies
  - SESSION_REDIS_PASSWORD: the password for authenticating the Redis connection
*/
package pilot
