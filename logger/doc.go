/*
Package logger provides leveled logging to the rest of approute.

The Logger interface is small on purpose: five levels plus a way to read
the configured level. AppLogger is the default implementation,
printing colorized lines to stdout with the file and line of the call site.
When the SENTRY_DSN environment variable is set,
NewLogger upgrades the AppLogger into a SentryLogger,
which additionally ships warnings and errors to Sentry.

A LogContext carries structured values - request, user, error, free-form data -
alongside the log message.
*/
package logger
