/*
Package resp provides a high-level API for responding to HTTP requests
with an easy way to configure the responses application-wide.

resp provides three main ways of responding to an HTTP request:
  - rendering HTML templates
  - rendering JSON data
  - redirecting

Which of the first two a client receives is decided by AcceptsJSON,
which inspects the request body's Content-Type and the Accept header.
*/
package resp
