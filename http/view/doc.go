/*
Package view dispatches HTTP requests to simple, declarative page definitions.

A View names the template rendering its data and the route to redirect to
after a submission, alongside two application-supplied callbacks:
Populate gathers the data a page renders and HandlePost processes a submission.
A Dispatcher turns a View into an http.HandlerFunc,
picking between HTML and JSON renditions of both callbacks
based on what the client asked for.

Successful submissions over HTML always redirect,
so refreshing the next page cannot resubmit the form.
A Result carries the notification shown after that redirect;
the same Result answers JSON clients directly.
*/
package view
