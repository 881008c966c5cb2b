/*
form-demo shows the submission half of a view.View:

(1) HandlePost receiving form values;
(2) redirecting to a named route on success;
(3) the flash message the next page renders.
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/approute/approute"
	"github.com/approute/approute/http/view"
	"github.com/approute/approute/pilot"
)

func main() {
	p, err := pilot.New(
		pilot.WithEnv("DEVELOPMENT"),
		pilot.WithServer(&http.Server{Addr: ":8081"}),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	p.HandleView("/", "signup", view.View{
		Template:   "tmpl/signup.tmpl",
		RedirectTo: "thanks",
		HandlePost: func(_ *http.Request, values view.Values) (*view.Result, error) {
			email := values.String("email")
			if email == "" {
				return nil, fmt.Errorf("%w: email is required", approute.ErrNotValid)
			}

			return view.Respond(email + " signed up"), nil
		},
	})

	p.HandleView("/thanks", "thanks", view.View{Template: "tmpl/thanks.tmpl"})

	if err := p.Fly(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
