/*
start-here provides a toy example use of approute's view stack,
focusing on the basics of:

(1) constructing a default Pilot;
(2) declaring a view.View and registering it with HandleView;
(3) how the same page answers both HTML and JSON clients.
*/
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/approute/approute/http/view"
	"github.com/approute/approute/pilot"
)

func main() {
	p, err := pilot.New(
		pilot.WithEnv("DEVELOPMENT"),
		pilot.WithServer(&http.Server{Addr: ":8080"}),
	)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	p.HandleView("/", "index", view.View{
		Template: "tmpl/index.tmpl",
		Populate: func(_ *http.Request) (view.Values, error) {
			return view.Values{
				"message": "Hello, World!",
				"list":    []string{"eggs", "milk", "bread"},
			}, nil
		},
	})

	if err := p.Fly(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
