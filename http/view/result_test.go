package view_test

import (
	"net/http"
	"testing"

	"github.com/approute/approute/http/session"
	"github.com/approute/approute/http/view"
	"github.com/stretchr/testify/require"
)

func TestRespond(t *testing.T) {
	tcs := []struct {
		name     string
		actual   *view.Result
		expected view.Result
	}{
		{
			"Zero-Value",
			view.Respond(""),
			view.Result{Code: http.StatusOK},
		},
		{
			"With-Msg",
			view.Respond("saved!"),
			view.Result{Msg: "saved!", Code: http.StatusOK},
		},
		{
			"With-Opts",
			view.Respond("made!", view.Code(http.StatusCreated), view.Payload(map[string]int{"id": 1})),
			view.Result{Msg: "made!", Code: http.StatusCreated, Payload: map[string]int{"id": 1}},
		},
		{
			"With-Class",
			view.Respond("hm", view.Class(session.FlashWarning)),
			view.Result{Msg: "hm", Code: http.StatusOK, Class: session.FlashWarning},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, *tc.actual)
		})
	}
}

func TestManager(t *testing.T) {
	// Arrange
	sidebar := view.Manager("sidebar")

	// Act
	res := sidebar("psst")

	// Assert
	require.Equal(t, "sidebar", res.Stream)
	require.Equal(t, "psst", res.Msg)

	// Act
	res = view.Notify("hi")

	// Assert
	require.Equal(t, session.DefaultStream, res.Stream)
}
