package req_test

import (
	"encoding/json"
	"testing"

	"github.com/approute/approute"
	"github.com/approute/approute/http/req"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	// Arrange
	errs := req.ValidationErrors{
		{Field: "name", Got: "", Rule: "required; string"},
		{Field: "count", Got: -1, Rule: "gte=0; int"},
	}

	// Act + Assert
	require.ErrorIs(t, errs, approute.ErrNotValid)
	require.Contains(t, errs.Error(), `field="name"`)
	require.Contains(t, errs.Error(), `field="count"`)

	b, err := json.Marshal(errs)
	require.Nil(t, err)
	require.JSONEq(
		t,
		`{"validationErrors":[{"field":"name","got":"","rule":"required; string"},{"field":"count","got":-1,"rule":"gte=0; int"}]}`,
		string(b),
	)
}
