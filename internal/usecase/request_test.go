package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRequestCarriesPayload(t *testing.T) {
	t.Parallel()

	req := Valid(42)

	assert.True(t, req.Ok())
	assert.Equal(t, 42, req.Payload())
	assert.Empty(t, req.Violations())
}

func TestInvalidRequestKeepsViolationOrder(t *testing.T) {
	t.Parallel()

	var v Violations
	v.Add("b", "second field first")
	v.Add("a", "first field second")

	req := Invalid[int](v)

	assert.False(t, req.Ok())
	assert.Equal(t, Violations{
		{Parameter: "b", Message: "second field first"},
		{Parameter: "a", Message: "first field second"},
	}, req.Violations())
}

func TestFieldErrorString(t *testing.T) {
	t.Parallel()

	e := FieldError{Parameter: "email", Message: "Invalid email"}
	assert.Equal(t, "email: Invalid email", e.String())
}
