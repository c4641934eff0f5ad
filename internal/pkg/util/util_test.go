package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 50, ParseLimit("", 50))
	assert.Equal(t, 10, ParseLimit("10", 50))
	assert.Equal(t, 20, ParseLimit("abc", 20))
	assert.Equal(t, 20, ParseLimit("-3", 20))
	assert.Equal(t, MaxLimit, ParseLimit("100000", 20))
}

func TestValidateDTOKeepsValidatorError(t *testing.T) {
	type body struct {
		Name string `validate:"required"`
	}

	err := ValidateDTO(&body{})
	var ve validator.ValidationErrors
	assert.ErrorAs(t, err, &ve)
	assert.Contains(t, err.Error(), "Name")

	assert.NoError(t, ValidateDTO(&body{Name: "ok"}))
}
