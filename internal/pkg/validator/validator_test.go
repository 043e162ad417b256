package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name    string        `validate:"required"`
	Limit   int           `validate:"gt=0,lte=50"`
	Timeout time.Duration `validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "x", Limit: 10, Timeout: time.Second}))

	got := Validate(sample{Limit: 51})
	assert.Equal(t, map[string]string{"Name": "required", "Limit": "lte", "Timeout": "gt"}, got)
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(sample{Name: "x", Limit: 1, Timeout: time.Second}))

	err := Struct(sample{Name: "x", Limit: 0, Timeout: time.Second})
	assert.EqualError(t, err, "invalid fields: Limit: gt")
}
