package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name   string `json:"name" validate:"notblank"`
	Status string `json:"status" validate:"required,oneof=active threatened erased"`
	Month  int    `json:"month" validate:"min=1,max=12"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&sample{Name: "El Rio", Status: "active", Month: 6}))

	err := v.Validate(&sample{Name: "   ", Status: "closed", Month: 13})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "name failed notblank")
		assert.Contains(t, err.Error(), "status failed oneof=active threatened erased")
		assert.Contains(t, err.Error(), "month failed max=12")
	}
}
