// Package validate wraps a single validator instance shared by every
// request type.
package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the validate tags of s and returns the validator error as
// is, so callers can unwrap validator.ValidationErrors when they need the
// field list.
func Struct(s any) error {
	return v.Struct(s)
}
