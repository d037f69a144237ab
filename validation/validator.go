package validation

import (
	"strings"

	"github.com/kbukum/streamkit/errors"
)

// FieldError describes a validation failure for one field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validator collects field errors for checks that struct tags cannot
// express.
type Validator struct {
	errors []FieldError
}

// New creates an empty Validator.
func New() *Validator {
	return &Validator{}
}

// AddError records a failure for field.
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, FieldError{Field: field, Message: message})
}

// Check records a failure for field unless ok holds.
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// HasErrors reports whether any failure was recorded.
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the recorded failures.
func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns an INVALID_ARGUMENT error covering every recorded failure,
// or nil when all checks passed.
func (v *Validator) Err() error {
	if !v.HasErrors() {
		return nil
	}
	messages := make([]string, 0, len(v.errors))
	for _, fe := range v.errors {
		messages = append(messages, fe.Field+": "+fe.Message)
	}
	return errors.New(errors.ErrCodeInvalidArgument, strings.Join(messages, "; ")).
		WithDetail("fields", v.errors)
}
