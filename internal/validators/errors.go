// Package validators turns raw, loosely-typed input into normalized entity
// records or a structured list of per-field errors. Per-field checks are
// accumulated rather than fail-fast; transforms run only on fields that
// passed their own check; record-level checks run only when every field
// check passed. No partial record is ever returned on failure.
package validators

import (
	"strings"

	"github.com/gookit/validate"
)

// FieldError is a single field-level violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors collects every violation found in one validation pass.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return strings.Join(msgs, "; ")
}

// collect flattens gookit's field->rule->message map, one entry per field so
// the caller sees each offending field exactly once.
func collect(v *validate.Validation) FieldErrors {
	var errs FieldErrors
	for field, ruleMsgs := range v.Errors {
		for _, msg := range ruleMsgs {
			errs = append(errs, FieldError{Field: field, Message: msg})
			break
		}
	}
	return errs
}

func newValidation(ptr interface{}) *validate.Validation {
	v := validate.Struct(ptr)
	v.StopOnError = false
	return v
}
