package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// InputError reports a missing or malformed request field.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// Upstream services named in UpstreamError.
const (
	ServiceCompletion = "completion"
	ServiceMail       = "mail"
)

// UpstreamError wraps a failure of the completion service or the mail
// server. Message is safe to show to callers; Err is not.
type UpstreamError struct {
	Service string
	Message string
	Err     error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the errors keyed by field name.
func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, e := range v {
		out[e.Field] = e.Message
	}
	return out
}

// RowValidationError stops an upload at the first invalid row. Row is zero-based.
type RowValidationError struct {
	Row     int
	Details map[string]string
}

func (e *RowValidationError) Error() string {
	return fmt.Sprintf("Validation error on row %d", e.Row)
}

type MissingColumnsError struct {
	Missing []string
	Found   []string
}

func (e *MissingColumnsError) Error() string {
	return "Missing required column(s): " + strings.Join(e.Missing, ", ")
}

var ErrNoSupplier = &InputError{Message: "No supplier available in the database"}

func IsInputError(err error) bool {
	var target *InputError
	return errors.As(err, &target)
}

func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

func IsUpstreamError(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

// toValidationErrors flattens a field->message map into a stable order.
func toValidationErrors(fields map[string]string) ValidationErrors {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(ValidationErrors, 0, len(keys))
	for _, k := range keys {
		out = append(out, ValidationError{Field: k, Message: fields[k]})
	}
	return out
}
