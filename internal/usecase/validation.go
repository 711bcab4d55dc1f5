package usecase

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/Abidimam7/leadgen/internal/entity"
)

type validatable interface {
	Validate() error
}

// validateRecord converts entity field errors into ValidationErrors.
func validateRecord(v validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var fe entity.FieldErrors
	if errors.As(err, &fe) {
		return toValidationErrors(fe)
	}
	return err
}

func ValidateGenerateEmailsInput(input GenerateEmailsInput) error {
	if strings.TrimSpace(input.SupplierID) == "" {
		return &InputError{Message: "Supplier ID is required"}
	}
	return nil
}

func ValidateChatInput(input ChatInput) error {
	if strings.TrimSpace(input.UserInput) == "" && !hasValue(input.ActiveLead) {
		return &InputError{Message: "No input provided"}
	}
	return nil
}

// hasValue treats absent, null and empty JSON values as missing.
func hasValue(raw json.RawMessage) bool {
	switch string(bytes.TrimSpace(raw)) {
	case "", "null", "{}", "[]", `""`, "false", "0":
		return false
	}
	return true
}

// objectOrEmpty returns raw, or {} when raw carries nothing.
func objectOrEmpty(raw json.RawMessage) json.RawMessage {
	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return json.RawMessage("{}")
	}
	return raw
}
