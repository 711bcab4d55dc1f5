package usecase

import (
	"encoding/json"
	"io"

	"github.com/Abidimam7/leadgen/internal/leadparse"
)

type ChatInput struct {
	UserInput  string          `json:"user_input"`
	Context    json.RawMessage `json:"context"`
	ActiveLead json.RawMessage `json:"active_lead"`
}

type ChatOutput struct {
	Leads   *leadparse.Result `json:"leads,omitempty"`
	Message *string           `json:"message,omitempty"`
	Context json.RawMessage   `json:"context"`
}

type UploadLeadsInput struct {
	Filename string
	File     io.Reader
}

type UploadLeadsOutput struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type GenerateEmailsInput struct {
	SupplierID string `json:"supplier_id"`
	Preview    bool   `json:"preview"`
}

type EmailDraft struct {
	Lead    string `json:"lead"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type GenerateEmailsOutput struct {
	Message string       `json:"message"`
	Emails  []EmailDraft `json:"emails"`
}
