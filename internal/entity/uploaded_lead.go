package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	SourceManualUpload      = "Manual Upload"
	SourceSpreadsheetUpload = "Spreadsheet Upload"
)

// UploadedLead records where an uploaded contact came from.
type UploadedLead struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name" validate:"required,max=255"`
	ContactName string    `json:"contact_name" validate:"max=255"`
	Email       string    `json:"email" validate:"required,email"`
	Phone       string    `json:"phone" validate:"max=20"`
	Address     string    `json:"address"`
	Source      string    `json:"source" validate:"max=50"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type UploadedLeadRepositoryInterface interface {
	Create(ctx context.Context, u *UploadedLead) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*UploadedLead, error)
}

func NewUploadedLead(u UploadedLead) *UploadedLead {
	u.ID = uuid.New().String()
	u.UploadedAt = time.Now().UTC()
	setDefault(&u.Source, SourceManualUpload)
	return &u
}

func (u *UploadedLead) Validate() error {
	return validateStruct(u)
}
