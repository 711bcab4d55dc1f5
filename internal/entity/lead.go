package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Conventional lead statuses. Status is stored as free text and not restricted to these.
const (
	LeadStatusNew       = "New"
	LeadStatusContacted = "Contacted"
	LeadStatusClosed    = "Closed"
)

type Lead struct {
	ID            string    `json:"id"`
	SupplierID    string    `json:"supplier" validate:"required"`
	Name          string    `json:"name" validate:"max=255"`
	Industry      string    `json:"industry" validate:"max=255"`
	Location      string    `json:"location" validate:"max=255"`
	Status        string    `json:"status" validate:"max=100"`
	CompanyName   string    `json:"company_name" validate:"required,max=255"`
	Email         string    `json:"email" validate:"required,email"`
	Phone         string    `json:"phone" validate:"max=20"`
	Address       string    `json:"address"`
	DateGenerated time.Time `json:"date_generated"`
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, l *Lead) error
	Update(ctx context.Context, l *Lead) error
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context) ([]*Lead, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]*Lead, error)
}

// NewLead fills an id, the generation time and defaults on l.
func NewLead(l Lead) *Lead {
	l.ID = uuid.New().String()
	l.DateGenerated = time.Now().UTC()
	l.ApplyDefaults()
	return &l
}

func (l *Lead) ApplyDefaults() {
	setDefault(&l.Name, "Default Lead")
	setDefault(&l.Industry, "Default Industry")
	setDefault(&l.Location, "Default Location")
	setDefault(&l.Status, LeadStatusNew)
}

func (l *Lead) Validate() error {
	return validateStruct(l)
}

// DisplayName is the company name when known, otherwise the lead name.
func (l *Lead) DisplayName() string {
	if l.CompanyName != "" {
		return l.CompanyName
	}
	return l.Name
}
