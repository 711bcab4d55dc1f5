package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusPending = "Pending"
	CampaignStatusSent    = "Sent"
	CampaignStatusFailed  = "Failed"
)

type EmailCampaign struct {
	ID      string     `json:"id"`
	LeadID  string     `json:"lead" validate:"required"`
	Subject string     `json:"subject" validate:"max=255"`
	Body    string     `json:"body"`
	Status  string     `json:"status" validate:"max=100"`
	SentAt  *time.Time `json:"sent_at"`
}

type EmailCampaignRepositoryInterface interface {
	Create(ctx context.Context, c *EmailCampaign) error
	Update(ctx context.Context, c *EmailCampaign) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*EmailCampaign, error)
	List(ctx context.Context) ([]*EmailCampaign, error)
}

func NewEmailCampaign(c EmailCampaign) *EmailCampaign {
	c.ID = uuid.New().String()
	c.ApplyDefaults()
	return &c
}

func (c *EmailCampaign) ApplyDefaults() {
	setDefault(&c.Subject, "Default subject")
	setDefault(&c.Body, "Default body content")
	setDefault(&c.Status, CampaignStatusPending)
}

func (c *EmailCampaign) Validate() error {
	return validateStruct(c)
}

// MarkSent flags the campaign as delivered at t.
func (c *EmailCampaign) MarkSent(t time.Time) {
	c.Status = CampaignStatusSent
	c.SentAt = &t
}
