package usecase

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
	"github.com/Abidimam7/leadgen/internal/logger"
	"go.uber.org/zap"
)

var (
	subjectLine = regexp.MustCompile(`Subject:\s*(.*?)\n`)
	bodySection = regexp.MustCompile(`(?s)Body:\s*(.*)`)
)

type GenerateEmailsUseCase struct {
	Suppliers  entity.SupplierRepositoryInterface
	Leads      entity.LeadRepositoryInterface
	Campaigns  entity.EmailCampaignRepositoryInterface
	Completion CompletionClient
	Sender     EmailSender
	Events     CampaignEventPublisher
	From       string
	Now        func() time.Time
	Metrics    DomainMetrics
}

func NewGenerateEmailsUseCase(
	suppliers entity.SupplierRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	campaigns entity.EmailCampaignRepositoryInterface,
	completion CompletionClient,
	sender EmailSender,
	events CampaignEventPublisher,
	from string,
) *GenerateEmailsUseCase {
	return &GenerateEmailsUseCase{
		Suppliers:  suppliers,
		Leads:      leads,
		Campaigns:  campaigns,
		Completion: completion,
		Sender:     sender,
		Events:     events,
		From:       from,
		Now:        func() time.Time { return time.Now().UTC() },
		Metrics:    nopMetrics{},
	}
}

// Execute drafts one email per lead of the supplier and, unless previewing,
// sends each as soon as it is drafted. The first failure aborts the batch and
// no drafts are returned; emails already sent stay sent.
func (uc *GenerateEmailsUseCase) Execute(ctx context.Context, input GenerateEmailsInput) (*GenerateEmailsOutput, error) {
	if err := ValidateGenerateEmailsInput(input); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).With(zap.String("supplier_id", input.SupplierID), zap.Bool("preview", input.Preview))

	supplier, err := uc.Suppliers.FindByID(ctx, input.SupplierID)
	if errors.Is(err, entity.ErrSupplierNotFound) {
		return nil, &NotFoundError{Message: "Supplier not found"}
	}
	if err != nil {
		return nil, fmt.Errorf("load supplier: %w", err)
	}

	leads, err := uc.Leads.ListBySupplier(ctx, supplier.ID)
	if err != nil {
		return nil, fmt.Errorf("load leads: %w", err)
	}
	if len(leads) == 0 {
		return nil, &NotFoundError{Message: "No leads found for this supplier"}
	}

	emails := make([]EmailDraft, 0, len(leads))
	for _, lead := range leads {
		draft, err := uc.draft(ctx, supplier, lead)
		if err != nil {
			log.Error("email generation failed", zap.String("lead_id", lead.ID), zap.Error(err))
			return nil, err
		}

		if !input.Preview {
			if err := uc.Sender.Send(draft.Subject, draft.Body, uc.From, lead.Email); err != nil {
				log.Error("email dispatch failed", zap.String("lead_id", lead.ID), zap.String("to", lead.Email), zap.Error(err))
				uc.metrics().EmailsDispatched("failed", 1)
				return nil, &UpstreamError{Service: ServiceMail, Message: "Failed to send email", Err: err}
			}
			uc.metrics().EmailsDispatched("sent", 1)
			uc.record(ctx, supplier, lead, draft)
		}

		emails = append(emails, draft)
	}

	msg := "Emails sent successfully!"
	if input.Preview {
		msg = "Emails generated successfully!"
		uc.metrics().EmailsDispatched("previewed", len(emails))
	}
	log.Info("email batch finished", zap.Int("count", len(emails)))
	return &GenerateEmailsOutput{Message: msg, Emails: emails}, nil
}

func (uc *GenerateEmailsUseCase) metrics() DomainMetrics {
	if uc.Metrics == nil {
		return nopMetrics{}
	}
	return uc.Metrics
}

func (uc *GenerateEmailsUseCase) draft(ctx context.Context, s *entity.Supplier, l *entity.Lead) (EmailDraft, error) {
	prompt, err := buildEmailPrompt(s, l)
	if err != nil {
		return EmailDraft{}, fmt.Errorf("build email prompt: %w", err)
	}

	text, err := uc.Completion.Complete(ctx, prompt)
	if err != nil {
		return EmailDraft{}, &UpstreamError{Service: ServiceCompletion, Message: "Failed to generate AI email", Err: err}
	}

	subject, body := splitEmail(text, s.CompanyName)
	return EmailDraft{Lead: l.CompanyName, Email: l.Email, Subject: subject, Body: body}, nil
}

// record stores the sent email and announces it. The email is already out,
// so failures here are logged only.
func (uc *GenerateEmailsUseCase) record(ctx context.Context, s *entity.Supplier, l *entity.Lead, d EmailDraft) {
	log := logger.FromContext(ctx).With(zap.String("lead_id", l.ID))

	campaign := entity.NewEmailCampaign(entity.EmailCampaign{LeadID: l.ID, Subject: d.Subject, Body: d.Body})
	campaign.MarkSent(uc.Now())
	if uc.Campaigns != nil {
		if err := uc.Campaigns.Create(ctx, campaign); err != nil {
			log.Error("failed to record email campaign", zap.Error(err))
		}
	}

	if uc.Events == nil {
		return
	}
	ev := queue.CampaignEvent{
		CampaignID: campaign.ID,
		LeadID:     l.ID,
		SupplierID: s.ID,
		Email:      l.Email,
		Status:     campaign.Status,
		SentAt:     *campaign.SentAt,
	}
	if err := uc.Events.PublishCampaignEvent(ctx, ev); err != nil {
		log.Error("failed to publish campaign event", zap.Error(err))
	}
}

// splitEmail pulls the Subject line and Body section out of a completion.
// Each falls back independently: a missing subject becomes a generic one,
// a missing body becomes the whole text.
func splitEmail(text, supplierName string) (subject, body string) {
	subject = fmt.Sprintf("Business Collaboration with %s", supplierName)
	if m := subjectLine.FindStringSubmatch(text); m != nil {
		subject = m[1]
	}
	body = text
	if m := bodySection.FindStringSubmatch(text); m != nil {
		body = m[1]
	}
	return subject, body
}
