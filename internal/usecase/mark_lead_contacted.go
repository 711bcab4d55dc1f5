package usecase

import (
	"context"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
	"github.com/Abidimam7/leadgen/internal/logger"
	"go.uber.org/zap"
)

// MarkLeadContactedUseCase consumes campaign events and moves the lead to Contacted.
type MarkLeadContactedUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewMarkLeadContactedUseCase(leads entity.LeadRepositoryInterface) *MarkLeadContactedUseCase {
	return &MarkLeadContactedUseCase{Leads: leads}
}

func (uc *MarkLeadContactedUseCase) HandleCampaignEvent(ctx context.Context, ev queue.CampaignEvent) error {
	if ev.LeadID == "" {
		return &InputError{Message: "campaign event without lead id"}
	}
	if ev.Status != entity.CampaignStatusSent {
		logger.FromContext(ctx).Debug("ignoring campaign event", zap.String("status", ev.Status))
		return nil
	}
	if err := uc.Leads.UpdateStatus(ctx, ev.LeadID, entity.LeadStatusContacted); err != nil {
		return fmt.Errorf("mark lead %s contacted: %w", ev.LeadID, err)
	}
	return nil
}

// InlineEventPublisher delivers campaign events to a handler in-process, for
// deployments without a broker.
type InlineEventPublisher struct {
	Handler queue.CampaignEventHandler
}

func (p *InlineEventPublisher) PublishCampaignEvent(ctx context.Context, ev queue.CampaignEvent) error {
	return p.Handler.HandleCampaignEvent(ctx, ev)
}
