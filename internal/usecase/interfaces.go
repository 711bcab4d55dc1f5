package usecase

import (
	"context"

	"github.com/Abidimam7/leadgen/internal/infra/queue"
	"github.com/Abidimam7/leadgen/internal/leadparse"
)

type CompletionClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type EmailSender interface {
	Send(subject, body, from, to string) error
}

type LeadParser interface {
	Parse(raw string) leadparse.Result
}

type CampaignEventPublisher interface {
	PublishCampaignEvent(ctx context.Context, ev queue.CampaignEvent) error
}

// DomainMetrics receives business counters as batches progress.
type DomainMetrics interface {
	LeadsIngested(n int)
	EmailsDispatched(status string, n int)
}

type nopMetrics struct{}

func (nopMetrics) LeadsIngested(int) {}
func (nopMetrics) EmailsDispatched(string, int) {}
