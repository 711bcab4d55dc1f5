package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
)

func TestMarkLeadContacted(t *testing.T) {
	r := newRepos(t)
	s := seedSupplier(t, r, "Acme")
	leads := seedLeads(t, r, s.ID, "a@lead.test")
	uc := NewMarkLeadContactedUseCase(r.leads)

	require.NoError(t, uc.HandleCampaignEvent(context.Background(), queue.CampaignEvent{LeadID: leads[0].ID, Status: entity.CampaignStatusSent}))

	got, err := r.leads.FindByID(context.Background(), leads[0].ID)
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusContacted, got.Status)
}

func TestMarkLeadContactedErrors(t *testing.T) {
	r := newRepos(t)
	uc := NewMarkLeadContactedUseCase(r.leads)

	assert.True(t, IsInputError(uc.HandleCampaignEvent(context.Background(), queue.CampaignEvent{Status: entity.CampaignStatusSent})))

	err := uc.HandleCampaignEvent(context.Background(), queue.CampaignEvent{LeadID: "gone", Status: entity.CampaignStatusSent})
	assert.ErrorIs(t, err, entity.ErrLeadNotFound)

	assert.NoError(t, uc.HandleCampaignEvent(context.Background(), queue.CampaignEvent{LeadID: "gone", Status: entity.CampaignStatusFailed}))
}

func TestSentEmailMarksLeadContactedInline(t *testing.T) {
	r := newRepos(t)
	s := seedSupplier(t, r, "Acme")
	leads := seedLeads(t, r, s.ID, "a@lead.test", "b@lead.test")

	completion := new(MockCompletionClient)
	completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	sender := new(MockEmailSender)
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	inline := &InlineEventPublisher{Handler: NewMarkLeadContactedUseCase(r.leads)}
	uc := NewGenerateEmailsUseCase(r.suppliers, r.leads, r.campaigns, completion, sender, inline, "sales@acme.test")

	_, err := uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: s.ID})
	require.NoError(t, err)

	for _, l := range leads {
		got, err := r.leads.FindByID(context.Background(), l.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.LeadStatusContacted, got.Status)
	}
}
