package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
)

const draftText = "Subject: Partnering with you\nBody: Dear Sir/Madam,\nLet us talk."

type emailFixture struct {
	repos      repos
	supplier   *entity.Supplier
	leads      []*entity.Lead
	completion *MockCompletionClient
	sender     *MockEmailSender
	events     *MockEventPublisher
	uc         *GenerateEmailsUseCase
}

func newEmailFixture(t *testing.T, emails ...string) *emailFixture {
	t.Helper()
	r := newRepos(t)
	s := seedSupplier(t, r, "Acme Supplies")
	f := &emailFixture{
		repos:      r,
		supplier:   s,
		leads:      seedLeads(t, r, s.ID, emails...),
		completion: new(MockCompletionClient),
		sender:     new(MockEmailSender),
		events:     new(MockEventPublisher),
	}
	f.uc = NewGenerateEmailsUseCase(r.suppliers, r.leads, r.campaigns, f.completion, f.sender, f.events, "sales@acme.test")
	f.uc.Now = func() time.Time { return time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestGenerateEmailsPreviewSendsNothing(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test", "c@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)

	out, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID, Preview: true})
	require.NoError(t, err)

	assert.Equal(t, "Emails generated successfully!", out.Message)
	require.Len(t, out.Emails, 3)
	assert.Equal(t, EmailDraft{
		Lead:    "Company a@lead.test",
		Email:   "a@lead.test",
		Subject: "Partnering with you",
		Body:    "Dear Sir/Madam,\nLet us talk.",
	}, out.Emails[0])
	assert.Equal(t, "c@lead.test", out.Emails[2].Email)

	f.sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.events.AssertNotCalled(t, "PublishCampaignEvent", mock.Anything, mock.Anything)
	campaigns, _ := f.repos.campaigns.List(context.Background())
	assert.Empty(t, campaigns)
}

func TestGenerateEmailsSendsAndRecordsCampaigns(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	f.sender.On("Send", "Partnering with you", mock.Anything, "sales@acme.test", mock.Anything).Return(nil)
	f.events.On("PublishCampaignEvent", mock.Anything, mock.MatchedBy(func(ev queue.CampaignEvent) bool {
		return ev.SupplierID == f.supplier.ID && ev.Status == entity.CampaignStatusSent
	})).Return(nil)

	out, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID})
	require.NoError(t, err)
	assert.Equal(t, "Emails sent successfully!", out.Message)
	assert.Len(t, out.Emails, 2)

	f.sender.AssertNumberOfCalls(t, "Send", 2)
	f.events.AssertNumberOfCalls(t, "PublishCampaignEvent", 2)

	campaigns, err := f.repos.campaigns.List(context.Background())
	require.NoError(t, err)
	require.Len(t, campaigns, 2)
	for _, c := range campaigns {
		assert.Equal(t, entity.CampaignStatusSent, c.Status)
		require.NotNil(t, c.SentAt)
		assert.True(t, c.SentAt.Equal(f.uc.Now()))
	}
}

func TestGenerateEmailsSendFailureAbortsBatch(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test", "c@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "a@lead.test").Return(nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "b@lead.test").Return(errors.New("mailbox unavailable"))
	f.events.On("PublishCampaignEvent", mock.Anything, mock.Anything).Return(nil)

	out, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID})
	require.Error(t, err)
	assert.Nil(t, out)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Failed to send email", upstream.Message)

	f.completion.AssertNumberOfCalls(t, "Complete", 2)
	f.sender.AssertNumberOfCalls(t, "Send", 2)
	f.events.AssertNumberOfCalls(t, "PublishCampaignEvent", 1)

	// the first email went out before the failure
	campaigns, _ := f.repos.campaigns.List(context.Background())
	require.Len(t, campaigns, 1)
	assert.Equal(t, f.leads[0].ID, campaigns[0].LeadID)
}

func TestGenerateEmailsCountsEachDispatch(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test", "c@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "a@lead.test").Return(nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "b@lead.test").Return(nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, "c@lead.test").Return(errors.New("mailbox unavailable"))
	f.events.On("PublishCampaignEvent", mock.Anything, mock.Anything).Return(nil)
	metrics := new(MockDomainMetrics)
	metrics.On("EmailsDispatched", "sent", 1).Return()
	metrics.On("EmailsDispatched", "failed", 1).Return()
	f.uc.Metrics = metrics

	_, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID})
	require.Error(t, err)

	metrics.AssertExpectations(t)
	metrics.AssertNumberOfCalls(t, "EmailsDispatched", 3)
	sent := 0
	for _, c := range metrics.Calls {
		if c.Arguments.String(0) == "sent" {
			sent++
		}
	}
	assert.Equal(t, 2, sent)
}

func TestGenerateEmailsCountsPreviews(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	metrics := new(MockDomainMetrics)
	metrics.On("EmailsDispatched", "previewed", 2).Return()
	f.uc.Metrics = metrics

	_, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID, Preview: true})
	require.NoError(t, err)

	metrics.AssertExpectations(t)
	metrics.AssertNumberOfCalls(t, "EmailsDispatched", 1)
}

func TestGenerateEmailsCompletionFailureAbortsBatch(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test", "b@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("quota exceeded"))

	_, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID, Preview: true})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, "Failed to generate AI email", upstream.Message)
	f.completion.AssertNumberOfCalls(t, "Complete", 1)
}

func TestGenerateEmailsPublishFailureIsNotFatal(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test")
	f.completion.On("Complete", mock.Anything, mock.Anything).Return(draftText, nil)
	f.sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.events.On("PublishCampaignEvent", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	out, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID})
	require.NoError(t, err)
	assert.Len(t, out.Emails, 1)
}

func TestGenerateEmailsLookupErrors(t *testing.T) {
	f := newEmailFixture(t)

	_, err := f.uc.Execute(context.Background(), GenerateEmailsInput{})
	var input *InputError
	require.ErrorAs(t, err, &input)
	assert.Equal(t, "Supplier ID is required", input.Message)

	_, err = f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: "missing"})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Supplier not found", nf.Message)

	_, err = f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID})
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "No leads found for this supplier", nf.Message)

	f.completion.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
}

func TestGenerateEmailsPromptMentionsBothParties(t *testing.T) {
	f := newEmailFixture(t, "a@lead.test")
	f.completion.On("Complete", mock.Anything, mock.MatchedBy(func(p string) bool {
		return containsAll(p, "Acme Supplies", "Company a@lead.test", "industrial pumps", "Subject:", "Body:")
	})).Return(draftText, nil)

	_, err := f.uc.Execute(context.Background(), GenerateEmailsInput{SupplierID: f.supplier.ID, Preview: true})
	require.NoError(t, err)
	f.completion.AssertExpectations(t)
}

func TestSplitEmail(t *testing.T) {
	tests := []struct {
		name, text, subject, body string
	}{
		{"both", "Subject: Hi there\nBody: Hello\nBye", "Hi there", "Hello\nBye"},
		{"markdown", "**Subject:** Deal\n\n**Body:**\nDear team", "** Deal", "**\nDear team"},
		{"no subject", "Body: only body", "Business Collaboration with Acme", "only body"},
		{"no body", "Subject: Hi\nplain text", "Hi", "Subject: Hi\nplain text"},
		{"neither", "just some text", "Business Collaboration with Acme", "just some text"},
		{"subject without newline", "Subject: Hi", "Business Collaboration with Acme", "Subject: Hi"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject, body := splitEmail(tt.text, "Acme")
			assert.Equal(t, tt.subject, subject)
			assert.Equal(t, tt.body, body)
		})
	}
}

func containsAll(s string, parts ...string) bool {
	for _, p := range parts {
		if !strings.Contains(s, p) {
			return false
		}
	}
	return true
}
