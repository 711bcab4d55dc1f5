package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/database"
	"github.com/Abidimam7/leadgen/internal/infra/database/dbtest"
	"github.com/Abidimam7/leadgen/internal/infra/queue"
)

type MockCompletionClient struct {
	mock.Mock
}

func (m *MockCompletionClient) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) Send(subject, body, from, to string) error {
	args := m.Called(subject, body, from, to)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishCampaignEvent(ctx context.Context, ev queue.CampaignEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

type MockDomainMetrics struct {
	mock.Mock
}

func (m *MockDomainMetrics) LeadsIngested(n int) {
	m.Called(n)
}

func (m *MockDomainMetrics) EmailsDispatched(status string, n int) {
	m.Called(status, n)
}

type repos struct {
	suppliers *database.SupplierRepository
	leads     *database.LeadRepository
	uploaded  *database.UploadedLeadRepository
	campaigns *database.EmailCampaignRepository
}

func newRepos(t *testing.T) repos {
	t.Helper()
	conn := dbtest.New(t)
	return repos{
		suppliers: database.NewSupplierRepository(conn),
		leads:     database.NewLeadRepository(conn),
		uploaded:  database.NewUploadedLeadRepository(conn),
		campaigns: database.NewEmailCampaignRepository(conn),
	}
}

func seedSupplier(t *testing.T, r repos, name string) *entity.Supplier {
	t.Helper()
	s := entity.NewSupplier(entity.Supplier{
		CompanyName:        name,
		ContactName:        "Jane Roe",
		CompanyDescription: "industrial pumps",
	})
	require.NoError(t, r.suppliers.Create(context.Background(), s))
	return s
}

// seedLeads creates leads one second apart so store order is deterministic.
func seedLeads(t *testing.T, r repos, supplierID string, emails ...string) []*entity.Lead {
	t.Helper()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	out := make([]*entity.Lead, 0, len(emails))
	for i, email := range emails {
		l := entity.NewLead(entity.Lead{SupplierID: supplierID, CompanyName: "Company " + email, Email: email})
		l.DateGenerated = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, r.leads.Create(context.Background(), l))
		out = append(out, l)
	}
	return out
}
