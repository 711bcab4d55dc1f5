package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abidimam7/leadgen/internal/entity"
)

func jsonPatch[T any](body string) Patch[T] {
	return func(v *T) error { return json.Unmarshal([]byte(body), v) }
}

func TestSupplierUseCaseLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := NewSupplierUseCase(newRepos(t).suppliers)

	created, err := uc.Create(ctx, entity.Supplier{CompanyName: "Acme"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "http://default.com", created.CompanyWebsite)

	updated, err := uc.Update(ctx, created.ID, jsonPatch[entity.Supplier](`{"id":"hijack","contact_name":"Jane"}`))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "Jane", updated.ContactName)
	assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

	_, err = uc.Update(ctx, created.ID, jsonPatch[entity.Supplier](`{"contact_email":"nope"}`))
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{"contact_email": "Enter a valid email address."}, verrs.Fields())

	_, err = uc.Update(ctx, created.ID, jsonPatch[entity.Supplier](`{"years_in_business":"many"}`))
	assert.True(t, IsInputError(err))

	all, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	assert.True(t, IsNotFoundError(uc.Delete(ctx, created.ID)))
	_, err = uc.Get(ctx, created.ID)
	assert.True(t, IsNotFoundError(err))
}

func TestLeadUseCaseValidation(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	s := seedSupplier(t, r, "Acme")
	uc := NewLeadUseCase(r.leads)

	_, err := uc.Create(ctx, entity.Lead{SupplierID: s.ID, Email: "bad"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, map[string]string{
		"company_name": "This field is required.",
		"email":        "Enter a valid email address.",
	}, verrs.Fields())

	_, err = uc.Create(ctx, entity.Lead{SupplierID: "ghost", CompanyName: "X", Email: "x@x.test"})
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "supplier")

	lead, err := uc.Create(ctx, entity.Lead{SupplierID: s.ID, CompanyName: "X", Email: "x@x.test"})
	require.NoError(t, err)
	assert.Equal(t, "Default Lead", lead.Name)
	assert.Equal(t, entity.LeadStatusNew, lead.Status)

	updated, err := uc.Update(ctx, lead.ID, jsonPatch[entity.Lead](`{"status":"Closed","date_generated":"2000-01-01T00:00:00Z"}`))
	require.NoError(t, err)
	assert.Equal(t, entity.LeadStatusClosed, updated.Status)
	assert.True(t, lead.DateGenerated.Equal(updated.DateGenerated))

	_, err = uc.Get(ctx, "missing")
	assert.True(t, IsNotFoundError(err))
}

func TestEmailCampaignUseCase(t *testing.T) {
	ctx := context.Background()
	r := newRepos(t)
	s := seedSupplier(t, r, "Acme")
	leads := seedLeads(t, r, s.ID, "a@lead.test")
	uc := NewEmailCampaignUseCase(r.campaigns)

	_, err := uc.Create(ctx, entity.EmailCampaign{LeadID: "ghost"})
	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Fields(), "lead")

	c, err := uc.Create(ctx, entity.EmailCampaign{LeadID: leads[0].ID})
	require.NoError(t, err)
	assert.Equal(t, "Default subject", c.Subject)
	assert.Equal(t, entity.CampaignStatusPending, c.Status)
	assert.Nil(t, c.SentAt)

	c, err = uc.Update(ctx, c.ID, jsonPatch[entity.EmailCampaign](`{"subject":"Hello"}`))
	require.NoError(t, err)
	assert.Equal(t, "Hello", c.Subject)

	got, err := uc.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hello", got.Subject)

	require.NoError(t, uc.Delete(ctx, c.ID))
	assert.True(t, IsNotFoundError(uc.Delete(ctx, c.ID)))
}

func TestUploadedLeadUseCaseList(t *testing.T) {
	r := newRepos(t)
	require.NoError(t, r.uploaded.Create(context.Background(), entity.NewUploadedLead(entity.UploadedLead{CompanyName: "A", Email: "a@a.test"})))

	list, err := NewUploadedLeadUseCase(r.uploaded).List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, entity.SourceManualUpload, list[0].Source)
}
