package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
)

// Patch applies a request body onto a loaded record.
type Patch[T any] func(*T) error

type SupplierUseCase struct {
	Repo entity.SupplierRepositoryInterface
}

func NewSupplierUseCase(repo entity.SupplierRepositoryInterface) *SupplierUseCase {
	return &SupplierUseCase{Repo: repo}
}

func (uc *SupplierUseCase) List(ctx context.Context) ([]*entity.Supplier, error) {
	return uc.Repo.List(ctx)
}

func (uc *SupplierUseCase) Get(ctx context.Context, id string) (*entity.Supplier, error) {
	s, err := uc.Repo.FindByID(ctx, id)
	return s, notFound(err, entity.ErrSupplierNotFound, "Supplier not found")
}

func (uc *SupplierUseCase) Create(ctx context.Context, in entity.Supplier) (*entity.Supplier, error) {
	s := entity.NewSupplier(in)
	if err := validateRecord(s); err != nil {
		return nil, err
	}
	if err := uc.Repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("create supplier: %w", err)
	}
	return s, nil
}

func (uc *SupplierUseCase) Update(ctx context.Context, id string, patch Patch[entity.Supplier]) (*entity.Supplier, error) {
	s, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	createdAt := s.CreatedAt
	if err := patch(s); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	s.ID, s.CreatedAt = id, createdAt
	s.ApplyDefaults()

	if err := validateRecord(s); err != nil {
		return nil, err
	}
	if err := uc.Repo.Update(ctx, s); err != nil {
		return nil, notFound(err, entity.ErrSupplierNotFound, "Supplier not found")
	}
	return s, nil
}

func (uc *SupplierUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.Repo.Delete(ctx, id), entity.ErrSupplierNotFound, "Supplier not found")
}

type LeadUseCase struct {
	Repo entity.LeadRepositoryInterface
}

func NewLeadUseCase(repo entity.LeadRepositoryInterface) *LeadUseCase {
	return &LeadUseCase{Repo: repo}
}

func (uc *LeadUseCase) List(ctx context.Context) ([]*entity.Lead, error) {
	return uc.Repo.List(ctx)
}

func (uc *LeadUseCase) Get(ctx context.Context, id string) (*entity.Lead, error) {
	l, err := uc.Repo.FindByID(ctx, id)
	return l, notFound(err, entity.ErrLeadNotFound, "Lead not found")
}

func (uc *LeadUseCase) Create(ctx context.Context, in entity.Lead) (*entity.Lead, error) {
	l := entity.NewLead(in)
	if err := validateRecord(l); err != nil {
		return nil, err
	}
	if err := uc.Repo.Create(ctx, l); err != nil {
		return nil, missingReference(err, entity.ErrSupplierNotFound, "supplier", l.SupplierID)
	}
	return l, nil
}

func (uc *LeadUseCase) Update(ctx context.Context, id string, patch Patch[entity.Lead]) (*entity.Lead, error) {
	l, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	generated := l.DateGenerated
	if err := patch(l); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	l.ID, l.DateGenerated = id, generated
	l.ApplyDefaults()

	if err := validateRecord(l); err != nil {
		return nil, err
	}
	if err := uc.Repo.Update(ctx, l); err != nil {
		err = notFound(err, entity.ErrLeadNotFound, "Lead not found")
		return nil, missingReference(err, entity.ErrSupplierNotFound, "supplier", l.SupplierID)
	}
	return l, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.Repo.Delete(ctx, id), entity.ErrLeadNotFound, "Lead not found")
}

type EmailCampaignUseCase struct {
	Repo entity.EmailCampaignRepositoryInterface
}

func NewEmailCampaignUseCase(repo entity.EmailCampaignRepositoryInterface) *EmailCampaignUseCase {
	return &EmailCampaignUseCase{Repo: repo}
}

func (uc *EmailCampaignUseCase) List(ctx context.Context) ([]*entity.EmailCampaign, error) {
	return uc.Repo.List(ctx)
}

func (uc *EmailCampaignUseCase) Get(ctx context.Context, id string) (*entity.EmailCampaign, error) {
	c, err := uc.Repo.FindByID(ctx, id)
	return c, notFound(err, entity.ErrEmailCampaignNotFound, "Email campaign not found")
}

func (uc *EmailCampaignUseCase) Create(ctx context.Context, in entity.EmailCampaign) (*entity.EmailCampaign, error) {
	c := entity.NewEmailCampaign(in)
	if err := validateRecord(c); err != nil {
		return nil, err
	}
	if err := uc.Repo.Create(ctx, c); err != nil {
		return nil, missingReference(err, entity.ErrLeadNotFound, "lead", c.LeadID)
	}
	return c, nil
}

func (uc *EmailCampaignUseCase) Update(ctx context.Context, id string, patch Patch[entity.EmailCampaign]) (*entity.EmailCampaign, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := patch(c); err != nil {
		return nil, &InputError{Message: err.Error()}
	}
	c.ID = id
	c.ApplyDefaults()

	if err := validateRecord(c); err != nil {
		return nil, err
	}
	if err := uc.Repo.Update(ctx, c); err != nil {
		if errors.Is(err, entity.ErrEmailCampaignNotFound) {
			return nil, &NotFoundError{Message: "Email campaign not found"}
		}
		return nil, missingReference(err, entity.ErrLeadNotFound, "lead", c.LeadID)
	}
	return c, nil
}

func (uc *EmailCampaignUseCase) Delete(ctx context.Context, id string) error {
	return notFound(uc.Repo.Delete(ctx, id), entity.ErrEmailCampaignNotFound, "Email campaign not found")
}

type UploadedLeadUseCase struct {
	Repo entity.UploadedLeadRepositoryInterface
}

func NewUploadedLeadUseCase(repo entity.UploadedLeadRepositoryInterface) *UploadedLeadUseCase {
	return &UploadedLeadUseCase{Repo: repo}
}

func (uc *UploadedLeadUseCase) List(ctx context.Context) ([]*entity.UploadedLead, error) {
	return uc.Repo.List(ctx)
}

func notFound(err, sentinel error, msg string) error {
	if errors.Is(err, sentinel) {
		return &NotFoundError{Message: msg}
	}
	return err
}

// missingReference reports a dangling foreign key as a field error.
func missingReference(err, sentinel error, field, id string) error {
	if errors.Is(err, sentinel) {
		return ValidationErrors{{Field: field, Message: fmt.Sprintf("Invalid pk %q - object does not exist.", id)}}
	}
	return err
}
