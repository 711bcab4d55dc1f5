package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
	"github.com/Abidimam7/leadgen/internal/infra/spreadsheet"
	"github.com/Abidimam7/leadgen/internal/logger"
	"go.uber.org/zap"
)

// RequiredColumns must all be present in an uploaded sheet's header.
var RequiredColumns = []string{"company_name", "email", "phone", "address"}

type UploadLeadsUseCase struct {
	Suppliers     entity.SupplierRepositoryInterface
	Leads         entity.LeadRepositoryInterface
	UploadedLeads entity.UploadedLeadRepositoryInterface
	// Atomic removes the rows already written when a later row fails.
	Atomic  bool
	Metrics DomainMetrics
}

func NewUploadLeadsUseCase(
	suppliers entity.SupplierRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	uploaded entity.UploadedLeadRepositoryInterface,
	atomic bool,
) *UploadLeadsUseCase {
	return &UploadLeadsUseCase{
		Suppliers:     suppliers,
		Leads:         leads,
		UploadedLeads: uploaded,
		Atomic:        atomic,
		Metrics:       nopMetrics{},
	}
}

func (uc *UploadLeadsUseCase) Execute(ctx context.Context, input UploadLeadsInput) (*UploadLeadsOutput, error) {
	log := logger.FromContext(ctx).With(zap.String("filename", input.Filename))

	if input.File == nil {
		return nil, &InputError{Message: "No file provided"}
	}

	table, err := spreadsheet.Read(input.Filename, input.File)
	if err != nil {
		log.Warn("spreadsheet rejected", zap.Error(err))
		return nil, &InputError{Message: fmt.Sprintf("Failed to process the file: %v", err)}
	}

	if missing := missingColumns(table); len(missing) > 0 {
		log.Warn("spreadsheet missing columns", zap.Strings("missing", missing), zap.Strings("found", table.Headers))
		return nil, &MissingColumnsError{Missing: missing, Found: table.Headers}
	}

	supplier, err := uc.Suppliers.First(ctx)
	if errors.Is(err, entity.ErrSupplierNotFound) {
		return nil, ErrNoSupplier
	}
	if err != nil {
		return nil, fmt.Errorf("load default supplier: %w", err)
	}

	var saved int
	tx := NewTransaction(log)
	for i := 0; i < table.Len(); i++ {
		uc.addRow(tx, i, rowLead(table, i, supplier.ID), &saved)
	}

	if uc.Atomic {
		err = tx.Execute(ctx)
	} else {
		err = tx.Apply(ctx)
	}
	if err != nil {
		if uc.Atomic {
			saved = 0
		}
		uc.metrics().LeadsIngested(saved)
		log.Warn("upload aborted", zap.Error(err), zap.Bool("atomic", uc.Atomic), zap.Int("kept", saved))
		return nil, err
	}
	uc.metrics().LeadsIngested(saved)

	log.Info("leads uploaded", zap.Int("count", table.Len()), zap.String("supplier_id", supplier.ID))
	return &UploadLeadsOutput{Message: "Leads uploaded successfully!", Count: table.Len()}, nil
}

func (uc *UploadLeadsUseCase) metrics() DomainMetrics {
	if uc.Metrics == nil {
		return nopMetrics{}
	}
	return uc.Metrics
}

// addRow registers two steps for row i: the lead itself and its provenance
// record. saved counts the leads written.
func (uc *UploadLeadsUseCase) addRow(tx *Transaction, i int, lead *entity.Lead, saved *int) {
	uploaded := entity.NewUploadedLead(entity.UploadedLead{
		CompanyName: lead.CompanyName,
		Email:       lead.Email,
		Phone:       lead.Phone,
		Address:     lead.Address,
		Source:      entity.SourceSpreadsheetUpload,
	})

	tx.AddStep(fmt.Sprintf("lead row %d", i),
		func(ctx context.Context) error {
			if err := lead.Validate(); err != nil {
				var fe entity.FieldErrors
				if errors.As(err, &fe) {
					return &RowValidationError{Row: i, Details: fe}
				}
				return err
			}
			if err := uc.Leads.Create(ctx, lead); err != nil {
				return fmt.Errorf("save lead at row %d: %w", i, err)
			}
			*saved++
			return nil
		},
		func(ctx context.Context) error {
			return uc.Leads.Delete(ctx, lead.ID)
		},
	)

	tx.AddStep(fmt.Sprintf("uploaded lead row %d", i),
		func(ctx context.Context) error {
			if err := uc.UploadedLeads.Create(ctx, uploaded); err != nil {
				return fmt.Errorf("save uploaded lead at row %d: %w", i, err)
			}
			return nil
		},
		func(ctx context.Context) error {
			return uc.UploadedLeads.Delete(ctx, uploaded.ID)
		},
	)
}

func rowLead(t *spreadsheet.Table, i int, supplierID string) *entity.Lead {
	company := t.Value(i, "company_name")
	return entity.NewLead(entity.Lead{
		SupplierID:  supplierID,
		Name:        company,
		CompanyName: company,
		Email:       t.Value(i, "email"),
		Phone:       t.Value(i, "phone"),
		Address:     t.Value(i, "address"),
		Status:      entity.LeadStatusNew,
	})
}

func missingColumns(t *spreadsheet.Table) []string {
	var missing []string
	for _, c := range RequiredColumns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	return missing
}
