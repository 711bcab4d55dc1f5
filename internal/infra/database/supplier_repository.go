package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
)

const supplierColumns = `id, company_name, company_website, contact_name, contact_email, contact_phone,
	product_name, product_description, key_features, primary_use_cases, has_api, api_documentation_link,
	pricing_model, sales_cycle_length, commission_structure, discounts_offers, common_pain_points,
	marketing_materials, customer_success_stories, onboarding_training, top_competitors, branding_guidelines,
	additional_info, cost_information, years_in_business, funding_info, product_demo_link, company_description,
	ideal_customer_profile, technical_requirements, unique_selling_points, created_at`

type SupplierRepository struct {
	conn *Conn
}

func NewSupplierRepository(conn *Conn) *SupplierRepository {
	return &SupplierRepository{conn: conn}
}

func (r *SupplierRepository) Create(ctx context.Context, s *entity.Supplier) error {
	query := `INSERT INTO suppliers (` + supplierColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args := append([]any{s.ID}, supplierValues(s)...)
	args = append(args, s.CreatedAt)

	if _, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query), args...); err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepository) Update(ctx context.Context, s *entity.Supplier) error {
	query := `UPDATE suppliers SET
		company_name = ?, company_website = ?, contact_name = ?, contact_email = ?, contact_phone = ?,
		product_name = ?, product_description = ?, key_features = ?, primary_use_cases = ?, has_api = ?,
		api_documentation_link = ?, pricing_model = ?, sales_cycle_length = ?, commission_structure = ?,
		discounts_offers = ?, common_pain_points = ?, marketing_materials = ?, customer_success_stories = ?,
		onboarding_training = ?, top_competitors = ?, branding_guidelines = ?, additional_info = ?,
		cost_information = ?, years_in_business = ?, funding_info = ?, product_demo_link = ?,
		company_description = ?, ideal_customer_profile = ?, technical_requirements = ?, unique_selling_points = ?
		WHERE id = ?`

	args := append(supplierValues(s), s.ID)

	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query), args...)
	if err != nil {
		return fmt.Errorf("update supplier: %w", err)
	}
	return expectAffected(res, entity.ErrSupplierNotFound)
}

func (r *SupplierRepository) Delete(ctx context.Context, id string) error {
	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(`DELETE FROM suppliers WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete supplier: %w", err)
	}
	return expectAffected(res, entity.ErrSupplierNotFound)
}

func (r *SupplierRepository) FindByID(ctx context.Context, id string) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = ?`

	s, err := scanSupplier(r.conn.DB.QueryRowContext(ctx, r.conn.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find supplier: %w", err)
	}
	return s, nil
}

// First returns the oldest supplier.
func (r *SupplierRepository) First(ctx context.Context) (*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at ASC, id ASC LIMIT 1`

	s, err := scanSupplier(r.conn.DB.QueryRowContext(ctx, query))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("first supplier: %w", err)
	}
	return s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*entity.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY created_at ASC, id ASC`

	rows, err := r.conn.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []*entity.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func supplierValues(s *entity.Supplier) []any {
	return []any{
		s.CompanyName, s.CompanyWebsite, s.ContactName, s.ContactEmail, s.ContactPhone,
		s.ProductName, s.ProductDescription, s.KeyFeatures, s.PrimaryUseCases, s.HasAPI,
		s.APIDocumentationLink, s.PricingModel, s.SalesCycleLength, s.CommissionStructure,
		s.DiscountsOffers, s.CommonPainPoints, s.MarketingMaterials, s.CustomerSuccessStories,
		s.OnboardingTraining, s.TopCompetitors, s.BrandingGuidelines, s.AdditionalInfo,
		s.CostInformation, s.YearsInBusiness, s.FundingInfo, s.ProductDemoLink,
		s.CompanyDescription, s.IdealCustomerProfile, s.TechnicalRequirements, s.UniqueSellingPoints,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSupplier(row rowScanner) (*entity.Supplier, error) {
	var s entity.Supplier
	err := row.Scan(
		&s.ID, &s.CompanyName, &s.CompanyWebsite, &s.ContactName, &s.ContactEmail, &s.ContactPhone,
		&s.ProductName, &s.ProductDescription, &s.KeyFeatures, &s.PrimaryUseCases, &s.HasAPI,
		&s.APIDocumentationLink, &s.PricingModel, &s.SalesCycleLength, &s.CommissionStructure,
		&s.DiscountsOffers, &s.CommonPainPoints, &s.MarketingMaterials, &s.CustomerSuccessStories,
		&s.OnboardingTraining, &s.TopCompetitors, &s.BrandingGuidelines, &s.AdditionalInfo,
		&s.CostInformation, &s.YearsInBusiness, &s.FundingInfo, &s.ProductDemoLink,
		&s.CompanyDescription, &s.IdealCustomerProfile, &s.TechnicalRequirements, &s.UniqueSellingPoints,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func expectAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
