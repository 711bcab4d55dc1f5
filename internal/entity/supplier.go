package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Supplier is a company on whose behalf leads are generated and contacted.
type Supplier struct {
	ID                     string    `json:"id"`
	CompanyName            string    `json:"company_name" validate:"max=255"`
	CompanyWebsite         string    `json:"company_website" validate:"omitempty,url"`
	ContactName            string    `json:"contact_name" validate:"max=255"`
	ContactEmail           string    `json:"contact_email" validate:"omitempty,email"`
	ContactPhone           string    `json:"contact_phone" validate:"max=20"`
	ProductName            string    `json:"product_name" validate:"max=255"`
	ProductDescription     string    `json:"product_description"`
	KeyFeatures            string    `json:"key_features"`
	PrimaryUseCases        string    `json:"primary_use_cases"`
	HasAPI                 bool      `json:"has_api"`
	APIDocumentationLink   string    `json:"api_documentation_link" validate:"omitempty,url"`
	PricingModel           string    `json:"pricing_model" validate:"max=255"`
	SalesCycleLength       string    `json:"sales_cycle_length" validate:"max=255"`
	CommissionStructure    string    `json:"commission_structure" validate:"max=255"`
	DiscountsOffers        string    `json:"discounts_offers"`
	CommonPainPoints       string    `json:"common_pain_points"`
	MarketingMaterials     string    `json:"marketing_materials"`
	CustomerSuccessStories string    `json:"customer_success_stories"`
	OnboardingTraining     string    `json:"onboarding_training"`
	TopCompetitors         string    `json:"top_competitors"`
	BrandingGuidelines     string    `json:"branding_guidelines"`
	AdditionalInfo         string    `json:"additional_info"`
	CostInformation        string    `json:"cost_information" validate:"max=255"`
	YearsInBusiness        int       `json:"years_in_business" validate:"min=0"`
	FundingInfo            string    `json:"funding_info"`
	ProductDemoLink        string    `json:"product_demo_link" validate:"omitempty,url"`
	CompanyDescription     string    `json:"company_description" validate:"max=255"`
	IdealCustomerProfile   string    `json:"ideal_customer_profile"`
	TechnicalRequirements  string    `json:"technical_requirements"`
	UniqueSellingPoints    string    `json:"unique_selling_points"`
	CreatedAt              time.Time `json:"created_at"`
}

type SupplierRepositoryInterface interface {
	Create(ctx context.Context, s *Supplier) error
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Supplier, error)
	First(ctx context.Context) (*Supplier, error)
	List(ctx context.Context) ([]*Supplier, error)
}

// NewSupplier fills an id, creation time and profile defaults on s.
func NewSupplier(s Supplier) *Supplier {
	s.ID = uuid.New().String()
	s.CreatedAt = time.Now().UTC()
	s.ApplyDefaults()
	return &s
}

// ApplyDefaults fills every empty profile field with its placeholder value.
func (s *Supplier) ApplyDefaults() {
	setDefault(&s.CompanyName, "Default Company Name")
	setDefault(&s.CompanyWebsite, "http://default.com")
	setDefault(&s.ContactName, "Name")
	setDefault(&s.ContactEmail, "example@domain.com")
	setDefault(&s.ContactPhone, "1234567890")
	setDefault(&s.ProductName, "Default Product")
	setDefault(&s.ProductDescription, "Default description of the product")
	setDefault(&s.KeyFeatures, "Default key features")
	setDefault(&s.PrimaryUseCases, "Default use cases")
	setDefault(&s.APIDocumentationLink, "http://default.com")
	setDefault(&s.PricingModel, "Default pricing model")
	setDefault(&s.SalesCycleLength, "Default cycle length")
	setDefault(&s.CommissionStructure, "Default commission structure")
	setDefault(&s.DiscountsOffers, "No discounts/offers")
	setDefault(&s.CommonPainPoints, "Not specified")
	setDefault(&s.MarketingMaterials, "No materials available")
	setDefault(&s.CustomerSuccessStories, "No success stories")
	setDefault(&s.OnboardingTraining, "No onboarding training")
	setDefault(&s.TopCompetitors, "No top competitors")
	setDefault(&s.BrandingGuidelines, "No branding guidelines")
	setDefault(&s.AdditionalInfo, "No additional info")
	setDefault(&s.CostInformation, "No cost info")
	setDefault(&s.FundingInfo, "No funding info")
	setDefault(&s.ProductDemoLink, "http://default.com")
	setDefault(&s.CompanyDescription, "Default description")
	setDefault(&s.IdealCustomerProfile, "Default ideal customer profile")
	setDefault(&s.TechnicalRequirements, "Default technical requirements")
	setDefault(&s.UniqueSellingPoints, "Default unique selling points")
}

func (s *Supplier) Validate() error {
	return validateStruct(s)
}

func (s *Supplier) String() string {
	return s.CompanyName
}

func setDefault(field *string, value string) {
	if *field == "" {
		*field = value
	}
}
