package database

import (
	"context"
	"fmt"
	"strings"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS suppliers (
		id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		company_website TEXT NOT NULL DEFAULT '',
		contact_name TEXT NOT NULL DEFAULT '',
		contact_email TEXT NOT NULL DEFAULT '',
		contact_phone TEXT NOT NULL DEFAULT '',
		product_name TEXT NOT NULL DEFAULT '',
		product_description TEXT NOT NULL DEFAULT '',
		key_features TEXT NOT NULL DEFAULT '',
		primary_use_cases TEXT NOT NULL DEFAULT '',
		has_api BOOLEAN NOT NULL DEFAULT FALSE,
		api_documentation_link TEXT NOT NULL DEFAULT '',
		pricing_model TEXT NOT NULL DEFAULT '',
		sales_cycle_length TEXT NOT NULL DEFAULT '',
		commission_structure TEXT NOT NULL DEFAULT '',
		discounts_offers TEXT NOT NULL DEFAULT '',
		common_pain_points TEXT NOT NULL DEFAULT '',
		marketing_materials TEXT NOT NULL DEFAULT '',
		customer_success_stories TEXT NOT NULL DEFAULT '',
		onboarding_training TEXT NOT NULL DEFAULT '',
		top_competitors TEXT NOT NULL DEFAULT '',
		branding_guidelines TEXT NOT NULL DEFAULT '',
		additional_info TEXT NOT NULL DEFAULT '',
		cost_information TEXT NOT NULL DEFAULT '',
		years_in_business INTEGER NOT NULL DEFAULT 0,
		funding_info TEXT NOT NULL DEFAULT '',
		product_demo_link TEXT NOT NULL DEFAULT '',
		company_description TEXT NOT NULL DEFAULT '',
		ideal_customer_profile TEXT NOT NULL DEFAULT '',
		technical_requirements TEXT NOT NULL DEFAULT '',
		unique_selling_points TEXT NOT NULL DEFAULT '',
		created_at {{timestamp}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS leads (
		id TEXT PRIMARY KEY,
		supplier_id TEXT NOT NULL REFERENCES suppliers(id) ON DELETE CASCADE,
		name TEXT NOT NULL DEFAULT '',
		industry TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'New',
		company_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		date_generated {{timestamp}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_leads_supplier ON leads (supplier_id, date_generated)`,
	`CREATE TABLE IF NOT EXISTS uploaded_leads (
		id TEXT PRIMARY KEY,
		company_name TEXT NOT NULL,
		contact_name TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		source TEXT NOT NULL DEFAULT 'Manual Upload',
		uploaded_at {{timestamp}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS email_campaigns (
		id TEXT PRIMARY KEY,
		lead_id TEXT NOT NULL REFERENCES leads(id) ON DELETE CASCADE,
		subject TEXT NOT NULL DEFAULT '',
		body TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Pending',
		sent_at {{timestamp}}
	)`,
}

// Migrate creates the tables if they do not exist yet.
func Migrate(ctx context.Context, c *Conn) error {
	ts := "TIMESTAMP"
	if c.Dialect == Postgres {
		ts = "TIMESTAMPTZ"
	}

	for _, stmt := range schema {
		if _, err := c.DB.ExecContext(ctx, strings.ReplaceAll(stmt, "{{timestamp}}", ts)); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
