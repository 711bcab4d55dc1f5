package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
)

const leadColumns = `id, supplier_id, name, industry, location, status, company_name, email, phone, address, date_generated`

type LeadRepository struct {
	conn *Conn
}

func NewLeadRepository(conn *Conn) *LeadRepository {
	return &LeadRepository{conn: conn}
}

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `INSERT INTO leads (` + leadColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query),
		l.ID, l.SupplierID, l.Name, l.Industry, l.Location, l.Status,
		l.CompanyName, l.Email, l.Phone, l.Address, l.DateGenerated,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrSupplierNotFound
		}
		return fmt.Errorf("create lead: %w", err)
	}
	return nil
}

// Update rewrites every mutable column. date_generated is never touched.
func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `UPDATE leads SET supplier_id = ?, name = ?, industry = ?, location = ?, status = ?,
		company_name = ?, email = ?, phone = ?, address = ? WHERE id = ?`

	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query),
		l.SupplierID, l.Name, l.Industry, l.Location, l.Status,
		l.CompanyName, l.Email, l.Phone, l.Address, l.ID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrSupplierNotFound
		}
		return fmt.Errorf("update lead: %w", err)
	}
	return expectAffected(res, entity.ErrLeadNotFound)
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(`UPDATE leads SET status = ? WHERE id = ?`), status, id)
	if err != nil {
		return fmt.Errorf("update lead status: %w", err)
	}
	return expectAffected(res, entity.ErrLeadNotFound)
}

func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(`DELETE FROM leads WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete lead: %w", err)
	}
	return expectAffected(res, entity.ErrLeadNotFound)
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = ?`

	l, err := scanLead(r.conn.DB.QueryRowContext(ctx, r.conn.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find lead: %w", err)
	}
	return l, nil
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	return r.list(ctx, `SELECT `+leadColumns+` FROM leads ORDER BY date_generated ASC, id ASC`)
}

func (r *LeadRepository) ListBySupplier(ctx context.Context, supplierID string) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE supplier_id = ? ORDER BY date_generated ASC, id ASC`
	return r.list(ctx, r.conn.Rebind(query), supplierID)
}

func (r *LeadRepository) list(ctx context.Context, query string, args ...any) ([]*entity.Lead, error) {
	rows, err := r.conn.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}
	defer rows.Close()

	leads := []*entity.Lead{}
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, fmt.Errorf("scan lead: %w", err)
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	err := row.Scan(&l.ID, &l.SupplierID, &l.Name, &l.Industry, &l.Location, &l.Status,
		&l.CompanyName, &l.Email, &l.Phone, &l.Address, &l.DateGenerated)
	if err != nil {
		return nil, err
	}
	return &l, nil
}
