package database

import (
	"context"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
)

type UploadedLeadRepository struct {
	conn *Conn
}

func NewUploadedLeadRepository(conn *Conn) *UploadedLeadRepository {
	return &UploadedLeadRepository{conn: conn}
}

func (r *UploadedLeadRepository) Create(ctx context.Context, u *entity.UploadedLead) error {
	query := `INSERT INTO uploaded_leads (id, company_name, contact_name, email, phone, address, source, uploaded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query),
		u.ID, u.CompanyName, u.ContactName, u.Email, u.Phone, u.Address, u.Source, u.UploadedAt)
	if err != nil {
		return fmt.Errorf("create uploaded lead: %w", err)
	}
	return nil
}

func (r *UploadedLeadRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(`DELETE FROM uploaded_leads WHERE id = ?`), id); err != nil {
		return fmt.Errorf("delete uploaded lead: %w", err)
	}
	return nil
}

func (r *UploadedLeadRepository) List(ctx context.Context) ([]*entity.UploadedLead, error) {
	rows, err := r.conn.DB.QueryContext(ctx, `SELECT id, company_name, contact_name, email, phone, address, source, uploaded_at
		FROM uploaded_leads ORDER BY uploaded_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list uploaded leads: %w", err)
	}
	defer rows.Close()

	out := []*entity.UploadedLead{}
	for rows.Next() {
		var u entity.UploadedLead
		if err := rows.Scan(&u.ID, &u.CompanyName, &u.ContactName, &u.Email, &u.Phone, &u.Address, &u.Source, &u.UploadedAt); err != nil {
			return nil, fmt.Errorf("scan uploaded lead: %w", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}
