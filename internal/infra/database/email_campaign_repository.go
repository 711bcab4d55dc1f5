package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Abidimam7/leadgen/internal/entity"
)

const campaignColumns = `id, lead_id, subject, body, status, sent_at`

type EmailCampaignRepository struct {
	conn *Conn
}

func NewEmailCampaignRepository(conn *Conn) *EmailCampaignRepository {
	return &EmailCampaignRepository{conn: conn}
}

func (r *EmailCampaignRepository) Create(ctx context.Context, c *entity.EmailCampaign) error {
	query := `INSERT INTO email_campaigns (` + campaignColumns + `) VALUES (?, ?, ?, ?, ?, ?)`

	_, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query), c.ID, c.LeadID, c.Subject, c.Body, c.Status, c.SentAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrLeadNotFound
		}
		return fmt.Errorf("create email campaign: %w", err)
	}
	return nil
}

func (r *EmailCampaignRepository) Update(ctx context.Context, c *entity.EmailCampaign) error {
	query := `UPDATE email_campaigns SET lead_id = ?, subject = ?, body = ?, status = ?, sent_at = ? WHERE id = ?`

	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(query), c.LeadID, c.Subject, c.Body, c.Status, c.SentAt, c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrLeadNotFound
		}
		return fmt.Errorf("update email campaign: %w", err)
	}
	return expectAffected(res, entity.ErrEmailCampaignNotFound)
}

func (r *EmailCampaignRepository) Delete(ctx context.Context, id string) error {
	res, err := r.conn.DB.ExecContext(ctx, r.conn.Rebind(`DELETE FROM email_campaigns WHERE id = ?`), id)
	if err != nil {
		return fmt.Errorf("delete email campaign: %w", err)
	}
	return expectAffected(res, entity.ErrEmailCampaignNotFound)
}

func (r *EmailCampaignRepository) FindByID(ctx context.Context, id string) (*entity.EmailCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM email_campaigns WHERE id = ?`

	c, err := scanCampaign(r.conn.DB.QueryRowContext(ctx, r.conn.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrEmailCampaignNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find email campaign: %w", err)
	}
	return c, nil
}

func (r *EmailCampaignRepository) List(ctx context.Context) ([]*entity.EmailCampaign, error) {
	rows, err := r.conn.DB.QueryContext(ctx, `SELECT `+campaignColumns+` FROM email_campaigns ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list email campaigns: %w", err)
	}
	defer rows.Close()

	out := []*entity.EmailCampaign{}
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("scan email campaign: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCampaign(row rowScanner) (*entity.EmailCampaign, error) {
	var (
		c      entity.EmailCampaign
		sentAt sql.NullTime
	)
	if err := row.Scan(&c.ID, &c.LeadID, &c.Subject, &c.Body, &c.Status, &sentAt); err != nil {
		return nil, err
	}
	if sentAt.Valid {
		t := sentAt.Time
		c.SentAt = &t
	}
	return &c, nil
}
