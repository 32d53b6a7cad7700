package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

const partnerColumns = `id, name, webhook_url, webhook_secret, webhook_events, created_at, updated_at`

type PartnerRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPartnerRepo(db *dbpg.DB) *PartnerRepository {
	return &PartnerRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + `
			  FROM partners
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}

	var p domain.Partner
	if err = row.Scan(
		&p.ID, &p.Name, &p.WebhookURL, &p.WebhookSecret,
		pq.Array(&p.WebhookEvents), &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("scan partner: %w", err)
	}

	return &p, nil
}

// ListByEventType returns the partners subscribed to one webhook event
// type with a delivery URL configured.
func (r *PartnerRepository) ListByEventType(ctx context.Context, eventType domain.WebhookEventType) ([]*domain.Partner, error) {
	query := `SELECT ` + partnerColumns + `
			  FROM partners
			  WHERE $1 = ANY(webhook_events) AND webhook_url <> ''`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, string(eventType))
	if err != nil {
		return nil, fmt.Errorf("list partners: %w", err)
	}
	defer rows.Close()

	var res []*domain.Partner
	for rows.Next() {
		var p domain.Partner
		if err = rows.Scan(
			&p.ID, &p.Name, &p.WebhookURL, &p.WebhookSecret,
			pq.Array(&p.WebhookEvents), &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan partner: %w", err)
		}
		res = append(res, &p)
	}

	return res, rows.Err()
}
