package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

const deliveryColumns = `id, partner_id, event_type, payload, status, attempts, last_error, created_at, delivered_at`

// WebhookDeliveryRepository is the outbox for partner notifications. Rows
// survive process crashes so the scheduler sweep can finish bounded
// redelivery that the in-request dispatch did not complete.
type WebhookDeliveryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewWebhookDeliveryRepo(db *dbpg.DB) *WebhookDeliveryRepository {
	return &WebhookDeliveryRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *WebhookDeliveryRepository) Insert(ctx context.Context, d *domain.WebhookDelivery) error {
	query := `INSERT INTO webhook_deliveries (id, partner_id, event_type, payload, status, attempts, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		d.ID, d.PartnerID, d.EventType, d.Payload, d.Status, d.Attempts, d.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert webhook delivery: %w", err)
	}

	return nil
}

func (r *WebhookDeliveryRepository) MarkDelivered(ctx context.Context, id string, at time.Time) error {
	query := `UPDATE webhook_deliveries
			  SET status = $2, delivered_at = $3
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.DeliveryStatusDelivered, at)
	if err != nil {
		return fmt.Errorf("mark delivery delivered: %w", err)
	}

	return nil
}

func (r *WebhookDeliveryRepository) MarkFailed(ctx context.Context, id, lastError string) error {
	query := `UPDATE webhook_deliveries
			  SET status = $2, attempts = attempts + 1, last_error = $3
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.DeliveryStatusFailed, lastError)
	if err != nil {
		return fmt.Errorf("mark delivery failed: %w", err)
	}

	return nil
}

func (r *WebhookDeliveryRepository) MarkDropped(ctx context.Context, id, lastError string) error {
	query := `UPDATE webhook_deliveries
			  SET status = $2, last_error = $3
			  WHERE id = $1`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, domain.DeliveryStatusDropped, lastError)
	if err != nil {
		return fmt.Errorf("mark delivery dropped: %w", err)
	}

	return nil
}

// ListRetryable returns failed rows still under the attempt budget, oldest
// first, for the scheduler sweep.
func (r *WebhookDeliveryRepository) ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*domain.WebhookDelivery, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT ` + deliveryColumns + `
			  FROM webhook_deliveries
			  WHERE status = $1 AND attempts < $2
			  ORDER BY created_at
			  LIMIT $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, domain.DeliveryStatusFailed, maxAttempts, limit)
	if err != nil {
		return nil, fmt.Errorf("list retryable deliveries: %w", err)
	}
	defer rows.Close()

	var res []*domain.WebhookDelivery
	for rows.Next() {
		var d domain.WebhookDelivery
		if err = rows.Scan(
			&d.ID, &d.PartnerID, &d.EventType, &d.Payload, &d.Status,
			&d.Attempts, &d.LastError, &d.CreatedAt, &d.DeliveredAt,
		); err != nil {
			return nil, fmt.Errorf("scan webhook delivery: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}
