package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type ScanLogRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScanLogRepo(db *dbpg.DB) *ScanLogRepository {
	return &ScanLogRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Insert appends one audit row. The table is append-only; nothing in the
// engine updates or deletes scan logs.
func (r *ScanLogRepository) Insert(ctx context.Context, l *domain.ScanLog) error {
	query := `INSERT INTO scan_logs (id, event_id, pass_id, gate_id, scanner_user_id,
				result, raw_payload, error_message, processing_time_ms, scanned_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		l.ID, l.EventID, l.PassID, l.GateID, l.ScannerUserID,
		l.Result, l.RawPayload, l.ErrorMessage, l.ProcessingTimeMs, l.ScannedAt,
	)
	if err != nil {
		return fmt.Errorf("insert scan log: %w", err)
	}

	return nil
}

func (r *ScanLogRepository) ListByEvent(ctx context.Context, eventID string, limit int) ([]*domain.ScanLog, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, event_id, pass_id, gate_id, scanner_user_id,
					 result, raw_payload, error_message, processing_time_ms, scanned_at
			  FROM scan_logs
			  WHERE event_id = $1
			  ORDER BY scanned_at DESC
			  LIMIT $2`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, limit)
	if err != nil {
		return nil, fmt.Errorf("list scan logs: %w", err)
	}
	defer rows.Close()

	var res []*domain.ScanLog
	for rows.Next() {
		var l domain.ScanLog
		if err = rows.Scan(
			&l.ID, &l.EventID, &l.PassID, &l.GateID, &l.ScannerUserID,
			&l.Result, &l.RawPayload, &l.ErrorMessage, &l.ProcessingTimeMs, &l.ScannedAt,
		); err != nil {
			return nil, fmt.Errorf("scan scan log: %w", err)
		}
		res = append(res, &l)
	}

	return res, rows.Err()
}
