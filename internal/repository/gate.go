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

const gateColumns = `id, event_id, name, access_code, allowed_guest_types, created_at, updated_at`

type GateRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewGateRepo(db *dbpg.DB) *GateRepository {
	return &GateRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *GateRepository) GetByID(ctx context.Context, id string) (*domain.Gate, error) {
	query := `SELECT ` + gateColumns + `
			  FROM gates
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get gate: %w", err)
	}

	return scanGate(row)
}

// GetByAccessCode resolves a kiosk access code. Codes are unique within an
// event but looked up globally, so a bare code is enough to self-identify.
func (r *GateRepository) GetByAccessCode(ctx context.Context, code string) (*domain.Gate, error) {
	query := `SELECT ` + gateColumns + `
			  FROM gates
			  WHERE access_code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get gate by code: %w", err)
	}

	return scanGate(row)
}

func (r *GateRepository) CodeExists(ctx context.Context, eventID, code string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM gates WHERE event_id = $1 AND access_code = $2)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, code)
	if err != nil {
		return false, fmt.Errorf("check gate code: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan gate code check: %w", err)
	}

	return exists, nil
}

func scanGate(row *sql.Row) (*domain.Gate, error) {
	var g domain.Gate
	err := row.Scan(
		&g.ID, &g.EventID, &g.Name, &g.AccessCode,
		pq.Array(&g.AllowedGuestTypes), &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGateNotFound
		}
		return nil, fmt.Errorf("scan gate: %w", err)
	}

	return &g, nil
}
