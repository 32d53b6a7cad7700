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

const passColumns = `id, event_id, guest_id, token, status, use_count, max_uses,
		valid_from, valid_to, first_scanned_at, last_scanned_at, revoked_at,
		created_at, updated_at`

type PassRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPassRepo(db *dbpg.DB) *PassRepository {
	return &PassRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts an issued pass. A unique violation on the token column is
// reported as domain.ErrDuplicateToken so issuance can run another
// generation cycle.
func (r *PassRepository) Create(ctx context.Context, p *domain.Pass) error {
	query := `INSERT INTO passes (id, event_id, guest_id, token, status, use_count, max_uses,
				valid_from, valid_to, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		p.ID, p.EventID, p.GuestID, p.Token, p.Status,
		p.UseCount, p.MaxUses, p.ValidFrom, p.ValidTo, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateToken
		}
		return fmt.Errorf("insert pass: %w", err)
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	return nil
}

func (r *PassRepository) GetByID(ctx context.Context, id, eventID string) (*domain.Pass, error) {
	query := `SELECT ` + passColumns + `
			  FROM passes
			  WHERE id = $1 AND event_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id, eventID)
	if err != nil {
		return nil, fmt.Errorf("get pass: %w", err)
	}

	return scanPass(row)
}

func (r *PassRepository) GetByToken(ctx context.Context, tok string) (*domain.Pass, error) {
	query := `SELECT ` + passColumns + `
			  FROM passes
			  WHERE token = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tok)
	if err != nil {
		return nil, fmt.Errorf("get pass by token: %w", err)
	}

	return scanPass(row)
}

func (r *PassRepository) TokenExists(ctx context.Context, tok string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM passes WHERE token = $1)`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, tok)
	if err != nil {
		return false, fmt.Errorf("check token: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan token check: %w", err)
	}

	return exists, nil
}

// ClaimUse consumes one admission with a single conditional UPDATE: the
// increment only lands while the row still satisfies use_count < max_uses
// and revoked_at IS NULL at write time. Zero affected rows means another
// scanner won the race; the pass is re-read in the same transaction to
// classify the loss as already_used or revoked. This is the only write
// path for scan state, so at-most-max_uses admission holds across any
// number of concurrent scanners and server processes.
func (r *PassRepository) ClaimUse(ctx context.Context, id string, now time.Time) (*domain.Pass, error) {
	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE passes
			  SET use_count = use_count + 1,
			      status = $2,
			      first_scanned_at = COALESCE(first_scanned_at, $3),
			      last_scanned_at = $3,
			      updated_at = $3
			  WHERE id = $1
			    AND revoked_at IS NULL
			    AND use_count < max_uses
			  RETURNING ` + passColumns

	p, err := scanPass(tx.QueryRowContext(ctx, query, id, domain.PassStatusUsed, now))
	if err == nil {
		return p, tx.Commit()
	}
	if !errors.Is(err, domain.ErrPassNotFound) {
		return nil, fmt.Errorf("claim use: %w", err)
	}

	// Lost the conditional write; report what the row looks like now.
	checkQuery := `SELECT ` + passColumns + ` FROM passes WHERE id = $1`
	current, err := scanPass(tx.QueryRowContext(ctx, checkQuery, id))
	if err != nil {
		return nil, err
	}
	if current.Revoked() {
		return current, domain.ErrPassRevoked
	}
	return current, domain.ErrAlreadyUsed
}

// Revoke is terminal: revoked passes never readmit and are kept for audit.
func (r *PassRepository) Revoke(ctx context.Context, id string, now time.Time) (*domain.Pass, error) {
	query := `UPDATE passes
			  SET revoked_at = $2, status = $3, updated_at = $2
			  WHERE id = $1 AND revoked_at IS NULL
			  RETURNING ` + passColumns

	p, err := scanPass(r.db.Master.QueryRowContext(ctx, query, id, now, domain.PassStatusRevoked))
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, domain.ErrPassNotFound) {
		return nil, fmt.Errorf("revoke pass: %w", err)
	}

	checkQuery := `SELECT ` + passColumns + ` FROM passes WHERE id = $1`
	current, scanErr := scanPass(r.db.Master.QueryRowContext(ctx, checkQuery, id))
	if scanErr != nil {
		return nil, domain.ErrPassNotFound
	}
	return current, domain.ErrAlreadyRevoked
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPass(row rowScanner) (*domain.Pass, error) {
	var p domain.Pass
	err := row.Scan(
		&p.ID, &p.EventID, &p.GuestID, &p.Token, &p.Status, &p.UseCount, &p.MaxUses,
		&p.ValidFrom, &p.ValidTo, &p.FirstScannedAt, &p.LastScannedAt, &p.RevokedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrPassNotFound
		}
		return nil, fmt.Errorf("scan pass: %w", err)
	}

	return &p, nil
}
