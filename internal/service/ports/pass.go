package ports

import (
	"context"
	"time"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type PassRepo interface {
	Create(ctx context.Context, p *domain.Pass) error
	GetByID(ctx context.Context, id, eventID string) (*domain.Pass, error)
	GetByToken(ctx context.Context, token string) (*domain.Pass, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	ClaimUse(ctx context.Context, id string, now time.Time) (*domain.Pass, error)
	Revoke(ctx context.Context, id string, now time.Time) (*domain.Pass, error)
}
