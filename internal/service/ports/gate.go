package ports

import (
	"context"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type GateRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Gate, error)
	GetByAccessCode(ctx context.Context, code string) (*domain.Gate, error)
	CodeExists(ctx context.Context, eventID, code string) (bool, error)
}

type EventRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Event, error)
}
