package ports

import (
	"context"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type ScanLogRepo interface {
	Insert(ctx context.Context, l *domain.ScanLog) error
	ListByEvent(ctx context.Context, eventID string, limit int) ([]*domain.ScanLog, error)
}
