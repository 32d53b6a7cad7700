package ports

import (
	"context"
	"time"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type PartnerRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Partner, error)
	ListByEventType(ctx context.Context, eventType domain.WebhookEventType) ([]*domain.Partner, error)
}

type WebhookDeliveryRepo interface {
	Insert(ctx context.Context, d *domain.WebhookDelivery) error
	MarkDelivered(ctx context.Context, id string, at time.Time) error
	MarkFailed(ctx context.Context, id, lastError string) error
	MarkDropped(ctx context.Context, id, lastError string) error
	ListRetryable(ctx context.Context, maxAttempts, limit int) ([]*domain.WebhookDelivery, error)
}

// WebhookNotifier fans one engine event out to subscribed partners.
// Implementations must never block the check-in response: services call
// these from detached goroutines and delivery is fire-and-forget.
type WebhookNotifier interface {
	NotifyPassGenerated(ctx context.Context, pass *domain.Pass)
	NotifyCheckIn(ctx context.Context, eventID, passID string, result domain.ScanResult)
	NotifyPassRevoked(ctx context.Context, pass *domain.Pass)
}

// AlertNotifier is the operator-facing side channel for conditions that
// need a human, such as a partner endpoint exhausting its retry budget.
type AlertNotifier interface {
	WebhookDropped(ctx context.Context, partnerID string, eventType domain.WebhookEventType, lastError string)
}
