// Package webhook delivers signed partner notifications. Delivery is
// fire-and-forget relative to the scan response: services invoke the
// notifier from detached goroutines, failures are retried with backoff and
// eventually dropped, and nothing here can fail a check-in.
package webhook

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
	"github.com/Flapjack766/vetap-website-sub003/internal/service/ports"
)

// SignatureHeader carries "sha256=<hex hmac>" of the raw request body,
// keyed with the partner's webhook secret.
const SignatureHeader = "X-Vetap-Signature"

const defaultSweepBatch = 50

type Config struct {
	Timeout     time.Duration
	MaxAttempts int
	RetryDelay  time.Duration
}

type Dispatcher struct {
	partners    ports.PartnerRepo
	deliveries  ports.WebhookDeliveryRepo
	alerts      ports.AlertNotifier
	client      *http.Client
	strategy    retry.Strategy
	maxAttempts int
	logger      logger.Logger
}

func NewDispatcher(
	partners ports.PartnerRepo,
	deliveries ports.WebhookDeliveryRepo,
	alerts ports.AlertNotifier,
	cfg Config,
	logger logger.Logger,
) *Dispatcher {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	delay := cfg.RetryDelay
	if delay <= 0 {
		delay = time.Second
	}

	return &Dispatcher{
		partners:   partners,
		deliveries: deliveries,
		alerts:     alerts,
		client:     &http.Client{Timeout: timeout},
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    delay,
			Backoff:  2,
		},
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

func (d *Dispatcher) NotifyPassGenerated(ctx context.Context, pass *domain.Pass) {
	d.dispatch(ctx, domain.WebhookEvent{
		EventType: domain.WebhookPassGenerated,
		EventID:   pass.EventID,
		PassID:    pass.ID,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) NotifyCheckIn(ctx context.Context, eventID, passID string, result domain.ScanResult) {
	eventType := domain.WebhookCheckInInvalid
	if result == domain.ScanResultValid {
		eventType = domain.WebhookCheckInValid
	}

	d.dispatch(ctx, domain.WebhookEvent{
		EventType: eventType,
		EventID:   eventID,
		PassID:    passID,
		Result:    result,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) NotifyPassRevoked(ctx context.Context, pass *domain.Pass) {
	d.dispatch(ctx, domain.WebhookEvent{
		EventType: domain.WebhookPassRevoked,
		EventID:   pass.EventID,
		PassID:    pass.ID,
		Timestamp: time.Now().UTC(),
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, ev domain.WebhookEvent) {
	body, err := json.Marshal(ev)
	if err != nil {
		d.logger.Error("failed to marshal webhook event",
			logger.String("event_type", string(ev.EventType)),
			logger.String("error", err.Error()),
		)
		return
	}

	partners, err := d.partners.ListByEventType(ctx, ev.EventType)
	if err != nil {
		d.logger.Error("failed to list webhook subscribers",
			logger.String("event_type", string(ev.EventType)),
			logger.String("error", err.Error()),
		)
		return
	}

	for _, partner := range partners {
		d.deliver(ctx, partner, ev.EventType, body)
	}
}

func (d *Dispatcher) deliver(ctx context.Context, partner *domain.Partner, eventType domain.WebhookEventType, body []byte) {
	delivery := &domain.WebhookDelivery{
		ID:        uuid.NewString(),
		PartnerID: partner.ID,
		EventType: eventType,
		Payload:   body,
		Status:    domain.DeliveryStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if err := d.deliveries.Insert(ctx, delivery); err != nil {
		// Still attempt the POST; only the sweep loses track of this one.
		d.logger.Error("failed to record webhook delivery",
			logger.String("partner_id", partner.ID),
			logger.String("error", err.Error()),
		)
	}

	err := retry.Do(func() error {
		return d.post(ctx, partner.WebhookURL, partner.WebhookSecret, body)
	}, d.strategy)
	if err == nil {
		if err := d.deliveries.MarkDelivered(ctx, delivery.ID, time.Now().UTC()); err != nil {
			d.logger.Error("failed to mark webhook delivered",
				logger.String("delivery_id", delivery.ID),
				logger.String("error", err.Error()),
			)
		}
		return
	}

	d.logger.Warn("webhook delivery failed, left for redelivery sweep",
		logger.String("partner_id", partner.ID),
		logger.String("event_type", string(eventType)),
		logger.String("error", err.Error()),
	)
	if err := d.deliveries.MarkFailed(ctx, delivery.ID, err.Error()); err != nil {
		d.logger.Error("failed to mark webhook failed",
			logger.String("delivery_id", delivery.ID),
			logger.String("error", err.Error()),
		)
	}
}

// Redeliver sweeps failed outbox rows once, delivering what it can and
// dropping rows that exhaust the attempt budget. Called by the scheduler.
func (d *Dispatcher) Redeliver(ctx context.Context) (int, error) {
	rows, err := d.deliveries.ListRetryable(ctx, d.maxAttempts, defaultSweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list retryable deliveries: %w", err)
	}

	delivered := 0
	for _, row := range rows {
		partner, err := d.partners.GetByID(ctx, row.PartnerID)
		if err != nil {
			d.drop(ctx, row, "partner no longer exists")
			continue
		}

		if err := d.post(ctx, partner.WebhookURL, partner.WebhookSecret, row.Payload); err != nil {
			if row.Attempts+1 >= d.maxAttempts {
				d.drop(ctx, row, err.Error())
			} else if markErr := d.deliveries.MarkFailed(ctx, row.ID, err.Error()); markErr != nil {
				d.logger.Error("failed to mark webhook failed",
					logger.String("delivery_id", row.ID),
					logger.String("error", markErr.Error()),
				)
			}
			continue
		}

		if err := d.deliveries.MarkDelivered(ctx, row.ID, time.Now().UTC()); err != nil {
			d.logger.Error("failed to mark webhook delivered",
				logger.String("delivery_id", row.ID),
				logger.String("error", err.Error()),
			)
		}
		delivered++
	}

	return delivered, nil
}

func (d *Dispatcher) drop(ctx context.Context, row *domain.WebhookDelivery, reason string) {
	d.logger.Error("webhook delivery dropped",
		logger.String("delivery_id", row.ID),
		logger.String("partner_id", row.PartnerID),
		logger.String("event_type", string(row.EventType)),
		logger.String("reason", reason),
	)
	if err := d.deliveries.MarkDropped(ctx, row.ID, reason); err != nil {
		d.logger.Error("failed to mark webhook dropped",
			logger.String("delivery_id", row.ID),
			logger.String("error", err.Error()),
		)
	}
	d.alerts.WebhookDropped(ctx, row.PartnerID, row.EventType, reason)
}

// SendTest POSTs a test event to an arbitrary endpoint, bypassing the
// outbox and the retry budget, and returns the immediate HTTP status. Used
// by partners to validate their webhook configuration.
func (d *Dispatcher) SendTest(ctx context.Context, url, secret string) (int, error) {
	body, err := json.Marshal(domain.WebhookEvent{
		EventType: domain.WebhookTest,
		Timestamp: time.Now().UTC(),
	})
	if err != nil {
		return 0, fmt.Errorf("marshal test event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("build test request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, Sign(secret, body))

	resp, err := d.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send test webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (d *Dispatcher) post(ctx context.Context, url, secret string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SignatureHeader, Sign(secret, body))

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
	}

	return nil
}

// Sign computes the webhook body signature: sha256= followed by the hex
// HMAC-SHA256 of the raw body under the partner secret.
func Sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}
