package domain

import "time"

type WebhookEventType string

const (
	WebhookPassGenerated  WebhookEventType = "on_pass_generated"
	WebhookCheckInValid   WebhookEventType = "on_check_in_valid"
	WebhookCheckInInvalid WebhookEventType = "on_check_in_invalid"
	WebhookPassRevoked    WebhookEventType = "on_pass_revoked"
	// WebhookTest is sent by the partner-side configuration test only;
	// partners cannot subscribe to it.
	WebhookTest WebhookEventType = "test"
)

// Partner is an external organizer or integrator receiving signed webhook
// notifications. Mutated only by the (external) settings UI.
type Partner struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	WebhookURL    string    `json:"webhook_url"`
	WebhookSecret string    `json:"-"`
	WebhookEvents []string  `json:"webhook_events"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// WebhookEvent is the wire body POSTed to a partner.
type WebhookEvent struct {
	EventType WebhookEventType `json:"event_type"`
	EventID   string           `json:"event_id"`
	PassID    string           `json:"pass_id,omitempty"`
	Result    ScanResult       `json:"result,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "pending"
	DeliveryStatusDelivered DeliveryStatus = "delivered"
	DeliveryStatusFailed    DeliveryStatus = "failed"
	DeliveryStatusDropped   DeliveryStatus = "dropped"
)

// WebhookDelivery is the persisted outbox row for one partner notification.
// Failed rows are swept by the scheduler until delivered or dropped.
type WebhookDelivery struct {
	ID          string           `json:"id"`
	PartnerID   string           `json:"partner_id"`
	EventType   WebhookEventType `json:"event_type"`
	Payload     []byte           `json:"payload"`
	Status      DeliveryStatus   `json:"status"`
	Attempts    int              `json:"attempts"`
	LastError   *string          `json:"last_error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	DeliveredAt *time.Time       `json:"delivered_at,omitempty"`
}
