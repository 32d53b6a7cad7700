package domain

import "time"

type EventStatus string

const (
	EventStatusDraft  EventStatus = "draft"
	EventStatusActive EventStatus = "active"
	EventStatusEnded  EventStatus = "ended"
)

// Event is owned by the (external) event-management collaborator; the
// engine only reads it to gate issuance and kiosk authentication.
type Event struct {
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Status    EventStatus `json:"status"`
	StartsAt  time.Time   `json:"starts_at"`
	EndsAt    time.Time   `json:"ends_at"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (e *Event) Active() bool {
	return e.Status == EventStatusActive
}
