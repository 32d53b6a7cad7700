package domain

import "time"

// Gate is a physical or virtual entry point at an event. Gates are created
// by event setup and are read-only to the check-in engine; the access code
// lets kiosk devices self-identify without a user login.
type Gate struct {
	ID                string    `json:"id"`
	EventID           string    `json:"event_id"`
	Name              string    `json:"name"`
	AccessCode        string    `json:"access_code"`
	AllowedGuestTypes []string  `json:"allowed_guest_types"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
