package domain

import "time"

type PassStatus string

const (
	PassStatusUnused  PassStatus = "unused"
	PassStatusUsed    PassStatus = "used"
	PassStatusRevoked PassStatus = "revoked"
)

// Pass is one issued admission ticket. The token is immutable once issued;
// status and the scan timestamps are mutated only through PassRepo.ClaimUse
// and Revoke. Passes are never deleted.
type Pass struct {
	ID             string     `json:"id"`
	EventID        string     `json:"event_id"`
	GuestID        string     `json:"guest_id"`
	Token          string     `json:"token"`
	Status         PassStatus `json:"status"`
	UseCount       int        `json:"use_count"`
	MaxUses        int        `json:"max_uses"`
	ValidFrom      *time.Time `json:"valid_from,omitempty"`
	ValidTo        *time.Time `json:"valid_to,omitempty"`
	FirstScannedAt *time.Time `json:"first_scanned_at,omitempty"`
	LastScannedAt  *time.Time `json:"last_scanned_at,omitempty"`
	RevokedAt      *time.Time `json:"revoked_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Exhausted reports whether every admission on the pass has been consumed.
func (p *Pass) Exhausted() bool {
	return p.UseCount >= p.MaxUses
}

func (p *Pass) Revoked() bool {
	return p.RevokedAt != nil
}

// WithinWindow evaluates the optional validity window against now.
// Temporal states are derived, never persisted.
func (p *Pass) WithinWindow(now time.Time) error {
	if p.ValidFrom != nil && now.Before(*p.ValidFrom) {
		return ErrPassNotYetValid
	}
	if p.ValidTo != nil && now.After(*p.ValidTo) {
		return ErrPassExpired
	}
	return nil
}

type IssuePassInput struct {
	EventID   string
	GuestID   string
	MaxUses   int
	ValidFrom *time.Time
	ValidTo   *time.Time
}
