package domain

import "time"

type ScanResult string

const (
	ScanResultValid            ScanResult = "valid"
	ScanResultAlreadyUsed      ScanResult = "already_used"
	ScanResultRevoked          ScanResult = "revoked"
	ScanResultExpired          ScanResult = "expired"
	ScanResultNotYetValid      ScanResult = "not_yet_valid"
	ScanResultPassNotFound     ScanResult = "pass_not_found"
	ScanResultInvalidSignature ScanResult = "invalid_signature"
	ScanResultUnsigned         ScanResult = "unsigned_rejected"
	ScanResultMalformed        ScanResult = "malformed"
)

// ScanLog is one append-only audit row per scan attempt, success or not.
// PassID is nil when the payload could not even be parsed.
type ScanLog struct {
	ID               string     `json:"id"`
	EventID          string     `json:"event_id"`
	PassID           *string    `json:"pass_id,omitempty"`
	GateID           string     `json:"gate_id"`
	ScannerUserID    *string    `json:"scanner_user_id,omitempty"`
	Result           ScanResult `json:"result"`
	RawPayload       string     `json:"raw_payload"`
	ErrorMessage     string     `json:"error_message,omitempty"`
	ProcessingTimeMs int64      `json:"processing_time_ms"`
	ScannedAt        time.Time  `json:"scanned_at"`
}
