package domain

// CheckInInput carries one scan attempt as received at a gate.
// ScannerID is optional attribution and never affects the verdict.
type CheckInInput struct {
	RawPayload string
	GateID     string
	ScannerID  string
}

// CheckInOutcome is the definitive classification of one scan. Err carries
// the sentinel matching Result; it is nil only for a valid admission.
type CheckInOutcome struct {
	Result ScanResult
	Pass   *Pass
	Err    error
}
