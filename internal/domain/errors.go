package domain

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrPassNotFound    = errors.New("pass not found")
	ErrGateNotFound    = errors.New("gate not found")
	ErrPartnerNotFound = errors.New("partner not found")
)

var (
	ErrPassRevoked     = errors.New("pass has been revoked")
	ErrPassExpired     = errors.New("pass validity window has ended")
	ErrPassNotYetValid = errors.New("pass validity window has not started")
	ErrAlreadyUsed     = errors.New("pass has no admissions left")
	ErrAlreadyRevoked  = errors.New("pass is already revoked")
)

var (
	ErrMalformedPayload    = errors.New("payload is malformed")
	ErrUnrecognizedFormat  = errors.New("payload format not recognized")
	ErrSignatureMismatch   = errors.New("payload signature mismatch")
	ErrUnsignedPayload     = errors.New("payload carries no signature")
	ErrGateCodeInvalid     = errors.New("gate access code invalid")
	ErrEventInactive       = errors.New("event is not active")
	ErrDuplicateToken      = errors.New("token already exists")
	ErrTokenExhausted      = errors.New("token generation retries exhausted")
	ErrDuplicateAccessCode = errors.New("gate access code already exists")
)

var (
	ErrValidation = errors.New("validation error")
)
