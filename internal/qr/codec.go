// Package qr encodes, decodes and verifies the QR payloads carried by pass
// tokens, and renders them as PNG images. Four wire formats are supported;
// the verifying side auto-detects the format with an ordered, total decode.
package qr

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

type Format string

const (
	// FormatV1 is the delimited string "VETAP:<pass_id>:<token>:<signature>",
	// the most compact form for simple scanners.
	FormatV1 Format = "v1"
	// FormatV2 is base64 of a compact-keyed JSON object.
	FormatV2 Format = "v2"
	// FormatV3 is plain JSON, used where payload size is unconstrained.
	FormatV3 Format = "v3"
	// FormatPlain is a bare token string. No signature, lowest trust tier,
	// accepted for legacy/migrated passes only.
	FormatPlain Format = "plain"
)

const v1Prefix = "VETAP:"

// signatureLen is the truncated HMAC length in hex characters, kept short
// for QR compactness.
const signatureLen = 16

const (
	plainTokenMinLen = 20
	plainTokenMaxLen = 128
)

// Payload is the decoded form of one QR string. EventID and Timestamp are
// absent in v1 and plain payloads; Signature is absent in plain payloads.
type Payload struct {
	Format    Format
	PassID    string
	Token     string
	EventID   string
	Signature string
	Timestamp int64
}

func (p *Payload) Signed() bool {
	return p.Signature != ""
}

// Config carries the signing policy. The deployment-wide secret signs and
// verifies by default; partner-scoped secrets override it per partner id.
type Config struct {
	Secret           string
	PartnerSecrets   map[string]string
	AllowPlainTokens bool
}

type Codec struct {
	secret         []byte
	partnerSecrets map[string][]byte
	allowPlain     bool
}

func NewCodec(cfg Config) *Codec {
	partnerSecrets := make(map[string][]byte, len(cfg.PartnerSecrets))
	for id, secret := range cfg.PartnerSecrets {
		partnerSecrets[id] = []byte(secret)
	}
	return &Codec{
		secret:         []byte(cfg.Secret),
		partnerSecrets: partnerSecrets,
		allowPlain:     cfg.AllowPlainTokens,
	}
}

// AllowsPlainTokens reports whether bare legacy tokens are accepted as a
// lower-trust tier.
func (c *Codec) AllowsPlainTokens() bool {
	return c.allowPlain
}

type v2Body struct {
	Version int    `json:"version"`
	P       string `json:"p"`
	T       string `json:"t"`
	E       string `json:"e,omitempty"`
	S       string `json:"s,omitempty"`
	TS      int64  `json:"ts,omitempty"`
}

type v3Body struct {
	Version   int    `json:"version"`
	PassID    string `json:"pass_id"`
	Token     string `json:"token"`
	EventID   string `json:"event_id,omitempty"`
	Signature string `json:"signature,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Encode renders a payload in the requested format. Signed v2/v3 payloads
// carry the signing timestamp; v1 has no timestamp segment and is signed
// with timestamp zero.
func (c *Codec) Encode(passID, token, eventID string, format Format, includeSignature bool) (string, error) {
	switch format {
	case FormatV1:
		if !includeSignature {
			return v1Prefix + passID + ":" + token, nil
		}
		return v1Prefix + passID + ":" + token + ":" + c.sign(passID, token, 0, c.secret), nil

	case FormatV2:
		body := v2Body{Version: 2, P: passID, T: token, E: eventID}
		if includeSignature {
			body.TS = time.Now().Unix()
			body.S = c.sign(passID, token, body.TS, c.secret)
		}
		raw, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("marshal v2 payload: %w", err)
		}
		return base64.StdEncoding.EncodeToString(raw), nil

	case FormatV3:
		body := v3Body{Version: 3, PassID: passID, Token: token, EventID: eventID}
		if includeSignature {
			body.Timestamp = time.Now().Unix()
			body.Signature = c.sign(passID, token, body.Timestamp, c.secret)
		}
		raw, err := json.Marshal(body)
		if err != nil {
			return "", fmt.Errorf("marshal v3 payload: %w", err)
		}
		return string(raw), nil

	case FormatPlain:
		return token, nil

	default:
		return "", fmt.Errorf("%w: unknown payload format %q", domain.ErrValidation, format)
	}
}

// Decode classifies and parses a raw QR string. Detection order: the v1
// prefix, then a base64 v2 attempt (falling through on failure), then v3
// JSON, then a bare token in the plain length range.
func (c *Codec) Decode(raw string) (*Payload, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, domain.ErrUnrecognizedFormat
	}

	if strings.HasPrefix(raw, v1Prefix) {
		return decodeV1(raw)
	}

	if len(raw) >= 40 && isBase64(raw) {
		if p, ok := decodeV2(raw); ok {
			return p, nil
		}
		// Not a v2 envelope; may still be a long bare base64 token.
	}

	if strings.HasPrefix(raw, "{") {
		return decodeV3(raw)
	}

	if len(raw) >= plainTokenMinLen && len(raw) <= plainTokenMaxLen && isTokenString(raw) {
		return &Payload{Format: FormatPlain, Token: raw}, nil
	}

	return nil, domain.ErrUnrecognizedFormat
}

// Verify recomputes the HMAC from the decoded fields and compares it in
// constant time. Plain and otherwise unsigned payloads report an unsigned state:
// a lower-trust state, rejected or not by check-in policy, distinct from a
// forged signature. partnerID selects a partner-scoped secret when one is
// configured; otherwise the deployment secret applies.
func (c *Codec) Verify(p *Payload, partnerID string) error {
	if !p.Signed() {
		return domain.ErrUnsignedPayload
	}

	expected := c.sign(p.PassID, p.Token, p.Timestamp, c.secretFor(partnerID))
	if subtle.ConstantTimeCompare([]byte(expected), []byte(p.Signature)) != 1 {
		return domain.ErrSignatureMismatch
	}
	return nil
}

func (c *Codec) secretFor(partnerID string) []byte {
	if partnerID != "" {
		if secret, ok := c.partnerSecrets[partnerID]; ok {
			return secret
		}
	}
	return c.secret
}

func (c *Codec) sign(passID, token string, ts int64, secret []byte) string {
	mac := hmac.New(sha256.New, secret)
	fmt.Fprintf(mac, "%s:%s:%d", passID, token, ts)
	return hex.EncodeToString(mac.Sum(nil))[:signatureLen]
}

func decodeV1(raw string) (*Payload, error) {
	parts := strings.Split(strings.TrimPrefix(raw, v1Prefix), ":")
	p := &Payload{Format: FormatV1}
	switch len(parts) {
	case 3:
		p.PassID, p.Token, p.Signature = parts[0], parts[1], parts[2]
	case 2:
		p.PassID, p.Token = parts[0], parts[1]
	default:
		return nil, fmt.Errorf("%w: v1 payload has %d segments", domain.ErrMalformedPayload, len(parts))
	}
	if p.PassID == "" || p.Token == "" {
		return nil, fmt.Errorf("%w: v1 payload has empty segments", domain.ErrMalformedPayload)
	}
	return p, nil
}

func decodeV2(raw string) (*Payload, bool) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, false
	}
	var body v2Body
	if err := json.Unmarshal(decoded, &body); err != nil {
		return nil, false
	}
	if body.Version != 2 || body.T == "" {
		return nil, false
	}
	return &Payload{
		Format:    FormatV2,
		PassID:    body.P,
		Token:     body.T,
		EventID:   body.E,
		Signature: body.S,
		Timestamp: body.TS,
	}, true
}

func decodeV3(raw string) (*Payload, error) {
	var body v3Body
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)
	}
	if body.Token == "" {
		return nil, fmt.Errorf("%w: v3 payload has no token", domain.ErrMalformedPayload)
	}
	return &Payload{
		Format:    FormatV3,
		PassID:    body.PassID,
		Token:     body.Token,
		EventID:   body.EventID,
		Signature: body.Signature,
		Timestamp: body.Timestamp,
	}, nil
}

func isBase64(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}

func isTokenString(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '+' || r == '/' || r == '=':
		default:
			return false
		}
	}
	return true
}
