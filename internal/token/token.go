// Package token produces the random identifiers used by the pass engine:
// long unguessable pass tokens and short human-typable gate access codes.
// Uniqueness is enforced by the store; callers retry on collision.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

type Encoding string

const (
	EncodingHex       Encoding = "hex"
	EncodingBase64    Encoding = "base64"
	EncodingBase64URL Encoding = "base64url"
)

// DefaultLength is the token entropy in bytes. 256 bits makes collisions
// astronomically unlikely; the store constraint is the real guarantee.
const DefaultLength = 32

// gateCodeAlphabet drops visually ambiguous characters (0/O, 1/I/L).
const gateCodeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const GateCodeLength = 8

// Generate returns lengthBytes of cryptographically secure randomness in
// the requested encoding.
func Generate(lengthBytes int, enc Encoding) (string, error) {
	if lengthBytes <= 0 {
		lengthBytes = DefaultLength
	}

	buf := make([]byte, lengthBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	switch enc {
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(buf), nil
	case EncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(buf), nil
	case EncodingHex, "":
		return hex.EncodeToString(buf), nil
	default:
		return "", fmt.Errorf("unknown token encoding %q", enc)
	}
}

// GenerateGateCode returns an 8-character access code drawn uniformly from
// the unambiguous alphabet. Rejection sampling avoids modulo bias.
func GenerateGateCode() (string, error) {
	n := len(gateCodeAlphabet)
	limit := 256 - (256 % n)

	code := make([]byte, 0, GateCodeLength)
	buf := make([]byte, 16)
	for len(code) < GateCodeLength {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, b := range buf {
			if int(b) >= limit {
				continue
			}
			code = append(code, gateCodeAlphabet[int(b)%n])
			if len(code) == GateCodeLength {
				break
			}
		}
	}

	return string(code), nil
}
