package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/wb-go/wbf/ginext"
)

const scannerIDKey = "scanner_id"

// ScannerIdentity extracts the scanning user's id from an optional bearer
// token so scan logs can attribute attempts. Kiosk devices authenticate by
// gate access code instead and send no token; the request proceeds either
// way. This is attribution, not access control.
func ScannerIdentity(secret string) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if raw, ok := strings.CutPrefix(header, "Bearer "); ok {
			if id := subjectFromToken(raw, secret); id != "" {
				c.Set(scannerIDKey, id)
			}
		}

		c.Next()
	}
}

// ScannerID returns the attributed scanner user id, empty for kiosks and
// unauthenticated devices.
func ScannerID(c *ginext.Context) string {
	return c.GetString(scannerIDKey)
}

func subjectFromToken(raw, secret string) string {
	claims := jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !tok.Valid {
		return ""
	}

	return claims.Subject
}
