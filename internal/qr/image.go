package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

const (
	defaultImageSize = 256
	maxImageSize     = 2048
)

type RenderOptions struct {
	Size       int
	Level      string // L, M, Q or H
	MarginSize int
}

// RenderPNGDataURL renders a payload string as a QR PNG and returns it as
// a data URL, ready for an <img> src on the scanning device.
func RenderPNGDataURL(payload string, opts RenderOptions) (string, error) {
	if payload == "" {
		return "", fmt.Errorf("%w: payload is required", domain.ErrValidation)
	}

	size := opts.Size
	if size <= 0 {
		size = defaultImageSize
	}
	if size > maxImageSize {
		return "", fmt.Errorf("%w: size must be at most %d", domain.ErrValidation, maxImageSize)
	}

	level, err := recoveryLevel(opts.Level)
	if err != nil {
		return "", err
	}

	code, err := qrcode.New(payload, level)
	if err != nil {
		return "", fmt.Errorf("build qr code: %w", err)
	}
	code.DisableBorder = opts.MarginSize == 0

	png, err := code.PNG(size)
	if err != nil {
		return "", fmt.Errorf("render qr png: %w", err)
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

func recoveryLevel(level string) (qrcode.RecoveryLevel, error) {
	switch level {
	case "", "M":
		return qrcode.Medium, nil
	case "L":
		return qrcode.Low, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: unknown recovery level %q", domain.ErrValidation, level)
	}
}
