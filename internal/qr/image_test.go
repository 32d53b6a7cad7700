package qr

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

func TestRenderPNGDataURL(t *testing.T) {
	url, err := RenderPNGDataURL("VETAP:p1:"+testToken, RenderOptions{})

	require.NoError(t, err)
	require.True(t, strings.HasPrefix(url, "data:image/png;base64,"))

	png, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:image/png;base64,"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestRenderPNGDataURL_EmptyPayload(t *testing.T) {
	_, err := RenderPNGDataURL("", RenderOptions{})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRenderPNGDataURL_SizeCap(t *testing.T) {
	_, err := RenderPNGDataURL("payload", RenderOptions{Size: 4096})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRenderPNGDataURL_UnknownLevel(t *testing.T) {
	_, err := RenderPNGDataURL("payload", RenderOptions{Level: "X"})

	assert.ErrorIs(t, err, domain.ErrValidation)
}
