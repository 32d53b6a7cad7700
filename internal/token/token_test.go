package token

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_HexLength(t *testing.T) {
	tok, err := Generate(32, EncodingHex)

	require.NoError(t, err)
	assert.Len(t, tok, 64)

	_, err = hex.DecodeString(tok)
	assert.NoError(t, err)
}

func TestGenerate_DefaultsOnZeroLength(t *testing.T) {
	tok, err := Generate(0, EncodingHex)

	require.NoError(t, err)
	assert.Len(t, tok, DefaultLength*2)
}

func TestGenerate_Base64(t *testing.T) {
	tok, err := Generate(32, EncodingBase64)

	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestGenerate_Base64URL(t *testing.T) {
	tok, err := Generate(32, EncodingBase64URL)

	require.NoError(t, err)
	assert.NotContains(t, tok, "+")
	assert.NotContains(t, tok, "/")
	assert.NotContains(t, tok, "=")

	decoded, err := base64.RawURLEncoding.DecodeString(tok)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)
}

func TestGenerate_UnknownEncoding(t *testing.T) {
	_, err := Generate(32, Encoding("rot13"))

	assert.Error(t, err)
}

func TestGenerate_Uniqueness(t *testing.T) {
	const n = 10000

	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		tok, err := Generate(32, EncodingHex)
		require.NoError(t, err)

		_, dup := seen[tok]
		require.False(t, dup, "duplicate token after %d generations", i)
		seen[tok] = struct{}{}
	}
}

func TestGenerateGateCode_Alphabet(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := GenerateGateCode()
		require.NoError(t, err)
		require.Len(t, code, GateCodeLength)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(gateCodeAlphabet, r),
				"unexpected character %q in gate code %s", r, code)
		}
	}
}

func TestGenerateGateCode_NoAmbiguousCharacters(t *testing.T) {
	for _, forbidden := range []string{"0", "O", "1", "I", "L"} {
		assert.NotContains(t, gateCodeAlphabet, forbidden)
	}
}
