package qr

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flapjack766/vetap-website-sub003/internal/domain"
)

const (
	testSecret = "test-signing-secret-0123456789"
	testPassID = "8c9e6e1a-11d4-4cf2-a8b1-2c3d4e5f6a7b"
	testToken  = "4f3c2a1b0d9e8f7a6b5c4d3e2f1a0b9c8d7e6f5a4b3c2d1e0f9a8b7c6d5e4f3c"
)

func newTestCodec() *Codec {
	return NewCodec(Config{Secret: testSecret, AllowPlainTokens: true})
}

func TestCodec_RoundTripV1(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatV1, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "VETAP:"))

	p, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatV1, p.Format)
	assert.Equal(t, testPassID, p.PassID)
	assert.Equal(t, testToken, p.Token)
	assert.True(t, p.Signed())

	assert.NoError(t, c.Verify(p, ""))
}

func TestCodec_RoundTripV2(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatV2, true)
	require.NoError(t, err)

	decoded, err := base64.StdEncoding.DecodeString(raw)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(decoded, &body))
	assert.EqualValues(t, 2, body["version"])
	assert.Equal(t, testPassID, body["p"])
	assert.Equal(t, testToken, body["t"])
	assert.Equal(t, "ev1", body["e"])
	assert.Len(t, body["s"], 16)

	p, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatV2, p.Format)
	assert.Equal(t, testPassID, p.PassID)
	assert.Equal(t, testToken, p.Token)
	assert.Equal(t, "ev1", p.EventID)
	assert.NotZero(t, p.Timestamp)

	assert.NoError(t, c.Verify(p, ""))
}

func TestCodec_RoundTripV3(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatV3, true)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(raw, "{"))

	p, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatV3, p.Format)
	assert.Equal(t, testPassID, p.PassID)
	assert.Equal(t, testToken, p.Token)
	assert.Equal(t, "ev1", p.EventID)

	assert.NoError(t, c.Verify(p, ""))
}

func TestCodec_DecodePlainToken(t *testing.T) {
	c := newTestCodec()

	p, err := c.Decode(testToken)
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, p.Format)
	assert.Equal(t, testToken, p.Token)
	assert.False(t, p.Signed())
}

func TestCodec_VerifyUnsigned(t *testing.T) {
	c := newTestCodec()

	p, err := c.Decode(testToken)
	require.NoError(t, err)

	err = c.Verify(p, "")
	assert.ErrorIs(t, err, domain.ErrUnsignedPayload)
}

func TestCodec_VerifyTamperedSignature(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatV3, true)
	require.NoError(t, err)

	p, err := c.Decode(raw)
	require.NoError(t, err)

	// Flip one character of the signature.
	sig := []byte(p.Signature)
	if sig[0] == 'a' {
		sig[0] = 'b'
	} else {
		sig[0] = 'a'
	}
	p.Signature = string(sig)

	err = c.Verify(p, "")
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestCodec_VerifyTamperedToken(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatV2, true)
	require.NoError(t, err)

	p, err := c.Decode(raw)
	require.NoError(t, err)

	p.Token = strings.Replace(p.Token, "4", "5", 1)

	err = c.Verify(p, "")
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestCodec_VerifyWrongSecret(t *testing.T) {
	signer := newTestCodec()
	verifier := NewCodec(Config{Secret: "a-completely-different-secret"})

	raw, err := signer.Encode(testPassID, testToken, "ev1", FormatV2, true)
	require.NoError(t, err)

	p, err := verifier.Decode(raw)
	require.NoError(t, err)

	err = verifier.Verify(p, "")
	assert.ErrorIs(t, err, domain.ErrSignatureMismatch)
}

func TestCodec_VerifyPartnerSecret(t *testing.T) {
	partner := NewCodec(Config{
		Secret:         testSecret,
		PartnerSecrets: map[string]string{"acme": "acme-partner-secret"},
	})
	acmeSigner := NewCodec(Config{Secret: "acme-partner-secret"})

	raw, err := acmeSigner.Encode(testPassID, testToken, "ev1", FormatV2, true)
	require.NoError(t, err)

	p, err := partner.Decode(raw)
	require.NoError(t, err)

	assert.NoError(t, partner.Verify(p, "acme"))
	assert.ErrorIs(t, partner.Verify(p, ""), domain.ErrSignatureMismatch)
}

func TestCodec_DecodeV1UnsignedSegments(t *testing.T) {
	c := newTestCodec()

	p, err := c.Decode("VETAP:" + testPassID + ":" + testToken)
	require.NoError(t, err)
	assert.Equal(t, FormatV1, p.Format)
	assert.False(t, p.Signed())
}

func TestCodec_DecodeV1Malformed(t *testing.T) {
	c := newTestCodec()

	_, err := c.Decode("VETAP:only-one-segment")
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)

	_, err = c.Decode("VETAP::" + testToken)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCodec_DecodeBase64FallsThroughToPlain(t *testing.T) {
	c := newTestCodec()

	// Valid base64, long enough for a v2 attempt, but not a v2 envelope.
	// It must still be accepted as a bare token.
	raw := base64.StdEncoding.EncodeToString([]byte("this is not a json envelope, just bytes"))
	require.GreaterOrEqual(t, len(raw), 40)

	p, err := c.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, FormatPlain, p.Format)
	assert.Equal(t, raw, p.Token)
}

func TestCodec_DecodeV3MissingToken(t *testing.T) {
	c := newTestCodec()

	_, err := c.Decode(`{"version":3,"pass_id":"p1"}`)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCodec_DecodeV3InvalidJSON(t *testing.T) {
	c := newTestCodec()

	_, err := c.Decode(`{"version":3,`)
	assert.ErrorIs(t, err, domain.ErrMalformedPayload)
}

func TestCodec_DecodeUnrecognized(t *testing.T) {
	c := newTestCodec()

	cases := []string{
		"",
		"   ",
		"short",
		strings.Repeat("x", 129),
		"has spaces inside which tokens never do!",
	}
	for _, raw := range cases {
		_, err := c.Decode(raw)
		assert.ErrorIs(t, err, domain.ErrUnrecognizedFormat, "payload %q", raw)
	}
}

func TestCodec_EncodeUnknownFormat(t *testing.T) {
	c := newTestCodec()

	_, err := c.Encode(testPassID, testToken, "ev1", Format("v9"), true)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCodec_EncodePlain(t *testing.T) {
	c := newTestCodec()

	raw, err := c.Encode(testPassID, testToken, "ev1", FormatPlain, true)
	require.NoError(t, err)
	assert.Equal(t, testToken, raw)
}
