package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigningConfig_PartnerSecretMap(t *testing.T) {
	cfg := SigningConfig{
		PartnerSecrets: "acme:0123456789abcdef,globex:fedcba9876543210",
	}

	secrets, err := cfg.PartnerSecretMap()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"acme":   "0123456789abcdef",
		"globex": "fedcba9876543210",
	}, secrets)
}

func TestSigningConfig_PartnerSecretMap_Empty(t *testing.T) {
	secrets, err := SigningConfig{}.PartnerSecretMap()
	require.NoError(t, err)
	assert.Nil(t, secrets)
}

func TestSigningConfig_PartnerSecretMap_TrimsSpaces(t *testing.T) {
	cfg := SigningConfig{PartnerSecrets: " acme:s1 , globex:s2 ,"}

	secrets, err := cfg.PartnerSecretMap()
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"acme": "s1", "globex": "s2"}, secrets)
}

func TestSigningConfig_PartnerSecretMap_Malformed(t *testing.T) {
	cases := []string{
		"acme",
		"acme:",
		":secret",
		"acme:s1,globex",
	}

	for _, raw := range cases {
		_, err := SigningConfig{PartnerSecrets: raw}.PartnerSecretMap()
		assert.Error(t, err, "input %q", raw)
	}
}
