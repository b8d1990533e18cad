package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"MATHIKS_DB", "MATHIKS_STORAGE_KEY", "MATHIKS_QUIET"} {
		t.Setenv(k, "") // restores the original value on cleanup
		os.Unsetenv(k)
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "mathiks-data", cfg.StorageKey)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("MATHIKS_DB", "/tmp/custom.db")
	t.Setenv("MATHIKS_STORAGE_KEY", "kid-two")
	t.Setenv("MATHIKS_QUIET", "true")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Config{
		DBPath:     "/tmp/custom.db",
		StorageKey: "kid-two",
		Quiet:      true,
	}, cfg)
}

func TestFromEnvEmptyKeyFallsBack(t *testing.T) {
	t.Setenv("MATHIKS_STORAGE_KEY", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "mathiks-data", cfg.StorageKey)
}

func TestFromEnvInvalidBool(t *testing.T) {
	t.Setenv("MATHIKS_QUIET", "sometimes")

	_, err := FromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}
