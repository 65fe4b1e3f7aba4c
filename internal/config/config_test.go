package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("UBI_EMAIL", "")
	t.Setenv("UBI_PASSWORD", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UBI_EMAIL")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UBI_EMAIL", "player@example.com")
	t.Setenv("UBI_PASSWORD", "hunter2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "r6-tracker", cfg.UserAgent)
	assert.Equal(t, "private", cfg.TokenDir)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 5, cfg.RatePerSecond)
	assert.Regexp(t, seasonCodePattern, cfg.CurrentSeason)
}

func TestLoadRejectsInvalidSeasonCode(t *testing.T) {
	t.Setenv("UBI_EMAIL", "player@example.com")
	t.Setenv("UBI_PASSWORD", "hunter2")

	for _, code := range []string{"Y0S1", "Y9S5", "Y9S0", "S1Y9", "y9s2", "Y9S22"} {
		t.Setenv("CURRENT_SEASON", code)
		_, err := Load()
		assert.Error(t, err, code)
	}
}

func TestLoadAcceptsMultiDigitYear(t *testing.T) {
	t.Setenv("UBI_EMAIL", "player@example.com")
	t.Setenv("UBI_PASSWORD", "hunter2")
	t.Setenv("CURRENT_SEASON", "Y10S4")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "Y10S4", cfg.CurrentSeason)
}
