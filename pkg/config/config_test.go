package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.Token)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 5, cfg.MaxToggleItems)
	assert.Equal(t, 3, cfg.MaxCountryItems)
	assert.Equal(t, 5, cfg.MaxModalInputs)
	assert.Equal(t, "This is not your cart!", cfg.Messages.NotYourCart)
	assert.NotEmpty(t, cfg.Messages.EmptyCart)
	assert.NotEmpty(t, cfg.Messages.SessionExpired)
}

func TestInitTokenFallback(t *testing.T) {
	viper.Reset()
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("TOKEN", "fallback-token")

	cfg, err := Init()
	require.NoError(t, err)
	assert.Equal(t, "fallback-token", cfg.Token)
}

func TestInitMissingToken(t *testing.T) {
	viper.Reset()
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("TOKEN", "")

	_, err := Init()
	assert.Error(t, err)
}
