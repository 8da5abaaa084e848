package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseConfig tests unmarshalling the app section.
func TestParseConfig(t *testing.T) {
	v := viper.New()
	v.Set("app.foreground_dir", "fg")
	v.Set("app.background_dir", "bg")
	v.Set("app.output_dir", "out")
	v.Set("app.profile_size", 256)
	v.Set("app.fill_color", "#000000")
	v.Set("app.slack_api_url", "https://example.com/api")
	v.Set("app.token_file", ".token.json")

	cfg, err := ParseConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "fg", cfg.App.ForegroundDir)
	assert.Equal(t, "bg", cfg.App.BackgroundDir)
	assert.Equal(t, "out", cfg.App.OutputDir)
	assert.Equal(t, 256, cfg.App.ProfileSize)
	assert.Equal(t, "#000000", cfg.App.FillColor)
	assert.Equal(t, "https://example.com/api", cfg.App.SlackAPIURL)
	assert.Equal(t, ".token.json", cfg.App.TokenFile)
}

// TestGetEnv tests the environment fallback helper.
func TestGetEnv(t *testing.T) {
	t.Setenv("DAILY_AVATAR_TEST_KEY", "set")
	assert.Equal(t, "set", GetEnv("DAILY_AVATAR_TEST_KEY", "default"))
	assert.Equal(t, "default", GetEnv("DAILY_AVATAR_TEST_KEY_MISSING", "default"))
}
