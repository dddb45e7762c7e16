package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "app")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "token", cfg.Discord.Token)
	assert.Equal(t, AuthorityLocal, cfg.Combat.Authority)
	assert.Equal(t, 100*time.Millisecond, cfg.Combat.PollInterval)
	assert.Equal(t, 5*time.Minute, cfg.Combat.PromptTimeout)
	assert.Equal(t, "togarashi:authority", cfg.Redis.Channel)
	assert.Equal(t, "togarashi-bot", cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.Telemetry.Endpoint)
	assert.Empty(t, cfg.Discord.GMRoleID)
}

func TestLoad_GMRole(t *testing.T) {
	setRequired(t)
	t.Setenv("DISCORD_GM_ROLE_ID", "role-gm")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "role-gm", cfg.Discord.GMRoleID)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_APP_ID", "app")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoad_Authority(t *testing.T) {
	tests := []struct {
		name      string
		authority string
		redisURL  string
		wantErr   bool
	}{
		{name: "local without redis", authority: AuthorityLocal},
		{name: "host with redis", authority: AuthorityHost, redisURL: "redis://localhost:6379"},
		{name: "remote without redis", authority: AuthorityRemote, wantErr: true},
		{name: "unknown", authority: "gm", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv("TOGARASHI_AUTHORITY", tt.authority)
			t.Setenv("REDIS_URL", tt.redisURL)

			_, err := Load()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	setRequired(t)
	t.Setenv("TOGARASHI_TARGET_POLL_INTERVAL", "soon")

	_, err := Load()

	assert.Error(t, err)
}
