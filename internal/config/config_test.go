package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	viper.Reset()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfigFile(t, `
DiscordBot:
  Token: "test-token"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordBot.Token)
	assert.Equal(t, "banker", cfg.DiscordBot.AdminRoleName)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "balances.json", cfg.Storage.BalancesFile)
	assert.Equal(t, "requests.json", cfg.Storage.RequestsFile)
	assert.Equal(t, "localhost", cfg.PostgreSQL.Host)
	assert.Equal(t, 5432, cfg.PostgreSQL.Port)
	assert.Equal(t, 10, cfg.PostgreSQL.PoolMaxConns)
}

func TestLoad_TokenFromEnvironment(t *testing.T) {
	path := writeConfigFile(t, `
Storage:
  Backend: "file"
`)
	t.Setenv("DISCORD_BOT_TOKEN", "env-token")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-token", cfg.DiscordBot.Token)
}

func TestLoad_MissingTokenFails(t *testing.T) {
	path := writeConfigFile(t, `
Storage:
  Backend: "file"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_UnknownBackendFails(t *testing.T) {
	path := writeConfigFile(t, `
DiscordBot:
  Token: "test-token"
Storage:
  Backend: "redis"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestLoad_OverridesFromFile(t *testing.T) {
	path := writeConfigFile(t, `
DiscordBot:
  Token: "test-token"
  AdminRoleName: "treasurer"
Storage:
  Backend: "postgres"
PostgreSQL:
  Host: "db.example.com"
  Port: 5433
  DBName: "bank"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "treasurer", cfg.DiscordBot.AdminRoleName)
	assert.Equal(t, "postgres", cfg.Storage.Backend)
	assert.Equal(t, "db.example.com", cfg.PostgreSQL.Host)
	assert.Equal(t, 5433, cfg.PostgreSQL.Port)
	assert.Equal(t, "bank", cfg.PostgreSQL.DBName)
}
