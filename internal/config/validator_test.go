package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("ENV_SCHEMA_VERSION", ExpectedEnvSchemaVersion)
	t.Setenv("DB_DRIVER", DriverSQLite)
	t.Setenv("DISCORD_BOT_TOKEN", "token")
	t.Setenv("DISCORD_CLIENT_ID", "id")
	t.Setenv("DISCORD_CLIENT_SECRET", "secret")
	t.Setenv("DISCORD_REDIRECT_URI", "http://localhost/auth/callback")
}

func TestValidateEnv_MissingVersion(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "")
	os.Unsetenv("ENV_SCHEMA_VERSION")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv("ENV_SCHEMA_VERSION", "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_PostgresRequiresDBVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_DRIVER", DriverPostgres)
	t.Setenv("DB_HOST", "")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_HOST")
}

func TestValidateEnv_SQLiteSkipsDBVars(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_HOST", "")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DB_PASSWORD", "change_this_secure_password")
	t.Setenv("ADMIN_DISCORD_IDS", "")
	t.Setenv("PROBOT_CHANNEL_ID", "1")
	t.Setenv("PAYMENT_RECIPIENT_ID", "2")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err, "Should not error even with warnings")
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "ADMIN_DISCORD_IDS")
}

func TestValidateEnvWithWarnings_LoginDisabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DISCORD_CLIENT_SECRET", "")
	t.Setenv("ADMIN_DISCORD_IDS", "123456789012345678")
	t.Setenv("PROBOT_CHANNEL_ID", "1")
	t.Setenv("PAYMENT_RECIPIENT_ID", "2")

	warnings, err := ValidateEnvWithWarnings()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "Discord login is disabled")
}
