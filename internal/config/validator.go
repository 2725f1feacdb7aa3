package config

import (
	"fmt"
	"os"
	"strings"
)

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists all environment variables that must be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"DB_DRIVER",
	"DISCORD_BOT_TOKEN",
}

// postgresEnvVars are only required when DB_DRIVER=postgres
var postgresEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := RequiredEnvVars
	if strings.ToLower(os.Getenv("DB_DRIVER")) == DriverPostgres {
		required = append(append([]string{}, RequiredEnvVars...), postgresEnvVars...)
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("DISCORD_CLIENT_ID") == "" || os.Getenv("DISCORD_CLIENT_SECRET") == "" {
		warnings = append(warnings, "DISCORD_CLIENT_ID or DISCORD_CLIENT_SECRET is empty - Discord login is disabled")
	}

	if os.Getenv("ADMIN_DISCORD_IDS") == "" {
		warnings = append(warnings, "ADMIN_DISCORD_IDS is empty - no admin will be seeded on startup")
	}

	if os.Getenv("PROBOT_CHANNEL_ID") == "" || os.Getenv("PAYMENT_RECIPIENT_ID") == "" {
		warnings = append(warnings, "PROBOT_CHANNEL_ID or PAYMENT_RECIPIENT_ID is empty - automatic payment detection is disabled")
	}

	return warnings, nil
}
