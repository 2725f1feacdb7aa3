package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int
	Environment    string
	Version        string
	LogLevel       string
	LogFormat      string
	LogDir         string
	TrustedProxies []string
	PublicBaseURL  string

	// Database
	DBDriver          string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	SQLitePath        string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Discord
	DiscordBotToken     string
	DiscordClientID     string
	DiscordClientSecret string
	DiscordRedirectURI  string

	// Access control
	AdminDiscordIDs []string
	SessionTTL      time.Duration
	SessionCapacity int

	// Broadcasts
	BroadcastCreditCost int
	DefaultDelaySeconds int
	WorkerEnabled       bool
	QueuePollInterval   time.Duration
	QueueErrorBackoff   time.Duration

	// Payments
	ProBotChannelID           string
	PaymentRecipientID        string
	ProBotCreditsPerBroadcast int
	PaymentScanInterval       time.Duration
	PaymentExpiryInterval     time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		Environment:    getEnv("ENVIRONMENT", EnvDev),
		Version:        getEnv("VERSION", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
		LogDir:         getEnv("LOG_DIR", "logs"),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		PublicBaseURL:  getEnv("PUBLIC_BASE_URL", "http://localhost:8080"),

		DBDriver:          strings.ToLower(getEnv("DB_DRIVER", DriverPostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "broadcaster"),
		SQLitePath:        getEnv("SQLITE_PATH", "data/broadcaster.db"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 20),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),

		DiscordBotToken:     getEnv("DISCORD_BOT_TOKEN", ""),
		DiscordClientID:     getEnv("DISCORD_CLIENT_ID", ""),
		DiscordClientSecret: getEnv("DISCORD_CLIENT_SECRET", ""),
		DiscordRedirectURI:  getEnv("DISCORD_REDIRECT_URI", "http://localhost:8080/auth/callback"),

		AdminDiscordIDs: getEnvAsList("ADMIN_DISCORD_IDS"),
		SessionTTL:      getEnvAsDuration("SESSION_TTL", 24*time.Hour),
		SessionCapacity: getEnvAsInt("SESSION_CAPACITY", 10000),

		BroadcastCreditCost: getEnvAsInt("BROADCAST_CREDIT_COST", 1),
		DefaultDelaySeconds: getEnvAsInt("DEFAULT_DELAY_SECONDS", 2),
		WorkerEnabled:       getEnvAsBool("WORKER_ENABLED", true),
		QueuePollInterval:   getEnvAsDuration("QUEUE_POLL_INTERVAL", 5*time.Second),
		QueueErrorBackoff:   getEnvAsDuration("QUEUE_ERROR_BACKOFF", 10*time.Second),

		ProBotChannelID:           getEnv("PROBOT_CHANNEL_ID", ""),
		PaymentRecipientID:        getEnv("PAYMENT_RECIPIENT_ID", ""),
		ProBotCreditsPerBroadcast: getEnvAsInt("PROBOT_CREDITS_PER_BROADCAST", 500),
		PaymentScanInterval:       getEnvAsDuration("PAYMENT_SCAN_INTERVAL", time.Minute),
		PaymentExpiryInterval:     getEnvAsDuration("PAYMENT_EXPIRY_INTERVAL", 5*time.Minute),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.DBDriver != DriverPostgres && cfg.DBDriver != DriverSQLite {
		return nil, fmt.Errorf("invalid DB_DRIVER value %q: must be %s or %s", cfg.DBDriver, DriverPostgres, DriverSQLite)
	}

	// Every broadcast path needs the bot token
	if cfg.DiscordBotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN environment variable must be set")
	}

	if cfg.ProBotCreditsPerBroadcast <= 0 {
		return nil, fmt.Errorf("PROBOT_CREDITS_PER_BROADCAST must be positive, got %d", cfg.ProBotCreditsPerBroadcast)
	}

	return cfg, nil
}

// OAuthEnabled reports whether Discord login is configured
func (c *Config) OAuthEnabled() bool {
	return c.DiscordClientID != "" && c.DiscordClientSecret != ""
}

// PaymentScanEnabled reports whether ProBot transfers can be monitored
func (c *Config) PaymentScanEnabled() bool {
	return c.ProBotChannelID != "" && c.PaymentRecipientID != ""
}

// IsProduction reports whether the app runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == EnvProduction
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the integer value of key, or defaultValue when unset or unparsable
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration returns the duration value of key, or defaultValue when unset or unparsable
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// GetDBConnString returns the connection string for the configured driver
func (c *Config) GetDBConnString() string {
	if c.DBDriver == DriverSQLite {
		return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", c.SQLitePath)
	}
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
