package config

// Database drivers
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Environments
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "prod"
)
