package bootstrap

// File system permissions
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log file rotation
const (
	// LogFileTimestampFormat names session log files (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "%s_%s.log"
	LogFileExtension       = ".log"

	// LogFileRetentionCount is how many older session files survive a restart
	LogFileRetentionCount = 9
)

// Log messages
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting Broadcaster Pro"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgDatabaseReady       = "Database ready"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"

	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgWorkerShutdownFailed = "Worker shutdown failed"
	LogMsgPoolShutdownFailed   = "Worker pool did not drain"
)

// Error messages
const (
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
	ErrMsgFailedOpenDatabase  = "failed to open database"
	ErrMsgFailedMigrate       = "failed to run migrations"
)
