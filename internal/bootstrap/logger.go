package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/config"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
)

// SetupLogger writes logs to stdout and a fresh session file under cfg.LogDir,
// keeping the newest LogFileRetentionCount older files. serviceName prefixes the file name.
// The caller must close the returned file.
func SetupLogger(cfg *config.Config, serviceName string) (*os.File, error) {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, serviceName, LogFileRetentionCount)

	name := fmt.Sprintf(LogFileNamePattern, serviceName, time.Now().Format(LogFileTimestampFormat))
	logFile, err := os.OpenFile(filepath.Join(cfg.LogDir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, serviceName, cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", name)
	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"db_driver", cfg.DBDriver)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"worker_enabled", cfg.WorkerEnabled,
		"payment_scan_enabled", cfg.PaymentScanEnabled(),
		"oauth_enabled", cfg.OAuthEnabled())

	return logFile, nil
}

// cleanupLogs deletes the oldest session files of serviceName until keep remain.
// Names embed a sortable timestamp, so lexical order is age order.
func cleanupLogs(logDir, serviceName string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, serviceName+"_") && strings.HasSuffix(name, LogFileExtension) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i := 0; i < len(names)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, names[i])); err != nil {
			fmt.Fprintf(os.Stderr, LogMsgFailedDeleteOldLog, names[i], err)
		}
	}
}
