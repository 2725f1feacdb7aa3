package worker

import "time"

// Log messages - worker lifecycle
const (
	LogMsgWorkerStarted         = "Worker started"
	LogMsgWorkerStopping        = "Worker shutting down"
	LogMsgWorkerStopped         = "Worker shutdown complete"
	LogMsgWorkerShutdownTimeout = "Worker shutdown timeout, cancelling in-flight work"
	LogMsgWorkerJobFailed       = "Worker job failed"
	LogMsgPoolFull              = "Worker pool queue full, job dropped"
)

// Log messages - queue worker
const (
	LogMsgQueueProcessFailed = "Failed to process broadcast queue"
	LogMsgQueueDepthFailed   = "Failed to read broadcast queue depth"
)

// Log messages - payment workers
const (
	LogMsgPaymentScanFailed   = "ProBot channel scan failed"
	LogMsgPaymentExpireFailed = "Failed to expire payment requests"
)

// Defaults
const (
	DefaultPollInterval  = 5 * time.Second
	DefaultErrorBackoff  = 10 * time.Second
	DefaultScanInterval  = time.Minute
	DefaultJobTimeout    = time.Minute
	DefaultPoolWorkers   = 2
	DefaultPoolQueueSize = 16
)
