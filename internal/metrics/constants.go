package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Business metric names
const (
	MetricNameBroadcastsTotal          = "broadcasts_total"
	MetricNameBroadcastMessagesTotal   = "broadcast_messages_total"
	MetricNameCreditsGranted           = "credits_granted_total"
	MetricNameCreditsSpent             = "credits_spent_total"
	MetricNameCreditsRefunded          = "credits_refunded_total"
	MetricNameQueueDepth               = "queue_depth"
	MetricNameSSEClients               = "sse_clients_connected"
	MetricNameProBotTransfersProcessed = "probot_transfers_processed_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Business metric help text
const (
	HelpTextBroadcastsTotal          = "Total number of broadcasts by mode and outcome"
	HelpTextBroadcastMessagesTotal   = "Total number of direct messages attempted by result"
	HelpTextCreditsGranted           = "Total credits added to wallets by source"
	HelpTextCreditsSpent             = "Total credits spent on broadcasts"
	HelpTextCreditsRefunded          = "Total credits refunded"
	HelpTextQueueDepth               = "Number of pending broadcasts in the queue"
	HelpTextSSEClients               = "Number of open live event streams"
	HelpTextProBotTransfersProcessed = "Total number of ProBot transfers credited"
)

// ============================================================================
// Metric Label Names and Values
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelMode    = "mode"
	LabelOutcome = "outcome"
	LabelResult  = "result"
	LabelSource  = "source"
)

const (
	ModeInline = "inline"
	ModeQueued = "queued"

	OutcomeCompleted = "completed"
	OutcomeAborted   = "aborted"
	OutcomeFailed    = "failed"

	ResultSent   = "sent"
	ResultFailed = "failed"

	SourceAdmin  = "admin"
	SourceProBot = "probot"
	SourceManual = "manual"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
