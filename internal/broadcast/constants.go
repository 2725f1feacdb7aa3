package broadcast

// Log messages
const (
	LogMsgTargetFilterIgnored = "Target filter is not applied; every non-bot member is messaged"
	LogMsgDispatchStarted     = "Broadcast dispatch started"
	LogMsgDispatchFinished    = "Broadcast dispatch finished"
	LogMsgDispatchAborted     = "Broadcast aborted after repeated failures"
	LogMsgMemberFailed        = "Direct message failed"
	LogMsgRefundFailed        = "Failed to refund credits after broadcast error"
	LogMsgRecordFailed        = "Failed to record broadcast history"
	LogMsgBroadcastQueued     = "Broadcast queued"
)

// Failure reasons
const (
	ReasonDMChannelPrefix = "Failed to create DM channel: "
)

// Ledger descriptions
const (
	DescBroadcastSpend = "Broadcast to guild %s"
	DescRefundInline   = "Refund for failed broadcast"
	DescRefundQueue    = "Refund for failed broadcast queue"
)

// Queue processing log messages
const (
	LogMsgProgressFailed      = "Failed to persist broadcast progress"
	LogMsgQueueEntryFailed    = "Queued broadcast failed"
	LogMsgQueueEntryCompleted = "Queued broadcast completed"
)

// Live event types
const (
	EventBroadcastProgress = "broadcast.progress"
	EventBroadcastFinished = "broadcast.finished"
)
