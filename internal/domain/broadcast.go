package domain

import "time"

// Broadcast is the write-once record of a finished dispatch
type Broadcast struct {
	ID             int64        `json:"id"`
	UserID         string       `json:"user_id"`
	GuildID        string       `json:"guild_id"`
	GuildName      string       `json:"guild_name"`
	Message        string       `json:"message"`
	TargetType     TargetFilter `json:"target_type"`
	MessagesSent   int          `json:"messages_sent"`
	MessagesFailed int          `json:"messages_failed"`
	CreditsUsed    int          `json:"credits_used"`
	CreatedAt      time.Time    `json:"created_at"`
}

// QueueStatus is the state of a queued broadcast
type QueueStatus string

const (
	QueueStatusPending    QueueStatus = "pending"
	QueueStatusProcessing QueueStatus = "processing"
	QueueStatusCompleted  QueueStatus = "completed"
	QueueStatusFailed     QueueStatus = "failed"
)

// IsTerminal reports whether no further transition is allowed
func (s QueueStatus) IsTerminal() bool {
	return s == QueueStatusCompleted || s == QueueStatusFailed
}

// CanTransitionTo enforces pending -> processing -> completed|failed
func (s QueueStatus) CanTransitionTo(next QueueStatus) bool {
	switch s {
	case QueueStatusPending:
		return next == QueueStatusProcessing
	case QueueStatusProcessing:
		return next == QueueStatusCompleted || next == QueueStatusFailed
	}
	return false
}

// QueueEntry is a broadcast waiting for or being processed by the queue worker
type QueueEntry struct {
	ID             int64        `json:"id"`
	UserID         string       `json:"user_id"`
	GuildID        string       `json:"guild_id"`
	Message        string       `json:"message"`
	TargetType     TargetFilter `json:"target_type"`
	DelaySeconds   int          `json:"delay_seconds"`
	EnableMentions bool         `json:"enable_mentions"`
	BotToken       string       `json:"-"`
	CreditsUsed    int          `json:"credits_used"`
	Status         QueueStatus  `json:"status"`
	Progress       int          `json:"progress"`
	TotalMembers   int          `json:"total_members"`
	SentCount      int          `json:"sent_count"`
	FailedCount    int          `json:"failed_count"`
	ErrorMessage   string       `json:"error_message,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
	StartedAt      *time.Time   `json:"started_at,omitempty"`
	CompletedAt    *time.Time   `json:"completed_at,omitempty"`
}

// QueueProgress is a snapshot of counters written while a queue entry runs
type QueueProgress struct {
	Progress     int
	TotalMembers int
	SentCount    int
	FailedCount  int
}

// QueueResult is the final outcome written when a queue entry finishes
type QueueResult struct {
	Status       QueueStatus
	TotalMembers int
	SentCount    int
	FailedCount  int
	ErrorMessage string
}
