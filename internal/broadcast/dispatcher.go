package broadcast

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/domain"
	"github.com/osse101/BroadcasterPro_Go/internal/logger"
	"github.com/osse101/BroadcasterPro_Go/internal/metrics"
)

// DispatchRequest describes one fan-out of a message to a guild
type DispatchRequest struct {
	// BotToken overrides the configured bot when set
	BotToken       string
	GuildID        string
	Message        string
	TargetFilter   domain.TargetFilter
	DelaySeconds   int
	EnableMentions bool
	OnProgress     func(Progress)
}

// Progress is reported after every member
type Progress struct {
	Processed int
	Total     int
	Sent      int
	Failed    int
}

// Percent is the share of members processed, 0-100
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 100
	}
	return p.Processed * 100 / p.Total
}

// Failure is a member that could not be messaged
type Failure struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Reason   string `json:"reason"`
}

// DispatchResult is the outcome of a dispatch. Billing is the caller's job.
type DispatchResult struct {
	Total         int       `json:"total_targeted"`
	Sent          int       `json:"sent_count"`
	Failed        int       `json:"failed_count"`
	Failures      []Failure `json:"failed_users"`
	FilterApplied bool      `json:"filter_applied"`
	Aborted       bool      `json:"aborted"`
}

// Dispatcher sends a message to every human member of a guild, one at a time
type Dispatcher struct {
	client  discord.Client
	factory discord.Factory
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewDispatcher creates a dispatcher using client by default and factory for token overrides
func NewDispatcher(client discord.Client, factory discord.Factory) *Dispatcher {
	return &Dispatcher{client: client, factory: factory, sleep: sleepContext}
}

// ValidateRequest rejects a request before any Discord call is made
func ValidateRequest(req DispatchRequest) error {
	if strings.TrimSpace(req.GuildID) == "" {
		return fmt.Errorf("%w: guild id is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(req.Message) == "" {
		return domain.ErrEmptyMessage
	}
	if len([]rune(req.Message)) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message exceeds %d characters", domain.ErrInvalidInput, domain.MaxMessageLength)
	}
	if req.DelaySeconds < 0 || req.DelaySeconds > domain.MaxDelaySeconds {
		return fmt.Errorf("%w: delay must be between 0 and %d seconds", domain.ErrInvalidInput, domain.MaxDelaySeconds)
	}
	if _, err := domain.ParseTargetFilter(string(req.TargetFilter)); err != nil {
		return err
	}
	return nil
}

// Dispatch fetches the guild members and messages each non-bot member.
// Per-member failures are recorded and skipped. Only a failed member fetch,
// an invalid request or cancellation produce an error.
func (d *Dispatcher) Dispatch(ctx context.Context, req DispatchRequest) (*DispatchResult, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx).With("guild_id", req.GuildID)

	client, err := d.clientFor(req.BotToken)
	if err != nil {
		return nil, err
	}

	members, err := client.GuildMembers(ctx, req.GuildID, domain.MaxGuildMembers)
	if err != nil {
		return nil, err
	}

	humans := make([]discord.Member, 0, len(members))
	for _, m := range members {
		if !m.Bot {
			humans = append(humans, m)
		}
	}

	result := &DispatchResult{Total: len(humans), Failures: []Failure{}}
	if filter, _ := domain.ParseTargetFilter(string(req.TargetFilter)); filter != domain.TargetAll {
		log.Warn(LogMsgTargetFilterIgnored, "target_type", filter)
	}
	log.Info(LogMsgDispatchStarted, "members", len(humans), "delay_seconds", req.DelaySeconds)

	delay := time.Duration(req.DelaySeconds) * time.Second
	for i, m := range humans {
		if reason := d.deliver(ctx, client, m, req); reason != "" {
			result.Failed++
			result.Failures = append(result.Failures, Failure{UserID: m.ID, Username: m.Username, Reason: reason})
			metrics.BroadcastMessagesTotal.WithLabelValues(metrics.ResultFailed).Inc()
			log.Debug(LogMsgMemberFailed, "user_id", m.ID, "reason", reason)
		} else {
			result.Sent++
			metrics.BroadcastMessagesTotal.WithLabelValues(metrics.ResultSent).Inc()
		}

		if req.OnProgress != nil {
			req.OnProgress(Progress{Processed: i + 1, Total: result.Total, Sent: result.Sent, Failed: result.Failed})
		}

		if result.Failed > domain.AbortFailureThreshold && result.Sent < domain.AbortSuccessFloor {
			result.Aborted = true
			log.Warn(LogMsgDispatchAborted, "sent", result.Sent, "failed", result.Failed)
			break
		}

		if i == len(humans)-1 {
			break
		}
		if err := d.sleep(ctx, delay); err != nil {
			return result, err
		}
	}

	log.Info(LogMsgDispatchFinished, "sent", result.Sent, "failed", result.Failed, "total", result.Total)
	return result, nil
}

// deliver messages one member and returns the failure reason, or "" on success
func (d *Dispatcher) deliver(ctx context.Context, client discord.Client, m discord.Member, req DispatchRequest) string {
	channelID, err := client.CreateDM(ctx, m.ID)
	if err != nil {
		return ReasonDMChannelPrefix + failureReason(err)
	}

	content := req.Message
	if req.EnableMentions {
		content = Render(content, m.ID, m.Username)
	}

	if err := client.SendMessage(ctx, channelID, content); err != nil {
		return failureReason(err)
	}
	return ""
}

func (d *Dispatcher) clientFor(token string) (discord.Client, error) {
	if token == "" || d.factory == nil {
		return d.client, nil
	}
	return d.factory(token)
}

// Render substitutes {user} with a mention and {username} with the plain name
func Render(message, userID, username string) string {
	return strings.NewReplacer("{user}", "<@"+userID+">", "{username}", username).Replace(message)
}

func failureReason(err error) string {
	var upErr *discord.UpstreamError
	if errors.As(err, &upErr) {
		return upErr.Reason
	}
	return err.Error()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
