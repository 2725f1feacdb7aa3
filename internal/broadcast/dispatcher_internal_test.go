package broadcast

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/BroadcasterPro_Go/internal/domain"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"both placeholders", "Hello {user}, welcome {username}!", "Hello <@123>, welcome alice!"},
		{"repeated", "{username} {username}", "alice alice"},
		{"no placeholders", "plain text", "plain text"},
		{"unknown placeholder kept", "{guild}", "{guild}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(tt.message, "123", "alice"))
		})
	}
}

func TestValidateRequest(t *testing.T) {
	valid := DispatchRequest{GuildID: "123456789012345678", Message: "hi", TargetFilter: domain.TargetAll, DelaySeconds: 2}

	tests := []struct {
		name    string
		mutate  func(r *DispatchRequest)
		wantErr error
	}{
		{"valid", func(r *DispatchRequest) {}, nil},
		{"missing guild", func(r *DispatchRequest) { r.GuildID = " " }, domain.ErrInvalidInput},
		{"empty message", func(r *DispatchRequest) { r.Message = "\n" }, domain.ErrEmptyMessage},
		{"message too long", func(r *DispatchRequest) { r.Message = strings.Repeat("a", domain.MaxMessageLength+1) }, domain.ErrInvalidInput},
		{"negative delay", func(r *DispatchRequest) { r.DelaySeconds = -1 }, domain.ErrInvalidInput},
		{"delay too long", func(r *DispatchRequest) { r.DelaySeconds = domain.MaxDelaySeconds + 1 }, domain.ErrInvalidInput},
		{"unknown filter", func(r *DispatchRequest) { r.TargetFilter = "everyone" }, domain.ErrInvalidTargetFilter},
		{"online filter accepted", func(r *DispatchRequest) { r.TargetFilter = domain.TargetOnline }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			err := ValidateRequest(req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 100, Progress{}.Percent())
	assert.Equal(t, 33, Progress{Processed: 1, Total: 3}.Percent())
	assert.Equal(t, 100, Progress{Processed: 4, Total: 4}.Percent())
}

func TestSleepContext(t *testing.T) {
	assert.NoError(t, sleepContext(context.Background(), 0))
	assert.NoError(t, sleepContext(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	assert.ErrorIs(t, sleepContext(ctx, time.Hour), context.Canceled)
	assert.Less(t, time.Since(start), time.Second)
}

func TestDispatch_WaitsBetweenMembers(t *testing.T) {
	var slept []time.Duration
	d := &Dispatcher{
		client: stubClient{members: 3},
		sleep: func(_ context.Context, d time.Duration) error {
			slept = append(slept, d)
			return nil
		},
	}

	result, err := d.Dispatch(context.Background(), DispatchRequest{GuildID: "1", Message: "hi", DelaySeconds: 2})
	assert.NoError(t, err)
	assert.Equal(t, 3, result.Sent)
	assert.Equal(t, []time.Duration{2 * time.Second, 2 * time.Second}, slept)
}

func TestDispatch_AbortSkipsTrailingWait(t *testing.T) {
	waits := 0
	d := &Dispatcher{
		client: stubClient{members: 30, failDM: true},
		sleep: func(context.Context, time.Duration) error {
			waits++
			return nil
		},
	}

	result, err := d.Dispatch(context.Background(), DispatchRequest{GuildID: "1", Message: "hi", DelaySeconds: 5})
	assert.NoError(t, err)
	assert.True(t, result.Aborted)
	assert.Equal(t, domain.AbortFailureThreshold+1, result.Failed)
	assert.Equal(t, domain.AbortFailureThreshold, waits)
}

func TestDispatch_SingleMemberDoesNotWait(t *testing.T) {
	d := &Dispatcher{
		client: stubClient{members: 1},
		sleep: func(context.Context, time.Duration) error {
			t.Fatal("no wait expected after the last member")
			return nil
		},
	}

	result, err := d.Dispatch(context.Background(), DispatchRequest{GuildID: "1", Message: "hi", DelaySeconds: 5})
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}
