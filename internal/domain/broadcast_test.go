package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueStatus_CanTransitionTo(t *testing.T) {
	all := []QueueStatus{QueueStatusPending, QueueStatusProcessing, QueueStatusCompleted, QueueStatusFailed}
	allowed := map[QueueStatus][]QueueStatus{
		QueueStatusPending:    {QueueStatusProcessing},
		QueueStatusProcessing: {QueueStatusCompleted, QueueStatusFailed},
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestQueueStatus_IsTerminal(t *testing.T) {
	assert.False(t, QueueStatusPending.IsTerminal())
	assert.False(t, QueueStatusProcessing.IsTerminal())
	assert.True(t, QueueStatusCompleted.IsTerminal())
	assert.True(t, QueueStatusFailed.IsTerminal())
}

func TestParseTargetFilter(t *testing.T) {
	f, err := ParseTargetFilter("")
	require.NoError(t, err)
	assert.Equal(t, TargetAll, f)

	f, err = ParseTargetFilter("online")
	require.NoError(t, err)
	assert.Equal(t, TargetOnline, f)

	_, err = ParseTargetFilter("idle")
	assert.ErrorIs(t, err, ErrInvalidTargetFilter)
}

func TestTransaction_Signed(t *testing.T) {
	assert.Equal(t, 5, Transaction{Type: TransactionPurchase, Amount: 5}.Signed())
	assert.Equal(t, 5, Transaction{Type: TransactionRefund, Amount: 5}.Signed())
	assert.Equal(t, -5, Transaction{Type: TransactionSpend, Amount: 5}.Signed())
}
