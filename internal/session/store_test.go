package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := NewStore(10, time.Hour)

	sess := s.Create("123456789012345678", "alice", "")
	require.NotEmpty(t, sess.Token)

	got, ok := s.Get(sess.Token)
	require.True(t, ok)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, 1, s.Len())

	s.Delete(sess.Token)
	_, ok = s.Get(sess.Token)
	assert.False(t, ok)

	_, ok = s.Get("")
	assert.False(t, ok)
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(10, 20*time.Millisecond)
	sess := s.Create("123456789012345678", "alice", "")

	assert.Eventually(t, func() bool {
		_, ok := s.Get(sess.Token)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_CapacityEvictsOldest(t *testing.T) {
	s := NewStore(2, time.Hour)
	first := s.Create("1", "a", "")
	s.Create("2", "b", "")
	s.Create("3", "c", "")

	_, ok := s.Get(first.Token)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_StateIsSingleUse(t *testing.T) {
	s := NewStore(10, time.Hour)
	state := s.NewState()

	assert.True(t, s.ConsumeState(state))
	assert.False(t, s.ConsumeState(state))
	assert.False(t, s.ConsumeState("forged"))
	assert.False(t, s.ConsumeState(""))
}

func TestStore_ConcurrentConsumeHasOneWinner(t *testing.T) {
	s := NewStore(10, time.Hour)
	state := s.NewState()

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if s.ConsumeState(state) {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), wins.Load())
}

func TestContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	ctx := WithSession(context.Background(), Session{DiscordID: "42"})
	sess, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "42", sess.DiscordID)
}
