package sse

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice = "111111111111111111"
	bob   = "222222222222222222"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	hub.Start()
	t.Cleanup(hub.Stop)
	return hub
}

func register(t *testing.T, hub *Hub, userID string, types ...string) *Client {
	t.Helper()
	before := hub.ClientCount()
	client, ok := hub.Register(userID, types)
	require.True(t, ok)
	require.Eventually(t, func() bool { return hub.ClientCount() == before+1 }, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		return e
	case <-time.After(time.Second):
		t.Fatal("no event received")
		return Event{}
	}
}

func assertNoEvent(t *testing.T, c *Client) {
	t.Helper()
	select {
	case e := <-c.EventChannel:
		t.Fatalf("unexpected event %q", e.Type)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_RoutesByUser(t *testing.T) {
	hub := startHub(t)
	a := register(t, hub, alice)
	b := register(t, hub, bob)

	hub.Publish(alice, "broadcast.progress", map[string]int{"progress": 50})

	e := receive(t, a)
	assert.Equal(t, "broadcast.progress", e.Type)
	assert.NotEmpty(t, e.ID)
	assertNoEvent(t, b)
}

func TestHub_TypeFilter(t *testing.T) {
	hub := startHub(t)
	c := register(t, hub, alice, "broadcast.finished")

	hub.Publish(alice, "broadcast.progress", nil)
	hub.Publish(alice, "broadcast.finished", nil)

	assert.Equal(t, "broadcast.finished", receive(t, c).Type)
	assertNoEvent(t, c)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := startHub(t)
	c := register(t, hub, alice)

	hub.Unregister(c.ID)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.EventChannel
	assert.False(t, open)
}

func TestHub_StopEndsStreams(t *testing.T) {
	hub := NewHub()
	hub.Start()
	c := register(t, hub, alice)

	hub.Stop()
	hub.Stop()

	_, open := <-c.EventChannel
	assert.False(t, open)

	_, ok := hub.Register(alice, nil)
	assert.False(t, ok)
	hub.Publish(alice, "broadcast.progress", nil)
}

func TestHub_RegisterRacingStopNeverLeaksClient(t *testing.T) {
	for round := 0; round < 50; round++ {
		hub := NewHub()
		hub.Start()

		var wg sync.WaitGroup
		accepted := make(chan *Client, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if c, ok := hub.Register(alice, nil); ok {
					accepted <- c
				}
			}()
		}
		hub.Stop()
		wg.Wait()
		close(accepted)

		for c := range accepted {
			select {
			case _, open := <-c.EventChannel:
				require.False(t, open, "accepted client must be closed by Stop")
			case <-time.After(time.Second):
				t.Fatalf("round %d: accepted client was never added to the hub", round)
			}
		}
	}
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "e1", Type: "broadcast.finished", Timestamp: 1, Payload: map[string]int{"sent": 2}, userID: alice})
	require.NoError(t, err)

	text := string(msg)
	assert.True(t, strings.HasPrefix(text, "id: e1\nevent: broadcast.finished\ndata: {"))
	assert.True(t, strings.HasSuffix(text, "\n\n"))
	assert.Contains(t, text, `"sent":2`)
	assert.NotContains(t, text, alice)
}
