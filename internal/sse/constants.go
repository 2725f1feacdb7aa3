package sse

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the publish channel
	BroadcastBufferSize = 100

	// ClientEventBuffer is the buffer size for each client's event channel
	ClientEventBuffer = 50

	// ClientChannelBuffer is the buffer size for the unregister channel.
	// Register is unbuffered so an accepted client is always in the map Stop closes.
	ClientChannelBuffer = 10
)

// KeepaliveInterval is how often idle streams get a ping
const KeepaliveInterval = 30 * time.Second

// Event types owned by the stream itself
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// Log messages
const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventDropped       = "SSE publish buffer full, event dropped"
	LogMsgWriteError         = "Failed to write SSE event"
)

const (
	ErrMsgStreamingUnsupported = "Streaming not supported"
	ErrMsgHubStopped           = "Event stream is shutting down"
)
