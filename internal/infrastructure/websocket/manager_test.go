package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func waitClosed(t *testing.T, ch chan []byte) {
	t.Helper()
	select {
	case _, ok := <-ch:
		assert.False(t, ok, "expected channel to be closed")
	case <-time.After(time.Second):
		t.Fatal("channel was not closed in time")
	}
}

func TestReconnectReplacesRegistration(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewManager()
	manager.Start(ctx)

	first := &Client{ProfileID: "alice", Send: make(chan []byte, 4)}
	manager.Register <- first

	second := &Client{ProfileID: "alice", Send: make(chan []byte, 4)}
	manager.Register <- second

	// The replaced connection's send channel closes; frames go to the new one.
	waitClosed(t, first.Send)

	manager.SendToUser("alice", []byte("ping"))
	select {
	case frame := <-second.Send:
		assert.Equal(t, "ping", string(frame))
	case <-time.After(time.Second):
		t.Fatal("frame did not reach the replacement connection")
	}
}

func TestStaleUnregisterKeepsReplacement(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := NewManager()
	manager.Start(ctx)

	first := &Client{ProfileID: "alice", Send: make(chan []byte, 4)}
	manager.Register <- first
	second := &Client{ProfileID: "alice", Send: make(chan []byte, 4)}
	manager.Register <- second
	waitClosed(t, first.Send)

	// The old connection's read loop unregisters after being replaced; the
	// current registration must survive it.
	manager.Unregister <- first

	manager.SendToUser("alice", []byte("still here"))
	select {
	case frame := <-second.Send:
		assert.Equal(t, "still here", string(frame))
	case <-time.After(time.Second):
		t.Fatal("replacement connection lost its registration")
	}
}

func TestSendToUserUnknownProfileIsDropped(t *testing.T) {
	manager := NewManager()
	manager.SendToUser("ghost", []byte("ping"))
}
