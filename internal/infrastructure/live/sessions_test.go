package live

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource records subscriptions and lets tests fire change events and
// observe cancellation.
type fakeSource struct {
	mu   sync.Mutex
	subs []*fakeSub
}

type fakeSub struct {
	ctx            context.Context
	conversationID string
	notify         func()
}

func (f *fakeSource) Subscribe(ctx context.Context, conversationID string, notify func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, &fakeSub{ctx: ctx, conversationID: conversationID, notify: notify})
}

func (f *fakeSource) live() []*fakeSub {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*fakeSub
	for _, sub := range f.subs {
		if sub.ctx.Err() == nil {
			out = append(out, sub)
		}
	}
	return out
}

func (f *fakeSource) fire(conversationID string) {
	for _, sub := range f.live() {
		if sub.conversationID == conversationID {
			sub.notify()
		}
	}
}

func TestStartSubscribesCollectionWide(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	events := 0
	sessions.Start("alice", func() { events++ })

	require.Len(t, source.live(), 1)
	assert.Equal(t, "", source.live()[0].conversationID)
	assert.Equal(t, 1, sessions.ActiveCount())

	source.fire("")
	assert.Equal(t, 1, events)
}

func TestStartReplacesPreviousSession(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	staleEvents := 0
	sessions.Start("alice", func() { staleEvents++ })
	sessions.Watch("alice", "conv-1", func() {})

	sessions.Start("alice", func() {})

	// The first registration and its watch are both canceled.
	require.Len(t, source.live(), 1)
	source.fire("")
	assert.Equal(t, 0, staleEvents)
	assert.Equal(t, 1, sessions.ActiveCount())
}

func TestWatchScopedToConversation(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	sessions.Start("alice", func() {})

	watched := 0
	sessions.Watch("alice", "conv-1", func() { watched++ })

	source.fire("conv-1")
	source.fire("conv-2")
	assert.Equal(t, 1, watched)
}

func TestWatchWithoutSessionIsIgnored(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	sessions.Watch("ghost", "conv-1", func() {})
	assert.Empty(t, source.live())
}

func TestUnwatchCancelsOnlyThatConversation(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	sessions.Start("alice", func() {})
	sessions.Watch("alice", "conv-1", func() {})
	sessions.Watch("alice", "conv-2", func() {})
	require.Len(t, source.live(), 3)

	sessions.Unwatch("alice", "conv-1")

	live := source.live()
	require.Len(t, live, 2)
	for _, sub := range live {
		assert.NotEqual(t, "conv-1", sub.conversationID)
	}
}

func TestStopReleasesEverythingForViewer(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	sessions.Start("alice", func() {})
	sessions.Watch("alice", "conv-1", func() {})
	sessions.Start("bob", func() {})

	sessions.Stop("alice")

	// Bob's registration survives.
	require.Len(t, source.live(), 1)
	assert.Equal(t, 1, sessions.ActiveCount())

	// Stopping a viewer with no session is a no-op.
	sessions.Stop("alice")
	assert.Equal(t, 1, sessions.ActiveCount())
}

func TestReleaseIgnoresReplacedToken(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	// A reconnect starts its session before the dying connection finishes
	// closing; the stale teardown must leave the new session untouched.
	newEvents := 0
	staleToken := sessions.Start("alice", func() {})
	sessions.Start("alice", func() { newEvents++ })

	sessions.Release("alice", staleToken)

	assert.Equal(t, 1, sessions.ActiveCount())
	require.Len(t, source.live(), 1)
	source.fire("")
	assert.Equal(t, 1, newEvents)
}

func TestReleaseWithCurrentTokenStops(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	token := sessions.Start("alice", func() {})
	sessions.Watch("alice", "conv-1", func() {})

	sessions.Release("alice", token)

	assert.Equal(t, 0, sessions.ActiveCount())
	assert.Empty(t, source.live())

	// Releasing again is a no-op.
	sessions.Release("alice", token)
	assert.Equal(t, 0, sessions.ActiveCount())
}

func TestStopAllTearsDownEveryViewer(t *testing.T) {
	source := &fakeSource{}
	sessions := NewSessions(source.Subscribe)

	sessions.Start("alice", func() {})
	sessions.Start("bob", func() {})
	sessions.Watch("bob", "conv-1", func() {})

	sessions.StopAll()

	assert.Empty(t, source.live())
	assert.Equal(t, 0, sessions.ActiveCount())
}
