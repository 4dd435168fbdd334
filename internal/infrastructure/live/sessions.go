package live

import (
	"context"
	"sync"

	"innovest/pkg/logger"
)

// SubscribeFunc registers interest in change events on the messages
// collection. An empty conversationID watches the whole collection; otherwise
// the subscription is filtered to that conversation. notify runs on every
// change until ctx is canceled. Implementations must not block the caller.
type SubscribeFunc func(ctx context.Context, conversationID string, notify func())

type session struct {
	token  uint64
	cancel context.CancelFunc
	// per-conversation watch cancels, keyed by conversation id
	watches map[string]context.CancelFunc
}

// Sessions owns every active listener registration, scoped per viewer. A
// viewer gets at most one collection-wide registration plus at most one
// per-conversation watch at a time; starting a new session for a viewer tears
// the old one down first so events never leak across viewers.
type Sessions struct {
	subscribe SubscribeFunc
	mu        sync.Mutex
	active    map[string]*session
	lastToken uint64
}

func NewSessions(subscribe SubscribeFunc) *Sessions {
	return &Sessions{
		subscribe: subscribe,
		active:    make(map[string]*session),
	}
}

// Start opens the viewer's collection-wide registration, replacing any
// previous one, and returns a token identifying it. onChange fires on every
// message change anywhere; the caller re-aggregates the conversation list on
// each event, accepting redundant work in exchange for simplicity.
func (s *Sessions) Start(viewerID string, onChange func()) uint64 {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.teardownLocked(viewerID)
	s.lastToken++
	token := s.lastToken
	s.active[viewerID] = &session{
		token:   token,
		cancel:  cancel,
		watches: make(map[string]context.CancelFunc),
	}
	s.mu.Unlock()

	s.subscribe(ctx, "", onChange)
	logger.Debug("Live session started for viewer %s", viewerID)
	return token
}

// Watch opens a registration filtered to one conversation, replacing any
// previous watch on the same conversation for this viewer.
func (s *Sessions) Watch(viewerID, conversationID string, onChange func()) {
	s.mu.Lock()
	sess, ok := s.active[viewerID]
	if !ok {
		s.mu.Unlock()
		logger.Warn("Watch requested without an active session for viewer %s", viewerID)
		return
	}
	if cancel, ok := sess.watches[conversationID]; ok {
		cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	sess.watches[conversationID] = cancel
	s.mu.Unlock()

	s.subscribe(ctx, conversationID, onChange)
}

// Unwatch releases the viewer's registration for one conversation.
func (s *Sessions) Unwatch(viewerID, conversationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[viewerID]
	if !ok {
		return
	}
	if cancel, ok := sess.watches[conversationID]; ok {
		cancel()
		delete(sess.watches, conversationID)
	}
}

// Stop releases every registration the viewer holds. Safe to call on error
// paths and for viewers with no session.
func (s *Sessions) Stop(viewerID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teardownLocked(viewerID)
}

// Release stops the viewer's session only while token still identifies it. A
// replaced connection's late teardown must not kill the replacement's session.
func (s *Sessions) Release(viewerID string, token uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.active[viewerID]
	if !ok || sess.token != token {
		return
	}
	s.teardownLocked(viewerID)
}

// teardownLocked releases the viewer's registrations. Caller holds s.mu.
func (s *Sessions) teardownLocked(viewerID string) {
	sess, ok := s.active[viewerID]
	if !ok {
		return
	}
	for id, cancel := range sess.watches {
		cancel()
		delete(sess.watches, id)
	}
	sess.cancel()
	delete(s.active, viewerID)
	logger.Debug("Live session stopped for viewer %s", viewerID)
}

// StopAll tears down every session. Called on process shutdown.
func (s *Sessions) StopAll() {
	s.mu.Lock()
	viewers := make([]string, 0, len(s.active))
	for viewerID := range s.active {
		viewers = append(viewers, viewerID)
	}
	s.mu.Unlock()

	for _, viewerID := range viewers {
		s.Stop(viewerID)
	}
}

// ActiveCount reports how many viewers hold a live session.
func (s *Sessions) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}
