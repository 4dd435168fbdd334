package usecase

import (
	"context"
	"sync"

	"innovest/internal/domain/entity"
	"innovest/pkg/logger"
)

type ViewState int

const (
	StateNoneSelected ViewState = iota
	StateLoading
	StateReady
)

// ConversationView holds one session's "active conversation" slot. Selecting
// a conversation marks it read and loads the ordered transcript; a result
// that resolves after the user has switched away is discarded, keyed by
// conversation id, so a slow fetch for A can never overwrite B's transcript.
type ConversationView struct {
	messaging *MessagingUseCase
	viewerID  string

	mu             sync.Mutex
	state          ViewState
	conversationID string
	messages       []*entity.Message
	stale          bool
}

func NewConversationView(messaging *MessagingUseCase, viewerID string) *ConversationView {
	return &ConversationView{
		messaging: messaging,
		viewerID:  viewerID,
	}
}

// Select makes the conversation active and delivers its transcript. Marking
// read is fire-and-forget: a failure is logged, never surfaced. Re-selecting
// the already-ready conversation skips the refetch unless a change
// notification arrived since the last load.
func (v *ConversationView) Select(ctx context.Context, conversationID string, deliver func(conversationID string, messages []*entity.Message)) error {
	go func() {
		if err := v.messaging.MarkRead(ctx, v.viewerID, conversationID); err != nil {
			logger.Warn("markRead failed for conversation %s: %v", conversationID, err)
		}
	}()

	v.mu.Lock()
	if v.state == StateReady && v.conversationID == conversationID && !v.stale {
		messages := v.messages
		v.mu.Unlock()
		deliver(conversationID, messages)
		return nil
	}

	v.state = StateLoading
	v.conversationID = conversationID
	v.stale = false
	v.mu.Unlock()

	return v.fetch(ctx, conversationID, deliver)
}

// Refresh refetches the active conversation's transcript. Called when a
// change notification arrives for it; a no-op when nothing is selected.
func (v *ConversationView) Refresh(ctx context.Context, deliver func(conversationID string, messages []*entity.Message)) error {
	v.mu.Lock()
	if v.state == StateNoneSelected {
		v.mu.Unlock()
		return nil
	}
	conversationID := v.conversationID
	v.mu.Unlock()

	return v.fetch(ctx, conversationID, deliver)
}

// Invalidate records that the active transcript may be out of date, forcing
// the next Select of the same conversation to refetch.
func (v *ConversationView) Invalidate() {
	v.mu.Lock()
	v.stale = true
	v.mu.Unlock()
}

// Close empties the active slot.
func (v *ConversationView) Close() {
	v.mu.Lock()
	v.state = StateNoneSelected
	v.conversationID = ""
	v.messages = nil
	v.stale = false
	v.mu.Unlock()
}

// Active returns the currently selected conversation id, or "" when none.
func (v *ConversationView) Active() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state == StateNoneSelected {
		return ""
	}
	return v.conversationID
}

func (v *ConversationView) fetch(ctx context.Context, conversationID string, deliver func(string, []*entity.Message)) error {
	messages, err := v.messaging.History(ctx, v.viewerID, conversationID)

	v.mu.Lock()
	if v.state == StateNoneSelected || v.conversationID != conversationID {
		// The user moved on while this fetch was in flight.
		v.mu.Unlock()
		return nil
	}

	if err != nil {
		// Degraded view: render empty. One signal, not an empty transcript
		// followed by an error for the same select.
		logger.Warn("History fetch failed for conversation %s: %v", conversationID, err)
		v.state = StateReady
		v.messages = nil
		v.stale = true
		v.mu.Unlock()
		deliver(conversationID, nil)
		return nil
	}

	v.state = StateReady
	v.messages = messages
	v.mu.Unlock()

	deliver(conversationID, messages)
	return nil
}
