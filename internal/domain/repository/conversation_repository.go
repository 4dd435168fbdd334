package repository

import (
	"context"
	"time"

	"innovest/internal/domain/entity"
)

// ConversationRepository is the typed boundary to the hosted store's
// conversations and messages collections. "Not found" is not an error for the
// lookup methods: FindBetween and LastMessage return nil when there is no row.
// Store failures come back as STORE_UNAVAILABLE app errors.
type ConversationRepository interface {
	// ListForProfile returns every conversation the profile participates in,
	// ordered by last activity descending.
	ListForProfile(ctx context.Context, profileID string) ([]*entity.Conversation, error)
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	// FindBetween looks up the conversation for an unordered pair, checking
	// both participant orderings.
	FindBetween(ctx context.Context, idA, idB string) (*entity.Conversation, error)
	Insert(ctx context.Context, idA, idB string) (*entity.Conversation, error)
	// Touch updates the conversation's last-activity timestamp.
	Touch(ctx context.Context, conversationID string, ts time.Time) error

	// LastMessage returns the most recent message, or nil if the conversation
	// has none.
	LastMessage(ctx context.Context, conversationID string) (*entity.Message, error)
	// CountUnread counts messages sent by the other participant that the
	// viewer has not read yet.
	CountUnread(ctx context.Context, conversationID, viewerID string) (int, error)
	// ListMessages returns the full history ordered ascending by creation
	// time. The ordering is enforced by the store query.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	InsertMessage(ctx context.Context, message *entity.Message) error
	// MarkRead sets the read timestamp on every unread message not sent by the
	// viewer. Idempotent.
	MarkRead(ctx context.Context, conversationID, viewerID string) error
}
