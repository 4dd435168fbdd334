package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

// Firestore cannot OR across two fields in a single equality query, so the
// listing runs one query per participant column and merges the results.
func (r *firestoreConversationRepository) ListForProfile(ctx context.Context, profileID string) ([]*entity.Conversation, error) {
	var conversations []*entity.Conversation

	for _, field := range []string{"participantA", "participantB"} {
		docs, err := r.client.Collection("conversations").Where(field, "==", profileID).Documents(ctx).GetAll()
		if err != nil {
			logger.Error("Firestore error while fetching conversations for profile %s: %v", profileID, err)
			return nil, errors.StoreUnavailable("Failed to fetch conversations", err)
		}

		for _, doc := range docs {
			var conv entity.Conversation
			if err := doc.DataTo(&conv); err != nil {
				logger.Warn("Skipping malformed conversation %s: %v", doc.Ref.ID, err)
				continue
			}
			conversations = append(conversations, &conv)
		}
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].UpdatedAt.After(conversations[j].UpdatedAt)
	})

	return conversations, nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.StoreUnavailable("Failed to get conversation", err)
	}

	var conv entity.Conversation
	if err := doc.DataTo(&conv); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}

	return &conv, nil
}

func (r *firestoreConversationRepository) FindBetween(ctx context.Context, idA, idB string) (*entity.Conversation, error) {
	// Both orderings of the pair must be checked: the pair is unordered but
	// the stored columns are not.
	orderings := [][2]string{{idA, idB}, {idB, idA}}

	for _, pair := range orderings {
		query := r.client.Collection("conversations").
			Where("participantA", "==", pair[0]).
			Where("participantB", "==", pair[1]).
			Limit(1)

		doc, err := query.Documents(ctx).Next()
		if err == iterator.Done {
			continue
		}
		if err != nil {
			return nil, errors.StoreUnavailable("Failed to query conversation pair", err)
		}

		var conv entity.Conversation
		if err := doc.DataTo(&conv); err != nil {
			return nil, errors.Internal("Failed to parse conversation data", err)
		}
		return &conv, nil
	}

	return nil, nil
}

func (r *firestoreConversationRepository) Insert(ctx context.Context, idA, idB string) (*entity.Conversation, error) {
	now := time.Now()
	conv := &entity.Conversation{
		ID:           uuid.New().String(),
		ParticipantA: idA,
		ParticipantB: idB,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.client.Collection("conversations").Doc(conv.ID).Set(ctx, conv); err != nil {
		return nil, errors.StoreUnavailable("Failed to create conversation", err)
	}

	return conv, nil
}

func (r *firestoreConversationRepository) Touch(ctx context.Context, conversationID string, ts time.Time) error {
	_, err := r.client.Collection("conversations").Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: "updatedAt", Value: ts},
	})
	if err != nil {
		return errors.StoreUnavailable("Failed to update conversation timestamp", err)
	}
	return nil
}

func (r *firestoreConversationRepository) LastMessage(ctx context.Context, conversationID string) (*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("conversationId", "==", conversationID).
		OrderBy("createdAt", firestore.Desc).
		Limit(1)

	doc, err := query.Documents(ctx).Next()
	if err == iterator.Done {
		return nil, nil
	}
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to fetch last message", err)
	}

	var message entity.Message
	if err := doc.DataTo(&message); err != nil {
		return nil, errors.Internal("Failed to parse message data", err)
	}

	return &message, nil
}

func (r *firestoreConversationRepository) CountUnread(ctx context.Context, conversationID, viewerID string) (int, error) {
	query := r.client.Collection("messages").
		Where("conversationId", "==", conversationID).
		Where("senderId", "!=", viewerID).
		Where("readAt", "==", nil)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.StoreUnavailable("Failed to count unread messages", err)
	}

	return len(docs), nil
}

// ListMessages orders ascending in the query itself. Relying on the store's
// ordering keeps the transcript correct under concurrent inserts, which a
// client-side re-sort of a partially stale slice would not.
func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	query := r.client.Collection("messages").
		Where("conversationId", "==", conversationID).
		OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var messages []*entity.Message

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			logger.Error("Firestore error while iterating messages for conversation %s: %v", conversationID, err)
			return nil, errors.StoreUnavailable("Failed to fetch messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message %s: %v", doc.Ref.ID, err)
			continue
		}
		messages = append(messages, &message)
	}

	return messages, nil
}

func (r *firestoreConversationRepository) InsertMessage(ctx context.Context, message *entity.Message) error {
	if strings.TrimSpace(message.Content) == "" {
		return errors.EmptyMessage()
	}

	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	if _, err := r.client.Collection("messages").Doc(message.ID).Set(ctx, message); err != nil {
		return errors.StoreUnavailable("Failed to create message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) MarkRead(ctx context.Context, conversationID, viewerID string) error {
	query := r.client.Collection("messages").
		Where("conversationId", "==", conversationID).
		Where("senderId", "!=", viewerID).
		Where("readAt", "==", nil)

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return errors.StoreUnavailable("Failed to fetch unread messages", err)
	}

	now := time.Now()
	for _, doc := range docs {
		if _, err := doc.Ref.Update(ctx, []firestore.Update{{Path: "readAt", Value: now}}); err != nil {
			logger.Warn("Failed to mark message %s read: %v", doc.Ref.ID, err)
		}
	}

	return nil
}
