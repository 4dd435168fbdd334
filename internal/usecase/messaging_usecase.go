package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/internal/infrastructure/ratelimit"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type MessagingUseCase struct {
	convRepo    repository.ConversationRepository
	profileRepo repository.ProfileRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewMessagingUseCase(
	convRepo repository.ConversationRepository,
	profileRepo repository.ProfileRepository,
) *MessagingUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &MessagingUseCase{
		convRepo:    convRepo,
		profileRepo: profileRepo,
		rateLimiter: rateLimiter,
	}
}

// ConversationSummary is the derived per-conversation row the user sees in the
// conversation list. It is recomputed on every refresh, never persisted.
type ConversationSummary struct {
	*entity.Conversation
	Other       *entity.Profile `json:"other_participant,omitempty"`
	LastMessage *entity.Message `json:"last_message,omitempty"`
	UnreadCount int             `json:"unread_count"`
}

// ListConversations runs one aggregation pass for the viewer. The initial
// conversation fetch failing fails the whole list; per-conversation detail
// lookups degrade to nil/zero instead, so one bad row cannot take the list
// down with it.
func (uc *MessagingUseCase) ListConversations(ctx context.Context, viewerID string) ([]*ConversationSummary, error) {
	conversations, err := uc.convRepo.ListForProfile(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	summaries := make([]*ConversationSummary, len(conversations))

	// The per-conversation lookups are independent reads with no ordering
	// requirement among them, so they run concurrently.
	var wg sync.WaitGroup
	for i, conv := range conversations {
		wg.Add(1)
		go func(i int, conv *entity.Conversation) {
			defer wg.Done()
			summaries[i] = uc.summarize(ctx, viewerID, conv)
		}(i, conv)
	}
	wg.Wait()

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})

	return summaries, nil
}

func (uc *MessagingUseCase) summarize(ctx context.Context, viewerID string, conv *entity.Conversation) *ConversationSummary {
	summary := &ConversationSummary{Conversation: conv}

	other, err := uc.profileRepo.GetByID(ctx, conv.OtherParticipant(viewerID))
	if err != nil {
		logger.Warn("Conversation %s: other participant lookup failed: %v", conv.ID, err)
	} else {
		summary.Other = other
	}

	last, err := uc.convRepo.LastMessage(ctx, conv.ID)
	if err != nil {
		logger.Warn("Conversation %s: last message lookup failed: %v", conv.ID, err)
	} else {
		summary.LastMessage = last
	}

	unread, err := uc.convRepo.CountUnread(ctx, conv.ID, viewerID)
	if err != nil {
		logger.Warn("Conversation %s: unread count lookup failed: %v", conv.ID, err)
	} else {
		summary.UnreadCount = unread
	}

	return summary
}

// CreateConversation returns the existing conversation for the pair when one
// exists, in either participant ordering, and only inserts otherwise. This is
// what keeps the at-most-one-per-pair invariant.
func (uc *MessagingUseCase) CreateConversation(ctx context.Context, viewerID, otherID string) (*entity.Conversation, error) {
	if viewerID == otherID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	if allowed, wait := uc.rateLimiter.Allow(viewerID, ratelimit.ActionCreateConversation); !allowed {
		logger.Warn("CreateConversation rate limited for %s (wait %v)", viewerID, wait)
		return nil, errors.New("TOO_MANY_REQUESTS", "Too many new conversations, please wait", 429, nil)
	}

	if _, err := uc.profileRepo.GetByID(ctx, otherID); err != nil {
		return nil, errors.NotFound("Recipient profile", err)
	}

	existing, err := uc.convRepo.FindBetween(ctx, viewerID, otherID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	return uc.convRepo.Insert(ctx, viewerID, otherID)
}

// SendMessage trims the content and refuses blank sends before any store
// call. The message insert and the conversation timestamp bump are two
// separate writes; a crash in between leaves a stale timestamp that the next
// send corrects, which is accepted here.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, viewerID, conversationID, rawText string) (*entity.Message, error) {
	content := strings.TrimSpace(rawText)
	if content == "" {
		return nil, errors.EmptyMessage()
	}

	if allowed, wait := uc.rateLimiter.Allow(viewerID, ratelimit.ActionSendMessage); !allowed {
		logger.Warn("SendMessage rate limited for %s (wait %v)", viewerID, wait)
		return nil, errors.New("TOO_MANY_REQUESTS", "You are sending messages too quickly", 429, nil)
	}

	conv, err := uc.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(viewerID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       viewerID,
		Content:        content,
		CreatedAt:      time.Now(),
	}

	if err := uc.convRepo.InsertMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := uc.convRepo.Touch(ctx, conversationID, message.CreatedAt); err != nil {
		logger.Warn("Conversation %s timestamp bump failed after send: %v", conversationID, err)
	}

	return message, nil
}

// History returns the conversation transcript, oldest first.
func (uc *MessagingUseCase) History(ctx context.Context, viewerID, conversationID string) ([]*entity.Message, error) {
	conv, err := uc.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(viewerID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	return uc.convRepo.ListMessages(ctx, conversationID)
}

// MarkRead clears the viewer's unread messages in the conversation.
func (uc *MessagingUseCase) MarkRead(ctx context.Context, viewerID, conversationID string) error {
	conv, err := uc.convRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(viewerID) {
		return errors.Forbidden("You are not a participant in this conversation", nil)
	}

	return uc.convRepo.MarkRead(ctx, conversationID, viewerID)
}
