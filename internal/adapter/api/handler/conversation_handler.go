package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type ConversationHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewConversationHandler(messagingUseCase *usecase.MessagingUseCase) *ConversationHandler {
	return &ConversationHandler{
		messagingUseCase: messagingUseCase,
	}
}

type createConversationRequest struct {
	RecipientID string `json:"recipient_id" validate:"required"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

// ListConversations returns the caller's conversations, newest activity
// first, each with the other participant, last message and unread count.
func (h *ConversationHandler) ListConversations(c echo.Context) error {
	uid := c.Get("uid").(string)

	summaries, err := h.messagingUseCase.ListConversations(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, summaries)
}

func (h *ConversationHandler) CreateConversation(c echo.Context) error {
	var req createConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	conversation, err := h.messagingUseCase.CreateConversation(c.Request().Context(), uid, req.RecipientID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, conversation)
}

func (h *ConversationHandler) GetMessages(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	messages, err := h.messagingUseCase.History(c.Request().Context(), uid, conversationID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, messages)
}

func (h *ConversationHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	message, err := h.messagingUseCase.SendMessage(c.Request().Context(), uid, conversationID, req.Content)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ConversationHandler) MarkRead(c echo.Context) error {
	uid := c.Get("uid").(string)
	conversationID := c.Param("id")

	if err := h.messagingUseCase.MarkRead(c.Request().Context(), uid, conversationID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Conversation marked as read",
	})
}
