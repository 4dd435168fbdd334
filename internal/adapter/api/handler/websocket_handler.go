package handler

import (
	"context"
	"encoding/json"
	"net/http"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"innovest/internal/adapter/api/middleware"
	"innovest/internal/domain/entity"
	"innovest/internal/infrastructure/live"
	ws "innovest/internal/infrastructure/websocket"
	"innovest/internal/usecase"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

// WebSocketHandler is the realtime surface: one connection per signed-in
// profile, carrying the conversation list, the open conversation's history
// and the send path.
type WebSocketHandler struct {
	wsManager        *ws.Manager
	authMiddleware   *middleware.AuthMiddleware
	messagingUseCase *usecase.MessagingUseCase
	sessions         *live.Sessions
}

func NewWebSocketHandler(
	wsManager *ws.Manager,
	authMiddleware *middleware.AuthMiddleware,
	messagingUseCase *usecase.MessagingUseCase,
	sessions *live.Sessions,
) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:        wsManager,
		authMiddleware:   authMiddleware,
		messagingUseCase: messagingUseCase,
		sessions:         sessions,
	}
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type inboundFrame struct {
	Type           string `json:"type"`
	ConversationID string `json:"conversation_id,omitempty"`
	Content        string `json:"content,omitempty"`
}

type outboundFrame struct {
	Type           string      `json:"type"`
	ConversationID string      `json:"conversation_id,omitempty"`
	Data           interface{} `json:"data,omitempty"`
	Error          string      `json:"error,omitempty"`
}

func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Token query parameter required", nil)
	}

	uid, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	connCtx, cancel := context.WithCancel(context.Background())

	client := &ws.Client{
		ProfileID: uid,
		Conn:      conn,
		Send:      make(chan []byte, 256),
	}

	view := usecase.NewConversationView(h.messagingUseCase, uid)

	// Any change in the viewer's conversations re-pushes the list and marks
	// the open transcript for refetch on the next select. The session starts
	// before the connection registers, and teardown is keyed by token: a
	// replaced connection's late close must not stop the replacement's
	// session.
	sessionToken := h.sessions.Start(uid, func() {
		view.Invalidate()
		h.pushConversationList(connCtx, client)
	})

	client.OnMessage = func(data []byte) {
		h.dispatch(connCtx, client, view, data)
	}
	client.OnClose = func() {
		view.Close()
		h.sessions.Release(uid, sessionToken)
		cancel()
	}

	h.wsManager.Register <- client

	go client.ReadPump(h.wsManager)
	go client.WritePump()

	h.pushConversationList(connCtx, client)

	return nil
}

func (h *WebSocketHandler) dispatch(ctx context.Context, client *ws.Client, view *usecase.ConversationView, data []byte) {
	var frame inboundFrame
	if err := json.Unmarshal(data, &frame); err != nil {
		h.sendFrame(client, outboundFrame{Type: "error", Error: "Malformed frame"})
		return
	}

	switch frame.Type {
	case "select_conversation":
		h.handleSelect(ctx, client, view, frame.ConversationID)

	case "close_conversation":
		view.Close()
		if frame.ConversationID != "" {
			h.sessions.Unwatch(client.ProfileID, frame.ConversationID)
		}

	case "send_message":
		h.handleSend(ctx, client, view, frame)

	case "ping":
		h.sendFrame(client, outboundFrame{Type: "pong"})

	default:
		h.sendFrame(client, outboundFrame{Type: "error", Error: "Unknown frame type: " + frame.Type})
	}
}

// handleSelect opens a conversation: the view fetches (or replays) history,
// and a per-conversation watch re-fetches it on every store change.
func (h *WebSocketHandler) handleSelect(ctx context.Context, client *ws.Client, view *usecase.ConversationView, conversationID string) {
	if conversationID == "" {
		h.sendFrame(client, outboundFrame{Type: "error", Error: "conversation_id is required"})
		return
	}

	deliver := func(id string, messages []*entity.Message) {
		h.sendFrame(client, outboundFrame{
			Type:           "message_history",
			ConversationID: id,
			Data:           messages,
		})
	}

	if err := view.Select(ctx, conversationID, deliver); err != nil {
		h.sendFrame(client, outboundFrame{
			Type:           "error",
			ConversationID: conversationID,
			Error:          err.Error(),
		})
		return
	}

	h.sessions.Watch(client.ProfileID, conversationID, func() {
		if err := view.Refresh(ctx, deliver); err != nil {
			logger.Warn("Refresh for %s failed: %v", client.ProfileID, err)
		}
	})
}

func (h *WebSocketHandler) handleSend(ctx context.Context, client *ws.Client, view *usecase.ConversationView, frame inboundFrame) {
	conversationID := frame.ConversationID
	if conversationID == "" {
		conversationID = view.Active()
	}
	if conversationID == "" {
		h.sendFrame(client, outboundFrame{Type: "error", Error: "No conversation selected"})
		return
	}

	message, err := h.messagingUseCase.SendMessage(ctx, client.ProfileID, conversationID, frame.Content)
	if err != nil {
		h.sendFrame(client, outboundFrame{
			Type:           "error",
			ConversationID: conversationID,
			Error:          err.Error(),
		})
		return
	}

	h.sendFrame(client, outboundFrame{
		Type:           "message_sent",
		ConversationID: conversationID,
		Data:           message,
	})
}

func (h *WebSocketHandler) pushConversationList(ctx context.Context, client *ws.Client) {
	summaries, err := h.messagingUseCase.ListConversations(ctx, client.ProfileID)
	if err != nil {
		h.sendFrame(client, outboundFrame{Type: "error", Error: "Failed to load conversations"})
		return
	}

	h.sendFrame(client, outboundFrame{Type: "conversation_list", Data: summaries})
}

// sendFrame marshals and queues a frame. A full send buffer drops the frame
// rather than blocking the caller.
func (h *WebSocketHandler) sendFrame(client *ws.Client, frame outboundFrame) {
	payload, err := json.Marshal(frame)
	if err != nil {
		logger.Error("Failed to marshal %s frame: %v", frame.Type, err)
		return
	}

	select {
	case client.Send <- payload:
	default:
		logger.Warn("Dropping %s frame for %s: send buffer full", frame.Type, client.ProfileID)
	}
}
