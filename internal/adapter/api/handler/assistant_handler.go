package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type AssistantHandler struct {
	assistantUseCase *usecase.AssistantUseCase
}

func NewAssistantHandler(assistantUseCase *usecase.AssistantUseCase) *AssistantHandler {
	return &AssistantHandler{
		assistantUseCase: assistantUseCase,
	}
}

type assistantChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type assistantChatResponse struct {
	Reply string `json:"reply"`
}

// Chat proxies the caller's question to the completion model. Upstream
// failures come back as a canned apology, not an error.
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req assistantChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	reply, err := h.assistantUseCase.GenerateReply(c.Request().Context(), uid, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, assistantChatResponse{Reply: reply})
}
