package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type MatchHandler struct {
	matchmakingUseCase *usecase.MatchmakingUseCase
}

func NewMatchHandler(matchmakingUseCase *usecase.MatchmakingUseCase) *MatchHandler {
	return &MatchHandler{
		matchmakingUseCase: matchmakingUseCase,
	}
}

// GetRecommendations scores counterpart profiles against the caller's
// preferences and returns them best first.
func (h *MatchHandler) GetRecommendations(c echo.Context) error {
	uid := c.Get("uid").(string)

	recommendations, err := h.matchmakingUseCase.RecommendationsFor(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, recommendations)
}

// Browse lists counterpart profiles for the caller's role: startups for
// investors, investors for founders.
func (h *MatchHandler) Browse(c echo.Context) error {
	uid := c.Get("uid").(string)

	profiles, err := h.matchmakingUseCase.BrowseCounterparts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, profiles)
}
