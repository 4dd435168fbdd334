package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type PitchHandler struct {
	pitchUseCase *usecase.PitchUseCase
}

func NewPitchHandler(pitchUseCase *usecase.PitchUseCase) *PitchHandler {
	return &PitchHandler{
		pitchUseCase: pitchUseCase,
	}
}

type createPitchRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category" validate:"required"`
	Stage       string  `json:"stage" validate:"required"`
	FundingGoal float64 `json:"funding_goal" validate:"required,gt=0"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	TeamSize    int     `json:"team_size" validate:"gte=0"`
}

func (h *PitchHandler) CreatePitch(c echo.Context) error {
	var req createPitchRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.CreatePitch(c.Request().Context(), uid, usecase.CreatePitchInput{
		Name:        req.Name,
		Category:    req.Category,
		Stage:       req.Stage,
		FundingGoal: req.FundingGoal,
		Description: req.Description,
		Location:    req.Location,
		TeamSize:    req.TeamSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, pitch)
}

func (h *PitchHandler) ListPitches(c echo.Context) error {
	uid := c.Get("uid").(string)

	pitches, err := h.pitchUseCase.ListPitches(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitches)
}

func (h *PitchHandler) GetPitch(c echo.Context) error {
	uid := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.GetPitch(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}

func (h *PitchHandler) RegisterInterest(c echo.Context) error {
	uid := c.Get("uid").(string)

	pitch, err := h.pitchUseCase.RegisterInterest(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, pitch)
}
