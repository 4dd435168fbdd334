package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/domain/entity"
	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type ProfileHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewProfileHandler(authUseCase *usecase.AuthUseCase) *ProfileHandler {
	return &ProfileHandler{
		authUseCase: authUseCase,
	}
}

type investorPreferencesRequest struct {
	InvestorType  string   `json:"investor_type" validate:"required"`
	Sectors       []string `json:"sectors" validate:"required,min=1"`
	Stages        []string `json:"stages" validate:"required,min=1"`
	MinInvestment float64  `json:"min_investment" validate:"gte=0"`
	MaxInvestment float64  `json:"max_investment" validate:"gtefield=MinInvestment"`
}

type founderCompanyRequest struct {
	CompanyName     string  `json:"company_name" validate:"required"`
	Industry        string  `json:"industry" validate:"required"`
	Stage           string  `json:"stage" validate:"required"`
	Location        string  `json:"location"`
	Description     string  `json:"description"`
	Website         string  `json:"website" validate:"omitempty,url"`
	AmountRaised    float64 `json:"amount_raised" validate:"gte=0"`
	FundingRequired float64 `json:"funding_required" validate:"gte=0"`
	TeamSize        int     `json:"team_size" validate:"gte=0"`
}

func (h *ProfileHandler) GetMe(c echo.Context) error {
	uid := c.Get("uid").(string)

	profile, err := h.authUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, toProfileResponse(profile))
}

func (h *ProfileHandler) SaveInvestorPreferences(c echo.Context) error {
	var req investorPreferencesRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	prefs, err := h.authUseCase.SaveInvestorPreferences(c.Request().Context(), uid, usecase.InvestorPreferencesInput{
		InvestorType:  req.InvestorType,
		Sectors:       req.Sectors,
		Stages:        req.Stages,
		MinInvestment: req.MinInvestment,
		MaxInvestment: req.MaxInvestment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, prefs)
}

func (h *ProfileHandler) SaveFounderCompany(c echo.Context) error {
	var req founderCompanyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	uid := c.Get("uid").(string)

	company, err := h.authUseCase.SaveFounderCompany(c.Request().Context(), uid, usecase.FounderCompanyInput{
		CompanyName:     req.CompanyName,
		Industry:        req.Industry,
		Stage:           req.Stage,
		Location:        req.Location,
		Description:     req.Description,
		Website:         req.Website,
		AmountRaised:    req.AmountRaised,
		FundingRequired: req.FundingRequired,
		TeamSize:        req.TeamSize,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, company)
}

func toProfileResponse(profile *entity.Profile) profileResponse {
	return profileResponse{
		ID:       profile.ID,
		Email:    profile.Email,
		FullName: profile.FullName,
		Phone:    profile.Phone,
		Role:     profile.Role,
	}
}
