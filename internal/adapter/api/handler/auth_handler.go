package handler

import (
	"github.com/labstack/echo/v4"

	"innovest/internal/infrastructure/live"
	"innovest/internal/usecase"
	"innovest/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	sessions    *live.Sessions
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, sessions *live.Sessions) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		sessions:    sessions,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Role     string `json:"role" validate:"required,oneof=investor founder"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type profileResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type authResponse struct {
	Token   string          `json:"token"`
	Profile profileResponse `json:"profile"`
}

func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Register(c.Request().Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
		Phone:    req.Phone,
		Role:     req.Role,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, authResponse{
		Token:   result.Token,
		Profile: toProfileResponse(result.Profile),
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, authResponse{
		Token:   result.Token,
		Profile: toProfileResponse(result.Profile),
	})
}

// Logout tears down the caller's live subscriptions. Firebase ID tokens are
// stateless, so there is nothing to revoke server-side.
func (h *AuthHandler) Logout(c echo.Context) error {
	uid := c.Get("uid").(string)

	h.sessions.Stop(uid)

	return response.Success(c, map[string]string{
		"message": "Successfully logged out",
	})
}
