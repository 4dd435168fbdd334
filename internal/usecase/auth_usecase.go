package usecase

import (
	"context"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type AuthUseCase struct {
	profileRepo repository.ProfileRepository
	authClient  AuthClient
}

func NewAuthUseCase(profileRepo repository.ProfileRepository, authClient AuthClient) *AuthUseCase {
	return &AuthUseCase{
		profileRepo: profileRepo,
		authClient:  authClient,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     string
}

type AuthResult struct {
	Profile *entity.Profile
	Token   string
}

func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if input.Role != entity.RoleInvestor && input.Role != entity.RoleFounder {
		return nil, errors.BadRequest("Role must be investor or founder", nil)
	}

	existing, err := uc.profileRepo.GetByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, errors.BadRequest("Email already in use", nil)
	}

	uid, err := uc.authClient.CreateUser(ctx, input.Email, input.Password, input.FullName)
	if err != nil {
		return nil, errors.AuthFailure("Registration rejected by identity provider", err)
	}

	profile := &entity.Profile{
		ID:       uid,
		Email:    input.Email,
		FullName: input.FullName,
		Phone:    input.Phone,
		Role:     input.Role,
	}

	if err := uc.profileRepo.Create(ctx, profile); err != nil {
		// Roll back the auth account so the email is not left orphaned.
		if delErr := uc.authClient.DeleteUser(ctx, uid); delErr != nil {
			logger.Error("Failed to clean up auth user %s after profile create failure: %v", uid, delErr)
		}
		return nil, err
	}

	token, err := uc.authClient.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.AuthFailure("Failed to sign in after registration", err)
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, err := uc.authClient.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.AuthFailure("Invalid email or password", err)
	}

	uid, err := uc.authClient.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.AuthFailure("Failed to verify issued token", err)
	}

	profile, err := uc.profileRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Profile: profile,
		Token:   token,
	}, nil
}

func (uc *AuthUseCase) GetProfile(ctx context.Context, id string) (*entity.Profile, error) {
	return uc.profileRepo.GetByID(ctx, id)
}

type InvestorPreferencesInput struct {
	InvestorType  string
	Sectors       []string
	Stages        []string
	MinInvestment float64
	MaxInvestment float64
}

func (uc *AuthUseCase) SaveInvestorPreferences(ctx context.Context, profileID string, input InvestorPreferencesInput) (*entity.InvestorPreferences, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Role != entity.RoleInvestor {
		return nil, errors.Forbidden("Only investors can set investment preferences", nil)
	}

	prefs := &entity.InvestorPreferences{
		ProfileID:     profileID,
		InvestorType:  input.InvestorType,
		Sectors:       input.Sectors,
		Stages:        input.Stages,
		MinInvestment: input.MinInvestment,
		MaxInvestment: input.MaxInvestment,
	}

	if err := uc.profileRepo.SaveInvestorPreferences(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

type FounderCompanyInput struct {
	CompanyName     string
	Industry        string
	Stage           string
	Location        string
	Description     string
	Website         string
	AmountRaised    float64
	FundingRequired float64
	TeamSize        int
}

func (uc *AuthUseCase) SaveFounderCompany(ctx context.Context, profileID string, input FounderCompanyInput) (*entity.FounderCompany, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}
	if profile.Role != entity.RoleFounder {
		return nil, errors.Forbidden("Only founders can set company details", nil)
	}

	company := &entity.FounderCompany{
		ProfileID:       profileID,
		CompanyName:     input.CompanyName,
		Industry:        input.Industry,
		Stage:           input.Stage,
		Location:        input.Location,
		Description:     input.Description,
		Website:         input.Website,
		AmountRaised:    input.AmountRaised,
		FundingRequired: input.FundingRequired,
		TeamSize:        input.TeamSize,
	}

	if err := uc.profileRepo.SaveFounderCompany(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}
