package usecase

import (
	"context"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type PitchUseCase struct {
	pitchRepo   repository.PitchRepository
	profileRepo repository.ProfileRepository
}

func NewPitchUseCase(pitchRepo repository.PitchRepository, profileRepo repository.ProfileRepository) *PitchUseCase {
	return &PitchUseCase{
		pitchRepo:   pitchRepo,
		profileRepo: profileRepo,
	}
}

type CreatePitchInput struct {
	Name        string
	Category    string
	Stage       string
	FundingGoal float64
	Raised      float64
	Description string
	Location    string
	TeamSize    int
}

// PitchResponse decorates a pitch with its computed funding progress.
type PitchResponse struct {
	*entity.Pitch
	FundingProgress float64 `json:"funding_progress"`
}

func (uc *PitchUseCase) CreatePitch(ctx context.Context, founderID string, input CreatePitchInput) (*PitchResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, founderID)
	if err != nil {
		return nil, err
	}
	if profile.Role != entity.RoleFounder {
		return nil, errors.Forbidden("Only founders can create pitches", nil)
	}

	if input.FundingGoal <= 0 {
		return nil, errors.BadRequest("Funding goal must be positive", nil)
	}

	pitch := &entity.Pitch{
		FounderID:   founderID,
		Name:        input.Name,
		Category:    input.Category,
		Stage:       input.Stage,
		FundingGoal: input.FundingGoal,
		Raised:      input.Raised,
		Description: input.Description,
		Location:    input.Location,
		TeamSize:    input.TeamSize,
	}

	if err := uc.pitchRepo.Create(ctx, pitch); err != nil {
		return nil, err
	}

	return decorate(pitch), nil
}

func (uc *PitchUseCase) ListPitches(ctx context.Context, viewerID string) ([]*PitchResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	var pitches []*entity.Pitch
	if profile.Role == entity.RoleFounder {
		pitches, err = uc.pitchRepo.ListByFounder(ctx, viewerID)
	} else {
		// Investors browse everyone's campaigns.
		pitches, err = uc.pitchRepo.List(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*PitchResponse, 0, len(pitches))
	for _, pitch := range pitches {
		responses = append(responses, decorate(pitch))
	}
	return responses, nil
}

// GetPitch returns the pitch and counts the view when someone other than the
// founder opens it. The counter bump is best effort.
func (uc *PitchUseCase) GetPitch(ctx context.Context, viewerID, pitchID string) (*PitchResponse, error) {
	pitch, err := uc.pitchRepo.GetByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}

	if viewerID != pitch.FounderID {
		pitch.Views++
		if err := uc.pitchRepo.Update(ctx, pitch); err != nil {
			logger.Warn("View count bump failed for pitch %s: %v", pitchID, err)
		}
	}

	return decorate(pitch), nil
}

// RegisterInterest records an investor's interest in a pitch.
func (uc *PitchUseCase) RegisterInterest(ctx context.Context, viewerID, pitchID string) (*PitchResponse, error) {
	profile, err := uc.profileRepo.GetByID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if profile.Role != entity.RoleInvestor {
		return nil, errors.Forbidden("Only investors can register interest", nil)
	}

	pitch, err := uc.pitchRepo.GetByID(ctx, pitchID)
	if err != nil {
		return nil, err
	}

	pitch.Interested++
	if err := uc.pitchRepo.Update(ctx, pitch); err != nil {
		return nil, err
	}

	return decorate(pitch), nil
}

func decorate(pitch *entity.Pitch) *PitchResponse {
	return &PitchResponse{
		Pitch:           pitch,
		FundingProgress: pitch.FundingProgress(),
	}
}
