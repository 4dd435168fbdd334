package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
)

type fakePitchRepo struct {
	mu      sync.Mutex
	pitches map[string]*entity.Pitch
}

var _ repository.PitchRepository = (*fakePitchRepo)(nil)

func newFakePitchRepo() *fakePitchRepo {
	return &fakePitchRepo{pitches: make(map[string]*entity.Pitch)}
}

func (f *fakePitchRepo) Create(ctx context.Context, pitch *entity.Pitch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if pitch.ID == "" {
		pitch.ID = uuid.New().String()
	}
	f.pitches[pitch.ID] = pitch
	return nil
}

func (f *fakePitchRepo) GetByID(ctx context.Context, id string) (*entity.Pitch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	pitch, ok := f.pitches[id]
	if !ok {
		return nil, errors.NotFound("Pitch not found", nil)
	}
	return pitch, nil
}

func (f *fakePitchRepo) ListByFounder(ctx context.Context, founderID string) ([]*entity.Pitch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Pitch
	for _, pitch := range f.pitches {
		if pitch.FounderID == founderID {
			out = append(out, pitch)
		}
	}
	return out, nil
}

func (f *fakePitchRepo) List(ctx context.Context) ([]*entity.Pitch, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Pitch
	for _, pitch := range f.pitches {
		out = append(out, pitch)
	}
	return out, nil
}

func (f *fakePitchRepo) Update(ctx context.Context, pitch *entity.Pitch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pitches[pitch.ID] = pitch
	return nil
}

func newPitchFixture() (*PitchUseCase, *fakePitchRepo) {
	pitchRepo := newFakePitchRepo()
	profileRepo := newFakeProfileRepo()
	profileRepo.add("alice", "Alice Investor", "investor")
	profileRepo.add("bob", "Bob Founder", "founder")

	return NewPitchUseCase(pitchRepo, profileRepo), pitchRepo
}

func TestCreatePitchFounderOnly(t *testing.T) {
	uc, _ := newPitchFixture()

	_, err := uc.CreatePitch(context.Background(), "alice", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 500_000,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestCreatePitchComputesFundingProgress(t *testing.T) {
	uc, _ := newPitchFixture()

	pitch, err := uc.CreatePitch(context.Background(), "bob", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 500_000,
		Raised:      125_000,
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, pitch.FundingProgress)
}

func TestCreatePitchRequiresPositiveGoal(t *testing.T) {
	uc, _ := newPitchFixture()

	_, err := uc.CreatePitch(context.Background(), "bob", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 0,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetPitchCountsInvestorViewsOnly(t *testing.T) {
	uc, pitchRepo := newPitchFixture()
	ctx := context.Background()

	created, err := uc.CreatePitch(ctx, "bob", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 500_000,
	})
	require.NoError(t, err)

	// Founder opening their own pitch does not count as a view.
	_, err = uc.GetPitch(ctx, "bob", created.ID)
	require.NoError(t, err)

	_, err = uc.GetPitch(ctx, "alice", created.ID)
	require.NoError(t, err)

	stored, err := pitchRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Views)
}

func TestRegisterInterestInvestorOnly(t *testing.T) {
	uc, _ := newPitchFixture()
	ctx := context.Background()

	created, err := uc.CreatePitch(ctx, "bob", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 500_000,
	})
	require.NoError(t, err)

	_, err = uc.RegisterInterest(ctx, "bob", created.ID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.RegisterInterest(ctx, "alice", created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Interested)
}

func TestListPitchesByRole(t *testing.T) {
	uc, _ := newPitchFixture()
	ctx := context.Background()

	_, err := uc.CreatePitch(ctx, "bob", CreatePitchInput{
		Name:        "PayFlow",
		Category:    "Fintech",
		Stage:       "Seed",
		FundingGoal: 500_000,
	})
	require.NoError(t, err)

	founderView, err := uc.ListPitches(ctx, "bob")
	require.NoError(t, err)
	assert.Len(t, founderView, 1)

	investorView, err := uc.ListPitches(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, investorView, 1)
}
