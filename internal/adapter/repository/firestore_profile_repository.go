package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

type firestoreProfileRepository struct {
	client *firestore.Client
}

func NewFirestoreProfileRepository(client *firestore.Client) repository.ProfileRepository {
	return &firestoreProfileRepository{
		client: client,
	}
}

func (r *firestoreProfileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if _, err := r.client.Collection("profiles").Doc(profile.ID).Set(ctx, profile); err != nil {
		return errors.StoreUnavailable("Failed to create profile", err)
	}
	return nil
}

func (r *firestoreProfileRepository) GetByID(ctx context.Context, id string) (*entity.Profile, error) {
	doc, err := r.client.Collection("profiles").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Profile", err)
		}
		return nil, errors.StoreUnavailable("Failed to get profile", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

func (r *firestoreProfileRepository) GetByEmail(ctx context.Context, email string) (*entity.Profile, error) {
	query := r.client.Collection("profiles").Where("email", "==", email).Limit(1)
	doc, err := query.Documents(ctx).Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Profile", nil)
	}
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to query profile by email", err)
	}

	var profile entity.Profile
	if err := doc.DataTo(&profile); err != nil {
		return nil, errors.Internal("Failed to parse profile data", err)
	}

	return &profile, nil
}

// Update never touches the role field: the role tag is immutable after
// registration.
func (r *firestoreProfileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	updates := []firestore.Update{
		{Path: "fullName", Value: profile.FullName},
		{Path: "phone", Value: profile.Phone},
		{Path: "profilePictureUrl", Value: profile.ProfilePictureURL},
		{Path: "updatedAt", Value: time.Now()},
	}

	if _, err := r.client.Collection("profiles").Doc(profile.ID).Update(ctx, updates); err != nil {
		return errors.StoreUnavailable("Failed to update profile", err)
	}
	return nil
}

func (r *firestoreProfileRepository) ListByRole(ctx context.Context, role string) ([]*entity.Profile, error) {
	docs, err := r.client.Collection("profiles").Where("role", "==", role).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to list profiles by role", err)
	}

	var profiles []*entity.Profile
	for _, doc := range docs {
		var profile entity.Profile
		if err := doc.DataTo(&profile); err != nil {
			logger.Warn("Skipping malformed profile %s: %v", doc.Ref.ID, err)
			continue
		}
		profiles = append(profiles, &profile)
	}

	return profiles, nil
}

func (r *firestoreProfileRepository) SaveInvestorPreferences(ctx context.Context, prefs *entity.InvestorPreferences) error {
	now := time.Now()
	if prefs.CreatedAt.IsZero() {
		prefs.CreatedAt = now
	}
	prefs.UpdatedAt = now

	if _, err := r.client.Collection("investor_preferences").Doc(prefs.ProfileID).Set(ctx, prefs); err != nil {
		return errors.StoreUnavailable("Failed to save investor preferences", err)
	}
	return nil
}

func (r *firestoreProfileRepository) GetInvestorPreferences(ctx context.Context, profileID string) (*entity.InvestorPreferences, error) {
	doc, err := r.client.Collection("investor_preferences").Doc(profileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Investor preferences", err)
		}
		return nil, errors.StoreUnavailable("Failed to get investor preferences", err)
	}

	var prefs entity.InvestorPreferences
	if err := doc.DataTo(&prefs); err != nil {
		return nil, errors.Internal("Failed to parse investor preferences", err)
	}

	return &prefs, nil
}

func (r *firestoreProfileRepository) ListInvestorPreferences(ctx context.Context) ([]*entity.InvestorPreferences, error) {
	docs, err := r.client.Collection("investor_preferences").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to list investor preferences", err)
	}

	var all []*entity.InvestorPreferences
	for _, doc := range docs {
		var prefs entity.InvestorPreferences
		if err := doc.DataTo(&prefs); err != nil {
			logger.Warn("Skipping malformed investor preferences %s: %v", doc.Ref.ID, err)
			continue
		}
		all = append(all, &prefs)
	}

	return all, nil
}

func (r *firestoreProfileRepository) SaveFounderCompany(ctx context.Context, company *entity.FounderCompany) error {
	now := time.Now()
	if company.CreatedAt.IsZero() {
		company.CreatedAt = now
	}
	company.UpdatedAt = now

	if _, err := r.client.Collection("founder_companies").Doc(company.ProfileID).Set(ctx, company); err != nil {
		return errors.StoreUnavailable("Failed to save founder company", err)
	}
	return nil
}

func (r *firestoreProfileRepository) GetFounderCompany(ctx context.Context, profileID string) (*entity.FounderCompany, error) {
	doc, err := r.client.Collection("founder_companies").Doc(profileID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Founder company", err)
		}
		return nil, errors.StoreUnavailable("Failed to get founder company", err)
	}

	var company entity.FounderCompany
	if err := doc.DataTo(&company); err != nil {
		return nil, errors.Internal("Failed to parse founder company", err)
	}

	return &company, nil
}

func (r *firestoreProfileRepository) ListFounderCompanies(ctx context.Context) ([]*entity.FounderCompany, error) {
	docs, err := r.client.Collection("founder_companies").Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.StoreUnavailable("Failed to list founder companies", err)
	}

	var all []*entity.FounderCompany
	for _, doc := range docs {
		var company entity.FounderCompany
		if err := doc.DataTo(&company); err != nil {
			logger.Warn("Skipping malformed founder company %s: %v", doc.Ref.ID, err)
			continue
		}
		all = append(all, &company)
	}

	return all, nil
}
