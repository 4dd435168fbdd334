package repository

import (
	"context"

	"innovest/internal/domain/entity"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	GetByID(ctx context.Context, id string) (*entity.Profile, error)
	GetByEmail(ctx context.Context, email string) (*entity.Profile, error)
	Update(ctx context.Context, profile *entity.Profile) error
	ListByRole(ctx context.Context, role string) ([]*entity.Profile, error)

	SaveInvestorPreferences(ctx context.Context, prefs *entity.InvestorPreferences) error
	GetInvestorPreferences(ctx context.Context, profileID string) (*entity.InvestorPreferences, error)
	ListInvestorPreferences(ctx context.Context) ([]*entity.InvestorPreferences, error)

	SaveFounderCompany(ctx context.Context, company *entity.FounderCompany) error
	GetFounderCompany(ctx context.Context, profileID string) (*entity.FounderCompany, error)
	ListFounderCompanies(ctx context.Context) ([]*entity.FounderCompany, error)
}
