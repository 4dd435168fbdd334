package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

// Score weights: sector alignment dominates, then stage, then check size.
const (
	sectorWeight = 40
	stageWeight  = 35
	sizeWeight   = 25

	highPriorityThreshold = 90
)

type MatchmakingUseCase struct {
	profileRepo repository.ProfileRepository
}

func NewMatchmakingUseCase(profileRepo repository.ProfileRepository) *MatchmakingUseCase {
	return &MatchmakingUseCase{
		profileRepo: profileRepo,
	}
}

// Recommendation is a derived match row, recomputed on every request.
type Recommendation struct {
	ProfileID    string   `json:"profile_id"`
	Name         string   `json:"name"`
	Subtitle     string   `json:"subtitle"`
	Score        int      `json:"score"`
	Reasons      []string `json:"reasons"`
	HighPriority bool     `json:"high_priority"`
}

// RecommendationsFor computes the match list for either role: founders are
// scored against the investor's preferences, investors against the founder's
// company.
func (uc *MatchmakingUseCase) RecommendationsFor(ctx context.Context, profileID string) ([]*Recommendation, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case entity.RoleInvestor:
		return uc.recommendStartups(ctx, profileID)
	case entity.RoleFounder:
		return uc.recommendInvestors(ctx, profileID)
	default:
		return nil, errors.BadRequest("Profile has no recognized role", nil)
	}
}

// BrowseCounterparts lists the other side of the marketplace: founders for
// investors, investors for founders.
func (uc *MatchmakingUseCase) BrowseCounterparts(ctx context.Context, profileID string) ([]*entity.Profile, error) {
	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return nil, err
	}

	switch profile.Role {
	case entity.RoleInvestor:
		return uc.profileRepo.ListByRole(ctx, entity.RoleFounder)
	case entity.RoleFounder:
		return uc.profileRepo.ListByRole(ctx, entity.RoleInvestor)
	default:
		return nil, errors.BadRequest("Profile has no recognized role", nil)
	}
}

func (uc *MatchmakingUseCase) recommendStartups(ctx context.Context, investorID string) ([]*Recommendation, error) {
	prefs, err := uc.profileRepo.GetInvestorPreferences(ctx, investorID)
	if err != nil {
		return nil, err
	}

	companies, err := uc.profileRepo.ListFounderCompanies(ctx)
	if err != nil {
		return nil, err
	}

	var recommendations []*Recommendation
	for _, company := range companies {
		if company.ProfileID == investorID {
			continue
		}
		score, reasons := MatchScore(prefs, company)
		if score == 0 {
			continue
		}
		recommendations = append(recommendations, &Recommendation{
			ProfileID:    company.ProfileID,
			Name:         company.CompanyName,
			Subtitle:     fmt.Sprintf("%s - %s", company.Industry, company.Stage),
			Score:        score,
			Reasons:      reasons,
			HighPriority: score >= highPriorityThreshold,
		})
	}

	sortByScore(recommendations)
	return recommendations, nil
}

func (uc *MatchmakingUseCase) recommendInvestors(ctx context.Context, founderID string) ([]*Recommendation, error) {
	company, err := uc.profileRepo.GetFounderCompany(ctx, founderID)
	if err != nil {
		return nil, err
	}

	allPrefs, err := uc.profileRepo.ListInvestorPreferences(ctx)
	if err != nil {
		return nil, err
	}

	var recommendations []*Recommendation
	for _, prefs := range allPrefs {
		score, reasons := MatchScore(prefs, company)
		if score == 0 {
			continue
		}

		name := prefs.InvestorType
		if investor, err := uc.profileRepo.GetByID(ctx, prefs.ProfileID); err == nil {
			name = investor.FullName
		} else {
			logger.Warn("Investor profile %s lookup failed for recommendation: %v", prefs.ProfileID, err)
		}

		recommendations = append(recommendations, &Recommendation{
			ProfileID:    prefs.ProfileID,
			Name:         name,
			Subtitle:     prefs.InvestorType,
			Score:        score,
			Reasons:      reasons,
			HighPriority: score >= highPriorityThreshold,
		})
	}

	sortByScore(recommendations)
	return recommendations, nil
}

// MatchScore rates an investor/company pairing from 0 to 100: full sector
// weight when the company's industry is among the investor's sectors, full
// stage weight when the startup stage is among the stage preferences, and the
// size weight when the funding requirement fits the investor's check range
// (half weight when it misses the range by less than a factor of two).
func MatchScore(prefs *entity.InvestorPreferences, company *entity.FounderCompany) (int, []string) {
	score := 0
	var reasons []string

	if containsFold(prefs.Sectors, company.Industry) {
		score += sectorWeight
		reasons = append(reasons, fmt.Sprintf("%s is among the investor's sectors", company.Industry))
	}

	if containsFold(prefs.Stages, company.Stage) {
		score += stageWeight
		reasons = append(reasons, fmt.Sprintf("%s stage matches the investor's preferences", company.Stage))
	}

	switch sizeFit(prefs, company.FundingRequired) {
	case fitExact:
		score += sizeWeight
		reasons = append(reasons, "Funding requirement fits the investor's check size")
	case fitNear:
		score += sizeWeight / 2
		reasons = append(reasons, "Funding requirement is close to the investor's check size")
	}

	return score, reasons
}

type fit int

const (
	fitNone fit = iota
	fitNear
	fitExact
)

func sizeFit(prefs *entity.InvestorPreferences, required float64) fit {
	if required <= 0 || (prefs.MinInvestment <= 0 && prefs.MaxInvestment <= 0) {
		return fitNone
	}

	min, max := prefs.MinInvestment, prefs.MaxInvestment
	if max <= 0 {
		max = min
	}
	if min <= 0 {
		min = max
	}

	if required >= min && required <= max {
		return fitExact
	}
	if required >= min/2 && required <= max*2 {
		return fitNear
	}
	return fitNone
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func sortByScore(recommendations []*Recommendation) {
	sort.Slice(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})
}
