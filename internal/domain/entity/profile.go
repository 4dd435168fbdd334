package entity

import "time"

const (
	RoleInvestor = "investor"
	RoleFounder  = "founder"
)

// Profile is the identity record for a registered user. The role tag is fixed
// at registration and never changes afterwards.
type Profile struct {
	ID                string    `json:"id" firestore:"id"`
	Email             string    `json:"email" firestore:"email"`
	FullName          string    `json:"full_name" firestore:"fullName"`
	Phone             string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty" firestore:"profilePictureUrl,omitempty"`
	Role              string    `json:"role" firestore:"role"` // "investor" or "founder"
	CreatedAt         time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt         time.Time `json:"updated_at" firestore:"updatedAt"`
}

// InvestorPreferences carries the investor-side matching attributes, stored
// alongside the profile at registration or profile edit.
type InvestorPreferences struct {
	ProfileID     string    `json:"profile_id" firestore:"profileId"`
	InvestorType  string    `json:"investor_type" firestore:"investorType"` // "angel", "vc_fund", "corporate_vc"
	Sectors       []string  `json:"investment_sectors" firestore:"investmentSectors"`
	Stages        []string  `json:"stage_preferences" firestore:"stagePreferences"`
	MinInvestment float64   `json:"min_investment_amount,omitempty" firestore:"minInvestmentAmount,omitempty"`
	MaxInvestment float64   `json:"max_investment_amount,omitempty" firestore:"maxInvestmentAmount,omitempty"`
	CreatedAt     time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt     time.Time `json:"updated_at" firestore:"updatedAt"`
}

// FounderCompany carries the founder-side company record.
type FounderCompany struct {
	ProfileID       string    `json:"profile_id" firestore:"profileId"`
	CompanyName     string    `json:"company_name" firestore:"companyName"`
	Industry        string    `json:"industry" firestore:"industry"`
	Stage           string    `json:"startup_stage" firestore:"startupStage"`
	Location        string    `json:"location" firestore:"location"`
	Description     string    `json:"company_description" firestore:"companyDescription"`
	Website         string    `json:"website,omitempty" firestore:"website,omitempty"`
	AmountRaised    float64   `json:"amount_raised" firestore:"amountRaised"`
	FundingRequired float64   `json:"funding_required" firestore:"fundingRequired"`
	TeamSize        int       `json:"team_size" firestore:"teamSize"`
	CreatedAt       time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt       time.Time `json:"updated_at" firestore:"updatedAt"`
}
