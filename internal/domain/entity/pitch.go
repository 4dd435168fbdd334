package entity

import "time"

// Pitch is a founder's fundraising campaign shown on dashboards and offered to
// matched investors.
type Pitch struct {
	ID          string    `json:"id" firestore:"id"`
	FounderID   string    `json:"founder_id" firestore:"founderId"`
	Name        string    `json:"name" firestore:"name"`
	Category    string    `json:"category" firestore:"category"`
	Stage       string    `json:"stage" firestore:"stage"` // "Pre-Seed", "Seed", "Series A", ...
	FundingGoal float64   `json:"funding_goal" firestore:"fundingGoal"`
	Raised      float64   `json:"raised" firestore:"raised"`
	Description string    `json:"description" firestore:"description"`
	Location    string    `json:"location,omitempty" firestore:"location,omitempty"`
	TeamSize    int       `json:"team_size,omitempty" firestore:"teamSize,omitempty"`
	Views       int       `json:"views" firestore:"views"`
	Interested  int       `json:"interested" firestore:"interested"`
	Meetings    int       `json:"meetings" firestore:"meetings"`
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// FundingProgress returns the raised amount as a percentage of the goal,
// clamped to [0, 100]. A zero goal reads as no progress.
func (p *Pitch) FundingProgress() float64 {
	if p.FundingGoal <= 0 {
		return 0
	}
	progress := p.Raised / p.FundingGoal * 100
	if progress > 100 {
		return 100
	}
	return progress
}
