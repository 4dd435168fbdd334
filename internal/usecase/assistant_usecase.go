package usecase

import (
	"context"
	"fmt"
	"strings"

	"innovest/internal/domain/entity"
	"innovest/internal/domain/repository"
	"innovest/internal/infrastructure/ratelimit"
	"innovest/pkg/errors"
	"innovest/pkg/logger"
)

// The apology shown whenever the completion endpoint fails or returns no
// candidates. Completion failures never propagate as application errors.
const assistantFallback = "I'm sorry, I'm having trouble connecting right now. Please try again later."

type AssistantUseCase struct {
	profileRepo repository.ProfileRepository
	completion  CompletionClient
	rateLimiter *ratelimit.RateLimiter
}

func NewAssistantUseCase(profileRepo repository.ProfileRepository, completion CompletionClient) *AssistantUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &AssistantUseCase{
		profileRepo: profileRepo,
		completion:  completion,
		rateLimiter: rateLimiter,
	}
}

// GenerateReply answers a free-text question with a role-flavored completion.
// Endpoint failures degrade to a static apology string.
func (uc *AssistantUseCase) GenerateReply(ctx context.Context, profileID, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", errors.BadRequest("Question must not be empty", nil)
	}

	if allowed, wait := uc.rateLimiter.Allow(profileID, ratelimit.ActionAssistantPrompt); !allowed {
		logger.Warn("Assistant rate limited for %s (wait %v)", profileID, wait)
		return "", errors.New("TOO_MANY_REQUESTS", "Too many assistant requests, please wait", 429, nil)
	}

	profile, err := uc.profileRepo.GetByID(ctx, profileID)
	if err != nil {
		return "", err
	}

	prompt := buildPrompt(profile.Role, question)

	reply, err := uc.completion.GenerateContent(ctx, prompt)
	if err != nil {
		logger.Error("Completion endpoint failed for %s: %v", profileID, err)
		return assistantFallback, nil
	}

	return reply, nil
}

func buildPrompt(role, question string) string {
	var focus string
	if role == entity.RoleInvestor {
		focus = "Help them with investment opportunities, due diligence, portfolio management, and market insights."
	} else {
		focus = "Help them with fundraising strategies, pitch improvements, investor matching, and business development."
	}

	return fmt.Sprintf(`You are an AI assistant for InnoVest, a platform connecting investors and founders.
The user is a %s.
%s

User question: %s

Provide a helpful, concise response (max 200 words) that's specific to their role as a %s.`,
		role, focus, question, role)
}
