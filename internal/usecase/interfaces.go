package usecase

import "context"

// AuthClient is the identity provider boundary.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	DeleteUser(ctx context.Context, uid string) error
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, error)
}

// CompletionClient is the generative-text endpoint boundary.
type CompletionClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
