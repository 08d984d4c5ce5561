package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// SignUp registers a new user and returns a fresh token pair.
	SignUp(ctx context.Context, ip SignUpInput) (AuthOutput, error)
	// SignIn verifies credentials and returns a fresh token pair.
	SignIn(ctx context.Context, ip SignInInput) (AuthOutput, error)
	// Refresh exchanges a refresh-scoped token for a brand-new pair.
	Refresh(ctx context.Context, bearerToken string) (AuthOutput, error)
}
