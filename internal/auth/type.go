package auth

type SignUpInput struct {
	Email    string
	Username string
	Password string
}

type SignInInput struct {
	Username string
	Password string
}

// AuthOutput is the issued token pair. ExpiresAt is the access token's
// absolute expiry in unix seconds, returned for client-side display.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    int64
}
