package usecase

import (
	"context"
	"errors"
	"strings"

	"fintrack-api/internal/auth"
	"fintrack-api/internal/model"
	"fintrack-api/internal/user/repository"
	pkgErrors "fintrack-api/pkg/errors"
	"fintrack-api/pkg/token"
	"fintrack-api/pkg/workerpool"

	"github.com/google/uuid"
)

func (uc *usecase) SignUp(ctx context.Context, ip auth.SignUpInput) (auth.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(ip.Email))
	username := strings.ToLower(strings.TrimSpace(ip.Username))

	emailTaken, usernameTaken, err := uc.repo.ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.SignUp.ExistsByEmailOrUsername: %v", err)
		return auth.AuthOutput{}, err
	}
	if emailTaken || usernameTaken {
		return auth.AuthOutput{}, conflictFields(emailTaken, usernameTaken)
	}

	phc, err := uc.hashPassword(ctx, ip.Password)
	if err != nil {
		return auth.AuthOutput{}, err
	}

	usr, err := uc.repo.Create(ctx, model.User{
		ID:           uuid.NewString(),
		Email:        email,
		Username:     username,
		PasswordHash: phc,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			// Lost the race against a concurrent sign-up; the unique
			// constraint is the arbiter. Re-check to name the fields.
			emailTaken, usernameTaken, exErr := uc.repo.ExistsByEmailOrUsername(ctx, email, username)
			if exErr == nil && (emailTaken || usernameTaken) {
				return auth.AuthOutput{}, conflictFields(emailTaken, usernameTaken)
			}
			return auth.AuthOutput{}, conflictFields(true, true)
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.SignUp.Create: %v", err)
		return auth.AuthOutput{}, err
	}

	return uc.issuePair(ctx, usr.ID)
}

func (uc *usecase) SignIn(ctx context.Context, ip auth.SignInInput) (auth.AuthOutput, error) {
	username := strings.ToLower(strings.TrimSpace(ip.Username))

	usr, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return auth.AuthOutput{}, auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.SignIn.GetByUsername: %v", err)
		return auth.AuthOutput{}, err
	}

	ok, err := uc.verifyPassword(ctx, ip.Password, usr.PasswordHash)
	if err != nil {
		return auth.AuthOutput{}, err
	}
	if !ok {
		return auth.AuthOutput{}, auth.ErrIncorrectPassword
	}

	// Advisory rehash hook: the stored hash stays valid under its own
	// parameters, we only flag stale cost settings.
	if uc.hasher.NeedsRehash(usr.PasswordHash) {
		uc.l.Infof(ctx, "internal.auth.usecase.SignIn: stale hash parameters for user %s", usr.ID)
	}

	return uc.issuePair(ctx, usr.ID)
}

func (uc *usecase) Refresh(ctx context.Context, bearerToken string) (auth.AuthOutput, error) {
	claims, err := uc.tokens.Verify(bearerToken)
	if err != nil {
		uc.l.Warnf(ctx, "internal.auth.usecase.Refresh.Verify: %v", err)
		return auth.AuthOutput{}, auth.ErrTokenInvalid
	}

	if claims.Scope != token.ScopeRefresh {
		return auth.AuthOutput{}, auth.ErrInvalidScope
	}

	// The presented refresh token stays valid until its own expiry; there
	// is no server-side revocation state.
	return uc.issuePair(ctx, claims.Subject)
}

// hashPassword runs the KDF on the blocking-work pool so a deliberately slow
// hash cannot stall unrelated requests. A pool failure is an internal error,
// never a user-facing validation failure.
func (uc *usecase) hashPassword(ctx context.Context, password string) (string, error) {
	pwd := []byte(password)

	var phc string
	err := uc.pool.Do(ctx, func() error {
		var hashErr error
		phc, hashErr = uc.hasher.Hash(pwd)
		return hashErr
	})
	if err != nil {
		if errors.Is(err, workerpool.ErrPoolBusy) || errors.Is(err, workerpool.ErrPoolClosed) {
			uc.l.Errorf(ctx, "internal.auth.usecase.hashPassword.pool: %v", err)
			return "", auth.ErrHashingUnavailable
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.hashPassword: %v", err)
		return "", err
	}
	return phc, nil
}

func (uc *usecase) verifyPassword(ctx context.Context, password, stored string) (bool, error) {
	pwd := []byte(password)

	var ok bool
	err := uc.pool.Do(ctx, func() error {
		ok = uc.hasher.Verify(pwd, stored)
		return nil
	})
	if err != nil {
		if errors.Is(err, workerpool.ErrPoolBusy) || errors.Is(err, workerpool.ErrPoolClosed) {
			uc.l.Errorf(ctx, "internal.auth.usecase.verifyPassword.pool: %v", err)
			return false, auth.ErrHashingUnavailable
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.verifyPassword: %v", err)
		return false, err
	}
	return ok, nil
}

func (uc *usecase) issuePair(ctx context.Context, subject string) (auth.AuthOutput, error) {
	access, expiresAt, err := uc.tokens.IssueAccess(subject)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.IssueAccess: %v", err)
		return auth.AuthOutput{}, err
	}

	refresh, err := uc.tokens.IssueRefresh(subject)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.issuePair.IssueRefresh: %v", err)
		return auth.AuthOutput{}, err
	}

	return auth.AuthOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    expiresAt,
	}, nil
}

func conflictFields(emailTaken, usernameTaken bool) *pkgErrors.ConflictError {
	conflict := pkgErrors.NewConflictError()
	if emailTaken {
		conflict.Add("email", "Email already exists")
	}
	if usernameTaken {
		conflict.Add("username", "Username already exists")
	}
	return conflict
}
