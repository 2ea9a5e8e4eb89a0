// Package services contains the server-side business logic. This file
// implements UserService: registration, credential verification, and
// session-token issuance and checking.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grafibook/automotora/internal/common"
	"github.com/grafibook/automotora/internal/server/auth"
	"github.com/grafibook/automotora/internal/server/config"
	"github.com/grafibook/automotora/internal/server/models"
	"github.com/grafibook/automotora/internal/server/password"
	"github.com/grafibook/automotora/internal/server/repositories/users"
)

// UserService orchestrates the authentication flow:
//   - Register: hash the password, create the user
//   - Login: look up the user, verify the password, mint a token
//   - Authorize: verify a presented token and recover its claims
//
// Every method is stateless; concurrent calls share only the read-only
// signing key and the repository's own connection pool.
type UserService struct {
	repo                  users.Repository
	hasher                *password.Hasher
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewUserService(repo users.Repository, hasher *password.Hasher, cfg *config.Config) *UserService {
	return &UserService{
		repo:                  repo,
		hasher:                hasher,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new user with the given username and password. The
// password is hashed before it leaves this function; the repository only
// ever sees the hash. Returns common.ErrorAlreadyExists when the username
// is taken.
func (s *UserService) Register(ctx context.Context, username, plaintext string) (*models.User, error) {
	if username == "" || plaintext == "" {
		return nil, fmt.Errorf("%w: username and password are required", common.ErrorValidation)
	}

	hash, err := s.hasher.Hash(plaintext)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user, err := s.repo.Create(ctx, &models.User{Username: username, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	return user, nil
}

// Login verifies the submitted credentials and returns a signed session
// token. Unknown usernames and wrong passwords both come back as
// common.ErrorUnauthorized with nothing to tell them apart: distinguishable
// failures would let a caller enumerate valid usernames.
func (s *UserService) Login(ctx context.Context, username, plaintext string) (string, error) {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", fmt.Errorf("%w: %w", common.ErrorStorageUnavailable, err)
	}

	ok, err := s.hasher.Verify(plaintext, user.PasswordHash)
	if err != nil || !ok {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", fmt.Errorf("%w: generating token: %w", common.ErrorInternal, err)
	}

	return token, nil
}

// Authorize verifies a presented session token and returns its claims. It is
// a pure computation: no storage is touched.
func (s *UserService) Authorize(_ context.Context, token string) (*auth.Claims, error) {
	return auth.VerifyToken(token, s.jwtSecret)
}
