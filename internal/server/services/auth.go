// Package services contains server-side business logic. This file implements
// AuthService, which handles signup, signin, and issuing JWT access tokens.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookmarkd/internal/common"
	"github.com/dmitrijs2005/bookmarkd/internal/server/auth"
	"github.com/dmitrijs2005/bookmarkd/internal/server/config"
	"github.com/dmitrijs2005/bookmarkd/internal/server/models"
	"github.com/dmitrijs2005/bookmarkd/internal/server/repositories/repomanager"
)

// AuthService provides authentication-related operations:
// - SignUp: hash the password, create the user, mint a token
// - SignIn: verify credentials and mint a token
//
// Tokens are stateless; there is no refresh or revocation mechanism, so a
// token stays valid until its expiry elapses.
type AuthService struct {
	db                          *sql.DB
	repomanager                 repomanager.RepositoryManager
	jwtSecret                   []byte
	accessTokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                          db,
		repomanager:                 m,
		jwtSecret:                   []byte(cfg.SecretKey),
		accessTokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// SignUp creates a new user with the given email and password and returns an
// access token for the new account. A duplicate email yields
// common.ErrorEmailTaken; hashing failures propagate.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Email: email, Hash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorEmailTaken) {
			return "", common.ErrorEmailTaken
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issueToken(user)
}

// SignIn verifies email and password and, on success, returns a fresh access
// token. Unknown email and wrong password yield the identical
// common.ErrorInvalidCredentials, so callers learn nothing about account
// existence.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorInvalidCredentials
		}
		return "", common.ErrorInternal
	}

	ok, err := auth.VerifyPassword(user.Hash, password)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrorInvalidCredentials
	}

	return s.issueToken(user)
}

func (s *AuthService) issueToken(user *models.User) (string, error) {
	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
