// Package services contains server-side business logic. This file implements
// AuthService, which handles registration, login, session verification, and
// the current-user lookup.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mpetrenko/authcore/internal/common"
	"github.com/mpetrenko/authcore/internal/dbx"
	"github.com/mpetrenko/authcore/internal/server/auth"
	"github.com/mpetrenko/authcore/internal/server/models"
	"github.com/mpetrenko/authcore/internal/server/repositories/repomanager"
)

// AuthService provides authentication operations:
//   - Register: create a user and mint a session token
//   - Login: verify credentials and mint a session token
//   - GetCurrentUser: resolve a session token to a redacted user view
//   - Logout: acknowledge; session tokens are stateless and cannot be
//     revoked before expiry
//
// The service keeps no per-call state; every method is safe for concurrent
// use.
type AuthService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	hasher auth.PasswordHasher
	tokens *auth.TokenIssuer
}

// NewAuthService constructs an AuthService over the given database handle,
// repositories, hasher, and token issuer.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, hasher auth.PasswordHasher, tokens *auth.TokenIssuer) *AuthService {
	return &AuthService{
		db:     db,
		repos:  m,
		hasher: hasher,
		tokens: tokens,
	}
}

// dummyPasswordHash is verified against when a login names an unknown email,
// so that the unknown-email and wrong-password paths cost the same. This is
// NOT a real credential; it matches no password.
const dummyPasswordHash = "$argon2id$v=19$m=65536,t=1,p=4$AAAAAAAAAAAAAAAAAAAAAA$AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"

// normalizeEmail puts an email into its canonical stored form.
// Format validation happened upstream; only casing and whitespace are
// business concerns here.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user and returns a session token for it.
//
// The email pre-check and the insert run inside one transaction, but the
// unique index on users.email stays authoritative: a concurrent insert that
// wins the race surfaces as common.ErrDuplicateEmail from the INSERT itself.
// The password is hashed before the duplicate check so that the duplicate
// and non-duplicate paths do the same argon2 work. No token is issued
// unless the insert committed.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	email = normalizeEmail(email)

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Users(tx)

		_, err := repo.FindByEmail(ctx, email)
		if err == nil {
			return common.ErrDuplicateEmail
		}
		if !errors.Is(err, common.ErrNotFound) {
			return err
		}

		_, err = repo.Create(ctx, user)
		return err
	})
	if err != nil {
		return "", err
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns a fresh session token.
//
// Unknown email and wrong password both yield common.ErrInvalidCredentials;
// an unknown email still runs a hash verification against a dummy hash so
// the two paths are indistinguishable by timing as well as by error kind.
// A structurally unreadable stored hash yields common.ErrCorruptHash, which
// callers must surface as a generic internal fault, never as a credential
// error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)

	repo := s.repos.Users(s.db)

	targetHash := dummyPasswordHash
	var user *models.User

	found, err := repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		user = found
		targetHash = user.PasswordHash
	case errors.Is(err, common.ErrNotFound):
		// keep the dummy hash
	default:
		return "", err
	}

	ok, err := s.hasher.Verify(password, targetHash)
	if err != nil {
		if user == nil {
			// the dummy hash never fails to parse; treat defensively
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("user %s: %w", user.ID, err)
	}
	if user == nil || !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issuing session token: %w", err)
	}
	return token, nil
}

// GetCurrentUser resolves a session token to a redacted user view.
// Token failures propagate as common.ErrInvalidToken/ErrTokenExpired; a
// valid token whose subject was deleted after issuance yields
// common.ErrUserNotFound.
func (s *AuthService) GetCurrentUser(ctx context.Context, token string) (*models.UserView, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}

	repo := s.repos.Users(s.db)

	user, err := repo.FindByID(ctx, claims.UserID())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUserNotFound
		}
		return nil, err
	}

	return user.View(), nil
}

// Logout acknowledges a logout request. Session tokens are stateless and
// self-contained, so there is no server-side session to destroy; a token
// stays formally valid until it expires. Known limitation of this design.
func (s *AuthService) Logout(ctx context.Context) error {
	return nil
}
