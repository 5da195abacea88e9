// Package services contains the server-side business logic. UserService
// orchestrates registration, login, and profile retrieval independent of the
// transport layer.
package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/khushal/hello-grpc/internal/common"
	"github.com/khushal/hello-grpc/internal/logging"
	"github.com/khushal/hello-grpc/internal/server/auth"
	"github.com/khushal/hello-grpc/internal/server/config"
	"github.com/khushal/hello-grpc/internal/server/models"
	"github.com/khushal/hello-grpc/internal/server/password"
	"github.com/khushal/hello-grpc/internal/server/repositories/users"
)

// MinPasswordLength is externally visible validation behavior; clients depend
// on it.
const MinPasswordLength = 6

// MaxUsernameLength bounds usernames in characters.
const MaxUsernameLength = 50

// TokenPair bundles a short-lived access token and a long-lived refresh token.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// IdentifierKind tags the login identifier variant.
type IdentifierKind int

const (
	IdentifierUsername IdentifierKind = iota
	IdentifierEmail
)

// LoginIdentifier is the username-or-email sum type accepted by Login.
// Construct it with UsernameIdentifier or EmailIdentifier.
type LoginIdentifier struct {
	Kind  IdentifierKind
	Value string
}

func UsernameIdentifier(username string) LoginIdentifier {
	return LoginIdentifier{Kind: IdentifierUsername, Value: username}
}

func EmailIdentifier(email string) LoginIdentifier {
	return LoginIdentifier{Kind: IdentifierEmail, Value: email}
}

// LoginResult carries the minted tokens and the authenticated user.
type LoginResult struct {
	Tokens TokenPair
	User   *models.User
}

// UserService provides authentication-related operations:
//   - Register: validate input and create users
//   - Login: verify credentials and mint tokens
//   - GetProfile: authorize and fetch a user profile
//
// Tokens are stateless; refresh-token rotation and revocation are not
// implemented.
type UserService struct {
	users                        users.Repository
	logger                       logging.Logger
	jwtSecret                    []byte
	accessTokenValidityDuration  time.Duration
	refreshTokenValidityDuration time.Duration
}

// NewUserService constructs a UserService from the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config, l logging.Logger) *UserService {
	return &UserService{
		users:                        repo,
		logger:                       l.With("module", "user_service"),
		jwtSecret:                    []byte(cfg.SecretKey),
		accessTokenValidityDuration:  cfg.AccessTokenValidityDuration,
		refreshTokenValidityDuration: cfg.RefreshTokenValidityDuration,
	}
}

// Register creates a new user. Ordering of failures: validation, username
// collision, email collision. The pre-insert existence checks give the nicer
// error early; the store's atomic uniqueness constraint backs them up, so a
// registration racing past the checks still surfaces the same Taken error.
func (s *UserService) Register(ctx context.Context, username, email, plaintext string) (*models.User, error) {

	if err := validateRegistration(username, email, plaintext); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return nil, common.ErrUsernameTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "username lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, common.ErrEmailTaken
	} else if !errors.Is(err, common.ErrorNotFound) {
		s.logger.Error(ctx, "email lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		s.logger.Error(ctx, "password hashing failed", "error", err)
		return nil, common.ErrorInternal
	}

	user, err := s.users.Create(ctx, &models.User{Username: username, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrUsernameTaken) || errors.Is(err, common.ErrEmailTaken) {
			return nil, err
		}
		s.logger.Error(ctx, "user creation failed", "error", err)
		return nil, common.ErrorInternal
	}

	return user, nil
}

func validateRegistration(username, email, plaintext string) error {
	if username == "" {
		return common.NewValidationError("username", "must not be empty")
	}
	if len(username) > MaxUsernameLength {
		return common.NewValidationError("username", "must be at most 50 characters")
	}
	if email == "" {
		return common.NewValidationError("email", "must not be empty")
	}
	if !strings.Contains(email, "@") {
		return common.NewValidationError("email", "must be a valid email address")
	}
	if len(plaintext) < MinPasswordLength {
		return common.NewValidationError("password", "must be at least 6 characters")
	}
	return nil
}

// Login authenticates a user by username or email. A missing user and a
// wrong password produce the same common.ErrInvalidCredentials so callers
// cannot enumerate accounts. A failed last-login update is logged and does
// not fail the login.
func (s *UserService) Login(ctx context.Context, identifier LoginIdentifier, plaintext string) (*LoginResult, error) {

	var (
		user *models.User
		err  error
	)

	switch identifier.Kind {
	case IdentifierEmail:
		user, err = s.users.GetByEmail(ctx, identifier.Value)
	default:
		user, err = s.users.GetByUsername(ctx, identifier.Value)
	}

	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "user lookup failed", "error", err)
		return nil, common.ErrorInternal
	}

	ok, err := password.Verify(plaintext, user.PasswordHash)
	if err != nil {
		s.logger.Error(ctx, "password verification failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}
	if !ok {
		return nil, common.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		s.logger.Warn(ctx, "last login update failed", "user_id", user.ID, "error", err)
	} else {
		user.LastLogin = &now
	}

	tokens, err := s.generateTokenPair(user.ID)
	if err != nil {
		s.logger.Error(ctx, "token generation failed", "user_id", user.ID, "error", err)
		return nil, common.ErrorInternal
	}

	return &LoginResult{Tokens: *tokens, User: user}, nil
}

// GetProfile returns the profile for userID. tokenSubject is the subject of
// the already-verified bearer token; a subject other than userID yields
// common.ErrorForbidden, so no cross-user profile reads are possible.
func (s *UserService) GetProfile(ctx context.Context, userID, tokenSubject string) (*models.User, error) {

	if tokenSubject != userID {
		return nil, common.ErrorForbidden
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		s.logger.Error(ctx, "profile lookup failed", "user_id", userID, "error", err)
		return nil, common.ErrorInternal
	}

	return user, nil
}

func (s *UserService) generateTokenPair(userID string) (*TokenPair, error) {
	accessToken, err := auth.GenerateToken(userID, auth.TokenKindAccess, s.jwtSecret, s.accessTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	refreshToken, err := auth.GenerateToken(userID, auth.TokenKindRefresh, s.jwtSecret, s.refreshTokenValidityDuration)
	if err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
