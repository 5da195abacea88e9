package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/khushal/hello-grpc/internal/common"
	"github.com/khushal/hello-grpc/internal/logging"
	"github.com/khushal/hello-grpc/internal/server/auth"
	"github.com/khushal/hello-grpc/internal/server/config"
	"github.com/khushal/hello-grpc/internal/server/models"
	"github.com/khushal/hello-grpc/internal/server/repositories/users"
)

// ---- test logger ----

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

// ---- helpers ----

func newService(t *testing.T, repo users.Repository) *UserService {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                    "k",
		AccessTokenValidityDuration:  time.Hour,
		RefreshTokenValidityDuration: 2 * time.Hour,
	}
	return NewUserService(repo, cfg, nopLogger{})
}

func register(t *testing.T, s *UserService, username, email, pass string) *models.User {
	t.Helper()
	u, err := s.Register(context.Background(), username, email, pass)
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	return u
}

// failingRepo wraps an inner repository and overrides selected calls.
type failingRepo struct {
	users.Repository
	createErr          error
	updateLastLoginErr error
}

func (f *failingRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.Repository.Create(ctx, u)
}

func (f *failingRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	if f.updateLastLoginErr != nil {
		return f.updateLastLoginErr
	}
	return f.Repository.UpdateLastLogin(ctx, id, at)
}

// ---- Register ----

func TestRegister_Success(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())

	u := register(t, s, "alice", "alice@x.com", "hunter22")
	if u.ID == "" {
		t.Fatalf("expected assigned user id")
	}
	if u.PasswordHash == "" || u.PasswordHash == "hunter22" {
		t.Fatalf("expected hashed password, got %q", u.PasswordHash)
	}
}

func TestRegister_Validation(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())

	tests := []struct {
		name     string
		username string
		email    string
		password string
		field    string
	}{
		{"empty username", "", "a@x.com", "hunter22", "username"},
		{"username too long", string(make([]byte, 51)), "a@x.com", "hunter22", "username"},
		{"empty email", "alice", "", "hunter22", "email"},
		{"email without at sign", "alice", "nope", "hunter22", "email"},
		{"password too short", "alice", "a@x.com", "12345", "password"},
		{"empty password", "alice", "a@x.com", "", "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(context.Background(), tc.username, tc.email, tc.password)
			var verr *common.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("expected field %q, got %q", tc.field, verr.Field)
			}
		})
	}
}

func TestRegister_MinimumPasswordLengthAccepted(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	register(t, s, "alice", "alice@x.com", "123456")
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	register(t, s, "alice", "alice@x.com", "hunter22")

	_, err := s.Register(context.Background(), "alice", "other@x.com", "hunter22")
	if !errors.Is(err, common.ErrUsernameTaken) {
		t.Fatalf("expected common.ErrUsernameTaken, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	register(t, s, "alice", "alice@x.com", "hunter22")

	_, err := s.Register(context.Background(), "bob", "alice@x.com", "hunter22")
	if !errors.Is(err, common.ErrEmailTaken) {
		t.Fatalf("expected common.ErrEmailTaken, got %v", err)
	}
}

// A registration that passes the existence checks but loses the insert race
// must surface the store's duplicate error unchanged.
func TestRegister_RaceLostAtInsert(t *testing.T) {
	repo := &failingRepo{Repository: users.NewInMemoryRepository(), createErr: common.ErrUsernameTaken}
	s := newService(t, repo)

	_, err := s.Register(context.Background(), "alice", "alice@x.com", "hunter22")
	if !errors.Is(err, common.ErrUsernameTaken) {
		t.Fatalf("expected common.ErrUsernameTaken, got %v", err)
	}
}

// ---- Login ----

func TestLogin_Success(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	created := register(t, s, "alice", "alice@x.com", "hunter22")

	res, err := s.Login(context.Background(), UsernameIdentifier("alice"), "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	for _, tc := range []struct {
		token string
		kind  auth.TokenKind
	}{
		{res.Tokens.AccessToken, auth.TokenKindAccess},
		{res.Tokens.RefreshToken, auth.TokenKindRefresh},
	} {
		claims, err := auth.ParseToken(tc.token, []byte("k"))
		if err != nil {
			t.Fatalf("ParseToken error: %v", err)
		}
		if claims.UserID() != created.ID {
			t.Fatalf("token subject mismatch: got %q want %q", claims.UserID(), created.ID)
		}
		if claims.Kind != tc.kind {
			t.Fatalf("token kind mismatch: got %q want %q", claims.Kind, tc.kind)
		}
	}

	if res.User.LastLogin == nil {
		t.Fatalf("expected last login to be set after successful login")
	}
}

func TestLogin_ByEmail(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	register(t, s, "alice", "alice@x.com", "hunter22")

	res, err := s.Login(context.Background(), EmailIdentifier("alice@x.com"), "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.User.Username != "alice" {
		t.Fatalf("unexpected user: %+v", res.User)
	}
}

// Wrong password and unknown identifier must be indistinguishable.
func TestLogin_NonEnumeration(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	register(t, s, "alice", "alice@x.com", "hunter22")

	_, errWrongPass := s.Login(context.Background(), UsernameIdentifier("alice"), "wrongpass")
	_, errNoUser := s.Login(context.Background(), UsernameIdentifier("mallory"), "hunter22")

	if !errors.Is(errWrongPass, common.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected common.ErrInvalidCredentials, got %v", errWrongPass)
	}
	if !errors.Is(errNoUser, common.ErrInvalidCredentials) {
		t.Fatalf("unknown user: expected common.ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("error messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestLogin_LastLoginUpdateFailureDoesNotFailLogin(t *testing.T) {
	repo := &failingRepo{Repository: users.NewInMemoryRepository(), updateLastLoginErr: errors.New("db down")}
	s := newService(t, repo)
	register(t, s, "alice", "alice@x.com", "hunter22")

	res, err := s.Login(context.Background(), UsernameIdentifier("alice"), "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected tokens despite last-login failure: %+v", res.Tokens)
	}
}

// ---- GetProfile ----

func TestGetProfile_Success(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	created := register(t, s, "alice", "alice@x.com", "hunter22")

	got, err := s.GetProfile(context.Background(), created.ID, created.ID)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if got.Username != "alice" || got.Email != "alice@x.com" {
		t.Fatalf("unexpected profile: %+v", got)
	}
}

func TestGetProfile_SubjectMismatchForbidden(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	alice := register(t, s, "alice", "alice@x.com", "hunter22")
	bob := register(t, s, "bob", "bob@x.com", "hunter22")

	_, err := s.GetProfile(context.Background(), bob.ID, alice.ID)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("expected common.ErrorForbidden, got %v", err)
	}
}

func TestGetProfile_DeletedUser(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())

	_, err := s.GetProfile(context.Background(), "u-404", "u-404")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected common.ErrorNotFound, got %v", err)
	}
}

// ---- end-to-end scenario ----

func TestScenario_RegisterLoginProfile(t *testing.T) {
	s := newService(t, users.NewInMemoryRepository())
	ctx := context.Background()

	alice := register(t, s, "alice", "alice@x.com", "hunter22")

	if _, err := s.Register(ctx, "alice", "other@x.com", "hunter22"); !errors.Is(err, common.ErrUsernameTaken) {
		t.Fatalf("expected common.ErrUsernameTaken, got %v", err)
	}

	if _, err := s.Login(ctx, UsernameIdentifier("alice"), "wrongpass"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Fatalf("expected common.ErrInvalidCredentials, got %v", err)
	}

	res, err := s.Login(ctx, UsernameIdentifier("alice"), "hunter22")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if res.Tokens.AccessToken == "" || res.Tokens.RefreshToken == "" {
		t.Fatalf("expected both tokens: %+v", res.Tokens)
	}

	profile, err := s.GetProfile(ctx, alice.ID, alice.ID)
	if err != nil {
		t.Fatalf("GetProfile error: %v", err)
	}
	if profile.Username != "alice" || profile.Email != "alice@x.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
}
