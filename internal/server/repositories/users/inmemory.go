package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khushal/hello-grpc/internal/common"
	"github.com/khushal/hello-grpc/internal/server/models"
)

// InMemoryRepository is a map-backed Repository used in tests. It mirrors the
// Postgres implementation's uniqueness semantics: Create is atomic under the
// mutex, so racing creations on the same username or email produce exactly
// one success.
type InMemoryRepository struct {
	mu         sync.Mutex
	byID       map[string]*models.User
	byUsername map[string]string
	byEmail    map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byID:       make(map[string]*models.User),
		byUsername: make(map[string]string),
		byEmail:    make(map[string]string),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byUsername[user.Username]; ok {
		return nil, common.ErrUsernameTaken
	}
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, common.ErrEmailTaken
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byID[stored.ID] = &stored
	r.byUsername[stored.Username] = stored.ID
	r.byEmail[stored.Email] = stored.ID

	out := stored
	return &out, nil
}

func (r *InMemoryRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(r.byUsername[username])
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(r.byEmail[email])
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.get(id)
}

// get returns a copy so callers cannot mutate stored state. Caller holds mu.
func (r *InMemoryRepository) get(id string) (*models.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *user
	return &out, nil
}

func (r *InMemoryRepository) UpdateLastLogin(ctx context.Context, id string, loginTime time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	t := loginTime
	user.LastLogin = &t
	return nil
}
