package user

import (
	"context"
	"sync"

	"smart-pantry-backend/domain"
	"smart-pantry-backend/entities"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// DemoUsername is the account seeded in demo mode when the database is
// unreachable at startup.
const DemoUsername = "demo"

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]*entities.User)}
}

// NewDemoUserRepository seeds an in-memory store with the demo account
// (password "demo").
func NewDemoUserRepository() UserRepository {
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo"), bcrypt.DefaultCost)
	return &memoryUserRepository{users: map[string]*entities.User{
		DemoUsername: {
			ID:       uuid.New(),
			Username: DemoUsername,
			Email:    "demo@example.com",
			Password: string(hash),
		},
	}}
}

func (r *memoryUserRepository) Create(_ context.Context, user *entities.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.users[user.Username]; exists {
		return domain.ErrUsernameTaken
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cpy := *user
	r.users[user.Username] = &cpy
	return nil
}

func (r *memoryUserRepository) FindByUsername(_ context.Context, username string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	cpy := *user
	return &cpy, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email {
			cpy := *user
			return &cpy, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *memoryUserRepository) FindAll(_ context.Context) ([]*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	users := make([]*entities.User, 0, len(r.users))
	for _, user := range r.users {
		cpy := *user
		users = append(users, &cpy)
	}
	return users, nil
}
