package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/skattajobs/marketplace-api/internal/core/domain"
	"github.com/skattajobs/marketplace-api/internal/core/ports"
)

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

// UserRepository keeps user accounts in memory with unique e-mails.
type UserRepository struct {
	mu      sync.Mutex // serialises e-mail uniqueness checks
	users   *collection[*domain.User]
	byEmail map[string]string
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: newCollection(cloneUser), byEmail: make(map[string]string)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := domain.NormalizeEmail(user.Email)
	if _, taken := r.byEmail[email]; taken {
		return nil, domain.ErrUserExists
	}
	u := cloneUser(user)
	u.Email = email
	if !r.users.insert(u.ID, u) {
		return nil, domain.ErrUserExists
	}
	r.byEmail[email] = u.ID
	return cloneUser(u), nil
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	id, ok := r.byEmail[domain.NormalizeEmail(email)]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepository) List(_ context.Context, f ports.UserFilter) ([]*domain.User, error) {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	return domain.Filter(r.users.all(), func(u *domain.User) bool {
		if f.Role != "" && u.Role != f.Role {
			return false
		}
		return q == "" || strings.Contains(strings.ToLower(u.Name), q) || strings.Contains(u.Email, q)
	}), nil
}

// Update replaces the user record. The e-mail is immutable.
func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	stored, ok := r.users.get(user.ID)
	if !ok {
		return domain.ErrUserNotFound
	}
	u := cloneUser(user)
	u.Email = stored.Email
	r.users.replace(u.ID, u)
	return nil
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users.get(id)
	if !ok || !r.users.remove(id) {
		return domain.ErrUserNotFound
	}
	delete(r.byEmail, u.Email)
	return nil
}
