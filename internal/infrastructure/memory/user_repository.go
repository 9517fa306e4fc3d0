package memory

import (
	"context"
	"strconv"
	"strings"
	"sync"

	"github.com/oksasatya/skatetube/internal/domain/entity"
	"github.com/oksasatya/skatetube/internal/domain/repository"
)

// UserRepository keeps users in process memory. Lookups by email and
// username are case-insensitive.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*entity.User
	nextID int
}

func NewUserRepository(seed ...entity.User) *UserRepository {
	r := &UserRepository{nextID: 1}
	for i := range seed {
		u := seed[i]
		r.users = append(r.users, &u)
		if n, err := strconv.Atoi(u.ID); err == nil && n >= r.nextID {
			r.nextID = n + 1
		}
	}
	return r
}

func (r *UserRepository) find(match func(*entity.User) bool) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if match(u) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return u.ID == id })
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*entity.User, error) {
	return r.find(func(u *entity.User) bool { return strings.EqualFold(u.Username, username) })
}

// Insert stores a copy of u. The uniqueness check and the append happen under
// one write lock.
func (r *UserRepository) Insert(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.ID == u.ID ||
			strings.EqualFold(existing.Email, u.Email) ||
			strings.EqualFold(existing.Username, u.Username) {
			return repository.ErrDuplicate
		}
	}
	cp := *u
	r.users = append(r.users, &cp)
	if n, err := strconv.Atoi(u.ID); err == nil && n >= r.nextID {
		r.nextID = n + 1
	}
	return nil
}

// NextID hands out sequential numeric ids.
func (r *UserRepository) NextID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	return strconv.Itoa(id), nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
