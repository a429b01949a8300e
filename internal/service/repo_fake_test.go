package service

import (
	"context"
	"sync"
	"time"

	"github.com/spec-kit/user-service/internal/domain"
	"github.com/spec-kit/user-service/internal/repository"
)

// memRepo is an in-memory UserRepository reporting the same closed failure
// set as the Postgres adapter.
type memRepo struct {
	mu     sync.Mutex
	nextID int64
	users  []domain.User

	createCalls int
	updateCalls int
	deleteCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{nextID: 1}
}

func (r *memRepo) List(_ context.Context) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *memRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return repository.ErrConflict
		}
	}
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *memRepo) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	for _, existing := range r.users {
		if existing.Email == user.Email && existing.ID != user.ID {
			return repository.ErrConflict
		}
	}
	for i := range r.users {
		if r.users[i].ID == user.ID {
			r.users[i].Name = user.Name
			r.users[i].Email = user.Email
			user.CreatedAt = r.users[i].CreatedAt
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memRepo) Delete(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	for i := range r.users {
		if r.users[i].ID == id {
			deleted := r.users[i]
			r.users = append(r.users[:i], r.users[i+1:]...)
			return &deleted, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.users {
		if r.users[i].Email == email {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}
