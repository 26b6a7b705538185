package repository

import (
	"context"
	"errors"

	"github.com/userdir/userdir/internal/model"
)

// Common errors for user repository operations.
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
	ErrIDExists     = errors.New("user id already exists")
)

// CreateUser appends user to the collection.
// Returns ErrEmailExists or ErrIDExists without modifying the collection
// when either value is already taken.
func (r *Repository) CreateUser(ctx context.Context, user *model.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == user.Email {
			return ErrEmailExists
		}
		if r.users[i].ID == user.ID {
			return ErrIDExists
		}
	}

	r.users = append(r.users, *user)
	return nil
}

// GetUserByID returns the first user whose ID matches id.
func (r *Repository) GetUserByID(ctx context.Context, id string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}
	return nil, ErrUserNotFound
}

// ListUsers returns a snapshot of all users in insertion order.
func (r *Repository) ListUsers(ctx context.Context) ([]model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]model.User, len(r.users))
	copy(users, r.users)
	return users, nil
}
