// Package repository provides the in-memory user collection.
// State lives for the lifetime of the process; nothing is persisted.
package repository

import (
	"context"
	"sync"

	"github.com/userdir/userdir/internal/model"
)

// Repository owns the ordered user collection.
// Create holds the write lock across the uniqueness check and the append,
// so two concurrent requests for the same email cannot both succeed.
type Repository struct {
	mu    sync.RWMutex
	users []model.User
}

// New creates a Repository populated with the seed users.
func New() *Repository {
	return NewWithUsers(SeedUsers())
}

// NewWithUsers creates a Repository holding a copy of users, in order.
func NewWithUsers(users []model.User) *Repository {
	r := &Repository{users: make([]model.User, len(users))}
	copy(r.users, users)
	return r
}

// Ping reports whether the store is usable. The in-memory store always is.
func (r *Repository) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Len returns the number of users currently stored.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
