package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"service-dispatch/internal/domain"
)

// UserDirectory is a static user resolver.
type UserDirectory struct {
	mu    sync.RWMutex
	users map[uuid.UUID]domain.User
}

// NewUserDirectory returns a directory seeded with users.
func NewUserDirectory(users ...domain.User) *UserDirectory {
	d := &UserDirectory{users: make(map[uuid.UUID]domain.User, len(users))}
	for _, u := range users {
		d.users[u.ID] = u
	}
	return d
}

// Put adds or replaces a user.
func (d *UserDirectory) Put(u domain.User) {
	d.mu.Lock()
	d.users[u.ID] = u
	d.mu.Unlock()
}

// Resolve returns nil, nil for unknown users.
func (d *UserDirectory) Resolve(_ context.Context, id uuid.UUID) (*domain.User, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
