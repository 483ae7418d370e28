package ports

import (
	"context"
	"delivery-ops-service/internal/domain"
)

// Port: a boundary for user account persistence.
type UserRepository interface {
	// Return the user with the given username, or nil when not found.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	CreateUser(ctx context.Context, u *domain.User) (int64, error)
}
