package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail matches case-insensitively (emails are stored lowercased).
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// UpdateProfile mutates name and phone only; all other fields are
	// immutable after registration.
	UpdateProfile(ctx context.Context, id, name, phone string) (*domain.User, error)
	// ListIDsByRole enumerates the ids of every user with the given role.
	// Used by the fan-out path to compute broadcast audiences.
	ListIDsByRole(ctx context.Context, role string) ([]string, error)
}
