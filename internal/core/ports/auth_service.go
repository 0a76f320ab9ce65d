package ports

import (
	"context"

	"github.com/kejaplug/rental-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Phone    string
}

type AuthService interface {
	// Register creates the account and returns it with a signed token.
	Register(ctx context.Context, input RegisterInput) (string, *domain.User, error)
	// Login verifies credentials and issues a token carrying
	// {user_id, email, role}.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID, name, phone string) (*domain.User, error)
}
