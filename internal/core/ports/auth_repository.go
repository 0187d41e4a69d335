package ports

import (
	"context"
	"time"

	"github.com/plazaops/property-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// SetResetToken stores a reset token and its expiry on the user.
	SetResetToken(ctx context.Context, userID, token string, expires time.Time) error
	// FindByResetToken matches a stored token whose expiry is after now.
	FindByResetToken(ctx context.Context, token string, now time.Time) (*domain.User, error)
	// UpdatePassword replaces the password hash and clears the reset token
	// fields in a single document write.
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
