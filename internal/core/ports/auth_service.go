package ports

import (
	"context"

	"github.com/plazaops/property-system/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginResult is returned on successful authentication. User never carries
// the password hash past this boundary.
type LoginResult struct {
	Token string
	User  *domain.User
}

// AuthService defines account and credential use cases.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	// ForgotPassword generates a reset token, stores it with a one-hour
	// expiry, and emails a reset link to the account.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token: sets the new password and clears
	// the token atomically.
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// Mailer is the outbound email collaborator for the reset flow.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error
}

// ResetThrottle rate-limits forgot-password requests per email address.
type ResetThrottle interface {
	// IsLimited reports whether a reset was requested for email recently.
	IsLimited(ctx context.Context, email string) (bool, error)
	// Mark records that a reset link was just sent for email.
	Mark(ctx context.Context, email string) error
}
