package domain

import "errors"

// Auth errors.
var (
	ErrUserExists         = errors.New("this email is already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrResetTokenInvalid  = errors.New("invalid or expired token")
	ErrResetCooldown      = errors.New("a reset link was recently sent, try again later")
	ErrMailDelivery       = errors.New("failed to send reset email")
)

// Tenant errors.
var (
	ErrTenantNotFound  = errors.New("tenant not found")
	ErrNotTenantOwner  = errors.New("not authorized to access this tenant")
	ErrShopNumberTaken = errors.New("shop number already in use")
)

// Vacant-shop errors.
var (
	ErrVacantShopNotFound = errors.New("vacant shop not found")
	ErrVacantShopExists   = errors.New("vacant shop number already exists")
)

// ErrValidation wraps per-field constraint violations detected after the HTTP
// schema check, e.g. a negative rent amount arriving through a partial update.
var ErrValidation = errors.New("invalid data")
