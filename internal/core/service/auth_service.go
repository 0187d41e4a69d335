package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/plazaops/property-system/internal/core/domain"
	"github.com/plazaops/property-system/internal/core/ports"
)

const resetTokenTTL = time.Hour

// AuthService implements registration, login, and the password-reset flow.
type AuthService struct {
	repo        ports.UserRepository
	mailer      ports.Mailer
	throttle    ports.ResetThrottle
	jwtSecret   string
	tokenTTL    time.Duration
	frontendURL string
	log         zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	mailer ports.Mailer,
	throttle ports.ResetThrottle,
	jwtSecret string,
	tokenTTL time.Duration,
	frontendURL string,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:        repo,
		mailer:      mailer,
		throttle:    throttle,
		jwtSecret:   jwtSecret,
		tokenTTL:    tokenTTL,
		frontendURL: strings.TrimRight(frontendURL, "/"),
		log:         log,
	}
}

// Register creates a new account with the default "user" role. No token is
// issued; the caller logs in afterwards.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", domain.ErrValidation)
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies credentials and issues a signed token. Unknown email and
// wrong password collapse into the same error so neither is leaked.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role).Msg("user logged in")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// ForgotPassword stores a fresh one-hour reset token on the account and
// emails a reset link. Sending failure is reported distinctly from token
// generation so the caller can retry.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	limited, err := s.throttle.IsLimited(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("reset throttle check failed, proceeding anyway")
	} else if limited {
		return domain.ErrResetCooldown
	}

	token, err := generateResetToken()
	if err != nil {
		return fmt.Errorf("generate reset token: %w", err)
	}

	if err := s.repo.SetResetToken(ctx, user.ID, token, time.Now().UTC().Add(resetTokenTTL)); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset-password/%s", s.frontendURL, token)
	if err := s.mailer.SendPasswordReset(ctx, user.Email, user.Name, resetURL); err != nil {
		s.log.Error().Err(err).Str("email", user.Email).Msg("reset email delivery failed")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	// Start the cooldown only once the mail actually went out, so a failed
	// delivery can be retried immediately.
	if err := s.throttle.Mark(ctx, email); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to set reset cooldown")
	}

	s.log.Info().Str("email", user.Email).Msg("password reset link sent")
	return nil
}

// ResetPassword consumes an unexpired token: the new hash is written and the
// token cleared in one document update, so neither can land without the
// other.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if token == "" || newPassword == "" {
		return domain.ErrResetTokenInvalid
	}

	user, err := s.repo.FindByResetToken(ctx, token, time.Now().UTC())
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrResetTokenInvalid
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	s.log.Info().Str("email", user.Email).Msg("password reset completed")
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.Role,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// generateResetToken returns 20 random bytes hex-encoded, matching the
// entropy of the original reset links.
func generateResetToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
