package service

import (
	"context"
	"errors"
	"time"

	"classbook/internal/database"
	"classbook/internal/domain"
	"classbook/internal/metrics"
	"classbook/internal/models"
	"classbook/internal/session"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthService resolves identities from session tokens and issues
// sessions on login.
type AuthService struct {
	store    domain.Store
	sessions domain.SessionStore
	logger   *zerolog.Logger
}

func NewAuthService(store domain.Store, sessions domain.SessionStore, logger *zerolog.Logger) *AuthService {
	return &AuthService{store: store, sessions: sessions, logger: logger}
}

// Login verifies credentials and issues an opaque session token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if errors.Is(err, database.ErrNotFound) {
		metrics.IncLogin("failure")
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		metrics.IncLogin("failure")
		return "", nil, ErrInvalidCredentials
	}

	token, err := session.NewToken()
	if err != nil {
		return "", nil, err
	}

	sess := &models.Session{
		Token:     token,
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Set(ctx, sess); err != nil {
		return "", nil, err
	}

	metrics.IncLogin("success")
	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

// Logout discards the session record for the token.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, token)
}

// ResolveIdentity maps a session token to a user. Returns (nil, nil)
// when the token is missing, unknown, expired, or the user no longer
// exists.
func (s *AuthService) ResolveIdentity(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, nil
	}

	user, err := s.store.GetUserByID(ctx, sess.UserID)
	if errors.Is(err, database.ErrNotFound) {
		// Account deleted after the session was issued.
		_ = s.sessions.Delete(ctx, token)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RequireRole fails with ErrForbidden unless the user is authenticated
// and holds one of the allowed roles. An empty role list means any
// authenticated user.
func RequireRole(user *models.User, roles ...string) error {
	if user == nil {
		return ErrForbidden
	}
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return ErrForbidden
}

// RequireAdmin allows only administrators.
func RequireAdmin(user *models.User) error {
	return RequireRole(user, models.RoleAdmin)
}

// RequireStaff allows administrators and teachers.
func RequireStaff(user *models.User) error {
	return RequireRole(user, models.StaffRoles...)
}
