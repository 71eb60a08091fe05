package service

import (
	"context"

	"classbook/internal/config"
	"classbook/internal/domain"
	"classbook/internal/models"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// UserService covers public registration, admin account management and
// self-service profile updates.
type UserService struct {
	store  domain.Store
	cfg    config.AuthConfig
	logger *zerolog.Logger
}

func NewUserService(store domain.Store, cfg config.AuthConfig, logger *zerolog.Logger) *UserService {
	return &UserService{store: store, cfg: cfg, logger: logger}
}

type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	TeacherCode string `json:"teacher_code"`
	FullName    string `json:"full_name"`
}

// Register creates an account. Public, no authentication. Teacher-role
// signups must present the shared registration code. Uniqueness of
// username and email is enforced by the store's constraints, not by a
// pre-check, so concurrent registrations cannot race past it.
func (s *UserService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	role := req.Role
	if role == "" {
		role = models.RoleTeacher
	}
	if role != models.RoleTeacher && role != models.RoleAdmin {
		return nil, ErrInvalidRole
	}

	if role == models.RoleTeacher && req.TeacherCode != s.cfg.TeacherCode {
		return nil, ErrInvalidTeacherCode
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	fullName := req.FullName
	if fullName == "" {
		fullName = req.Username
	}

	user := &models.User{
		Username: req.Username,
		Password: string(hash),
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     role,
		FullName: fullName,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", user.Username).Str("role", user.Role).Msg("user registered")
	return user, nil
}

// UpdateUser is the admin-side partial update. The password changes
// only when a non-empty one is supplied.
func (s *UserService) UpdateUser(ctx context.Context, actor *models.User, id int64, patch models.UserPatch) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}

	if patch.Password != nil {
		if *patch.Password == "" {
			patch.Password = nil
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.cfg.BcryptCost)
			if err != nil {
				return err
			}
			hashed := string(hash)
			patch.Password = &hashed
		}
	}
	if patch.Role != nil && *patch.Role != models.RoleAdmin && *patch.Role != models.RoleTeacher {
		return ErrInvalidRole
	}

	return s.store.UpdateUser(ctx, id, patch)
}

// DeleteUser removes an account. Admins cannot delete themselves.
func (s *UserService) DeleteUser(ctx context.Context, actor *models.User, id int64) error {
	if err := RequireAdmin(actor); err != nil {
		return err
	}
	if id == actor.ID {
		return ErrSelfDeletion
	}
	if err := s.store.DeleteUser(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("user_id", id).Str("deleted_by", actor.Username).Msg("user deleted")
	return nil
}

// UpdateOwnProfile lets any authenticated user change email, phone and
// password. Role and full name are not self-editable.
func (s *UserService) UpdateOwnProfile(ctx context.Context, actor *models.User, patch models.ProfilePatch) error {
	if err := RequireRole(actor); err != nil {
		return err
	}

	userPatch := models.UserPatch{Email: patch.Email, Phone: patch.Phone}
	if patch.Password != nil && *patch.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), s.cfg.BcryptCost)
		if err != nil {
			return err
		}
		hashed := string(hash)
		userPatch.Password = &hashed
	}

	return s.store.UpdateUser(ctx, actor.ID, userPatch)
}

// ListUsers returns all accounts for the admin user management view.
func (s *UserService) ListUsers(ctx context.Context, actor *models.User) ([]*models.User, error) {
	if err := RequireAdmin(actor); err != nil {
		return nil, err
	}
	return s.store.GetAllUsers(ctx)
}
