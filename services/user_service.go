package services

import (
	"context"
	"errors"
	"strings"

	"blogapi/apperrors"
	"blogapi/models"
	"blogapi/repositories"
)

var ErrInvalidCredentials = apperrors.Unauthenticated("Invalid credentials")

type UserService struct {
	users repositories.UserStore
}

func NewUserService(users repositories.UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	user := &models.User{
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
		Role:     models.RoleUser,
	}
	if name := strings.TrimSpace(req.DisplayName); name != "" {
		user.DisplayName = &name
	}

	exists, err := s.users.ExistsByEmail(ctx, user.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrUserExists
	}

	if err := user.HashPassword(); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Authenticate returns the user matching email and password. Unknown email and wrong password
// produce the same error.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// DeleteUser lets a user delete only their own account.
func (s *UserService) DeleteUser(ctx context.Context, callerID, id uint) error {
	if callerID != id {
		return apperrors.Forbidden("You can only delete your own account")
	}
	return s.users.Delete(ctx, id)
}
