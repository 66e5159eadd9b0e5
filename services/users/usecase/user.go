package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/users"
	"golang.org/x/crypto/bcrypt"
)

// UserUC implements the user and authentication usecase
type UserUC struct {
	cfg  models.JWTConfig
	repo users.UserRepo
}

// NewUserUC creates a new user usecase
func NewUserUC(cfg models.JWTConfig, repo users.UserRepo) *UserUC {
	return &UserUC{
		cfg:  cfg,
		repo: repo,
	}
}

// Register creates a new account with a bcrypt-hashed password
func (uc *UserUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, apperr.Validation("email, password and name are required")
	}
	if len(req.Password) < 8 {
		return nil, apperr.Validation("password must be at least 8 characters")
	}
	if !validRole(req.Role) {
		return nil, apperr.Validation("invalid role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal("failed to hash password", err)
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Email:     req.Email,
		Password:  string(hash),
		Name:      req.Name,
		CPF:       req.CPF,
		Phone:     req.Phone,
		Role:      req.Role,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// GetProfile returns the user for the given ID
func (uc *UserUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.repo.GetByID(ctx, userID)
}

// UpdateProfile updates the mutable fields of a user. A password change
// requires the current password to match.
func (uc *UserUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}

	if req.NewPassword != "" {
		if len(req.NewPassword) < 8 {
			return nil, apperr.Validation("password must be at least 8 characters")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
			return nil, apperr.Unauthorized("current password is incorrect")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperr.Internal("failed to hash password", err)
		}
		user.Password = string(hash)
	}

	user.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// List returns all users
func (uc *UserUC) List(ctx context.Context) ([]*models.User, error) {
	return uc.repo.List(ctx)
}

// Deactivate marks a user inactive. Deactivated users cannot authenticate
// and stop receiving role-targeted notifications.
func (uc *UserUC) Deactivate(ctx context.Context, userID uuid.UUID) error {
	return uc.repo.SetActive(ctx, userID, false)
}

func validRole(role string) bool {
	switch role {
	case constants.RoleDriver, constants.RoleAdmin, constants.RoleFinance:
		return true
	}
	return false
}
