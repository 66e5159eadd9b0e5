package usecase

import (
	"context"
	"strings"

	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/gstransportes/frota/internal/pkg/jwt"
)

// Login authenticates a user by email and password and issues a token pair.
// Invalid credentials and deactivated accounts are indistinguishable to the
// caller.
func (uc *UserUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	user, err := uc.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid credentials")
		}
		return nil, err
	}

	if !user.Active {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	return uc.issueTokens(user)
}

// RefreshToken validates a refresh token and issues a fresh token pair
func (uc *UserUC) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthResponse, error) {
	claims, err := jwtpkg.ValidateToken(refreshToken, uc.cfg.RefreshSecret)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	userID, err := jwtpkg.UserIDFromClaims(claims)
	if err != nil {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthorized("invalid refresh token")
		}
		return nil, err
	}

	if !user.Active {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	return uc.issueTokens(user)
}

func (uc *UserUC) issueTokens(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, apperr.Internal("failed to generate token", err)
	}

	refreshToken, err := jwtpkg.GenerateRefreshToken(user.ID, uc.cfg)
	if err != nil {
		return nil, apperr.Internal("failed to generate refresh token", err)
	}

	return &models.AuthResponse{
		Token:        token,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		User:         user,
	}, nil
}
