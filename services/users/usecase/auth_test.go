package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/users/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/gstransportes/frota/internal/pkg/jwt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "joao@example.com",
		Password: hashPassword(t, "strongpass"),
		Role:     constants.RoleDriver,
		Active:   true,
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "joao@example.com").Return(user, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    " Joao@Example.com ",
		Password: "strongpass",
	})

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestLogin_WrongPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "joao@example.com",
		Password: hashPassword(t, "strongpass"),
		Active:   true,
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "joao@example.com").Return(user, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "joao@example.com",
		Password: "wrongpass",
	})

	// Assert
	assert.Nil(t, resp)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLogin_UnknownEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "nobody@example.com").
		Return(nil, apperr.NotFound("user not found"))

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "strongpass",
	})

	// Assert
	assert.Nil(t, resp)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestLogin_DeactivatedUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	user := &models.User{
		ID:       uuid.New(),
		Email:    "joao@example.com",
		Password: hashPassword(t, "strongpass"),
		Active:   false,
	}

	mockRepo.EXPECT().GetByEmail(gomock.Any(), "joao@example.com").Return(user, nil)

	// Act
	resp, err := uc.Login(context.Background(), &models.LoginRequest{
		Email:    "joao@example.com",
		Password: "strongpass",
	})

	// Assert
	assert.Nil(t, resp)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestRefreshToken_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	cfg := testJWTConfig()
	uc := NewUserUC(cfg, mockRepo)

	user := &models.User{
		ID:     uuid.New(),
		Email:  "joao@example.com",
		Role:   constants.RoleDriver,
		Active: true,
	}

	refreshToken, err := jwtpkg.GenerateRefreshToken(user.ID, cfg)
	require.NoError(t, err)

	mockRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	// Act
	resp, err := uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	// Act
	resp, err := uc.RefreshToken(context.Background(), "not-a-token")

	// Assert
	assert.Nil(t, resp)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestRefreshToken_DeactivatedUser(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	cfg := testJWTConfig()
	uc := NewUserUC(cfg, mockRepo)

	user := &models.User{ID: uuid.New(), Active: false}

	refreshToken, err := jwtpkg.GenerateRefreshToken(user.ID, cfg)
	require.NoError(t, err)

	mockRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	// Act
	resp, err := uc.RefreshToken(context.Background(), refreshToken)

	// Assert
	assert.Nil(t, resp)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}
