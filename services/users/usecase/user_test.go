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
)

func testJWTConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:            "test-secret",
		RefreshSecret:     "test-refresh-secret",
		Expiration:        60,
		RefreshExpiration: 1440,
		Issuer:            "test-issuer",
	}
}

func TestRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	req := &models.RegisterRequest{
		Email:    "  Joao.Silva@Example.com ",
		Password: "strongpass",
		Name:     "Joao Silva",
		Role:     constants.RoleDriver,
	}

	var createdUser *models.User
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			createdUser = u
			return nil
		})

	// Act
	user, err := uc.Register(context.Background(), req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "joao.silva@example.com", user.Email)
	assert.True(t, user.Active)
	assert.NotEqual(t, uuid.Nil, user.ID)

	require.NotNil(t, createdUser)
	assert.NotEqual(t, "strongpass", createdUser.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(createdUser.Password), []byte("strongpass")))
}

func TestRegister_ValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	testCases := []struct {
		name string
		req  *models.RegisterRequest
	}{
		{
			name: "missing email",
			req:  &models.RegisterRequest{Password: "strongpass", Name: "Joao", Role: constants.RoleDriver},
		},
		{
			name: "short password",
			req:  &models.RegisterRequest{Email: "a@b.com", Password: "short", Name: "Joao", Role: constants.RoleDriver},
		},
		{
			name: "invalid role",
			req:  &models.RegisterRequest{Email: "a@b.com", Password: "strongpass", Name: "Joao", Role: "MANAGER"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Act
			user, err := uc.Register(context.Background(), tc.req)

			// Assert
			assert.Nil(t, user)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	req := &models.RegisterRequest{
		Email:    "joao@example.com",
		Password: "strongpass",
		Name:     "Joao Silva",
		Role:     constants.RoleDriver,
	}

	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperr.Conflict("email already registered"))

	// Act
	user, err := uc.Register(context.Background(), req)

	// Assert
	assert.Nil(t, user)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestUpdateProfile_ChangePassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &models.User{
		ID:       userID,
		Email:    "joao@example.com",
		Password: string(hash),
		Name:     "Joao Silva",
		Active:   true,
	}

	req := &models.UpdateProfileRequest{
		CurrentPassword: "oldpassword",
		NewPassword:     "newpassword",
	}

	var updatedUser *models.User
	mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			updatedUser = u
			return nil
		})

	// Act
	_, err = uc.UpdateProfile(context.Background(), userID, req)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, updatedUser)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updatedUser.Password), []byte("newpassword")))
}

func TestUpdateProfile_WrongCurrentPassword(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("oldpassword"), bcrypt.DefaultCost)
	require.NoError(t, err)

	existing := &models.User{ID: userID, Password: string(hash)}
	req := &models.UpdateProfileRequest{
		CurrentPassword: "wrongpassword",
		NewPassword:     "newpassword",
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), userID).Return(existing, nil)

	// Act
	user, err := uc.UpdateProfile(context.Background(), userID, req)

	// Assert
	assert.Nil(t, user)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthorized))
}

func TestDeactivate_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepo(ctrl)
	uc := NewUserUC(testJWTConfig(), mockRepo)

	userID := uuid.New()
	mockRepo.EXPECT().SetActive(gomock.Any(), userID, false).Return(nil)

	// Act
	err := uc.Deactivate(context.Background(), userID)

	// Assert
	assert.NoError(t, err)
}
