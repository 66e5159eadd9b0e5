package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyUsers_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	userA := uuid.New()
	userB := uuid.New()
	req := &models.NotificationRequest{Title: "Truck held", Message: "Truck ABC1D23 was selected"}

	var persistedRecipients []uuid.UUID
	mockRepo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Notification, recipients []uuid.UUID) error {
			persistedRecipients = recipients
			return nil
		})
	mockGW.EXPECT().PublishBroadcast(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	notification, err := uc.NotifyUsers(context.Background(), req, []uuid.UUID{userA, userB})

	// Assert
	require.NoError(t, err)
	require.NotNil(t, notification)
	assert.Equal(t, "Truck held", notification.Title)
	assert.Equal(t, []uuid.UUID{userA, userB}, persistedRecipients)
}

func TestNotifyUsers_DeduplicatesRecipients(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	userA := uuid.New()
	userB := uuid.New()
	req := &models.NotificationRequest{Title: "Checklist reported issues", Message: "Truck ABC1D23"}

	var persistedRecipients []uuid.UUID
	mockRepo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Notification, recipients []uuid.UUID) error {
			persistedRecipients = recipients
			return nil
		})
	mockGW.EXPECT().PublishBroadcast(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	_, err := uc.NotifyUsers(context.Background(), req, []uuid.UUID{userA, userB, userA, uuid.Nil, userB})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{userA, userB}, persistedRecipients)
}

func TestNotifyUsers_NoRecipients(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	req := &models.NotificationRequest{Title: "Orphan broadcast", Message: "Nobody to tell"}

	// Act
	notification, err := uc.NotifyUsers(context.Background(), req, []uuid.UUID{uuid.Nil})

	// Assert
	assert.NoError(t, err)
	assert.Nil(t, notification)
}

func TestNotifyUsers_MissingTitle(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	req := &models.NotificationRequest{Message: "No title"}

	// Act
	notification, err := uc.NotifyUsers(context.Background(), req, []uuid.UUID{uuid.New()})

	// Assert
	assert.Nil(t, notification)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestNotifyUsers_PublishFailureIsSwallowed(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	req := &models.NotificationRequest{Title: "Occurrence resolved", Message: "All clear"}

	mockRepo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().PublishBroadcast(gomock.Any(), gomock.Any()).Return(errors.New("nats down"))

	// Act
	notification, err := uc.NotifyUsers(context.Background(), req, []uuid.UUID{uuid.New()})

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestNotifyRoles_ResolvesRecipientsByRole(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	admins := []uuid.UUID{uuid.New(), uuid.New()}
	req := &models.NotificationRequest{Title: "New occurrence", Message: "Truck ABC1D23 broke down"}

	mockRepo.EXPECT().GetActiveUserIDsByRoles(gomock.Any(), []string{constants.RoleAdmin}).Return(admins, nil)
	mockRepo.EXPECT().CreateWithRecipients(gomock.Any(), gomock.Any(), admins).Return(nil)
	mockGW.EXPECT().PublishBroadcast(gomock.Any(), gomock.Any()).Return(nil)

	// Act
	notification, err := uc.NotifyRoles(context.Background(), req, []string{constants.RoleAdmin})

	// Assert
	require.NoError(t, err)
	assert.NotNil(t, notification)
}

func TestMarkRead_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	userID := uuid.New()
	recipientID := uuid.New()
	recipient := &models.NotificationRecipient{ID: recipientID, UserID: userID}

	mockRepo.EXPECT().GetRecipient(gomock.Any(), recipientID).Return(recipient, nil)
	mockRepo.EXPECT().MarkRead(gomock.Any(), recipientID).Return(nil)

	// Act
	err := uc.MarkRead(context.Background(), recipientID, userID)

	// Assert
	assert.NoError(t, err)
}

func TestMarkRead_OtherUsersNotification(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockNotificationRepo(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)
	uc := NewNotificationUC(mockRepo, mockGW)

	recipientID := uuid.New()
	recipient := &models.NotificationRecipient{ID: recipientID, UserID: uuid.New()}

	mockRepo.EXPECT().GetRecipient(gomock.Any(), recipientID).Return(recipient, nil)

	// Act
	err := uc.MarkRead(context.Background(), recipientID, uuid.New())

	// Assert
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))
}
