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
	notificationmocks "github.com/gstransportes/frota/services/notifications/mocks"
	occurrencemocks "github.com/gstransportes/frota/services/occurrences/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateOccurrence_NotifiesAdmins(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	driverID := uuid.New()
	truckID := uuid.New()
	req := &models.OccurrenceRequest{
		Type:        "BREAKDOWN",
		Description: "Engine overheated",
		TruckID:     truckID,
	}

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID, Plate: "ABC1D23"}, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyRoles(gomock.Any(), gomock.Any(), []string{constants.RoleAdmin}).
		Return(&models.Notification{ID: uuid.New()}, nil)

	// Act
	occurrence, err := uc.Create(context.Background(), driverID, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, constants.OccurrencePending, occurrence.Status)
	assert.Equal(t, driverID, occurrence.DriverID)
	assert.NotNil(t, occurrence.PhotoURLs)
}

func TestCreateOccurrence_FinancialImpactIncludesFinance(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	truckID := uuid.New()
	cost := 2500.0
	req := &models.OccurrenceRequest{
		Type:               "ACCIDENT",
		Description:        "Rear-ended at a red light",
		TruckID:            truckID,
		EstimatedCost:      &cost,
		HasFinancialImpact: true,
	}

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID, Plate: "ABC1D23"}, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyRoles(gomock.Any(), gomock.Any(), []string{constants.RoleAdmin, constants.RoleFinance}).
		Return(&models.Notification{ID: uuid.New()}, nil)

	// Act
	_, err := uc.Create(context.Background(), uuid.New(), req)

	// Assert
	assert.NoError(t, err)
}

func TestCreateOccurrence_NotifyFailureDoesNotFailCreation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	truckID := uuid.New()
	req := &models.OccurrenceRequest{
		Type:        "BREAKDOWN",
		Description: "Flat battery",
		TruckID:     truckID,
	}

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyRoles(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nats down"))

	// Act
	occurrence, err := uc.Create(context.Background(), uuid.New(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, occurrence)
}

func TestCreateOccurrence_ValidationError(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	// Act
	occurrence, err := uc.Create(context.Background(), uuid.New(), &models.OccurrenceRequest{Type: "BREAKDOWN"})

	// Assert
	assert.Nil(t, occurrence)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateStatus_ResolvedStampsResolvedAt(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	driverID := uuid.New()
	occurrenceID := uuid.New()
	existing := &models.Occurrence{
		ID:       occurrenceID,
		Type:     "BREAKDOWN",
		DriverID: driverID,
		Status:   constants.OccurrenceInReview,
	}

	notes := "Repaired at the garage"
	cost := 1800.0
	req := &models.OccurrenceStatusRequest{
		Status:          constants.OccurrenceResolved,
		ResolutionNotes: &notes,
		ActualCost:      &cost,
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), occurrenceID).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyUsers(gomock.Any(), gomock.Any(), []uuid.UUID{driverID}).
		Return(&models.Notification{ID: uuid.New()}, nil)

	// Act
	updated, err := uc.UpdateStatus(context.Background(), occurrenceID, req)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, constants.OccurrenceResolved, updated.Status)
	require.NotNil(t, updated.ResolvedAt)
	assert.Equal(t, &notes, updated.ResolutionNotes)
	assert.Equal(t, &cost, updated.ActualCost)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	// Act
	updated, err := uc.UpdateStatus(context.Background(), uuid.New(), &models.OccurrenceStatusRequest{Status: "CLOSED"})

	// Assert
	assert.Nil(t, updated)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUpdateStatus_NotifiesReportingDriver(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	driverID := uuid.New()
	occurrenceID := uuid.New()
	existing := &models.Occurrence{
		ID:       occurrenceID,
		Type:     "BREAKDOWN",
		DriverID: driverID,
		Status:   constants.OccurrencePending,
	}

	mockRepo.EXPECT().GetByID(gomock.Any(), occurrenceID).Return(existing, nil)
	mockRepo.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyUsers(gomock.Any(), gomock.Any(), []uuid.UUID{driverID}).
		Return(nil, errors.New("nats down"))

	// Act
	updated, err := uc.UpdateStatus(context.Background(), occurrenceID, &models.OccurrenceStatusRequest{
		Status: constants.OccurrenceInReview,
	})

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, constants.OccurrenceInReview, updated.Status)
	assert.Nil(t, updated.ResolvedAt)
}
