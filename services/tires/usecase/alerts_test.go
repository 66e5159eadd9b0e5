package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/tires/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAlerts_LifeExpectancyWarning(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTireRepo(ctrl)
	uc := NewTireUC(mockRepo)

	tire := &models.Tire{
		ID:               uuid.New(),
		Code:             "PN-0042",
		InitialKm:        0,
		CurrentKm:        95000,
		LifeExpectancyKm: 100000,
	}

	mockRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.Tire{tire}, nil)
	mockRepo.EXPECT().ListRecentProblemEvents(gomock.Any(), tire.ID, 5).Return([]*models.TireEvent{}, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, constants.AlertLifeExpectancy, alerts[0].Type)
	assert.Equal(t, constants.SeverityWarning, alerts[0].Severity)
	assert.Equal(t, "PN-0042", alerts[0].TireCode)
}

func TestGetAlerts_LifeExpectancyCritical(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTireRepo(ctrl)
	uc := NewTireUC(mockRepo)

	tire := &models.Tire{
		ID:               uuid.New(),
		Code:             "PN-0042",
		InitialKm:        20000,
		CurrentKm:        125000,
		LifeExpectancyKm: 100000,
	}

	mockRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.Tire{tire}, nil)
	mockRepo.EXPECT().ListRecentProblemEvents(gomock.Any(), tire.ID, 5).Return([]*models.TireEvent{}, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, constants.SeverityCritical, alerts[0].Severity)
}

func TestGetAlerts_BelowWarningThreshold(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTireRepo(ctrl)
	uc := NewTireUC(mockRepo)

	tire := &models.Tire{
		ID:               uuid.New(),
		Code:             "PN-0042",
		CurrentKm:        50000,
		LifeExpectancyKm: 100000,
	}

	mockRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.Tire{tire}, nil)
	mockRepo.EXPECT().ListRecentProblemEvents(gomock.Any(), tire.ID, 5).Return([]*models.TireEvent{}, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, alerts)
}

func TestGetAlerts_RecurrentProblems(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTireRepo(ctrl)
	uc := NewTireUC(mockRepo)

	truckID := uuid.New()
	tire := &models.Tire{
		ID:               uuid.New(),
		Code:             "PN-0042",
		TruckID:          truckID,
		CurrentKm:        10000,
		LifeExpectancyKm: 100000,
	}
	truck := &models.Truck{ID: truckID, Plate: "ABC1D23"}
	recent := []*models.TireEvent{
		{EventType: constants.TireEventBlowout},
		{EventType: constants.TireEventMaintenance},
		{EventType: constants.TireEventBlowout},
	}

	mockRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.Tire{tire}, nil)
	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	mockRepo.EXPECT().ListRecentProblemEvents(gomock.Any(), tire.ID, 5).Return(recent, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, constants.AlertRecurrence, alerts[0].Type)
	assert.Equal(t, constants.SeverityWarning, alerts[0].Severity)
	require.NotNil(t, alerts[0].Truck)
	assert.Equal(t, "ABC1D23", alerts[0].Truck.Plate)
}

func TestGetAlerts_BelowRecurrenceThreshold(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockTireRepo(ctrl)
	uc := NewTireUC(mockRepo)

	tire := &models.Tire{
		ID:               uuid.New(),
		Code:             "PN-0042",
		CurrentKm:        10000,
		LifeExpectancyKm: 100000,
	}
	recent := []*models.TireEvent{
		{EventType: constants.TireEventBlowout},
		{EventType: constants.TireEventMaintenance},
	}

	mockRepo.EXPECT().ListActive(gomock.Any()).Return([]*models.Tire{tire}, nil)
	mockRepo.EXPECT().ListRecentProblemEvents(gomock.Any(), tire.ID, 5).Return(recent, nil)

	// Act
	alerts, err := uc.GetAlerts(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, alerts)
}
