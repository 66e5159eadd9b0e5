package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/dashboard/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminStats_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	activity := []models.ActivityEntry{{Type: "occurrence", ID: uuid.New()}}
	checklists := []models.ActivityEntry{{Type: "checklist", ID: uuid.New()}}

	mockRepo.EXPECT().CountActiveTrucks(gomock.Any()).Return(12, nil)
	mockRepo.EXPECT().CountActiveDrivers(gomock.Any()).Return(30, nil)
	mockRepo.EXPECT().CountOpenOccurrences(gomock.Any()).Return(4, nil)
	mockRepo.EXPECT().RecentOccurrenceActivity(gomock.Any(), 5).Return(activity, nil)
	mockRepo.EXPECT().RecentChecklistActivity(gomock.Any(), 5).Return(checklists, nil)

	// Act
	stats, err := uc.AdminStats(context.Background())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12, stats.ActiveTrucks)
	assert.Equal(t, 30, stats.TotalDrivers)
	assert.Equal(t, 4, stats.PendingOccurrences)
	assert.Len(t, stats.RecentActivity, 1)
	assert.Len(t, stats.RecentChecklists, 1)
}

func TestDriverStats_ToleratesNoTruckAndNoChecklist(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	driverID := uuid.New()

	mockRepo.EXPECT().GetDriverTruck(gomock.Any(), driverID).Return(nil, apperr.NotFound("no truck held"))
	mockRepo.EXPECT().GetLastChecklist(gomock.Any(), driverID).Return(nil, apperr.NotFound("no checklist yet"))
	mockRepo.EXPECT().GetRecentDriverOccurrences(gomock.Any(), driverID, 5).Return([]*models.Occurrence{}, nil)
	mockRepo.EXPECT().CountChecklistsSince(gomock.Any(), driverID, gomock.Any()).Return(0, nil)

	// Act
	stats, err := uc.DriverStats(context.Background(), driverID)

	// Assert
	require.NoError(t, err)
	assert.Nil(t, stats.Truck)
	assert.Nil(t, stats.LastChecklist)
	assert.Equal(t, 0, stats.TripsThisMonth)
}

func TestDriverStats_CountsFromMonthStart(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	driverID := uuid.New()
	truckID := uuid.New()
	truck := &models.Truck{ID: truckID, Plate: "ABC1D23"}

	var since time.Time
	mockRepo.EXPECT().GetDriverTruck(gomock.Any(), driverID).Return(truck, nil)
	mockRepo.EXPECT().GetLastChecklist(gomock.Any(), driverID).Return(&models.DailyChecklist{ID: uuid.New()}, nil)
	mockRepo.EXPECT().GetRecentDriverOccurrences(gomock.Any(), driverID, 5).Return(nil, nil)
	mockRepo.EXPECT().CountChecklistsSince(gomock.Any(), driverID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, s time.Time) (int, error) {
			since = s
			return 18, nil
		})

	// Act
	stats, err := uc.DriverStats(context.Background(), driverID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 18, stats.TripsThisMonth)
	assert.Equal(t, 1, since.Day())
	assert.Equal(t, 0, since.Hour())
	assert.Equal(t, time.Now().Month(), since.Month())
}

func TestFinancialStats_SumsMaintenanceAndTireCosts(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	ranking := []models.TruckCost{{Plate: "ABC1D23", TotalCost: 9000}}

	mockRepo.EXPECT().SumResolvedOccurrenceCosts(gomock.Any(), gomock.Nil()).Return(12000.0, nil)
	mockRepo.EXPECT().SumTireEventCosts(gomock.Any(), gomock.Nil()).Return(3500.0, nil)
	mockRepo.EXPECT().TopCostTrucks(gomock.Any(), gomock.Nil(), 5).Return(ranking, nil)

	// Act
	stats, err := uc.FinancialStats(context.Background(), "all")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 12000.0, stats.TotalMaintenance)
	assert.Equal(t, 3500.0, stats.TotalTire)
	assert.Equal(t, 15500.0, stats.TotalCost)
	assert.Len(t, stats.TopCostTrucks, 1)
}

func TestFinancialStats_MonthPeriod(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	var since *time.Time
	mockRepo.EXPECT().SumResolvedOccurrenceCosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s *time.Time) (float64, error) {
			since = s
			return 0, nil
		})
	mockRepo.EXPECT().SumTireEventCosts(gomock.Any(), gomock.Any()).Return(0.0, nil)
	mockRepo.EXPECT().TopCostTrucks(gomock.Any(), gomock.Any(), 5).Return(nil, nil)

	// Act
	_, err := uc.FinancialStats(context.Background(), "month")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, since)
	assert.Equal(t, 1, since.Day())
	assert.Equal(t, time.Now().Month(), since.Month())
}

func TestFinancialStats_InvalidPeriod(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockDashboardRepo(ctrl)
	uc := NewDashboardUC(mockRepo)

	// Act
	stats, err := uc.FinancialStats(context.Background(), "quarter")

	// Assert
	assert.Nil(t, stats)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
