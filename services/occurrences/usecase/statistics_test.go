package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	notificationmocks "github.com/gstransportes/frota/services/notifications/mocks"
	occurrencemocks "github.com/gstransportes/frota/services/occurrences/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestGetStatistics_Aggregation(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	list := []*models.Occurrence{
		{
			ID:                 uuid.New(),
			Type:               "BREAKDOWN",
			Status:             constants.OccurrencePending,
			Latitude:           floatPtr(-23.5505),
			Longitude:          floatPtr(-46.6333),
			EstimatedCost:      floatPtr(1000),
			ActualCost:         floatPtr(1200),
			HasFinancialImpact: true,
		},
		{
			ID:            uuid.New(),
			Type:          "BREAKDOWN",
			Status:        constants.OccurrenceResolved,
			Latitude:      floatPtr(-23.5510),
			Longitude:     floatPtr(-46.6340),
			EstimatedCost: floatPtr(500),
		},
		{
			// no coordinates, no costs
			ID:     uuid.New(),
			Type:   "ACCIDENT",
			Status: constants.OccurrencePending,
		},
	}

	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(list, nil)

	// Act
	stats, err := uc.GetStatistics(context.Background(), &models.OccurrenceFilter{})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 2, stats.ByType["BREAKDOWN"])
	assert.Equal(t, 1, stats.ByType["ACCIDENT"])
	assert.Equal(t, 2, stats.ByStatus[constants.OccurrencePending])
	assert.Equal(t, 1, stats.WithFinancialImpact)
	assert.Equal(t, 1500.0, stats.TotalEstimatedCost)
	assert.Equal(t, 1200.0, stats.TotalActualCost)
}

func TestGetStatistics_NearbyOccurrencesShareAreaBucket(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := occurrencemocks.NewMockOccurrenceRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewOccurrenceUC(mockRepo, mockNotificationUC)

	// two reports a few hundred meters apart, one across the country
	list := []*models.Occurrence{
		{ID: uuid.New(), Type: "THEFT", Status: constants.OccurrencePending, Latitude: floatPtr(-23.5505), Longitude: floatPtr(-46.6333)},
		{ID: uuid.New(), Type: "THEFT", Status: constants.OccurrencePending, Latitude: floatPtr(-23.5509), Longitude: floatPtr(-46.6338)},
		{ID: uuid.New(), Type: "THEFT", Status: constants.OccurrencePending, Latitude: floatPtr(-3.7319), Longitude: floatPtr(-38.5267)},
		{ID: uuid.New(), Type: "THEFT", Status: constants.OccurrencePending},
	}

	mockRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(list, nil)

	// Act
	stats, err := uc.GetStatistics(context.Background(), &models.OccurrenceFilter{})

	// Assert
	require.NoError(t, err)
	assert.Len(t, stats.ByArea, 2)

	total := 0
	for _, count := range stats.ByArea {
		total += count
	}
	assert.Equal(t, 3, total)
}
