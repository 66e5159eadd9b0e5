package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	checklistmocks "github.com/gstransportes/frota/services/checklists/mocks"
	notificationmocks "github.com/gstransportes/frota/services/notifications/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goodChecklistRequest(truckID uuid.UUID) *models.ChecklistRequest {
	return &models.ChecklistRequest{
		TruckID:          truckID,
		OverallCondition: constants.ConditionGood,
		TiresCondition:   constants.ConditionGood,
		CabinCondition:   constants.ConditionGood,
		CanvasCondition:  constants.ConditionGood,
	}
}

func TestSubmitChecklist_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checklistmocks.NewMockChecklistRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewChecklistUC(mockRepo, mockNotificationUC)

	driverID := uuid.New()
	truckID := uuid.New()
	truck := &models.Truck{ID: truckID, Plate: "ABC1D23"}

	var created *models.DailyChecklist
	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *models.DailyChecklist) error {
			created = c
			return nil
		})

	// Act
	checklist, err := uc.Submit(context.Background(), driverID, goodChecklistRequest(truckID))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, driverID, checklist.DriverID)
	assert.Equal(t, truckID, checklist.TruckID)

	require.NotNil(t, created)
	assert.Equal(t, 0, created.Date.Hour())
	assert.Equal(t, 0, created.Date.Minute())
	assert.Equal(t, time.Now().Day(), created.Date.Day())
}

func TestSubmitChecklist_IssuesEscalateToAdmins(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checklistmocks.NewMockChecklistRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewChecklistUC(mockRepo, mockNotificationUC)

	driverID := uuid.New()
	truckID := uuid.New()
	truck := &models.Truck{ID: truckID, Plate: "ABC1D23"}

	req := goodChecklistRequest(truckID)
	req.TiresCondition = constants.ConditionBad

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(truck, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyRoles(gomock.Any(), gomock.Any(), []string{constants.RoleAdmin}).
		Return(&models.Notification{ID: uuid.New()}, nil)

	// Act
	_, err := uc.Submit(context.Background(), driverID, req)

	// Assert
	assert.NoError(t, err)
}

func TestSubmitChecklist_EscalationFailureDoesNotFailSubmission(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checklistmocks.NewMockChecklistRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewChecklistUC(mockRepo, mockNotificationUC)

	truckID := uuid.New()
	req := goodChecklistRequest(truckID)
	req.CanvasCondition = constants.CanvasTorn

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	mockNotificationUC.EXPECT().
		NotifyRoles(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("nats down"))

	// Act
	checklist, err := uc.Submit(context.Background(), uuid.New(), req)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, checklist)
}

func TestSubmitChecklist_DuplicateDay(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checklistmocks.NewMockChecklistRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewChecklistUC(mockRepo, mockNotificationUC)

	truckID := uuid.New()

	mockRepo.EXPECT().GetTruck(gomock.Any(), truckID).Return(&models.Truck{ID: truckID}, nil)
	mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		Return(apperr.Conflict("checklist already submitted today for this truck"))

	// Act
	checklist, err := uc.Submit(context.Background(), uuid.New(), goodChecklistRequest(truckID))

	// Assert
	assert.Nil(t, checklist)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestSubmitChecklist_InvalidRatings(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := checklistmocks.NewMockChecklistRepo(ctrl)
	mockNotificationUC := notificationmocks.NewMockNotificationUC(ctrl)
	uc := NewChecklistUC(mockRepo, mockNotificationUC)

	testCases := []struct {
		name   string
		mutate func(*models.ChecklistRequest)
	}{
		{
			name:   "invalid overall condition",
			mutate: func(r *models.ChecklistRequest) { r.OverallCondition = "TERRIBLE" },
		},
		{
			name:   "canvas uses its own scale",
			mutate: func(r *models.ChecklistRequest) { r.CanvasCondition = constants.ConditionRegular },
		},
		{
			name:   "empty tires condition",
			mutate: func(r *models.ChecklistRequest) { r.TiresCondition = "" },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := goodChecklistRequest(uuid.New())
			tc.mutate(req)

			// Act
			checklist, err := uc.Submit(context.Background(), uuid.New(), req)

			// Assert
			assert.Nil(t, checklist)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
}
