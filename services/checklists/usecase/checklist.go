package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/checklists"
	"github.com/gstransportes/frota/services/notifications"
)

// ChecklistUC implements the daily checklist usecase
type ChecklistUC struct {
	repo           checklists.ChecklistRepo
	notificationUC notifications.NotificationUC
}

// NewChecklistUC creates a new checklist usecase
func NewChecklistUC(repo checklists.ChecklistRepo, notificationUC notifications.NotificationUC) *ChecklistUC {
	return &ChecklistUC{
		repo:           repo,
		notificationUC: notificationUC,
	}
}

// Submit records the driver's daily inspection of a truck. A second
// submission for the same truck, driver and calendar day surfaces as a
// Conflict and leaves the first row untouched. A checklist reporting issues
// is escalated to the administrators; escalation failure is logged but never
// fails the submission.
func (uc *ChecklistUC) Submit(ctx context.Context, driverID uuid.UUID, req *models.ChecklistRequest) (*models.DailyChecklist, error) {
	if err := validateRatings(req); err != nil {
		return nil, err
	}

	truck, err := uc.repo.GetTruck(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	checklist := &models.DailyChecklist{
		ID:               uuid.New(),
		TruckID:          req.TruckID,
		DriverID:         driverID,
		Date:             time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
		OverallCondition: req.OverallCondition,
		TiresCondition:   req.TiresCondition,
		CabinCondition:   req.CabinCondition,
		CanvasCondition:  req.CanvasCondition,
		CabinPhotoURL:    req.CabinPhotoURL,
		TiresPhotoURL:    req.TiresPhotoURL,
		CanvasPhotoURL:   req.CanvasPhotoURL,
		Notes:            req.Notes,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		CreatedAt:        now,
	}

	if err := uc.repo.Create(ctx, checklist); err != nil {
		return nil, err
	}

	if req.HasIssues() {
		uc.escalate(ctx, checklist, truck)
	}

	return checklist, nil
}

// List returns checklists matching the filter, newest first
func (uc *ChecklistUC) List(ctx context.Context, filter *models.ChecklistFilter) ([]*models.DailyChecklist, error) {
	return uc.repo.List(ctx, filter)
}

// GetByID retrieves a single checklist
func (uc *ChecklistUC) GetByID(ctx context.Context, id uuid.UUID) (*models.DailyChecklist, error) {
	return uc.repo.GetByID(ctx, id)
}

func (uc *ChecklistUC) escalate(ctx context.Context, checklist *models.DailyChecklist, truck *models.Truck) {
	req := &models.NotificationRequest{
		Title: "Checklist reported issues",
		Message: fmt.Sprintf("Truck %s daily checklist reported issues (tires: %s, cabin: %s, canvas: %s, overall: %s)",
			truck.Plate, checklist.TiresCondition, checklist.CabinCondition,
			checklist.CanvasCondition, checklist.OverallCondition),
	}

	if _, err := uc.notificationUC.NotifyRoles(ctx, req, []string{constants.RoleAdmin}); err != nil {
		logger.Warn("Failed to escalate checklist",
			logger.String("checklist_id", checklist.ID.String()),
			logger.String("truck_id", checklist.TruckID.String()),
			logger.Err(err))
	}
}

func validateRatings(req *models.ChecklistRequest) error {
	if !validCondition(req.OverallCondition) || !validCondition(req.TiresCondition) ||
		!validCondition(req.CabinCondition) {
		return apperr.Validation("conditions must be GOOD, REGULAR or BAD")
	}

	switch req.CanvasCondition {
	case constants.ConditionGood, constants.CanvasWorn, constants.CanvasTorn:
		return nil
	}
	return apperr.Validation("canvas condition must be GOOD, WORN or TORN")
}

func validCondition(condition string) bool {
	switch condition {
	case constants.ConditionGood, constants.ConditionRegular, constants.ConditionBad:
		return true
	}
	return false
}
