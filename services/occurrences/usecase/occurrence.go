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
	"github.com/gstransportes/frota/services/notifications"
	"github.com/gstransportes/frota/services/occurrences"
)

// OccurrenceUC implements the incident workflow usecase
type OccurrenceUC struct {
	repo           occurrences.OccurrenceRepo
	notificationUC notifications.NotificationUC
}

// NewOccurrenceUC creates a new occurrence usecase
func NewOccurrenceUC(repo occurrences.OccurrenceRepo, notificationUC notifications.NotificationUC) *OccurrenceUC {
	return &OccurrenceUC{
		repo:           repo,
		notificationUC: notificationUC,
	}
}

// Create files an occurrence with status PENDING and fans a notification out
// to the administrators, plus finance when the report carries financial
// impact. Fan-out failure is logged and never fails the creation.
func (uc *OccurrenceUC) Create(ctx context.Context, driverID uuid.UUID, req *models.OccurrenceRequest) (*models.Occurrence, error) {
	if req.Type == "" || req.Description == "" {
		return nil, apperr.Validation("type and description are required")
	}

	truck, err := uc.repo.GetTruck(ctx, req.TruckID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	occurrence := &models.Occurrence{
		ID:                 uuid.New(),
		Type:               req.Type,
		Description:        req.Description,
		TruckID:            req.TruckID,
		DriverID:           driverID,
		Location:           req.Location,
		Latitude:           req.Latitude,
		Longitude:          req.Longitude,
		PhotoURLs:          req.PhotoURLs,
		EstimatedCost:      req.EstimatedCost,
		HasFinancialImpact: req.HasFinancialImpact,
		Status:             constants.OccurrencePending,
		OccurredAt:         now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if occurrence.PhotoURLs == nil {
		occurrence.PhotoURLs = []string{}
	}

	if err := uc.repo.Create(ctx, occurrence); err != nil {
		return nil, err
	}

	roles := []string{constants.RoleAdmin}
	if occurrence.HasFinancialImpact {
		roles = append(roles, constants.RoleFinance)
	}

	notifyReq := &models.NotificationRequest{
		Title:        "New occurrence reported",
		Message:      fmt.Sprintf("Truck %s: %s (%s)", truck.Plate, occurrence.Type, occurrence.Description),
		OccurrenceID: &occurrence.ID,
	}
	if _, err := uc.notificationUC.NotifyRoles(ctx, notifyReq, roles); err != nil {
		logger.Warn("Failed to notify occurrence creation",
			logger.String("occurrence_id", occurrence.ID.String()),
			logger.Err(err))
	}

	return occurrence, nil
}

// List returns occurrences matching the filter, newest first
func (uc *OccurrenceUC) List(ctx context.Context, filter *models.OccurrenceFilter) ([]*models.Occurrence, error) {
	return uc.repo.List(ctx, filter)
}

// GetByID retrieves a single occurrence
func (uc *OccurrenceUC) GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	return uc.repo.GetByID(ctx, id)
}

// UpdateStatus moves an occurrence through the triage workflow. Resolving
// stamps resolvedAt; every status change notifies the reporting driver.
// Notification failure is logged and never fails the update.
func (uc *OccurrenceUC) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.OccurrenceStatusRequest) (*models.Occurrence, error) {
	if !validOccurrenceStatus(req.Status) {
		return nil, apperr.Validation("invalid occurrence status")
	}

	occurrence, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	occurrence.Status = req.Status
	if req.ResolutionNotes != nil {
		occurrence.ResolutionNotes = req.ResolutionNotes
	}
	if req.ActualCost != nil {
		occurrence.ActualCost = req.ActualCost
	}
	if req.Status == constants.OccurrenceResolved && occurrence.ResolvedAt == nil {
		occurrence.ResolvedAt = &now
	}
	occurrence.UpdatedAt = now

	if err := uc.repo.UpdateStatus(ctx, occurrence); err != nil {
		return nil, err
	}

	notifyReq := &models.NotificationRequest{
		Title:        "Occurrence status updated",
		Message:      fmt.Sprintf("Your occurrence %s is now %s", occurrence.Type, occurrence.Status),
		OccurrenceID: &occurrence.ID,
	}
	if _, err := uc.notificationUC.NotifyUsers(ctx, notifyReq, []uuid.UUID{occurrence.DriverID}); err != nil {
		logger.Warn("Failed to notify occurrence status update",
			logger.String("occurrence_id", occurrence.ID.String()),
			logger.Err(err))
	}

	return occurrence, nil
}

func validOccurrenceStatus(status string) bool {
	switch status {
	case constants.OccurrencePending, constants.OccurrenceInReview, constants.OccurrenceResolved:
		return true
	}
	return false
}
