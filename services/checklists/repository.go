package checklists

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/checklists ChecklistRepo

// ChecklistRepo is the persistence interface for daily checklists.
// Create relies on the (truck_id, driver_id, date) unique constraint for the
// one-submission-per-day rule.
type ChecklistRepo interface {
	Create(ctx context.Context, checklist *models.DailyChecklist) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.DailyChecklist, error)
	List(ctx context.Context, filter *models.ChecklistFilter) ([]*models.DailyChecklist, error)
	GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error)
}
