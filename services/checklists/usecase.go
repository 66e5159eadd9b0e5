package checklists

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/checklists ChecklistUC

// ChecklistUC is the daily checklist usecase interface
type ChecklistUC interface {
	Submit(ctx context.Context, driverID uuid.UUID, req *models.ChecklistRequest) (*models.DailyChecklist, error)
	List(ctx context.Context, filter *models.ChecklistFilter) ([]*models.DailyChecklist, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.DailyChecklist, error)
}
