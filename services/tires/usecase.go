package tires

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/tires TireUC

// TireUC is the tire lifecycle usecase interface
type TireUC interface {
	Create(ctx context.Context, tire *models.Tire) (*models.Tire, error)
	List(ctx context.Context, filter *models.TireFilter) ([]*models.Tire, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TireDetail, error)
	Update(ctx context.Context, tire *models.Tire) (*models.Tire, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	RegisterEvent(ctx context.Context, tireID uuid.UUID, req *models.TireEventRequest) (*models.TireEvent, error)
	GetAlerts(ctx context.Context) ([]*models.TireAlert, error)
	GetStatistics(ctx context.Context) (*models.TireStatistics, error)
}
