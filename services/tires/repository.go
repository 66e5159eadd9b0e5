package tires

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/tires TireRepo

// TireRepo is the persistence interface for tires and their event log
type TireRepo interface {
	CreateWithEvent(ctx context.Context, tire *models.Tire, event *models.TireEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tire, error)
	List(ctx context.Context, filter *models.TireFilter) ([]*models.Tire, error)
	Update(ctx context.Context, tire *models.Tire) error
	ListActive(ctx context.Context) ([]*models.Tire, error)

	AppendEvent(ctx context.Context, event *models.TireEvent, tire *models.Tire) error
	ListEvents(ctx context.Context, tireID uuid.UUID) ([]*models.TireEvent, error)
	ListRecentProblemEvents(ctx context.Context, tireID uuid.UUID, limit int) ([]*models.TireEvent, error)
	CountEvents(ctx context.Context, tireID uuid.UUID) (int, error)

	GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error)
	Statistics(ctx context.Context) (*models.TireStatistics, error)
}
