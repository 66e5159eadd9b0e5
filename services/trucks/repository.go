package trucks

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/trucks TruckRepo

// TruckRepo is the persistence interface for trucks and assignment history.
// Assign runs the whole claim sequence inside one transaction with row locks.
type TruckRepo interface {
	Create(ctx context.Context, truck *models.Truck) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Truck, error)
	List(ctx context.Context, filter *models.TruckFilter) ([]*models.Truck, error)
	Update(ctx context.Context, truck *models.Truck) error
	SetStatus(ctx context.Context, id uuid.UUID, status string, active bool) error

	ListAvailable(ctx context.Context) ([]*models.Truck, error)
	SelectForDriver(ctx context.Context, driverID, truckID uuid.UUID) (*models.Truck, error)
	Release(ctx context.Context, driverID, truckID uuid.UUID) error
	Assign(ctx context.Context, truckID uuid.UUID, driverID *uuid.UUID) (*models.Truck, error)

	GetDriver(ctx context.Context, driverID uuid.UUID) (*models.User, error)
	ListHistory(ctx context.Context, truckID uuid.UUID) ([]*models.TruckHistory, error)

	GetTiresByTruck(ctx context.Context, truckID uuid.UUID) ([]*models.Tire, error)
	GetRecentChecklists(ctx context.Context, truckID uuid.UUID, limit int) ([]*models.DailyChecklist, error)
	GetRecentOccurrences(ctx context.Context, truckID uuid.UUID, limit int) ([]*models.Occurrence, error)
}
