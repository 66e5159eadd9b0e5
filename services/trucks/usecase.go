package trucks

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/trucks TruckUC

// TruckUC is the truck and driver assignment usecase interface
type TruckUC interface {
	Create(ctx context.Context, truck *models.Truck) (*models.Truck, error)
	List(ctx context.Context, filter *models.TruckFilter) ([]*models.Truck, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.TruckDetail, error)
	Update(ctx context.Context, truck *models.Truck) (*models.Truck, error)
	Deactivate(ctx context.Context, id uuid.UUID) error

	ListAvailable(ctx context.Context) ([]*models.Truck, error)
	SelectTruck(ctx context.Context, driverID, truckID uuid.UUID) (*models.Truck, error)
	ReleaseTruck(ctx context.Context, driverID, truckID uuid.UUID) error
	AssignDriver(ctx context.Context, truckID uuid.UUID, driverID *uuid.UUID) (*models.Truck, error)
	History(ctx context.Context, truckID uuid.UUID) ([]*models.TruckHistory, error)
}
