package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/dashboard DashboardRepo

// DashboardRepo is the read-only aggregation interface behind the dashboards
type DashboardRepo interface {
	CountActiveTrucks(ctx context.Context) (int, error)
	CountActiveDrivers(ctx context.Context) (int, error)
	CountOpenOccurrences(ctx context.Context) (int, error)
	RecentOccurrenceActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)
	RecentChecklistActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error)

	GetDriverTruck(ctx context.Context, driverID uuid.UUID) (*models.Truck, error)
	GetLastChecklist(ctx context.Context, driverID uuid.UUID) (*models.DailyChecklist, error)
	GetRecentDriverOccurrences(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.Occurrence, error)
	CountChecklistsSince(ctx context.Context, driverID uuid.UUID, since time.Time) (int, error)

	SumResolvedOccurrenceCosts(ctx context.Context, since *time.Time) (float64, error)
	SumTireEventCosts(ctx context.Context, since *time.Time) (float64, error)
	TopCostTrucks(ctx context.Context, since *time.Time, limit int) ([]models.TruckCost, error)
}
