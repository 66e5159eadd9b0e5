package occurrences

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/gstransportes/frota/services/occurrences OccurrenceRepo

// OccurrenceRepo is the persistence interface for occurrences
type OccurrenceRepo interface {
	Create(ctx context.Context, occurrence *models.Occurrence) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	List(ctx context.Context, filter *models.OccurrenceFilter) ([]*models.Occurrence, error)
	UpdateStatus(ctx context.Context, occurrence *models.Occurrence) error
	GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error)
}
