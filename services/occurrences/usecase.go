package occurrences

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/occurrences OccurrenceUC

// OccurrenceUC is the incident workflow usecase interface
type OccurrenceUC interface {
	Create(ctx context.Context, driverID uuid.UUID, req *models.OccurrenceRequest) (*models.Occurrence, error)
	List(ctx context.Context, filter *models.OccurrenceFilter) ([]*models.Occurrence, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.OccurrenceStatusRequest) (*models.Occurrence, error)
	GetStatistics(ctx context.Context, filter *models.OccurrenceFilter) (*models.OccurrenceStatistics, error)
}
