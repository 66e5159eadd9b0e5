package dashboard

import (
	"context"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/gstransportes/frota/services/dashboard DashboardUC

// DashboardUC is the role dashboard usecase interface
type DashboardUC interface {
	AdminStats(ctx context.Context) (*models.AdminDashboard, error)
	DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverDashboard, error)
	FinancialStats(ctx context.Context, period string) (*models.FinancialDashboard, error)
}
