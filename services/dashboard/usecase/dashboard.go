package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/dashboard"
)

const recentFeedLimit = 5

// DashboardUC implements the role dashboards
type DashboardUC struct {
	repo dashboard.DashboardRepo
}

// NewDashboardUC creates a new dashboard usecase
func NewDashboardUC(repo dashboard.DashboardRepo) *DashboardUC {
	return &DashboardUC{repo: repo}
}

// AdminStats aggregates fleet-wide numbers for administrators
func (uc *DashboardUC) AdminStats(ctx context.Context) (*models.AdminDashboard, error) {
	stats := &models.AdminDashboard{}
	var err error

	if stats.ActiveTrucks, err = uc.repo.CountActiveTrucks(ctx); err != nil {
		return nil, err
	}
	if stats.TotalDrivers, err = uc.repo.CountActiveDrivers(ctx); err != nil {
		return nil, err
	}
	if stats.PendingOccurrences, err = uc.repo.CountOpenOccurrences(ctx); err != nil {
		return nil, err
	}
	if stats.RecentActivity, err = uc.repo.RecentOccurrenceActivity(ctx, recentFeedLimit); err != nil {
		return nil, err
	}
	if stats.RecentChecklists, err = uc.repo.RecentChecklistActivity(ctx, recentFeedLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

// DriverStats aggregates the signed-in driver's state
func (uc *DashboardUC) DriverStats(ctx context.Context, driverID uuid.UUID) (*models.DriverDashboard, error) {
	stats := &models.DriverDashboard{}

	truck, err := uc.repo.GetDriverTruck(ctx, driverID)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}
	stats.Truck = truck

	last, err := uc.repo.GetLastChecklist(ctx, driverID)
	if err != nil && !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}
	stats.LastChecklist = last

	if stats.RecentOccurrences, err = uc.repo.GetRecentDriverOccurrences(ctx, driverID, recentFeedLimit); err != nil {
		return nil, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if stats.TripsThisMonth, err = uc.repo.CountChecklistsSince(ctx, driverID, monthStart); err != nil {
		return nil, err
	}

	return stats, nil
}

// FinancialStats aggregates maintenance and tire spending for the given
// period: "month", "year" or "all".
func (uc *DashboardUC) FinancialStats(ctx context.Context, period string) (*models.FinancialDashboard, error) {
	since, err := periodStart(period)
	if err != nil {
		return nil, err
	}

	stats := &models.FinancialDashboard{}

	if stats.TotalMaintenance, err = uc.repo.SumResolvedOccurrenceCosts(ctx, since); err != nil {
		return nil, err
	}
	if stats.TotalTire, err = uc.repo.SumTireEventCosts(ctx, since); err != nil {
		return nil, err
	}
	stats.TotalCost = stats.TotalMaintenance + stats.TotalTire

	if stats.TopCostTrucks, err = uc.repo.TopCostTrucks(ctx, since, recentFeedLimit); err != nil {
		return nil, err
	}

	return stats, nil
}

func periodStart(period string) (*time.Time, error) {
	now := time.Now()
	switch period {
	case "", "all":
		return nil, nil
	case "month":
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &start, nil
	case "year":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return &start, nil
	}
	return nil, apperr.Validation("period must be month, year or all")
}
