package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/logger"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/trucks"
)

const recentActivityLimit = 10

// TruckUC implements the truck usecase
type TruckUC struct {
	repo trucks.TruckRepo
}

// NewTruckUC creates a new truck usecase
func NewTruckUC(repo trucks.TruckRepo) *TruckUC {
	return &TruckUC{repo: repo}
}

// Create registers a new truck. A duplicate plate surfaces as a Conflict.
func (uc *TruckUC) Create(ctx context.Context, truck *models.Truck) (*models.Truck, error) {
	truck.Plate = strings.ToUpper(strings.TrimSpace(truck.Plate))

	if truck.Plate == "" || truck.Model == "" || truck.Brand == "" {
		return nil, apperr.Validation("plate, model and brand are required")
	}
	if truck.Status == "" {
		truck.Status = constants.TruckActive
	}
	if !validTruckStatus(truck.Status) {
		return nil, apperr.Validation("invalid truck status")
	}

	now := time.Now()
	truck.ID = uuid.New()
	truck.Active = true
	truck.CurrentDriverID = nil
	truck.CreatedAt = now
	truck.UpdatedAt = now

	if err := uc.repo.Create(ctx, truck); err != nil {
		return nil, err
	}

	return truck, nil
}

// List returns trucks matching the filter, each with its active tires
func (uc *TruckUC) List(ctx context.Context, filter *models.TruckFilter) ([]*models.Truck, error) {
	if filter != nil && filter.Status != "" && !validTruckStatus(filter.Status) {
		return nil, apperr.Validation("invalid truck status")
	}
	return uc.repo.List(ctx, filter)
}

// GetByID returns a truck with its tires and recent activity
func (uc *TruckUC) GetByID(ctx context.Context, id uuid.UUID) (*models.TruckDetail, error) {
	truck, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.TruckDetail{Truck: *truck}

	if detail.Tires, err = uc.repo.GetTiresByTruck(ctx, id); err != nil {
		return nil, err
	}
	if detail.Checklists, err = uc.repo.GetRecentChecklists(ctx, id, recentActivityLimit); err != nil {
		return nil, err
	}
	if detail.Occurrences, err = uc.repo.GetRecentOccurrences(ctx, id, recentActivityLimit); err != nil {
		return nil, err
	}

	return detail, nil
}

// Update persists an admin correction to a truck
func (uc *TruckUC) Update(ctx context.Context, truck *models.Truck) (*models.Truck, error) {
	current, err := uc.repo.GetByID(ctx, truck.ID)
	if err != nil {
		return nil, err
	}

	if truck.Plate != "" {
		current.Plate = strings.ToUpper(strings.TrimSpace(truck.Plate))
	}
	if truck.Model != "" {
		current.Model = truck.Model
	}
	if truck.Brand != "" {
		current.Brand = truck.Brand
	}
	if truck.Year != 0 {
		current.Year = truck.Year
	}
	if truck.Status != "" {
		if !validTruckStatus(truck.Status) {
			return nil, apperr.Validation("invalid truck status")
		}
		current.Status = truck.Status
	}
	if truck.AcquisitionDate != nil {
		current.AcquisitionDate = truck.AcquisitionDate
	}
	if truck.TotalKm > 0 {
		current.TotalKm = truck.TotalKm
	}
	if truck.Notes != "" {
		current.Notes = truck.Notes
	}

	current.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// Deactivate retires a truck from the fleet
func (uc *TruckUC) Deactivate(ctx context.Context, id uuid.UUID) error {
	return uc.repo.SetStatus(ctx, id, constants.TruckInactive, false)
}

// ListAvailable returns active trucks without a current driver
func (uc *TruckUC) ListAvailable(ctx context.Context) ([]*models.Truck, error) {
	return uc.repo.ListAvailable(ctx)
}

// SelectTruck lets a driver claim an available truck. The availability check,
// the release of any truck the driver already holds and the assignment run in
// a single row-locked transaction inside the repository.
func (uc *TruckUC) SelectTruck(ctx context.Context, driverID, truckID uuid.UUID) (*models.Truck, error) {
	truck, err := uc.repo.SelectForDriver(ctx, driverID, truckID)
	if err != nil {
		return nil, err
	}

	logger.Info("Driver selected truck",
		logger.String("driver_id", driverID.String()),
		logger.String("truck_id", truckID.String()),
		logger.String("plate", truck.Plate))

	return truck, nil
}

// ReleaseTruck lets a driver give up the truck they currently hold
func (uc *TruckUC) ReleaseTruck(ctx context.Context, driverID, truckID uuid.UUID) error {
	return uc.repo.Release(ctx, driverID, truckID)
}

// AssignDriver assigns (or with a nil driver, unassigns) a driver to a truck
// on behalf of an administrator.
func (uc *TruckUC) AssignDriver(ctx context.Context, truckID uuid.UUID, driverID *uuid.UUID) (*models.Truck, error) {
	if driverID != nil {
		driver, err := uc.repo.GetDriver(ctx, *driverID)
		if err != nil {
			return nil, err
		}
		if driver.Role != constants.RoleDriver {
			return nil, apperr.Validation("user is not a driver")
		}
		if !driver.Active {
			return nil, apperr.Validation("driver is not active")
		}
	}

	return uc.repo.Assign(ctx, truckID, driverID)
}

// History returns the truck's assignment history, newest first
func (uc *TruckUC) History(ctx context.Context, truckID uuid.UUID) ([]*models.TruckHistory, error) {
	if _, err := uc.repo.GetByID(ctx, truckID); err != nil {
		return nil, err
	}
	return uc.repo.ListHistory(ctx, truckID)
}

func validTruckStatus(status string) bool {
	switch status {
	case constants.TruckActive, constants.TruckMaintenance, constants.TruckInactive:
		return true
	}
	return false
}
