package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/database"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const truckColumns = `id, plate, model, brand, year, status, acquisition_date,
	total_km, notes, active, current_driver_id, created_at, updated_at`

// TruckRepo is the PostgreSQL truck repository
type TruckRepo struct {
	db *sqlx.DB
}

// NewTruckRepo creates a new truck repository
func NewTruckRepo(db *sqlx.DB) *TruckRepo {
	return &TruckRepo{db: db}
}

// Create inserts a new truck row. A duplicate plate surfaces as a Conflict.
func (r *TruckRepo) Create(ctx context.Context, truck *models.Truck) error {
	query := `
		INSERT INTO trucks (id, plate, model, brand, year, status, acquisition_date,
			total_km, notes, active, current_driver_id, created_at, updated_at)
		VALUES (:id, :plate, :model, :brand, :year, :status, :acquisition_date,
			:total_km, :notes, :active, :current_driver_id, :created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, truck); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("plate already registered")
		}
		return fmt.Errorf("failed to create truck: %w", err)
	}

	return nil
}

// GetByID retrieves a truck by ID with its current driver embedded
func (r *TruckRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE id = $1`

	var truck models.Truck
	if err := r.db.GetContext(ctx, &truck, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("truck not found")
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	if err := r.attachDrivers(ctx, []*models.Truck{&truck}); err != nil {
		return nil, err
	}

	return &truck, nil
}

// List returns trucks matching the filter with drivers and active tires embedded
func (r *TruckRepo) List(ctx context.Context, filter *models.TruckFilter) ([]*models.Truck, error) {
	query := `SELECT ` + truckColumns + ` FROM trucks WHERE 1=1`
	args := []interface{}{}

	if filter != nil {
		if filter.Status != "" {
			args = append(args, filter.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if filter.Active != nil {
			args = append(args, *filter.Active)
			query += fmt.Sprintf(" AND active = $%d", len(args))
		}
	}
	query += " ORDER BY plate ASC"

	trucks := []*models.Truck{}
	if err := r.db.SelectContext(ctx, &trucks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}

	if err := r.attachDrivers(ctx, trucks); err != nil {
		return nil, err
	}
	for _, truck := range trucks {
		tires, err := r.GetTiresByTruck(ctx, truck.ID)
		if err != nil {
			return nil, err
		}
		truck.Tires = tires
	}

	return trucks, nil
}

// Update persists the mutable fields of a truck
func (r *TruckRepo) Update(ctx context.Context, truck *models.Truck) error {
	query := `
		UPDATE trucks
		SET plate = :plate, model = :model, brand = :brand, year = :year,
			status = :status, acquisition_date = :acquisition_date,
			total_km = :total_km, notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, truck)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("plate already registered")
		}
		return fmt.Errorf("failed to update truck: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperr.NotFound("truck not found")
	}

	return nil
}

// SetStatus updates the status and active flag of a truck
func (r *TruckRepo) SetStatus(ctx context.Context, id uuid.UUID, status string, active bool) error {
	query := `
		UPDATE trucks
		SET status = $2, active = $3, updated_at = now()
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id, status, active)
	if err != nil {
		return fmt.Errorf("failed to update truck status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperr.NotFound("truck not found")
	}

	return nil
}

// ListAvailable returns active trucks without a current driver
func (r *TruckRepo) ListAvailable(ctx context.Context) ([]*models.Truck, error) {
	query := `
		SELECT ` + truckColumns + `
		FROM trucks
		WHERE status = 'ACTIVE' AND active = true AND current_driver_id IS NULL
		ORDER BY plate ASC
	`

	trucks := []*models.Truck{}
	if err := r.db.SelectContext(ctx, &trucks, query); err != nil {
		return nil, fmt.Errorf("failed to list available trucks: %w", err)
	}

	return trucks, nil
}

// SelectForDriver claims a truck for a driver. The availability check, the
// release of any truck the driver already holds and the assignment all run in
// one transaction; both trucks involved are locked with SELECT ... FOR UPDATE
// so two drivers racing for the same truck serialize and the loser gets a
// Conflict.
func (r *TruckRepo) SelectForDriver(ctx context.Context, driverID, truckID uuid.UUID) (*models.Truck, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var truck models.Truck
	err = tx.GetContext(ctx, &truck,
		`SELECT `+truckColumns+` FROM trucks WHERE id = $1 FOR UPDATE`, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("truck not found")
		}
		return nil, fmt.Errorf("failed to lock truck: %w", err)
	}

	if truck.Status != constants.TruckActive || !truck.Active {
		return nil, apperr.Conflict("truck is not available")
	}
	if truck.CurrentDriverID != nil {
		if *truck.CurrentDriverID == driverID {
			return nil, apperr.Conflict("truck already selected by this driver")
		}
		return nil, apperr.Conflict("truck is not available")
	}

	// release whatever truck the driver currently holds
	var heldID uuid.UUID
	err = tx.GetContext(ctx, &heldID,
		`SELECT id FROM trucks WHERE current_driver_id = $1 FOR UPDATE`, driverID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to lock held truck: %w", err)
	}
	if err == nil {
		if _, err = tx.ExecContext(ctx,
			`UPDATE trucks SET current_driver_id = NULL, updated_at = now() WHERE id = $1`,
			heldID); err != nil {
			return nil, fmt.Errorf("failed to release held truck: %w", err)
		}
		if err = insertHistory(ctx, tx, heldID, &driverID, constants.HistoryCheckOut, "Driver switched trucks"); err != nil {
			return nil, err
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE trucks SET current_driver_id = $2, updated_at = now() WHERE id = $1`,
		truckID, driverID); err != nil {
		return nil, fmt.Errorf("failed to assign truck: %w", err)
	}
	if err = insertHistory(ctx, tx, truckID, &driverID, constants.HistoryCheckIn, "Driver selected truck"); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	truck.CurrentDriverID = &driverID
	return &truck, nil
}

// Release gives up a truck held by the driver
func (r *TruckRepo) Release(ctx context.Context, driverID, truckID uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var currentDriverID *uuid.UUID
	err = tx.GetContext(ctx, &currentDriverID,
		`SELECT current_driver_id FROM trucks WHERE id = $1 FOR UPDATE`, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperr.NotFound("truck not found")
		}
		return fmt.Errorf("failed to lock truck: %w", err)
	}

	if currentDriverID == nil || *currentDriverID != driverID {
		return apperr.Forbidden("truck is not held by this driver")
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE trucks SET current_driver_id = NULL, updated_at = now() WHERE id = $1`,
		truckID); err != nil {
		return fmt.Errorf("failed to release truck: %w", err)
	}
	if err = insertHistory(ctx, tx, truckID, &driverID, constants.HistoryCheckOut, "Driver released truck"); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Assign sets (or with nil, clears) the current driver of a truck on behalf
// of an administrator. The driver being moved loses any truck they hold.
func (r *TruckRepo) Assign(ctx context.Context, truckID uuid.UUID, driverID *uuid.UUID) (*models.Truck, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var truck models.Truck
	err = tx.GetContext(ctx, &truck,
		`SELECT `+truckColumns+` FROM trucks WHERE id = $1 FOR UPDATE`, truckID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("truck not found")
		}
		return nil, fmt.Errorf("failed to lock truck: %w", err)
	}

	if truck.CurrentDriverID != nil {
		if err = insertHistory(ctx, tx, truckID, truck.CurrentDriverID, constants.HistoryUnassigned, "Driver unassigned by admin"); err != nil {
			return nil, err
		}
	}

	if driverID != nil {
		if _, err = tx.ExecContext(ctx,
			`UPDATE trucks SET current_driver_id = NULL, updated_at = now() WHERE current_driver_id = $1 AND id <> $2`,
			*driverID, truckID); err != nil {
			return nil, fmt.Errorf("failed to detach driver: %w", err)
		}
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE trucks SET current_driver_id = $2, updated_at = now() WHERE id = $1`,
		truckID, driverID); err != nil {
		return nil, fmt.Errorf("failed to assign driver: %w", err)
	}

	if driverID != nil {
		if err = insertHistory(ctx, tx, truckID, driverID, constants.HistoryAssigned, "Driver assigned by admin"); err != nil {
			return nil, err
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	truck.CurrentDriverID = driverID
	return &truck, nil
}

// GetDriver retrieves a user for assignment validation
func (r *TruckRepo) GetDriver(ctx context.Context, driverID uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, password, name, cpf, phone, role, active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := r.db.GetContext(ctx, &user, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("driver not found")
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}

	return &user, nil
}

// ListHistory returns the truck's assignment history, newest first
func (r *TruckRepo) ListHistory(ctx context.Context, truckID uuid.UUID) ([]*models.TruckHistory, error) {
	query := `
		SELECT id, truck_id, driver_id, action, description, created_at
		FROM truck_history
		WHERE truck_id = $1
		ORDER BY created_at DESC
	`

	history := []*models.TruckHistory{}
	if err := r.db.SelectContext(ctx, &history, query, truckID); err != nil {
		return nil, fmt.Errorf("failed to list truck history: %w", err)
	}

	return history, nil
}

// GetTiresByTruck returns the active tires mounted on a truck, by position
func (r *TruckRepo) GetTiresByTruck(ctx context.Context, truckID uuid.UUID) ([]*models.Tire, error) {
	query := `
		SELECT id, code, brand, model, position, truck_id, cost, initial_km,
			current_km, life_expectancy_km, status, active, notes, created_at, updated_at
		FROM tires
		WHERE truck_id = $1 AND active = true
		ORDER BY position ASC
	`

	tires := []*models.Tire{}
	if err := r.db.SelectContext(ctx, &tires, query, truckID); err != nil {
		return nil, fmt.Errorf("failed to get truck tires: %w", err)
	}

	return tires, nil
}

// GetRecentChecklists returns the most recent checklists for a truck
func (r *TruckRepo) GetRecentChecklists(ctx context.Context, truckID uuid.UUID, limit int) ([]*models.DailyChecklist, error) {
	query := `
		SELECT id, truck_id, driver_id, date, overall_condition, tires_condition,
			cabin_condition, canvas_condition, cabin_photo_url, tires_photo_url,
			canvas_photo_url, notes, location, latitude, longitude, created_at
		FROM daily_checklists
		WHERE truck_id = $1
		ORDER BY date DESC
		LIMIT $2
	`

	checklists := []*models.DailyChecklist{}
	if err := r.db.SelectContext(ctx, &checklists, query, truckID, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent checklists: %w", err)
	}

	return checklists, nil
}

// GetRecentOccurrences returns the most recent occurrences for a truck
func (r *TruckRepo) GetRecentOccurrences(ctx context.Context, truckID uuid.UUID, limit int) ([]*models.Occurrence, error) {
	query := `
		SELECT id, type, description, truck_id, driver_id, location, latitude,
			longitude, photo_urls, estimated_cost, actual_cost, has_financial_impact,
			status, resolution_notes, occurred_at, resolved_at, created_at, updated_at
		FROM occurrences
		WHERE truck_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	occurrences := []*models.Occurrence{}
	if err := r.db.SelectContext(ctx, &occurrences, query, truckID, limit); err != nil {
		return nil, fmt.Errorf("failed to get recent occurrences: %w", err)
	}

	return occurrences, nil
}

func (r *TruckRepo) attachDrivers(ctx context.Context, trucks []*models.Truck) error {
	for _, truck := range trucks {
		if truck.CurrentDriverID == nil {
			continue
		}

		var driver models.User
		err := r.db.GetContext(ctx, &driver, `
			SELECT id, email, password, name, cpf, phone, role, active, created_at, updated_at
			FROM users WHERE id = $1
		`, *truck.CurrentDriverID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				continue
			}
			return fmt.Errorf("failed to get current driver: %w", err)
		}
		truck.CurrentDriver = &driver
	}

	return nil
}

func insertHistory(ctx context.Context, tx *sqlx.Tx, truckID uuid.UUID, driverID *uuid.UUID, action, description string) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO truck_history (id, truck_id, driver_id, action, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, uuid.New(), truckID, driverID, action, description, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert truck history: %w", err)
	}
	return nil
}
