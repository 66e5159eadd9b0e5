package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/database"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const checklistColumns = `id, truck_id, driver_id, date, overall_condition,
	tires_condition, cabin_condition, canvas_condition, cabin_photo_url,
	tires_photo_url, canvas_photo_url, notes, location, latitude, longitude, created_at`

// ChecklistRepo is the PostgreSQL checklist repository
type ChecklistRepo struct {
	db *sqlx.DB
}

// NewChecklistRepo creates a new checklist repository
func NewChecklistRepo(db *sqlx.DB) *ChecklistRepo {
	return &ChecklistRepo{db: db}
}

// Create inserts a checklist row. The unique constraint on
// (truck_id, driver_id, date) turns a same-day duplicate into a Conflict.
func (r *ChecklistRepo) Create(ctx context.Context, checklist *models.DailyChecklist) error {
	query := `
		INSERT INTO daily_checklists (id, truck_id, driver_id, date, overall_condition,
			tires_condition, cabin_condition, canvas_condition, cabin_photo_url,
			tires_photo_url, canvas_photo_url, notes, location, latitude, longitude, created_at)
		VALUES (:id, :truck_id, :driver_id, :date, :overall_condition,
			:tires_condition, :cabin_condition, :canvas_condition, :cabin_photo_url,
			:tires_photo_url, :canvas_photo_url, :notes, :location, :latitude, :longitude, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, checklist); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("checklist already submitted today for this truck")
		}
		return fmt.Errorf("failed to create checklist: %w", err)
	}

	return nil
}

// GetByID retrieves a checklist by ID
func (r *ChecklistRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.DailyChecklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM daily_checklists WHERE id = $1`

	var checklist models.DailyChecklist
	if err := r.db.GetContext(ctx, &checklist, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("checklist not found")
		}
		return nil, fmt.Errorf("failed to get checklist: %w", err)
	}

	return &checklist, nil
}

// List returns checklists matching the filter, newest first
func (r *ChecklistRepo) List(ctx context.Context, filter *models.ChecklistFilter) ([]*models.DailyChecklist, error) {
	query := `SELECT ` + checklistColumns + ` FROM daily_checklists WHERE 1=1`
	args := []interface{}{}

	if filter != nil {
		if filter.TruckID != nil {
			args = append(args, *filter.TruckID)
			query += fmt.Sprintf(" AND truck_id = $%d", len(args))
		}
		if filter.DriverID != nil {
			args = append(args, *filter.DriverID)
			query += fmt.Sprintf(" AND driver_id = $%d", len(args))
		}
		if filter.StartDate != nil {
			args = append(args, *filter.StartDate)
			query += fmt.Sprintf(" AND date >= $%d", len(args))
		}
		if filter.EndDate != nil {
			args = append(args, *filter.EndDate)
			query += fmt.Sprintf(" AND date <= $%d", len(args))
		}
	}
	query += " ORDER BY date DESC, created_at DESC"

	checklists := []*models.DailyChecklist{}
	if err := r.db.SelectContext(ctx, &checklists, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list checklists: %w", err)
	}

	return checklists, nil
}

// GetTruck retrieves the inspected truck
func (r *ChecklistRepo) GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error) {
	query := `
		SELECT id, plate, model, brand, year, status, acquisition_date,
			total_km, notes, active, current_driver_id, created_at, updated_at
		FROM trucks
		WHERE id = $1
	`

	var truck models.Truck
	if err := r.db.GetContext(ctx, &truck, query, truckID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("truck not found")
		}
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return &truck, nil
}
