package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

const occurrenceColumns = `id, type, description, truck_id, driver_id, location,
	latitude, longitude, photo_urls, estimated_cost, actual_cost,
	has_financial_impact, status, resolution_notes, occurred_at, resolved_at,
	created_at, updated_at`

// OccurrenceRepo is the PostgreSQL occurrence repository
type OccurrenceRepo struct {
	db *sqlx.DB
}

// NewOccurrenceRepo creates a new occurrence repository
func NewOccurrenceRepo(db *sqlx.DB) *OccurrenceRepo {
	return &OccurrenceRepo{db: db}
}

// Create inserts an occurrence row
func (r *OccurrenceRepo) Create(ctx context.Context, occurrence *models.Occurrence) error {
	query := `
		INSERT INTO occurrences (id, type, description, truck_id, driver_id, location,
			latitude, longitude, photo_urls, estimated_cost, actual_cost,
			has_financial_impact, status, resolution_notes, occurred_at, resolved_at,
			created_at, updated_at)
		VALUES (:id, :type, :description, :truck_id, :driver_id, :location,
			:latitude, :longitude, :photo_urls, :estimated_cost, :actual_cost,
			:has_financial_impact, :status, :resolution_notes, :occurred_at, :resolved_at,
			:created_at, :updated_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, occurrence); err != nil {
		return fmt.Errorf("failed to create occurrence: %w", err)
	}

	return nil
}

// GetByID retrieves an occurrence by ID
func (r *OccurrenceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences WHERE id = $1`

	var occurrence models.Occurrence
	if err := r.db.GetContext(ctx, &occurrence, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("occurrence not found")
		}
		return nil, fmt.Errorf("failed to get occurrence: %w", err)
	}

	return &occurrence, nil
}

// List returns occurrences matching the filter, newest first
func (r *OccurrenceRepo) List(ctx context.Context, filter *models.OccurrenceFilter) ([]*models.Occurrence, error) {
	query := `SELECT ` + occurrenceColumns + ` FROM occurrences WHERE 1=1`
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
		if filter.Type != "" {
			args = append(args, filter.Type)
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
		if filter.Status != "" {
			args = append(args, filter.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if filter.StartDate != nil {
			args = append(args, *filter.StartDate)
			query += fmt.Sprintf(" AND occurred_at >= $%d", len(args))
		}
		if filter.EndDate != nil {
			args = append(args, *filter.EndDate)
			query += fmt.Sprintf(" AND occurred_at <= $%d", len(args))
		}
	}
	query += " ORDER BY created_at DESC"

	occurrences := []*models.Occurrence{}
	if err := r.db.SelectContext(ctx, &occurrences, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list occurrences: %w", err)
	}

	return occurrences, nil
}

// UpdateStatus persists a triage update
func (r *OccurrenceRepo) UpdateStatus(ctx context.Context, occurrence *models.Occurrence) error {
	query := `
		UPDATE occurrences
		SET status = :status, resolution_notes = :resolution_notes,
			actual_cost = :actual_cost, resolved_at = :resolved_at, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, occurrence)
	if err != nil {
		return fmt.Errorf("failed to update occurrence: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperr.NotFound("occurrence not found")
	}

	return nil
}

// GetTruck retrieves the truck an occurrence was reported against
func (r *OccurrenceRepo) GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error) {
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
