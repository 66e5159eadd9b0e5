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

const tireColumns = `id, code, brand, model, position, truck_id, cost, initial_km,
	current_km, life_expectancy_km, status, active, notes, created_at, updated_at`

// TireRepo is the PostgreSQL tire repository
type TireRepo struct {
	db *sqlx.DB
}

// NewTireRepo creates a new tire repository
func NewTireRepo(db *sqlx.DB) *TireRepo {
	return &TireRepo{db: db}
}

// CreateWithEvent inserts the tire and its installation event in one
// transaction. A duplicate code surfaces as a Conflict.
func (r *TireRepo) CreateWithEvent(ctx context.Context, tire *models.Tire, event *models.TireEvent) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tires (id, code, brand, model, position, truck_id, cost, initial_km,
			current_km, life_expectancy_km, status, active, notes, created_at, updated_at)
		VALUES (:id, :code, :brand, :model, :position, :truck_id, :cost, :initial_km,
			:current_km, :life_expectancy_km, :status, :active, :notes, :created_at, :updated_at)
	`
	if _, err = tx.NamedExecContext(ctx, query, tire); err != nil {
		if database.IsUniqueViolation(err) {
			return apperr.Conflict("tire code already registered")
		}
		return fmt.Errorf("failed to create tire: %w", err)
	}

	if err = insertEvent(ctx, tx, event); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a tire by ID
func (r *TireRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE id = $1`

	var tire models.Tire
	if err := r.db.GetContext(ctx, &tire, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("tire not found")
		}
		return nil, fmt.Errorf("failed to get tire: %w", err)
	}

	return &tire, nil
}

// List returns tires matching the filter
func (r *TireRepo) List(ctx context.Context, filter *models.TireFilter) ([]*models.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE 1=1`
	args := []interface{}{}

	if filter != nil {
		if filter.TruckID != nil {
			args = append(args, *filter.TruckID)
			query += fmt.Sprintf(" AND truck_id = $%d", len(args))
		}
		if filter.Status != "" {
			args = append(args, filter.Status)
			query += fmt.Sprintf(" AND status = $%d", len(args))
		}
		if filter.Active != nil {
			args = append(args, *filter.Active)
			query += fmt.Sprintf(" AND active = $%d", len(args))
		}
	}
	query += " ORDER BY code ASC"

	tires := []*models.Tire{}
	if err := r.db.SelectContext(ctx, &tires, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tires: %w", err)
	}

	return tires, nil
}

// Update persists the mutable fields of a tire
func (r *TireRepo) Update(ctx context.Context, tire *models.Tire) error {
	query := `
		UPDATE tires
		SET brand = :brand, model = :model, position = :position,
			current_km = :current_km, life_expectancy_km = :life_expectancy_km,
			status = :status, active = :active, notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`

	result, err := r.db.NamedExecContext(ctx, query, tire)
	if err != nil {
		return fmt.Errorf("failed to update tire: %w", err)
	}

	rows, err := result.RowsAffected()
	if err == nil && rows == 0 {
		return apperr.NotFound("tire not found")
	}

	return nil
}

// ListActive returns all active tires
func (r *TireRepo) ListActive(ctx context.Context) ([]*models.Tire, error) {
	query := `SELECT ` + tireColumns + ` FROM tires WHERE active = true ORDER BY code ASC`

	tires := []*models.Tire{}
	if err := r.db.SelectContext(ctx, &tires, query); err != nil {
		return nil, fmt.Errorf("failed to list active tires: %w", err)
	}

	return tires, nil
}

// AppendEvent inserts the event row and persists the tire's new odometer and
// status in one transaction.
func (r *TireRepo) AppendEvent(ctx context.Context, event *models.TireEvent, tire *models.Tire) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err = insertEvent(ctx, tx, event); err != nil {
		return err
	}

	query := `
		UPDATE tires
		SET current_km = :current_km, status = :status, active = :active, updated_at = :updated_at
		WHERE id = :id
	`
	if _, err = tx.NamedExecContext(ctx, query, tire); err != nil {
		return fmt.Errorf("failed to update tire: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListEvents returns the tire's full event history, newest first
func (r *TireRepo) ListEvents(ctx context.Context, tireID uuid.UUID) ([]*models.TireEvent, error) {
	query := `
		SELECT id, tire_id, event_type, description, km_at_event, cost, photo_url, created_at
		FROM tire_events
		WHERE tire_id = $1
		ORDER BY created_at DESC
	`

	events := []*models.TireEvent{}
	if err := r.db.SelectContext(ctx, &events, query, tireID); err != nil {
		return nil, fmt.Errorf("failed to list tire events: %w", err)
	}

	return events, nil
}

// ListRecentProblemEvents returns the most recent problem events
// (blowouts and maintenance) for a tire, newest first. Other event types
// never occupy the window.
func (r *TireRepo) ListRecentProblemEvents(ctx context.Context, tireID uuid.UUID, limit int) ([]*models.TireEvent, error) {
	query := `
		SELECT id, tire_id, event_type, description, km_at_event, cost, photo_url, created_at
		FROM tire_events
		WHERE tire_id = $1 AND event_type IN ('BLOWOUT', 'MAINTENANCE')
		ORDER BY created_at DESC
		LIMIT $2
	`

	events := []*models.TireEvent{}
	if err := r.db.SelectContext(ctx, &events, query, tireID, limit); err != nil {
		return nil, fmt.Errorf("failed to list problem events: %w", err)
	}

	return events, nil
}

// CountEvents counts the events logged for a tire
func (r *TireRepo) CountEvents(ctx context.Context, tireID uuid.UUID) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM tire_events WHERE tire_id = $1`, tireID); err != nil {
		return 0, fmt.Errorf("failed to count tire events: %w", err)
	}

	return count, nil
}

// GetTruck retrieves the truck a tire is mounted on
func (r *TireRepo) GetTruck(ctx context.Context, truckID uuid.UUID) (*models.Truck, error) {
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

// Statistics aggregates fleet-wide tire numbers in SQL
func (r *TireRepo) Statistics(ctx context.Context) (*models.TireStatistics, error) {
	stats := &models.TireStatistics{EventsByType: map[string]int{}}

	totals := struct {
		TotalTires    int     `db:"total_tires"`
		TotalCost     float64 `db:"total_cost"`
		AverageLifeKm float64 `db:"average_life_km"`
		TotalKmUsed   float64 `db:"total_km_used"`
	}{}
	err := r.db.GetContext(ctx, &totals, `
		SELECT COUNT(*) AS total_tires,
			COALESCE(SUM(cost), 0) AS total_cost,
			COALESCE(AVG(current_km - initial_km), 0) AS average_life_km,
			COALESCE(SUM(current_km - initial_km), 0) AS total_km_used
		FROM tires
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tires: %w", err)
	}

	stats.TotalTires = totals.TotalTires
	stats.TotalCost = totals.TotalCost
	stats.AverageLifeKm = totals.AverageLifeKm
	if totals.TotalKmUsed > 0 {
		stats.CostPerKm = totals.TotalCost / totals.TotalKmUsed
	}

	rows, err := r.db.QueryxContext(ctx, `
		SELECT event_type, COUNT(*) AS count
		FROM tire_events
		GROUP BY event_type
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tire events: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var eventType string
		var count int
		if err := rows.Scan(&eventType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan event aggregate: %w", err)
		}
		stats.EventsByType[eventType] = count
		stats.TotalEvents += count
	}

	return stats, rows.Err()
}

func insertEvent(ctx context.Context, tx *sqlx.Tx, event *models.TireEvent) error {
	query := `
		INSERT INTO tire_events (id, tire_id, event_type, description, km_at_event, cost, photo_url, created_at)
		VALUES (:id, :tire_id, :event_type, :description, :km_at_event, :cost, :photo_url, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to insert tire event: %w", err)
	}
	return nil
}
