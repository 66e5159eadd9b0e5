package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// DashboardRepo runs the read-only aggregation queries behind the dashboards
type DashboardRepo struct {
	db *sqlx.DB
}

// NewDashboardRepo creates a new dashboard repository
func NewDashboardRepo(db *sqlx.DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// CountActiveTrucks counts trucks in service
func (r *DashboardRepo) CountActiveTrucks(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM trucks WHERE active = true AND status = 'ACTIVE'`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active trucks: %w", err)
	}
	return count, nil
}

// CountActiveDrivers counts active driver accounts
func (r *DashboardRepo) CountActiveDrivers(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM users WHERE role = 'DRIVER' AND active = true`)
	if err != nil {
		return 0, fmt.Errorf("failed to count active drivers: %w", err)
	}
	return count, nil
}

// CountOpenOccurrences counts occurrences still in triage
func (r *DashboardRepo) CountOpenOccurrences(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM occurrences WHERE status IN ('PENDING', 'IN_REVIEW')`)
	if err != nil {
		return 0, fmt.Errorf("failed to count open occurrences: %w", err)
	}
	return count, nil
}

// RecentOccurrenceActivity returns the latest occurrences as feed entries
func (r *DashboardRepo) RecentOccurrenceActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	rows := []struct {
		ID          uuid.UUID `db:"id"`
		Description string    `db:"description"`
		User        string    `db:"user_name"`
		Date        time.Time `db:"created_at"`
		Status      string    `db:"status"`
	}{}

	err := r.db.SelectContext(ctx, &rows, `
		SELECT o.id, o.description, u.name AS user_name, o.created_at, o.status
		FROM occurrences o
		JOIN users u ON u.id = o.driver_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent occurrences: %w", err)
	}

	entries := make([]models.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ActivityEntry{
			Type:        "occurrence",
			ID:          row.ID,
			Description: row.Description,
			User:        row.User,
			Date:        row.Date,
			Status:      row.Status,
		})
	}

	return entries, nil
}

// RecentChecklistActivity returns the latest checklists as feed entries
func (r *DashboardRepo) RecentChecklistActivity(ctx context.Context, limit int) ([]models.ActivityEntry, error) {
	rows := []struct {
		ID      uuid.UUID `db:"id"`
		Plate   string    `db:"plate"`
		User    string    `db:"user_name"`
		Date    time.Time `db:"created_at"`
		Overall string    `db:"overall_condition"`
	}{}

	err := r.db.SelectContext(ctx, &rows, `
		SELECT c.id, t.plate, u.name AS user_name, c.created_at, c.overall_condition
		FROM daily_checklists c
		JOIN trucks t ON t.id = c.truck_id
		JOIN users u ON u.id = c.driver_id
		ORDER BY c.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent checklists: %w", err)
	}

	entries := make([]models.ActivityEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.ActivityEntry{
			Type:        "checklist",
			ID:          row.ID,
			Description: "Checklist for truck " + row.Plate,
			User:        row.User,
			Date:        row.Date,
			Status:      row.Overall,
		})
	}

	return entries, nil
}

// GetDriverTruck returns the truck currently held by the driver
func (r *DashboardRepo) GetDriverTruck(ctx context.Context, driverID uuid.UUID) (*models.Truck, error) {
	query := `
		SELECT id, plate, model, brand, year, status, acquisition_date,
			total_km, notes, active, current_driver_id, created_at, updated_at
		FROM trucks
		WHERE current_driver_id = $1
	`

	var truck models.Truck
	if err := r.db.GetContext(ctx, &truck, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("driver holds no truck")
		}
		return nil, fmt.Errorf("failed to get driver truck: %w", err)
	}

	return &truck, nil
}

// GetLastChecklist returns the driver's most recent checklist
func (r *DashboardRepo) GetLastChecklist(ctx context.Context, driverID uuid.UUID) (*models.DailyChecklist, error) {
	query := `
		SELECT id, truck_id, driver_id, date, overall_condition, tires_condition,
			cabin_condition, canvas_condition, cabin_photo_url, tires_photo_url,
			canvas_photo_url, notes, location, latitude, longitude, created_at
		FROM daily_checklists
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`

	var checklist models.DailyChecklist
	if err := r.db.GetContext(ctx, &checklist, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperr.NotFound("no checklist found")
		}
		return nil, fmt.Errorf("failed to get last checklist: %w", err)
	}

	return &checklist, nil
}

// GetRecentDriverOccurrences returns the driver's latest reports
func (r *DashboardRepo) GetRecentDriverOccurrences(ctx context.Context, driverID uuid.UUID, limit int) ([]*models.Occurrence, error) {
	query := `
		SELECT id, type, description, truck_id, driver_id, location, latitude,
			longitude, photo_urls, estimated_cost, actual_cost, has_financial_impact,
			status, resolution_notes, occurred_at, resolved_at, created_at, updated_at
		FROM occurrences
		WHERE driver_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	occurrences := []*models.Occurrence{}
	if err := r.db.SelectContext(ctx, &occurrences, query, driverID, limit); err != nil {
		return nil, fmt.Errorf("failed to get driver occurrences: %w", err)
	}

	return occurrences, nil
}

// CountChecklistsSince counts the driver's checklists from a point in time
func (r *DashboardRepo) CountChecklistsSince(ctx context.Context, driverID uuid.UUID, since time.Time) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM daily_checklists WHERE driver_id = $1 AND date >= $2`,
		driverID, since)
	if err != nil {
		return 0, fmt.Errorf("failed to count checklists: %w", err)
	}
	return count, nil
}

// SumResolvedOccurrenceCosts sums actual costs of resolved occurrences,
// treating missing costs as zero.
func (r *DashboardRepo) SumResolvedOccurrenceCosts(ctx context.Context, since *time.Time) (float64, error) {
	query := `
		SELECT COALESCE(SUM(actual_cost), 0)
		FROM occurrences
		WHERE status = 'RESOLVED'
	`
	args := []interface{}{}
	if since != nil {
		args = append(args, *since)
		query += " AND resolved_at >= $1"
	}

	var total float64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum occurrence costs: %w", err)
	}

	return total, nil
}

// SumTireEventCosts sums tire event costs, treating missing costs as zero
func (r *DashboardRepo) SumTireEventCosts(ctx context.Context, since *time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(cost), 0) FROM tire_events WHERE 1=1`
	args := []interface{}{}
	if since != nil {
		args = append(args, *since)
		query += " AND created_at >= $1"
	}

	var total float64
	if err := r.db.GetContext(ctx, &total, query, args...); err != nil {
		return 0, fmt.Errorf("failed to sum tire event costs: %w", err)
	}

	return total, nil
}

// TopCostTrucks ranks trucks by combined occurrence and tire spending
func (r *DashboardRepo) TopCostTrucks(ctx context.Context, since *time.Time, limit int) ([]models.TruckCost, error) {
	query := `
		SELECT t.plate, t.model, t.total_km AS km,
			COALESCE(o.cost, 0) + COALESCE(te.cost, 0) AS total_cost
		FROM trucks t
		LEFT JOIN (
			SELECT truck_id, SUM(actual_cost) AS cost
			FROM occurrences
			WHERE status = 'RESOLVED'
	`
	args := []interface{}{}
	if since != nil {
		args = append(args, *since)
		query += fmt.Sprintf(" AND resolved_at >= $%d", len(args))
	}
	query += `
			GROUP BY truck_id
		) o ON o.truck_id = t.id
		LEFT JOIN (
			SELECT ti.truck_id, SUM(e.cost) AS cost
			FROM tire_events e
			JOIN tires ti ON ti.id = e.tire_id
	`
	if since != nil {
		args = append(args, *since)
		query += fmt.Sprintf(" WHERE e.created_at >= $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(`
			GROUP BY ti.truck_id
		) te ON te.truck_id = t.id
		ORDER BY total_cost DESC
		LIMIT $%d
	`, len(args))

	rows := []struct {
		Plate     string  `db:"plate"`
		Model     string  `db:"model"`
		Km        float64 `db:"km"`
		TotalCost float64 `db:"total_cost"`
	}{}
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to rank truck costs: %w", err)
	}

	ranking := make([]models.TruckCost, 0, len(rows))
	for _, row := range rows {
		cost := models.TruckCost{
			Plate:     row.Plate,
			Model:     row.Model,
			TotalCost: row.TotalCost,
			Km:        row.Km,
		}
		if row.Km > 0 {
			cost.CostPerKm = row.TotalCost / row.Km
		}
		ranking = append(ranking, cost)
	}

	return ranking, nil
}
