package models

import (
	"time"

	"github.com/google/uuid"
)

// ActivityEntry is one recent item on a dashboard feed
type ActivityEntry struct {
	Type        string    `json:"type"`
	ID          uuid.UUID `json:"id"`
	Description string    `json:"description"`
	User        string    `json:"user"`
	Date        time.Time `json:"date"`
	Status      string    `json:"status"`
}

// AdminDashboard aggregates fleet-wide numbers for administrators
type AdminDashboard struct {
	ActiveTrucks       int             `json:"active_trucks"`
	TotalDrivers       int             `json:"total_drivers"`
	PendingOccurrences int             `json:"pending_occurrences"`
	RecentActivity     []ActivityEntry `json:"recent_activity"`
	RecentChecklists   []ActivityEntry `json:"recent_checklists"`
}

// DriverDashboard aggregates the signed-in driver's state
type DriverDashboard struct {
	Truck             *Truck          `json:"truck,omitempty"`
	LastChecklist     *DailyChecklist `json:"last_checklist,omitempty"`
	RecentOccurrences []*Occurrence   `json:"recent_occurrences"`
	TripsThisMonth    int             `json:"trips_this_month"`
}

// TruckCost is one row of the financial top-cost ranking
type TruckCost struct {
	Plate     string  `json:"plate"`
	Model     string  `json:"model"`
	TotalCost float64 `json:"total_cost"`
	Km        float64 `json:"km"`
	CostPerKm float64 `json:"cost_per_km"`
}

// FinancialDashboard aggregates maintenance and tire spending
type FinancialDashboard struct {
	TotalMaintenance float64     `json:"total_maintenance"`
	TotalTire        float64     `json:"total_tire"`
	TotalCost        float64     `json:"total_cost"`
	TopCostTrucks    []TruckCost `json:"top_cost_trucks"`
}
