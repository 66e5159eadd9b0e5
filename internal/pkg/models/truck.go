package models

import (
	"time"

	"github.com/google/uuid"
)

// Truck represents a vehicle in the fleet
type Truck struct {
	ID              uuid.UUID  `json:"id" db:"id"`
	Plate           string     `json:"plate" db:"plate"`
	Model           string     `json:"model" db:"model"`
	Brand           string     `json:"brand" db:"brand"`
	Year            int        `json:"year" db:"year"`
	Status          string     `json:"status" db:"status"`
	AcquisitionDate *time.Time `json:"acquisition_date,omitempty" db:"acquisition_date"`
	TotalKm         float64    `json:"total_km" db:"total_km"`
	Notes           string     `json:"notes,omitempty" db:"notes"`
	Active          bool       `json:"active" db:"active"`
	CurrentDriverID *uuid.UUID `json:"current_driver_id,omitempty" db:"current_driver_id"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`

	CurrentDriver *User `json:"current_driver,omitempty" db:"-"`
	Tires         []*Tire `json:"tires,omitempty" db:"-"`
}

// TruckDetail is a truck with its recent activity embedded
type TruckDetail struct {
	Truck
	Checklists  []*DailyChecklist `json:"checklists,omitempty"`
	Occurrences []*Occurrence     `json:"occurrences,omitempty"`
}

// TruckFilter narrows truck listings
type TruckFilter struct {
	Status string
	Active *bool
}

// TruckHistory is an append-only record of driver assignment actions
type TruckHistory struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	TruckID     uuid.UUID  `json:"truck_id" db:"truck_id"`
	DriverID    *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Action      string     `json:"action" db:"action"`
	Description string     `json:"description" db:"description"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// AssignDriverRequest is the payload for admin driver assignment
type AssignDriverRequest struct {
	DriverID *uuid.UUID `json:"driver_id"`
}

// SelectTruckRequest is the payload for a driver claiming a truck
type SelectTruckRequest struct {
	TruckID uuid.UUID `json:"truck_id"`
}
