package models

import (
	"time"

	"github.com/google/uuid"
)

// Tire represents a mounted or stocked tire
type Tire struct {
	ID               uuid.UUID `json:"id" db:"id"`
	Code             string    `json:"code" db:"code"`
	Brand            string    `json:"brand" db:"brand"`
	Model            string    `json:"model" db:"model"`
	Position         string    `json:"position" db:"position"`
	TruckID          uuid.UUID `json:"truck_id" db:"truck_id"`
	Cost             float64   `json:"cost" db:"cost"`
	InitialKm        float64   `json:"initial_km" db:"initial_km"`
	CurrentKm        float64   `json:"current_km" db:"current_km"`
	LifeExpectancyKm float64   `json:"life_expectancy_km" db:"life_expectancy_km"`
	Status           string    `json:"status" db:"status"`
	Active           bool      `json:"active" db:"active"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`

	Truck  *Truck       `json:"truck,omitempty" db:"-"`
	Events []*TireEvent `json:"events,omitempty" db:"-"`
}

// TireEvent is an append-only audit entry for a tire. Event rows are never
// mutated or deleted after creation.
type TireEvent struct {
	ID          uuid.UUID `json:"id" db:"id"`
	TireID      uuid.UUID `json:"tire_id" db:"tire_id"`
	EventType   string    `json:"event_type" db:"event_type"`
	Description string    `json:"description" db:"description"`
	KmAtEvent   float64   `json:"km_at_event" db:"km_at_event"`
	Cost        *float64  `json:"cost,omitempty" db:"cost"`
	PhotoURL    *string   `json:"photo_url,omitempty" db:"photo_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// TireEventRequest is the payload for registering a tire event
type TireEventRequest struct {
	EventType   string   `json:"event_type"`
	Description string   `json:"description"`
	KmAtEvent   float64  `json:"km_at_event"`
	Cost        *float64 `json:"cost"`
	PhotoURL    *string  `json:"photo_url"`
}

// TireFilter narrows tire listings
type TireFilter struct {
	TruckID *uuid.UUID
	Status  string
	Active  *bool
}

// TireUsage carries derived usage numbers for a single tire
type TireUsage struct {
	KmUsed     float64 `json:"km_used"`
	CostPerKm  float64 `json:"cost_per_km"`
	EventCount int     `json:"event_count"`
}

// TireDetail is a tire with its full event history and usage statistics
type TireDetail struct {
	Tire
	Statistics TireUsage `json:"statistics"`
}

// TireAlert is a derived maintenance alert, computed on demand and never persisted
type TireAlert struct {
	TireID   uuid.UUID `json:"tire_id"`
	TireCode string    `json:"tire_code"`
	Truck    *Truck    `json:"truck,omitempty"`
	Type     string    `json:"type"`
	Severity string    `json:"severity"`
	Message  string    `json:"message"`
}

// TireStatistics aggregates fleet-wide tire numbers
type TireStatistics struct {
	TotalTires    int            `json:"total_tires"`
	TotalCost     float64        `json:"total_cost"`
	TotalEvents   int            `json:"total_events"`
	AverageLifeKm float64        `json:"average_life_km"`
	CostPerKm     float64        `json:"cost_per_km"`
	EventsByType  map[string]int `json:"events_by_type"`
}
