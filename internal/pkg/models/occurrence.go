package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Occurrence is an incident report filed by a driver against a truck
type Occurrence struct {
	ID                 uuid.UUID      `json:"id" db:"id"`
	Type               string         `json:"type" db:"type"`
	Description        string         `json:"description" db:"description"`
	TruckID            uuid.UUID      `json:"truck_id" db:"truck_id"`
	DriverID           uuid.UUID      `json:"driver_id" db:"driver_id"`
	Location           *string        `json:"location,omitempty" db:"location"`
	Latitude           *float64       `json:"latitude,omitempty" db:"latitude"`
	Longitude          *float64       `json:"longitude,omitempty" db:"longitude"`
	PhotoURLs          pq.StringArray `json:"photo_urls" db:"photo_urls"`
	EstimatedCost      *float64       `json:"estimated_cost,omitempty" db:"estimated_cost"`
	ActualCost         *float64       `json:"actual_cost,omitempty" db:"actual_cost"`
	HasFinancialImpact bool           `json:"has_financial_impact" db:"has_financial_impact"`
	Status             string         `json:"status" db:"status"`
	ResolutionNotes    *string        `json:"resolution_notes,omitempty" db:"resolution_notes"`
	OccurredAt         time.Time      `json:"occurred_at" db:"occurred_at"`
	ResolvedAt         *time.Time     `json:"resolved_at,omitempty" db:"resolved_at"`
	CreatedAt          time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at" db:"updated_at"`

	Truck  *Truck `json:"truck,omitempty" db:"-"`
	Driver *User  `json:"driver,omitempty" db:"-"`
}

// OccurrenceRequest is the payload for reporting an occurrence
type OccurrenceRequest struct {
	Type               string    `json:"type"`
	Description        string    `json:"description"`
	TruckID            uuid.UUID `json:"truck_id"`
	Location           *string   `json:"location"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	PhotoURLs          []string  `json:"photo_urls"`
	EstimatedCost      *float64  `json:"estimated_cost"`
	HasFinancialImpact bool      `json:"has_financial_impact"`
}

// OccurrenceStatusRequest is the payload for triage status updates
type OccurrenceStatusRequest struct {
	Status          string   `json:"status"`
	ResolutionNotes *string  `json:"resolution_notes"`
	ActualCost      *float64 `json:"actual_cost"`
}

// OccurrenceFilter narrows occurrence listings and statistics
type OccurrenceFilter struct {
	TruckID   *uuid.UUID
	DriverID  *uuid.UUID
	Type      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
}

// OccurrenceStatistics is a pure aggregation over a filtered occurrence set
type OccurrenceStatistics struct {
	Total               int            `json:"total"`
	ByType              map[string]int `json:"by_type"`
	ByStatus            map[string]int `json:"by_status"`
	ByArea              map[string]int `json:"by_area"`
	WithFinancialImpact int            `json:"with_financial_impact"`
	TotalEstimatedCost  float64        `json:"total_estimated_cost"`
	TotalActualCost     float64        `json:"total_actual_cost"`
}
