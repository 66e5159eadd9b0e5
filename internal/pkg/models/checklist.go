package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
)

// DailyChecklist is the per-day, per-truck, per-driver inspection record
type DailyChecklist struct {
	ID               uuid.UUID `json:"id" db:"id"`
	TruckID          uuid.UUID `json:"truck_id" db:"truck_id"`
	DriverID         uuid.UUID `json:"driver_id" db:"driver_id"`
	Date             time.Time `json:"date" db:"date"`
	OverallCondition string    `json:"overall_condition" db:"overall_condition"`
	TiresCondition   string    `json:"tires_condition" db:"tires_condition"`
	CabinCondition   string    `json:"cabin_condition" db:"cabin_condition"`
	CanvasCondition  string    `json:"canvas_condition" db:"canvas_condition"`
	CabinPhotoURL    *string   `json:"cabin_photo_url,omitempty" db:"cabin_photo_url"`
	TiresPhotoURL    *string   `json:"tires_photo_url,omitempty" db:"tires_photo_url"`
	CanvasPhotoURL   *string   `json:"canvas_photo_url,omitempty" db:"canvas_photo_url"`
	Notes            string    `json:"notes,omitempty" db:"notes"`
	Location         *string   `json:"location,omitempty" db:"location"`
	Latitude         *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude        *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`

	Truck  *Truck `json:"truck,omitempty" db:"-"`
	Driver *User  `json:"driver,omitempty" db:"-"`
}

// ChecklistRequest is the payload for a daily checklist submission
type ChecklistRequest struct {
	TruckID          uuid.UUID `json:"truck_id"`
	OverallCondition string    `json:"overall_condition"`
	TiresCondition   string    `json:"tires_condition"`
	CabinCondition   string    `json:"cabin_condition"`
	CanvasCondition  string    `json:"canvas_condition"`
	CabinPhotoURL    *string   `json:"cabin_photo_url"`
	TiresPhotoURL    *string   `json:"tires_photo_url"`
	CanvasPhotoURL   *string   `json:"canvas_photo_url"`
	Notes            string    `json:"notes"`
	Location         *string   `json:"location"`
	Latitude         *float64  `json:"latitude"`
	Longitude        *float64  `json:"longitude"`
}

// HasIssues reports whether any inspected area is in a faulty state.
// A true result escalates the checklist to the administrators.
func (r *ChecklistRequest) HasIssues() bool {
	return r.TiresCondition == constants.ConditionBad ||
		r.CabinCondition == constants.ConditionBad ||
		r.CanvasCondition == constants.CanvasTorn ||
		r.OverallCondition == constants.ConditionBad
}

// ChecklistFilter narrows checklist listings
type ChecklistFilter struct {
	TruckID   *uuid.UUID
	DriverID  *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}
