package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/gstransportes/frota/services/tires"
)

// TireUC implements the tire lifecycle usecase
type TireUC struct {
	repo tires.TireRepo
}

// NewTireUC creates a new tire usecase
func NewTireUC(repo tires.TireRepo) *TireUC {
	return &TireUC{repo: repo}
}

// Create registers a new tire and appends its INSTALL event at the initial
// odometer reading. A duplicate code surfaces as a Conflict.
func (uc *TireUC) Create(ctx context.Context, tire *models.Tire) (*models.Tire, error) {
	tire.Code = strings.ToUpper(strings.TrimSpace(tire.Code))

	if tire.Code == "" || tire.Position == "" {
		return nil, apperr.Validation("code and position are required")
	}
	if tire.LifeExpectancyKm <= 0 {
		return nil, apperr.Validation("life expectancy must be positive")
	}
	if tire.InitialKm < 0 {
		return nil, apperr.Validation("initial km cannot be negative")
	}

	if _, err := uc.repo.GetTruck(ctx, tire.TruckID); err != nil {
		return nil, err
	}

	now := time.Now()
	tire.ID = uuid.New()
	tire.CurrentKm = tire.InitialKm
	if tire.Status == "" {
		tire.Status = constants.TireNew
	}
	tire.Active = true
	tire.CreatedAt = now
	tire.UpdatedAt = now

	event := &models.TireEvent{
		ID:          uuid.New(),
		TireID:      tire.ID,
		EventType:   constants.TireEventInstall,
		Description: "Tire installed",
		KmAtEvent:   tire.InitialKm,
		CreatedAt:   now,
	}

	if err := uc.repo.CreateWithEvent(ctx, tire, event); err != nil {
		return nil, err
	}

	return tire, nil
}

// List returns tires matching the filter
func (uc *TireUC) List(ctx context.Context, filter *models.TireFilter) ([]*models.Tire, error) {
	return uc.repo.List(ctx, filter)
}

// GetByID returns a tire with its full event history and usage statistics
func (uc *TireUC) GetByID(ctx context.Context, id uuid.UUID) (*models.TireDetail, error) {
	tire, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := uc.repo.ListEvents(ctx, id)
	if err != nil {
		return nil, err
	}
	tire.Events = events

	detail := &models.TireDetail{
		Tire:       *tire,
		Statistics: usage(tire, len(events)),
	}

	return detail, nil
}

// Update persists an admin correction to a tire
func (uc *TireUC) Update(ctx context.Context, tire *models.Tire) (*models.Tire, error) {
	current, err := uc.repo.GetByID(ctx, tire.ID)
	if err != nil {
		return nil, err
	}

	if tire.Brand != "" {
		current.Brand = tire.Brand
	}
	if tire.Model != "" {
		current.Model = tire.Model
	}
	if tire.Position != "" {
		current.Position = tire.Position
	}
	if tire.LifeExpectancyKm > 0 {
		current.LifeExpectancyKm = tire.LifeExpectancyKm
	}
	if tire.Notes != "" {
		current.Notes = tire.Notes
	}
	if tire.Status != "" {
		if !validTireStatus(tire.Status) {
			return nil, apperr.Validation("invalid tire status")
		}
		current.Status = tire.Status
	}

	current.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, current); err != nil {
		return nil, err
	}

	return current, nil
}

// Deactivate discards a tire
func (uc *TireUC) Deactivate(ctx context.Context, id uuid.UUID) error {
	tire, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	tire.Status = constants.TireDiscarded
	tire.Active = false
	tire.UpdatedAt = time.Now()

	return uc.repo.Update(ctx, tire)
}

// RegisterEvent appends an immutable event to the tire's log, advances the
// odometer to kmAtEvent and applies the status transition: BLOWOUT and
// REPLACED retire the tire, RETREAD marks it retreaded, everything else
// leaves the status alone. kmAtEvent is taken as reported, readings that run
// backwards are accepted.
func (uc *TireUC) RegisterEvent(ctx context.Context, tireID uuid.UUID, req *models.TireEventRequest) (*models.TireEvent, error) {
	if !validTireEvent(req.EventType) {
		return nil, apperr.Validation("invalid event type")
	}
	if req.KmAtEvent < 0 {
		return nil, apperr.Validation("km cannot be negative")
	}

	tire, err := uc.repo.GetByID(ctx, tireID)
	if err != nil {
		return nil, err
	}

	event := &models.TireEvent{
		ID:          uuid.New(),
		TireID:      tireID,
		EventType:   req.EventType,
		Description: req.Description,
		KmAtEvent:   req.KmAtEvent,
		Cost:        req.Cost,
		PhotoURL:    req.PhotoURL,
		CreatedAt:   time.Now(),
	}

	tire.CurrentKm = req.KmAtEvent
	switch req.EventType {
	case constants.TireEventBlowout, constants.TireEventReplaced:
		tire.Status = constants.TireReplaced
		tire.Active = false
	case constants.TireEventRetread:
		tire.Status = constants.TireRetreaded
	}
	tire.UpdatedAt = event.CreatedAt

	if err := uc.repo.AppendEvent(ctx, event, tire); err != nil {
		return nil, err
	}

	return event, nil
}

func usage(tire *models.Tire, eventCount int) models.TireUsage {
	u := models.TireUsage{
		KmUsed:     tire.CurrentKm - tire.InitialKm,
		EventCount: eventCount,
	}
	if u.KmUsed > 0 {
		u.CostPerKm = tire.Cost / u.KmUsed
	}
	return u
}

func validTireStatus(status string) bool {
	switch status {
	case constants.TireNew, constants.TireGood, constants.TireWorn,
		constants.TireRetreaded, constants.TireReplaced, constants.TireDiscarded:
		return true
	}
	return false
}

func validTireEvent(eventType string) bool {
	switch eventType {
	case constants.TireEventInstall, constants.TireEventRemove,
		constants.TireEventBlowout, constants.TireEventReplaced,
		constants.TireEventRetread, constants.TireEventMaintenance,
		constants.TireEventWear:
		return true
	}
	return false
}
