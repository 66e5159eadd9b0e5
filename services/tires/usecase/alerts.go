package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
)

const (
	lifeWarningRatio  = 0.9
	lifeCriticalRatio = 1.0

	problemEventWindow  = 5
	recurrenceThreshold = 3
)

// GetAlerts derives maintenance alerts for every active tire. Alerts are
// computed on demand from the current odometer and the recent event log,
// nothing is persisted.
func (uc *TireUC) GetAlerts(ctx context.Context) ([]*models.TireAlert, error) {
	active, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	alerts := []*models.TireAlert{}
	for _, tire := range active {
		var truck *models.Truck
		if tire.TruckID != uuid.Nil {
			truck, _ = uc.repo.GetTruck(ctx, tire.TruckID)
		}

		if alert := lifeExpectancyAlert(tire); alert != nil {
			alert.Truck = truck
			alerts = append(alerts, alert)
		}

		recent, err := uc.repo.ListRecentProblemEvents(ctx, tire.ID, problemEventWindow)
		if err != nil {
			return nil, err
		}
		if alert := recurrenceAlert(tire, recent); alert != nil {
			alert.Truck = truck
			alerts = append(alerts, alert)
		}
	}

	return alerts, nil
}

// GetStatistics aggregates fleet-wide tire numbers
func (uc *TireUC) GetStatistics(ctx context.Context) (*models.TireStatistics, error) {
	return uc.repo.Statistics(ctx)
}

func lifeExpectancyAlert(tire *models.Tire) *models.TireAlert {
	if tire.LifeExpectancyKm <= 0 {
		return nil
	}

	kmUsed := tire.CurrentKm - tire.InitialKm
	ratio := kmUsed / tire.LifeExpectancyKm
	if ratio < lifeWarningRatio {
		return nil
	}

	severity := constants.SeverityWarning
	if ratio >= lifeCriticalRatio {
		severity = constants.SeverityCritical
	}

	return &models.TireAlert{
		TireID:   tire.ID,
		TireCode: tire.Code,
		Type:     constants.AlertLifeExpectancy,
		Severity: severity,
		Message: fmt.Sprintf("Tire %s has used %.0f of %.0f expected km",
			tire.Code, kmUsed, tire.LifeExpectancyKm),
	}
}

func recurrenceAlert(tire *models.Tire, recent []*models.TireEvent) *models.TireAlert {
	if len(recent) < recurrenceThreshold {
		return nil
	}

	return &models.TireAlert{
		TireID:   tire.ID,
		TireCode: tire.Code,
		Type:     constants.AlertRecurrence,
		Severity: constants.SeverityWarning,
		Message: fmt.Sprintf("Tire %s had %d problem events recently",
			tire.Code, len(recent)),
	}
}
