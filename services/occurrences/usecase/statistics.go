package usecase

import (
	"context"

	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// geohash cells of ~5km are a useful grouping for incident hot spots
const areaPrecision = 5

// GetStatistics aggregates the filtered occurrence set. Missing costs count
// as zero; occurrences without coordinates are left out of the area buckets.
func (uc *OccurrenceUC) GetStatistics(ctx context.Context, filter *models.OccurrenceFilter) (*models.OccurrenceStatistics, error) {
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	stats := &models.OccurrenceStatistics{
		Total:    len(list),
		ByType:   map[string]int{},
		ByStatus: map[string]int{},
		ByArea:   map[string]int{},
	}

	for _, occurrence := range list {
		stats.ByType[occurrence.Type]++
		stats.ByStatus[occurrence.Status]++

		if occurrence.Latitude != nil && occurrence.Longitude != nil {
			cell := geohash.EncodeWithPrecision(*occurrence.Latitude, *occurrence.Longitude, areaPrecision)
			stats.ByArea[cell]++
		}

		if occurrence.HasFinancialImpact {
			stats.WithFinancialImpact++
		}
		if occurrence.EstimatedCost != nil {
			stats.TotalEstimatedCost += *occurrence.EstimatedCost
		}
		if occurrence.ActualCost != nil {
			stats.TotalActualCost += *occurrence.ActualCost
		}
	}

	return stats, nil
}
