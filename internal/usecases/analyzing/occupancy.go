package analyzing

import (
	"context"
	"time"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

const hoursPerDay = 24

func (s *Service) GetOccupancyByHour(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.OccupancyByHour {
	return failSoft(ctx, viewOccupancy, emptyOccupancy, func() ([]domain.OccupancyByHour, error) {
		data, err := s.load(ctx, principal, parkingID, false)
		if err != nil {
			return nil, err
		}
		return computeOccupancyByHour(data, s.now()), nil
	})
}

// computeOccupancyByHour conta vagas distintas ocupadas em cada hora do dia de now
func computeOccupancyByHour(data dataset, now time.Time) []domain.OccupancyByHour {
	totalSpots := 0
	for _, p := range data.parkings {
		totalSpots += p.TotalSpots
	}
	totalSpots = max(1, totalSpots)

	today := make([]domain.Reservation, 0, len(data.reservations))
	for _, r := range data.reservations {
		if !r.Date.IsZero() && utils.EqualDate(r.Date, now) {
			today = append(today, r)
		}
	}

	result := make([]domain.OccupancyByHour, 0, hoursPerDay)
	for hour := 0; hour < hoursPerDay; hour++ {
		spots := make(map[string]struct{})
		for _, r := range today {
			if r.Occupies(hour) {
				spots[r.ParkingSpotID] = struct{}{}
			}
		}

		result = append(result, domain.OccupancyByHour{
			Hour:          hour,
			Percentage:    utils.Percentage(len(spots), totalSpots),
			OccupiedSpots: len(spots),
			TotalSpots:    totalSpots,
		})
	}

	return result
}

// emptyOccupancy mantém as 24 linhas mesmo quando o cálculo falha
func emptyOccupancy() []domain.OccupancyByHour {
	return computeOccupancyByHour(dataset{}, time.Time{})
}
