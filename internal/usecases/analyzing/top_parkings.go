package analyzing

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

const (
	topParkingsLimit      = 5
	topParkingsWindowDays = 30
)

// GetTopParkings sempre usa os parkings do próprio proprietário, inclusive para administradores
func (s *Service) GetTopParkings(ctx context.Context, principal domain.Principal) []domain.TopParking {
	return failSoft(ctx, viewTopParkings, emptySlice[domain.TopParking], func() ([]domain.TopParking, error) {
		data, err := s.load(ctx, principal, nil, true)
		if err != nil {
			return nil, err
		}
		return computeTopParkings(data, s.now())
	})
}

func computeTopParkings(data dataset, now time.Time) ([]domain.TopParking, error) {
	if len(data.parkings) == 0 {
		return []domain.TopParking{}, nil
	}

	since := now.AddDate(0, 0, -topParkingsWindowDays)
	revenueByParking := make(map[int64]float64)
	for _, r := range data.reservations {
		if r.HasCreatedAt() && !r.CreatedAt.Before(since) {
			revenueByParking[r.ParkingID] += r.TotalPrice
		}
	}

	ranking := make([]domain.TopParking, 0, len(data.parkings))
	for _, p := range data.parkings {
		revenue := revenueByParking[p.ID]
		if !isFinite(revenue) {
			return nil, ErrNonFinite
		}

		ranking = append(ranking, domain.TopParking{
			ID:                  strconv.FormatInt(p.ID, 10),
			Name:                p.Name,
			OccupancyPercentage: utils.Percentage(p.TotalSpots-p.AvailableSpots, p.TotalSpots),
			Rating:              utils.RoundWithOneDecimalPlace(p.AverageRating()),
			MonthlyRevenue:      utils.RoundWithTwoDecimalPlace(revenue),
			Currency:            domain.ReportingCurrency,
			Address:             p.Address,
			Status:              domain.NormalizeParkingStatus(p.Status),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].MonthlyRevenue > ranking[j].MonthlyRevenue
	})

	return ranking[:min(topParkingsLimit, len(ranking))], nil
}
