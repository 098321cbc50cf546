package analyzing

import (
	"context"
	"sort"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

func (s *Service) GetRevenueByMonth(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.RevenueByMonth {
	return failSoft(ctx, viewRevenue, emptySlice[domain.RevenueByMonth], func() ([]domain.RevenueByMonth, error) {
		data, err := s.load(ctx, principal, parkingID, false)
		if err != nil {
			return nil, err
		}
		return s.computeRevenueByMonth(data.reservations)
	})
}

func (s *Service) computeRevenueByMonth(reservations []domain.Reservation) ([]domain.RevenueByMonth, error) {
	revenueByMonth := make(map[string]float64)
	for _, r := range reservations {
		if !r.HasCreatedAt() {
			continue
		}
		revenueByMonth[utils.MonthLabel(r.CreatedAt, s.location)] += r.TotalPrice
	}

	months := make([]string, 0, len(revenueByMonth))
	for month, revenue := range revenueByMonth {
		if !isFinite(revenue) {
			return nil, ErrNonFinite
		}
		months = append(months, month)
	}
	sort.Strings(months)

	result := make([]domain.RevenueByMonth, 0, len(months))
	for _, month := range months {
		result = append(result, domain.RevenueByMonth{
			Month:    month,
			Revenue:  utils.RoundWithTwoDecimalPlace(revenueByMonth[month]),
			Currency: domain.ReportingCurrency,
		})
	}

	return result, nil
}

func emptySlice[T any]() []T {
	return []T{}
}
