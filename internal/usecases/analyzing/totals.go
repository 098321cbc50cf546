package analyzing

import (
	"context"
	"math"
	"time"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/utils"
)

func (s *Service) GetTotals(ctx context.Context, principal domain.Principal, parkingID *int64) domain.TotalsKpi {
	return failSoft(ctx, viewTotals, domain.EmptyTotalsKpi, func() (domain.TotalsKpi, error) {
		data, err := s.load(ctx, principal, parkingID, false)
		if err != nil {
			return domain.TotalsKpi{}, err
		}
		return s.computeTotals(data, s.now())
	})
}

// computeTotals usa a janela [now-1 mês, now] contra [now-2 meses, now-1 mês)
func (s *Service) computeTotals(data dataset, now time.Time) (domain.TotalsKpi, error) {
	if len(data.parkings) == 0 {
		return domain.EmptyTotalsKpi(), nil
	}

	from := utils.AddMonths(now, -1)
	previousFrom := utils.AddMonths(from, -1)

	revenue, err := s.revenueKpi(data.reservations, from, previousFrom)
	if err != nil {
		return domain.TotalsKpi{}, err
	}

	return domain.TotalsKpi{
		TotalRevenue:       revenue,
		OccupiedSpaces:     s.occupancyKpi(data.parkings),
		ActiveUsers:        s.usersKpi(data.reservations, from),
		RegisteredParkings: s.parkingsKpi(data.parkings, utils.StartOfMonth(now)),
	}, nil
}

func (s *Service) revenueKpi(reservations []domain.Reservation, from, previousFrom time.Time) (domain.RevenueKpi, error) {
	var current, previous float64
	for _, r := range reservations {
		if !r.HasCreatedAt() {
			continue
		}

		switch {
		case !r.CreatedAt.Before(from):
			current += r.TotalPrice
		case !r.CreatedAt.Before(previousFrom):
			previous += r.TotalPrice
		}
	}

	if !isFinite(current) || !isFinite(previous) {
		return domain.RevenueKpi{}, ErrNonFinite
	}

	delta := 100.0
	if previous != 0 {
		delta = (current - previous) / previous * 100
	}

	return domain.RevenueKpi{
		Value:           utils.RoundWithTwoDecimalPlace(current),
		Currency:        domain.ReportingCurrency,
		DeltaPercentage: utils.RoundWithOneDecimalPlace(delta),
		DeltaText:       s.texts.revenueDelta(delta),
		Text:            s.texts.revenueValue(current),
	}, nil
}

func (s *Service) occupancyKpi(parkings []domain.Parking) domain.OccupancyKpi {
	total, available := 0, 0
	for _, p := range parkings {
		total += p.TotalSpots
		available += p.AvailableSpots
	}

	occupied := max(0, total-available)
	percentage := utils.Percentage(occupied, total)

	return domain.OccupancyKpi{
		Occupied:   occupied,
		Total:      total,
		Percentage: percentage,
		Text:       s.texts.occupiedSpaces(occupied),
		DeltaText:  s.texts.occupancyPercentage(percentage),
	}
}

// usersKpi considera novo o motorista cuja primeira reserva caiu na janela atual
func (s *Service) usersKpi(reservations []domain.Reservation, from time.Time) domain.UsersKpi {
	firstReservation := make(map[int64]time.Time)
	for _, r := range reservations {
		if !r.HasDriver() || !r.HasCreatedAt() {
			continue
		}

		if first, ok := firstReservation[r.DriverID]; !ok || r.CreatedAt.Before(first) {
			firstReservation[r.DriverID] = r.CreatedAt
		}
	}

	total := len(firstReservation)
	newUsers := 0
	for _, first := range firstReservation {
		if !first.Before(from) {
			newUsers++
		}
	}

	delta := 0.0
	if total > 0 {
		delta = float64(newUsers) * 100 / float64(total)
	}

	return domain.UsersKpi{
		Total:           total,
		DeltaPercentage: utils.RoundWithOneDecimalPlace(delta),
		Text:            s.texts.activeUsers(total),
		NewUsers:        newUsers,
	}
}

func (s *Service) parkingsKpi(parkings []domain.Parking, startOfMonth time.Time) domain.ParkingsKpi {
	total := len(parkings)
	newThisMonth := 0
	for _, p := range parkings {
		if p.HasCreatedAt() && !p.CreatedAt.Before(startOfMonth) {
			newThisMonth++
		}
	}

	delta := 0.0
	if total > 0 {
		delta = math.Min(100, float64(newThisMonth)*100/float64(total))
	}

	return domain.ParkingsKpi{
		Total:           total,
		NewCount:        newThisMonth,
		Text:            s.texts.registeredParkings(total),
		DeltaPercentage: utils.RoundWithOneDecimalPlace(delta),
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
