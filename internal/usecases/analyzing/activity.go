package analyzing

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
)

const (
	activityPerSource = 5
	activityLimit     = 10
)

func (s *Service) GetActivity(ctx context.Context, principal domain.Principal, parkingID *int64) []domain.ActivityItem {
	return failSoft(ctx, viewActivity, emptySlice[domain.ActivityItem], func() ([]domain.ActivityItem, error) {
		data, err := s.load(ctx, principal, parkingID, false)
		if err != nil {
			return nil, err
		}
		return computeActivity(data, s.clock.Now()), nil
	})
}

// computeActivity mescla os parkings e reservas mais recentes. Registros sem data
// ficam no fim da ordenação e são exibidos com o instante now.
func computeActivity(data dataset, now time.Time) []domain.ActivityItem {
	parkings := make([]domain.Parking, len(data.parkings))
	copy(parkings, data.parkings)
	sort.SliceStable(parkings, func(i, j int) bool {
		return newerFirst(parkings[i].CreatedAt, parkings[j].CreatedAt)
	})

	reservations := make([]domain.Reservation, len(data.reservations))
	copy(reservations, data.reservations)
	sort.SliceStable(reservations, func(i, j int) bool {
		return newerFirst(reservations[i].CreatedAt, reservations[j].CreatedAt)
	})

	items := make([]domain.ActivityItem, 0, 2*activityPerSource)
	for _, p := range parkings[:min(activityPerSource, len(parkings))] {
		items = append(items, parkingActivity(p, now))
	}
	for _, r := range reservations[:min(activityPerSource, len(reservations))] {
		items = append(items, reservationActivity(r, now))
	}

	sort.SliceStable(items, func(i, j int) bool {
		return newerFirst(items[i].OccurredAt, items[j].OccurredAt)
	})

	return items[:min(activityLimit, len(items))]
}

// newerFirst ordena de forma decrescente com instantes zero por último
func newerFirst(a, b time.Time) bool {
	if a.IsZero() {
		return false
	}
	if b.IsZero() {
		return true
	}
	return a.After(b)
}

func parkingActivity(p domain.Parking, now time.Time) domain.ActivityItem {
	id := strconv.FormatInt(p.ID, 10)
	return domain.ActivityItem{
		ID:          id,
		Type:        domain.ActivityParkingCreated,
		Title:       "Parking registrado",
		Description: p.Name + " agregado",
		ActorName:   "Sistema",
		Status:      "created",
		CreatedAt:   formatInstant(p.CreatedAt, now),
		RelatedEntity: domain.RelatedEntity{
			ID:   id,
			Name: p.Name,
			Kind: "parking",
		},
		OccurredAt: p.CreatedAt,
	}
}

func reservationActivity(r domain.Reservation, now time.Time) domain.ActivityItem {
	label := valueOr(r.SpotLabel, "Reserva")
	return domain.ActivityItem{
		ID:          strconv.FormatInt(r.ID, 10),
		Type:        domain.ActivityReservationConfirmed,
		Title:       "Reserva registrada",
		Description: label,
		ActorName:   valueOr(r.DriverName, "Usuario"),
		Status:      "confirmed",
		CreatedAt:   formatInstant(r.CreatedAt, now),
		RelatedEntity: domain.RelatedEntity{
			ID:   strconv.FormatInt(r.ParkingID, 10),
			Name: label,
			Kind: "reservation",
		},
		OccurredAt: r.CreatedAt,
	}
}

func formatInstant(t, now time.Time) string {
	if t.IsZero() {
		t = now
	}
	return t.UTC().Format(time.RFC3339)
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
