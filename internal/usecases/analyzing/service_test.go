package analyzing

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/metrics"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing/mocks"
	"github.com/spotfinder/parking-analytics-api/pkg/clock"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// refNow é o instante de referência de todos os testes: 15 de março de 2024, meio-dia UTC
var refNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)

var (
	ownerPrincipal = domain.Principal{UserID: 7, Email: "owner@spotfinder.com", RoleID: domain.RoleOwner}
	adminPrincipal = domain.Principal{UserID: 1, Email: "admin@spotfinder.com", RoleID: domain.RoleAdmin}
)

type fixture struct {
	parkings     *mocks.MockParkingProvider
	reservations *mocks.MockReservationProvider
	owners       *mocks.MockOwnerResolver
	service      *Service
}

func newFixture(t *testing.T, opts ...Option) *fixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	f := &fixture{
		parkings:     mocks.NewMockParkingProvider(ctrl),
		reservations: mocks.NewMockReservationProvider(ctrl),
		owners:       mocks.NewMockOwnerResolver(ctrl),
	}

	defaults := []Option{WithClock(clock.NewMockClock(refNow)), WithLocale("en")}
	f.service = newService(f.parkings, f.reservations, f.owners, append(defaults, opts...)...)

	return f
}

// ownedBy faz o principal resolver para ownerID e o provedor devolver os parkings desse dono
func (f *fixture) ownedBy(principal domain.Principal, ownerID int64, parkings ...*domain.ParkingRecord) {
	f.owners.EXPECT().ResolveOwnerID(gomock.Any(), principal).Return(ownerID, nil).AnyTimes()
	f.parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeOwner(ownerID)).Return(parkings, nil).AnyTimes()
}

func (f *fixture) withReservations(records ...*domain.ReservationRecord) {
	f.reservations.EXPECT().ListAllReservations(gomock.Any()).Return(records, nil).AnyTimes()
}

func ptr[T any](v T) *T {
	return &v
}

func parkingRecord(id, ownerID int64, total, available int, createdAt time.Time) *domain.ParkingRecord {
	rec := &domain.ParkingRecord{
		ID:             id,
		OwnerID:        ptr(ownerID),
		Name:           ptr("Parking " + string(rune('A'+id-1))),
		Address:        ptr("Av. Central 100"),
		Status:         ptr("activo"),
		TotalSpots:     ptr(total),
		AvailableSpots: ptr(available),
		RatePerHour:    ptr(5.0),
	}
	if !createdAt.IsZero() {
		rec.CreatedAt = ptr(createdAt)
	}
	return rec
}

func reservationRecord(id, parkingID, driverID int64, price float64, createdAt time.Time) *domain.ReservationRecord {
	rec := &domain.ReservationRecord{
		ID:            id,
		ParkingID:     ptr(parkingID),
		ParkingSpotID: ptr("spot-1"),
		TotalPrice:    ptr(price),
		Status:        ptr("CONFIRMED"),
	}
	if driverID > 0 {
		rec.DriverID = ptr(driverID)
	}
	if !createdAt.IsZero() {
		rec.CreatedAt = ptr(createdAt)
	}
	return rec
}

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 10, 0, 0, 0, time.UTC)
}

func TestService_GetTotals(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		setup    func(f *fixture)
		validate func(t *testing.T, result domain.TotalsKpi)
	}{
		{
			name: "Escopo sem parkings - deve retornar o KPI vazio canônico",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7)
				f.withReservations(reservationRecord(1, 1, 1, 30, day(time.March, 1)))
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, domain.EmptyTotalsKpi(), result)
			},
		},
		{
			name: "Janela de um mês - deve calcular os quatro KPIs",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7,
					parkingRecord(1, 7, 10, 4, day(time.March, 2)),
					parkingRecord(3, 7, 5, 5, time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)),
				)
				f.withReservations(
					reservationRecord(1, 1, 1, 30, day(time.March, 1)),
					reservationRecord(2, 1, 2, 20, day(time.March, 10)),
					reservationRecord(3, 1, 1, 40, day(time.February, 1)),
					reservationRecord(4, 3, 3, 100, time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)),
					// parking de outro proprietário
					reservationRecord(5, 2, 4, 1000, day(time.March, 5)),
				)
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, 50.0, result.TotalRevenue.Value)
				assert.Equal(t, "USD", result.TotalRevenue.Currency)
				assert.Equal(t, 25.0, result.TotalRevenue.DeltaPercentage)
				assert.Equal(t, "$50.00 este mes", result.TotalRevenue.Text)
				assert.Contains(t, result.TotalRevenue.DeltaText, "25.0%")

				assert.Equal(t, 6, result.OccupiedSpaces.Occupied)
				assert.Equal(t, 15, result.OccupiedSpaces.Total)
				assert.Equal(t, 40, result.OccupiedSpaces.Percentage)
				assert.Equal(t, "6 lugares ocupados", result.OccupiedSpaces.Text)
				assert.Equal(t, "40% de ocupación", result.OccupiedSpaces.DeltaText)

				assert.Equal(t, 3, result.ActiveUsers.Total)
				assert.Equal(t, 1, result.ActiveUsers.NewUsers)
				assert.Equal(t, 33.3, result.ActiveUsers.DeltaPercentage)
				assert.Equal(t, "3 usuarios activos", result.ActiveUsers.Text)

				assert.Equal(t, 2, result.RegisteredParkings.Total)
				assert.Equal(t, 1, result.RegisteredParkings.NewCount)
				assert.Equal(t, 50.0, result.RegisteredParkings.DeltaPercentage)
				assert.Equal(t, "2 parkings registrados", result.RegisteredParkings.Text)
			},
		},
		{
			name: "Período anterior sem receita - delta deve ser 100",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7, parkingRecord(1, 7, 10, 4, day(time.January, 2)))
				f.withReservations(reservationRecord(1, 1, 1, 50, day(time.March, 1)))
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, 50.0, result.TotalRevenue.Value)
				assert.Equal(t, 100.0, result.TotalRevenue.DeltaPercentage)
				assert.Equal(t, 60, result.OccupiedSpaces.Percentage)
				assert.Equal(t, "1 parking registrado", result.RegisteredParkings.Text)
				assert.Equal(t, 0.0, result.RegisteredParkings.DeltaPercentage)
			},
		},
		{
			name: "Vagas disponíveis acima do total - ocupação não fica negativa",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7, parkingRecord(1, 7, 5, 8, day(time.January, 2)))
				f.withReservations()
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, 0, result.OccupiedSpaces.Occupied)
				assert.Equal(t, 0, result.OccupiedSpaces.Percentage)
			},
		},
		{
			name: "Vagas disponíveis negativas - percentual limitado a 100",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7, parkingRecord(1, 7, 10, -5, day(time.January, 2)))
				f.withReservations()
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, 15, result.OccupiedSpaces.Occupied)
				assert.Equal(t, 100, result.OccupiedSpaces.Percentage)
			},
		},
		{
			name: "Falha ao listar reservas - usa lista vazia e mantém os parkings",
			setup: func(f *fixture) {
				f.ownedBy(ownerPrincipal, 7, parkingRecord(1, 7, 10, 4, day(time.January, 2)))
				f.reservations.EXPECT().ListAllReservations(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, 0.0, result.TotalRevenue.Value)
				assert.Equal(t, 6, result.OccupiedSpaces.Occupied)
				assert.Equal(t, 0, result.ActiveUsers.Total)
			},
		},
		{
			name: "Falha ao resolver proprietário - deve retornar o KPI vazio",
			setup: func(f *fixture) {
				f.owners.EXPECT().ResolveOwnerID(gomock.Any(), ownerPrincipal).Return(int64(0), errors.New("usuário não encontrado"))
				f.withReservations()
			},
			validate: func(t *testing.T, result domain.TotalsKpi) {
				assert.Equal(t, domain.EmptyTotalsKpi(), result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result := f.service.GetTotals(ctx, ownerPrincipal, nil)

			tt.validate(t, result)
		})
	}
}

func TestService_GetTotals_AdminSeesAllParkings(t *testing.T) {
	f := newFixture(t)

	f.parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeAll()).Return([]*domain.ParkingRecord{
		parkingRecord(1, 7, 10, 5, day(time.January, 2)),
		parkingRecord(2, 8, 10, 5, day(time.January, 2)),
	}, nil)
	f.withReservations()

	result := f.service.GetTotals(context.Background(), adminPrincipal, nil)

	assert.Equal(t, 2, result.RegisteredParkings.Total)
	assert.Equal(t, 10, result.OccupiedSpaces.Occupied)
}

func TestService_GetTotals_ParkingOfAnotherOwner(t *testing.T) {
	f := newFixture(t)
	parkingID := int64(2)

	// o provedor filtra por dono, então o parking 2 não volta para o proprietário 7
	f.owners.EXPECT().ResolveOwnerID(gomock.Any(), ownerPrincipal).Return(int64(7), nil)
	f.parkings.EXPECT().ListParkings(gomock.Any(), domain.ScopeParking(ptr(int64(7)), parkingID)).Return(nil, nil)
	f.withReservations(reservationRecord(1, 2, 1, 500, day(time.March, 1)))

	result := f.service.GetTotals(context.Background(), ownerPrincipal, &parkingID)

	assert.Equal(t, domain.EmptyTotalsKpi(), result)
}

func TestService_GetTotals_PanicBecomesEmptyResult(t *testing.T) {
	f := newFixture(t)
	before := testutil.ToFloat64(metrics.FailSoftTotal.WithLabelValues(viewTotals))

	f.owners.EXPECT().ResolveOwnerID(gomock.Any(), ownerPrincipal).Return(int64(7), nil)
	f.parkings.EXPECT().ListParkings(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, domain.ParkingScope) ([]*domain.ParkingRecord, error) {
			panic("conexão corrompida")
		})
	f.withReservations()

	result := f.service.GetTotals(context.Background(), ownerPrincipal, nil)

	assert.Equal(t, domain.EmptyTotalsKpi(), result)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.FailSoftTotal.WithLabelValues(viewTotals)))
}

func TestService_computeTotals_NonFiniteRevenue(t *testing.T) {
	f := newFixture(t)

	data := dataset{
		parkings: []domain.Parking{{ID: 1, TotalSpots: 10}},
		reservations: []domain.Reservation{
			{ID: 1, ParkingID: 1, TotalPrice: math.Inf(1), CreatedAt: day(time.March, 1)},
		},
	}

	_, err := f.service.computeTotals(data, refNow)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNonFinite))
}

func TestAggregationError(t *testing.T) {
	err := &AggregationError{View: viewRevenue, Err: ErrNonFinite}

	assert.Equal(t, "analytics revenue: valor não finito no cálculo", err.Error())
	assert.True(t, errors.Is(err, ErrNonFinite))
	assert.Equal(t, ErrNonFinite, errors.Cause(err))
}
