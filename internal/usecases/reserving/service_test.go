package reserving

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spotfinder/parking-analytics-api/infrastructure/repository"
	"github.com/spotfinder/parking-analytics-api/infrastructure/repository/mocks"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	analyzingmocks "github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing/mocks"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	owner  = domain.Principal{UserID: 7, Email: "owner@spotfinder.com", RoleID: domain.RoleOwner}
	driver = domain.Principal{UserID: 20, Email: "driver@spotfinder.com", RoleID: domain.RoleDriver}
)

type fixture struct {
	service      Reserver
	reservations *mocks.MockReservationRepository
	parkings     *mocks.MockParkingRepository
	spots        *mocks.MockParkingSpotRepository
	invalidator  *analyzingmocks.MockInvalidator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	f := &fixture{
		reservations: mocks.NewMockReservationRepository(ctrl),
		parkings:     mocks.NewMockParkingRepository(ctrl),
		spots:        mocks.NewMockParkingSpotRepository(ctrl),
		invalidator:  analyzingmocks.NewMockInvalidator(ctrl),
	}
	f.service = NewService(f.reservations, f.parkings, f.spots, f.invalidator, time.UTC)

	return f
}

func ptr[T any](v T) *T {
	return &v
}

func storedParking(id, ownerID int64) *domain.ParkingRecord {
	return &domain.ParkingRecord{
		ID:          id,
		OwnerID:     ptr(ownerID),
		Name:        ptr("Central"),
		TotalSpots:  ptr(10),
		RatePerHour: ptr(4.0),
	}
}

func registeredSpot(parkingID int64, id, label string) *domain.ParkingSpot {
	return &domain.ParkingSpot{
		ID:        id,
		ParkingID: parkingID,
		Label:     label,
		Status:    domain.SpotAvailable,
	}
}

func storedReservation(id, parkingID, driverID int64) *domain.ReservationRecord {
	return &domain.ReservationRecord{
		ID:        id,
		ParkingID: ptr(parkingID),
		DriverID:  ptr(driverID),
		StartTime: ptr("09:00:00"),
		EndTime:   ptr("10:30:00"),
		Status:    ptr("PENDING"),
	}
}

func assertReservationError(t *testing.T, err error, code string, base error) {
	t.Helper()

	var reservationErr *ReservationError
	require.ErrorAs(t, err, &reservationErr)
	assert.Equal(t, code, reservationErr.Code)
	assert.True(t, errors.Is(err, base))
}

func TestService_CreateReservation(t *testing.T) {
	ctx := context.Background()
	valid := func() *domain.CreateReservationRequest {
		return &domain.CreateReservationRequest{
			ParkingID:     1,
			ParkingSpotID: "A1",
			SpotLabel:     "A-01",
			DriverName:    "Carla",
			VehiclePlate:  "abc123",
			Date:          "2024-03-15",
			StartTime:     "09:00",
			EndTime:       "10:30",
		}
	}

	t.Run("Data em formato inválido", func(t *testing.T) {
		f := newFixture(t)
		req := valid()
		req.Date = "15/03/2024"

		_, err := f.service.CreateReservation(ctx, driver, req)

		assertReservationError(t, err, apiErrors.ErrInvalidFormat, ErrInvalidSchedule)
	})

	t.Run("Término antes do início", func(t *testing.T) {
		f := newFixture(t)
		req := valid()
		req.EndTime = "08:00"

		_, err := f.service.CreateReservation(ctx, driver, req)

		assertReservationError(t, err, apiErrors.ErrInvalidSchedule, ErrInvalidSchedule)
	})

	t.Run("Parking inexistente", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(nil, nil)

		_, err := f.service.CreateReservation(ctx, driver, valid())

		assertReservationError(t, err, apiErrors.ErrParkingNotFound, ErrParkingNotFound)
	})

	t.Run("Preço calculado pela tarifa e cache do dono invalidado", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), int64(1), "A1").Return(registeredSpot(1, "A1", "A-01"), nil)
		f.reservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
				assert.Equal(t, 6.0, *rec.TotalPrice)
				assert.Equal(t, int64(20), *rec.DriverID)
				assert.Equal(t, "ABC123", *rec.VehiclePlate)
				assert.Equal(t, "09:00", *rec.StartTime)
				assert.Equal(t, "PENDING", *rec.Status)
				rec.ID = 11
				rec.CreatedAt = ptr(time.Date(2024, 3, 14, 8, 0, 0, 0, time.UTC))
				return rec, nil
			})
		f.invalidator.EXPECT().Invalidate(gomock.Any(), domain.Principal{UserID: 7, RoleID: domain.RoleOwner}).Return(nil)

		reservation, err := f.service.CreateReservation(ctx, driver, valid())

		require.NoError(t, err)
		assert.Equal(t, int64(11), reservation.ID)
		assert.True(t, reservation.Occupies(9))
		assert.False(t, reservation.Occupies(10))
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), reservation.Date)
	})

	t.Run("Preço informado prevalece", func(t *testing.T) {
		f := newFixture(t)
		req := valid()
		req.TotalPrice = ptr(2.5)

		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), int64(1), "A1").Return(registeredSpot(1, "A1", "A-01"), nil)
		f.reservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
				assert.Equal(t, 2.5, *rec.TotalPrice)
				return rec, nil
			})
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)

		reservation, err := f.service.CreateReservation(ctx, driver, req)

		require.NoError(t, err)
		assert.Equal(t, 2.5, reservation.TotalPrice)
	})
}

func TestService_CreateReservation_Spot(t *testing.T) {
	ctx := context.Background()
	request := func(spotID, label string) *domain.CreateReservationRequest {
		return &domain.CreateReservationRequest{
			ParkingID:     1,
			ParkingSpotID: spotID,
			SpotLabel:     label,
			Date:          "2024-03-15",
			StartTime:     "09:00",
			EndTime:       "10:00",
		}
	}

	t.Run("Vaga não registrada no parking", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), int64(1), "Z9").Return(nil, nil)

		_, err := f.service.CreateReservation(ctx, driver, request(" Z9 ", ""))

		assertReservationError(t, err, apiErrors.ErrSpotNotFound, ErrSpotNotFound)
	})

	t.Run("Falha ao consultar a vaga", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), int64(1), "A1").Return(nil, errors.New("db down"))

		_, err := f.service.CreateReservation(ctx, driver, request("A1", ""))

		var reservationErr *ReservationError
		require.ErrorAs(t, err, &reservationErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, reservationErr.Code)
	})

	t.Run("Rótulo vem do registro da vaga", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.spots.EXPECT().GetSpot(gomock.Any(), int64(1), "A1").Return(registeredSpot(1, "A1", "B-07"), nil)
		f.reservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
				assert.Equal(t, "A1", *rec.ParkingSpotID)
				assert.Equal(t, "B-07", *rec.SpotLabel)
				return rec, nil
			})
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.CreateReservation(ctx, driver, request("A1", ""))

		require.NoError(t, err)
	})

	t.Run("Sem vaga informada não consulta o registro", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.reservations.EXPECT().CreateReservation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec *domain.ReservationRecord) (*domain.ReservationRecord, error) {
				assert.Nil(t, rec.ParkingSpotID)
				return rec, nil
			})
		f.invalidator.EXPECT().Invalidate(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.service.CreateReservation(ctx, driver, request("", ""))

		require.NoError(t, err)
	})
}

func TestService_ListReservations(t *testing.T) {
	ctx := context.Background()

	t.Run("Parking de outro proprietário", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(2)).Return(storedParking(2, 8), nil)

		_, err := f.service.ListReservations(ctx, owner, 2)

		assertReservationError(t, err, apiErrors.ErrParkingNotOwned, ErrNotAllowed)
	})

	t.Run("Parking do proprietário", func(t *testing.T) {
		f := newFixture(t)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.reservations.EXPECT().ListReservationsByParkingID(gomock.Any(), int64(1)).Return([]*domain.ReservationRecord{
			storedReservation(1, 1, 20),
			nil,
		}, nil)

		reservations, err := f.service.ListReservations(ctx, owner, 1)

		require.NoError(t, err)
		require.Len(t, reservations, 1)
		assert.Equal(t, "09:00", reservations[0].StartTime.String())
	})
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Status desconhecido", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.UpdateStatus(ctx, owner, 1, &domain.UpdateReservationStatusRequest{Status: "ARCHIVED"})

		assertReservationError(t, err, apiErrors.ErrInvalidStatus, ErrInvalidStatus)
	})

	t.Run("Usuário sem relação com a reserva", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(1)).Return(storedReservation(1, 1, 20), nil)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 8), nil)

		_, err := f.service.UpdateStatus(ctx, owner, 1, &domain.UpdateReservationStatusRequest{Status: "paid"})

		assertReservationError(t, err, apiErrors.ErrInsufficientPrivilege, ErrNotAllowed)
	})

	t.Run("Motorista cancela a própria reserva", func(t *testing.T) {
		f := newFixture(t)
		canceled := storedReservation(1, 1, 20)
		canceled.Status = ptr("CANCELLED")

		gomock.InOrder(
			f.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(1)).Return(storedReservation(1, 1, 20), nil),
			f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil),
			f.reservations.EXPECT().UpdateReservationStatus(gomock.Any(), int64(1), "CANCELLED").Return(nil),
			f.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(1)).Return(canceled, nil),
		)
		f.invalidator.EXPECT().Invalidate(gomock.Any(), domain.Principal{UserID: 7, RoleID: domain.RoleOwner}).Return(nil)

		reservation, err := f.service.UpdateStatus(ctx, driver, 1, &domain.UpdateReservationStatusRequest{Status: " cancelled "})

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", reservation.Status)
	})

	t.Run("Reserva removida durante a atualização", func(t *testing.T) {
		f := newFixture(t)
		f.reservations.EXPECT().GetReservationByID(gomock.Any(), int64(1)).Return(storedReservation(1, 1, 20), nil)
		f.parkings.EXPECT().GetParkingByID(gomock.Any(), int64(1)).Return(storedParking(1, 7), nil)
		f.reservations.EXPECT().UpdateReservationStatus(gomock.Any(), int64(1), "PAID").Return(repository.ErrNotFound)

		_, err := f.service.UpdateStatus(ctx, owner, 1, &domain.UpdateReservationStatusRequest{Status: "PAID"})

		assertReservationError(t, err, apiErrors.ErrReservationNotFound, ErrReservationNotFound)
	})
}
