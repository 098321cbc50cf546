package handler

import (
	"net/http"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	managingmocks "github.com/spotfinder/parking-analytics-api/internal/usecases/managing/mocks"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	reservingmocks "github.com/spotfinder/parking-analytics-api/internal/usecases/reserving/mocks"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParkingHandlers(t *testing.T) {
	owner := ownerClaims.Principal()

	t.Run("Cria parking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().CreateParking(gomock.Any(), owner, &domain.CreateParkingRequest{
			Name:        "Central",
			TotalSpots:  10,
			RatePerHour: 4,
		}).Return(&domain.Parking{ID: 1, OwnerID: 7, Name: "Central", TotalSpots: 10}, nil)

		body := `{"name":"Central","totalSpots":10,"ratePerHour":4}`
		rec := serve(CreateParking(service), newRequest(http.MethodPost, "/v1/parkings", body, ownerClaims))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "Central", decode[domain.Parking](t, rec).Name)
	})

	t.Run("Corpo inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)

		rec := serve(CreateParking(service), newRequest(http.MethodPost, "/v1/parkings", "{", ownerClaims))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))
	})

	t.Run("Atualização de parking de outro proprietário", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().UpdateParking(gomock.Any(), owner, int64(2), gomock.Any()).
			Return(nil, managing.NewParkingError(managing.ErrParkingNotOwned, apiErrors.ErrParkingNotOwned, ""))

		req := newRequest(http.MethodPatch, "/v1/parkings/2", `{"status":"maintenance"}`, ownerClaims,
			httprouter.Param{Key: "id", Value: "2"})
		rec := serve(UpdateParking(service), req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, apiErrors.ErrParkingNotOwned, errorCode(t, rec))
	})

	t.Run("ID de parking inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)

		req := newRequest(http.MethodPost, "/v1/parkings/x/reviews", `{"rating":5}`, driverClaims,
			httprouter.Param{Key: "id", Value: "x"})
		rec := serve(AddReview(service), req)

		assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
	})

	t.Run("Erro inesperado vira erro interno", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().ListParkings(gomock.Any(), owner).Return(nil, assert.AnError)

		rec := serve(ListParkings(service), newRequest(http.MethodGet, "/v1/parkings", "", ownerClaims))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, apiErrors.ErrInternalServer, errorCode(t, rec))
	})
}

func TestParkingSpotHandlers(t *testing.T) {
	owner := ownerClaims.Principal()
	spotID := "8d3c1f2e-0000-4000-8000-000000000001"

	t.Run("Busca parking por id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().GetParking(gomock.Any(), int64(3)).Return(&domain.Parking{ID: 3, Name: "Norte"}, nil)

		req := newRequest(http.MethodGet, "/v1/parkings/3", "", driverClaims, httprouter.Param{Key: "id", Value: "3"})
		rec := serve(GetParking(service), req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Norte", decode[domain.Parking](t, rec).Name)
	})

	t.Run("Remove parking sem corpo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().DeleteParking(gomock.Any(), owner, int64(3)).Return(nil)

		req := newRequest(http.MethodDelete, "/v1/parkings/3", "", ownerClaims, httprouter.Param{Key: "id", Value: "3"})
		rec := serve(DeleteParking(service), req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("Remoção de parking inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().DeleteParking(gomock.Any(), owner, int64(9)).
			Return(managing.NewParkingError(managing.ErrParkingNotFound, apiErrors.ErrParkingNotFound, ""))

		req := newRequest(http.MethodDelete, "/v1/parkings/9", "", ownerClaims, httprouter.Param{Key: "id", Value: "9"})
		rec := serve(DeleteParking(service), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrParkingNotFound, errorCode(t, rec))
	})

	t.Run("Cria vaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().AddSpot(gomock.Any(), owner, int64(3), &domain.AddParkingSpotRequest{Row: 1, Column: 2, Label: "A-02"}).
			Return(&domain.ParkingSpot{ID: spotID, ParkingID: 3, Label: "A-02", Status: domain.SpotAvailable}, nil)

		req := newRequest(http.MethodPost, "/v1/parkings/3/spots", `{"row":1,"column":2,"label":"A-02"}`, ownerClaims,
			httprouter.Param{Key: "id", Value: "3"})
		rec := serve(AddParkingSpot(service), req)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, spotID, decode[domain.ParkingSpot](t, rec).ID)
	})

	t.Run("Lista vagas", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().ListSpots(gomock.Any(), int64(3)).Return([]domain.ParkingSpot{}, nil)

		req := newRequest(http.MethodGet, "/v1/parkings/3/spots", "", driverClaims, httprouter.Param{Key: "id", Value: "3"})
		rec := serve(ListParkingSpots(service), req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Atualiza status da vaga", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().UpdateSpotStatus(gomock.Any(), owner, int64(3), spotID, &domain.UpdateParkingSpotRequest{Status: "OCCUPIED"}).
			Return(&domain.ParkingSpot{ID: spotID, ParkingID: 3, Status: domain.SpotOccupied}, nil)

		req := newRequest(http.MethodPatch, "/v1/parkings/3/spots/"+spotID, `{"status":"OCCUPIED"}`, ownerClaims,
			httprouter.Param{Key: "id", Value: "3"}, httprouter.Param{Key: "spotId", Value: spotID})
		rec := serve(UpdateParkingSpot(service), req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, domain.SpotOccupied, decode[domain.ParkingSpot](t, rec).Status)
	})

	t.Run("Vaga inexistente", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := managingmocks.NewMockParkingManager(ctrl)
		service.EXPECT().UpdateSpotStatus(gomock.Any(), owner, int64(3), "nope", gomock.Any()).
			Return(nil, managing.NewParkingError(managing.ErrSpotNotFound, apiErrors.ErrSpotNotFound, ""))

		req := newRequest(http.MethodPatch, "/v1/parkings/3/spots/nope", `{"status":"OCCUPIED"}`, ownerClaims,
			httprouter.Param{Key: "id", Value: "3"}, httprouter.Param{Key: "spotId", Value: "nope"})
		rec := serve(UpdateParkingSpot(service), req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, apiErrors.ErrSpotNotFound, errorCode(t, rec))
	})
}

func TestReservationHandlers(t *testing.T) {
	t.Run("Listagem exige parking_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reservingmocks.NewMockReserver(ctrl)

		rec := serve(ListReservations(service), newRequest(http.MethodGet, "/v1/reservations", "", ownerClaims))

		assert.Equal(t, apiErrors.ErrMissingRequiredData, errorCode(t, rec))
	})

	t.Run("Lista reservas do parking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reservingmocks.NewMockReserver(ctrl)
		service.EXPECT().ListReservations(gomock.Any(), ownerClaims.Principal(), int64(1)).
			Return([]domain.Reservation{{ID: 5, ParkingID: 1}}, nil)

		rec := serve(ListReservations(service), newRequest(http.MethodGet, "/v1/reservations?parking_id=1", "", ownerClaims))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]map[string]any](t, rec), 1)
	})

	t.Run("Motorista cria reserva", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reservingmocks.NewMockReserver(ctrl)
		service.EXPECT().CreateReservation(gomock.Any(), driverClaims.Principal(), gomock.Any()).
			DoAndReturn(func(_ any, _ domain.Principal, req *domain.CreateReservationRequest) (*domain.Reservation, error) {
				assert.Equal(t, "2024-03-15", req.Date)
				return &domain.Reservation{ID: 9, Status: string(domain.ReservationPending)}, nil
			})

		body := `{"parkingId":1,"date":"2024-03-15","startTime":"09:00","endTime":"10:00"}`
		rec := serve(CreateReservation(service), newRequest(http.MethodPost, "/v1/reservations", body, driverClaims))

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Status inválido", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		service := reservingmocks.NewMockReserver(ctrl)
		service.EXPECT().UpdateStatus(gomock.Any(), driverClaims.Principal(), int64(9), &domain.UpdateReservationStatusRequest{Status: "ARCHIVED"}).
			Return(nil, reserving.NewReservationError(reserving.ErrInvalidStatus, apiErrors.ErrInvalidStatus, "ARCHIVED"))

		req := newRequest(http.MethodPatch, "/v1/reservations/9/status", `{"status":"ARCHIVED"}`, driverClaims,
			httprouter.Param{Key: "id", Value: "9"})
		rec := serve(UpdateReservationStatus(service), req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidStatus, errorCode(t, rec))
	})
}
