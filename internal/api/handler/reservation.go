package handler

import (
	"net/http"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
)

func ListReservations(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parkingID, err := optionalQueryID(r, "parking_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parking_id inválido", nil)
			return
		}
		if parkingID == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "parking_id é obrigatório", nil)
			return
		}

		reservations, err := service.ListReservations(r.Context(), middleware.PrincipalFromContext(r.Context()), *parkingID)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar reservas")
			return
		}

		writeJSON(w, r, http.StatusOK, reservations)
	}
}

func CreateReservation(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateReservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		reservation, err := service.CreateReservation(r.Context(), middleware.PrincipalFromContext(r.Context()), &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao criar reserva")
			return
		}

		writeJSON(w, r, http.StatusCreated, reservation)
	}
}

func UpdateReservationStatus(service reserving.Reserver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da reserva inválido", nil)
			return
		}

		var req domain.UpdateReservationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		reservation, err := service.UpdateStatus(r.Context(), middleware.PrincipalFromContext(r.Context()), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao atualizar reserva")
			return
		}

		writeJSON(w, r, http.StatusOK, reservation)
	}
}
