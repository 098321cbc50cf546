package handler

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
)

func ListParkings(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parkings, err := service.ListParkings(r.Context(), middleware.PrincipalFromContext(r.Context()))
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar parkings")
			return
		}

		writeJSON(w, r, http.StatusOK, parkings)
	}
}

func CreateParking(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateParkingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		parking, err := service.CreateParking(r.Context(), middleware.PrincipalFromContext(r.Context()), &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao criar parking")
			return
		}

		writeJSON(w, r, http.StatusCreated, parking)
	}
}

// UpdateParking altera status e vagas disponíveis
func UpdateParking(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		var req domain.UpdateParkingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		parking, err := service.UpdateParking(r.Context(), middleware.PrincipalFromContext(r.Context()), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao atualizar parking")
			return
		}

		writeJSON(w, r, http.StatusOK, parking)
	}
}

func AddReview(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		var req domain.AddReviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		parking, err := service.AddReview(r.Context(), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao registrar avaliação")
			return
		}

		writeJSON(w, r, http.StatusOK, parking)
	}
}

func GetParking(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		parking, err := service.GetParking(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao buscar parking")
			return
		}

		writeJSON(w, r, http.StatusOK, parking)
	}
}

func DeleteParking(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		if err := service.DeleteParking(r.Context(), middleware.PrincipalFromContext(r.Context()), id); err != nil {
			writeUseCaseError(w, r, err, "Erro ao remover parking")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func AddParkingSpot(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		var req domain.AddParkingSpotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		spot, err := service.AddSpot(r.Context(), middleware.PrincipalFromContext(r.Context()), id, &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao criar vaga")
			return
		}

		writeJSON(w, r, http.StatusCreated, spot)
	}
}

func ListParkingSpots(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		spots, err := service.ListSpots(r.Context(), id)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar vagas")
			return
		}

		writeJSON(w, r, http.StatusOK, spots)
	}
}

// UpdateParkingSpot altera o status de uma vaga
func UpdateParkingSpot(service managing.ParkingManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do parking inválido", nil)
			return
		}

		spotID := strings.TrimSpace(httprouter.ParamsFromContext(r.Context()).ByName("spotId"))
		if spotID == "" {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID da vaga inválido", nil)
			return
		}

		var req domain.UpdateParkingSpotRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		spot, err := service.UpdateSpotStatus(r.Context(), middleware.PrincipalFromContext(r.Context()), id, spotID, &req)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao atualizar vaga")
			return
		}

		writeJSON(w, r, http.StatusOK, spot)
	}
}
