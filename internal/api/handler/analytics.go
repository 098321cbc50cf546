package handler

import (
	"net/http"

	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
)

type SnapshotResponse struct {
	ID     string           `json:"id"`
	Totals domain.TotalsKpi `json:"totals"`
}

// analyticsView adapta uma visão com filtro opcional de parking para um handler HTTP
func analyticsView[T any](view func(r *http.Request, principal domain.Principal, parkingID *int64) T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		parkingID, err := optionalQueryID(r, "parking_id")
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "parking_id inválido", nil)
			return
		}

		principal := middleware.PrincipalFromContext(r.Context())
		writeJSON(w, r, http.StatusOK, view(r, principal, parkingID))
	}
}

func GetTotals(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsView(func(r *http.Request, principal domain.Principal, parkingID *int64) domain.TotalsKpi {
		return service.GetTotals(r.Context(), principal, parkingID)
	})
}

func GetRevenueByMonth(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsView(func(r *http.Request, principal domain.Principal, parkingID *int64) []domain.RevenueByMonth {
		return service.GetRevenueByMonth(r.Context(), principal, parkingID)
	})
}

func GetOccupancyByHour(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsView(func(r *http.Request, principal domain.Principal, parkingID *int64) []domain.OccupancyByHour {
		return service.GetOccupancyByHour(r.Context(), principal, parkingID)
	})
}

func GetActivity(service analyzing.Analyzer) http.HandlerFunc {
	return analyticsView(func(r *http.Request, principal domain.Principal, parkingID *int64) []domain.ActivityItem {
		return service.GetActivity(r.Context(), principal, parkingID)
	})
}

// GetTopParkings ignora parking_id
func GetTopParkings(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middleware.PrincipalFromContext(r.Context())
		writeJSON(w, r, http.StatusOK, service.GetTopParkings(r.Context(), principal))
	}
}

func GetSummary(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		principal := middleware.PrincipalFromContext(r.Context())
		profileID := r.URL.Query().Get("profile_id")

		writeJSON(w, r, http.StatusOK, service.GetSummary(r.Context(), principal, profileID))
	}
}

// CreateSnapshot descarta o cache do principal, recalcula os totais e grava o snapshot.
// Snapshots de administradores cobrem a plataforma inteira.
func CreateSnapshot(service analyzing.Analyzer, invalidator analyzing.Invalidator, snapshotter snapshotting.Snapshotter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		principal := middleware.PrincipalFromContext(ctx)

		if err := invalidator.Invalidate(ctx, principal); err != nil {
			log.ForContext(ctx).WithError(err).Warn("Falha ao invalidar cache antes do snapshot")
		}

		totals := service.GetTotals(ctx, principal, nil)

		var ownerID *int64
		if !principal.IsAdmin() {
			ownerID = &principal.UserID
		}

		id, err := snapshotter.CreateSnapshot(ctx, ownerID, totals)
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao gravar snapshot")
			return
		}

		writeJSON(w, r, http.StatusCreated, SnapshotResponse{ID: id, Totals: totals})
	}
}
