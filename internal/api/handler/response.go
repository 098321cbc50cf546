package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errInvalidID = errors.New("id inválido")

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError usa o código carregado pelo erro do caso de uso e, na falta dele, o fallback
func writeUseCaseError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var (
		authErr        *authenticating.AuthError
		parkingErr     *managing.ParkingError
		reservationErr *reserving.ReservationError
		snapshotErr    *snapshotting.SnapshotError
	)

	switch {
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.As(err, &parkingErr):
		apiErrors.WriteError(w, parkingErr.Code, parkingErr.Error(), nil)
	case errors.As(err, &reservationErr):
		apiErrors.WriteError(w, reservationErr.Code, reservationErr.Error(), nil)
	case errors.As(err, &snapshotErr):
		apiErrors.WriteError(w, snapshotErr.Code, snapshotErr.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error(fallback)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
	}
}

func pathID(r *http.Request) (int64, error) {
	raw := httprouter.ParamsFromContext(r.Context()).ByName("id")
	return parseID(raw)
}

// optionalQueryID devolve nil quando o parâmetro está ausente
func optionalQueryID(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}

	id, err := parseID(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
