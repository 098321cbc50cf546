package handler

import (
	"net/http"

	"github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating"
)

// ListUsers lista todos os usuários, apenas para administradores
func ListUsers(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := service.ListUsers(r.Context())
		if err != nil {
			writeUseCaseError(w, r, err, "Erro ao listar usuários")
			return
		}

		writeJSON(w, r, http.StatusOK, users)
	}
}
