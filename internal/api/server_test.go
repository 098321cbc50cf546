package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spotfinder/parking-analytics-api/internal/config"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	analyzingmocks "github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing/mocks"
	authmocks "github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandler(t *testing.T) (http.Handler, *authmocks.MockAuthenticator, *analyzingmocks.MockAnalyzer) {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	authenticator := authmocks.NewMockAuthenticator(ctrl)
	analyzer := analyzingmocks.NewMockAnalyzer(ctrl)

	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "8000", AllowedOrigins: []string{"http://localhost:4200"}},
	}

	return NewHandler(cfg, Services{
		Authenticator: authenticator,
		Analyzer:      analyzer,
		Invalidator:   analyzingmocks.NewMockInvalidator(ctrl),
	}), authenticator, analyzer
}

func TestNewHandler_Routing(t *testing.T) {
	t.Run("Healthcheck é público", func(t *testing.T) {
		h, _, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("Métricas são públicas", func(t *testing.T) {
		h, _, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "go_goroutines")
	})

	t.Run("Analytics exige token", func(t *testing.T) {
		h, _, _ := newTestHandler(t)

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/totals", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Proprietário consulta totais", func(t *testing.T) {
		h, authenticator, analyzer := newTestHandler(t)
		claims := &domain.Claims{UserID: 7, UserRoleID: domain.RoleOwner}

		authenticator.EXPECT().ValidateToken("valid").Return(claims, nil)
		analyzer.EXPECT().GetTotals(gomock.Any(), claims.Principal(), nil).Return(domain.EmptyTotalsKpi())

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/totals", nil)
		req.Header.Set("Authorization", "Bearer valid")
		req.Header.Set("Origin", "http://localhost:4200")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:4200", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rec.Body.String(), `"currency":"USD"`)
	})

	t.Run("Motorista não acessa analytics", func(t *testing.T) {
		h, authenticator, _ := newTestHandler(t)
		authenticator.EXPECT().ValidateToken("driver").Return(&domain.Claims{UserID: 20, UserRoleID: domain.RoleDriver}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/analytics/top-parkings", nil)
		req.Header.Set("Authorization", "Bearer driver")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Rota desconhecida", func(t *testing.T) {
		h, authenticator, _ := newTestHandler(t)
		authenticator.EXPECT().ValidateToken("valid").Return(&domain.Claims{UserID: 1, UserRoleID: domain.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/unknown", nil)
		req.Header.Set("Authorization", "Bearer valid")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestNew_RequiresServices(t *testing.T) {
	_, err := New(&config.Config{}, Services{})

	assert.Error(t, err)
}
