package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/spotfinder/parking-analytics-api/internal/domain"
	"github.com/spotfinder/parking-analytics-api/pkg/apiErrors"
	"github.com/spotfinder/parking-analytics-api/pkg/log"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
	"github.com/stretchr/testify/require"
)

var (
	ownerClaims  = &domain.Claims{UserID: 7, UserEmail: "owner@spotfinder.com", UserRoleID: domain.RoleOwner}
	adminClaims  = &domain.Claims{UserID: 1, UserEmail: "admin@spotfinder.com", UserRoleID: domain.RoleAdmin}
	driverClaims = &domain.Claims{UserID: 20, UserEmail: "driver@spotfinder.com", UserRoleID: domain.RoleDriver}
)

func init() {
	log.SetupTestLogger()
}

// newRequest monta a requisição com claims e parâmetros de rota já resolvidos
func newRequest(method, target, body string, claims *domain.Claims, params ...httprouter.Param) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))

	ctx := req.Context()
	if claims != nil {
		ctx = middleware.WithClaims(ctx, claims)
	}
	if len(params) > 0 {
		ctx = context.WithValue(ctx, httprouter.ParamsKey, httprouter.Params(params))
	}

	return req.WithContext(ctx)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apiErrors.APIError](t, rec).Code
}
