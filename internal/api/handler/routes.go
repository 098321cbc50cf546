package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spotfinder/parking-analytics-api/internal/api/handler/router"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/analyzing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/authenticating"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/managing"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/reserving"
	"github.com/spotfinder/parking-analytics-api/internal/usecases/snapshotting"
	"github.com/spotfinder/parking-analytics-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Analytics(service analyzing.Analyzer, invalidator analyzing.Invalidator, snapshotter snapshotting.Snapshotter) []router.Route {
	adminOrOwner := []func(http.Handler) http.Handler{middleware.AdminOrOwner()}

	return []router.Route{
		{
			Path:        "/v1/analytics",
			Method:      http.MethodGet,
			Handler:     GetSummary(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/totals",
			Method:      http.MethodGet,
			Handler:     GetTotals(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/revenue",
			Method:      http.MethodGet,
			Handler:     GetRevenueByMonth(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/occupancy",
			Method:      http.MethodGet,
			Handler:     GetOccupancyByHour(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/activity",
			Method:      http.MethodGet,
			Handler:     GetActivity(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/top-parkings",
			Method:      http.MethodGet,
			Handler:     GetTopParkings(service),
			Middlewares: adminOrOwner,
		},
		{
			Path:        "/v1/analytics/snapshots",
			Method:      http.MethodPost,
			Handler:     CreateSnapshot(service, invalidator, snapshotter),
			Middlewares: adminOrOwner,
		},
	}
}

func Parkings(service managing.ParkingManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/parkings",
			Method:      http.MethodGet,
			Handler:     ListParkings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings",
			Method:      http.MethodPost,
			Handler:     CreateParking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings/:id",
			Method:      http.MethodGet,
			Handler:     GetParking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/parkings/:id",
			Method:      http.MethodPatch,
			Handler:     UpdateParking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteParking(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings/:id/spots",
			Method:      http.MethodGet,
			Handler:     ListParkingSpots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/parkings/:id/spots",
			Method:      http.MethodPost,
			Handler:     AddParkingSpot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings/:id/spots/:spotId",
			Method:      http.MethodPatch,
			Handler:     UpdateParkingSpot(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/parkings/:id/reviews",
			Method:      http.MethodPost,
			Handler:     AddReview(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Reservations(service reserving.Reserver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/reservations",
			Method:      http.MethodGet,
			Handler:     ListReservations(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOwner()},
		},
		{
			Path:        "/v1/reservations",
			Method:      http.MethodPost,
			Handler:     CreateReservation(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/reservations/:id/status",
			Method:      http.MethodPatch,
			Handler:     UpdateReservationStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
