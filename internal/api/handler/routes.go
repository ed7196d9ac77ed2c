package handler

import (
	"net/http"

	"github.com/vfg2006/sdr-metrics-api/internal/api/handler/router"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/forecasting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/insighting"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/ranking"
	"github.com/vfg2006/sdr-metrics-api/internal/usecases/recording"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Stats(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/stats/daily",
			Method:  http.MethodGet,
			Handler: GetDailyStats(service),
		},
		{
			Path:    "/api/stats/report",
			Method:  http.MethodGet,
			Handler: GetDashboardReport(service),
		},
		{
			Path:    "/api/stats/digest",
			Method:  http.MethodGet,
			Handler: GetLatestDigest(service),
		},
	}
}

func TopDays(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/stats/top-days",
			Method:  http.MethodGet,
			Handler: GetTopDays(service),
		},
	}
}

// Activities recebe os middlewares de escrita (limite de requisições)
func Activities(service recording.Recorder, writeMiddlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/api/activities",
			Method:      http.MethodPost,
			Handler:     CreateActivity(service),
			Middlewares: writeMiddlewares,
		},
	}
}

func ROI(service forecasting.Forecaster, writeMiddlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/api/roi/projection",
			Method:      http.MethodPost,
			Handler:     ProjectROI(service),
			Middlewares: writeMiddlewares,
		},
	}
}

func CronJobs(services CronJobServices, writeMiddlewares ...Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: writeMiddlewares,
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}

func Metrics(metricsHandler http.Handler) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metricsHandler,
		},
	}
}
