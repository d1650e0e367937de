package handler

import (
	"net/http"

	"github.com/vfg2006/postwise-api/internal/api/handler/router"
	"github.com/vfg2006/postwise-api/internal/usecases/connecting"
	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
	"github.com/vfg2006/postwise-api/internal/usecases/executing"
	"github.com/vfg2006/postwise-api/internal/usecases/goal"
	"github.com/vfg2006/postwise-api/internal/usecases/ingesting"
	"github.com/vfg2006/postwise-api/internal/usecases/recommending"
	"github.com/vfg2006/postwise-api/pkg/metrics"
	"github.com/vfg2006/postwise-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Ingestion(service ingesting.Ingester, maxUploadBytes int64) []router.Route {
	return []router.Route{
		{
			Path:    "/ingest",
			Method:  http.MethodPost,
			Handler: Ingest(service, maxUploadBytes),
		},
	}
}

func Diagnosis(service diagnosing.Diagnoser) []router.Route {
	return []router.Route{
		{
			Path:    "/diagnose",
			Method:  http.MethodGet,
			Handler: Diagnose(service),
		},
		{
			Path:    "/waste",
			Method:  http.MethodGet,
			Handler: Waste(service),
		},
	}
}

func Recommendations(service recommending.Recommender) []router.Route {
	return []router.Route{
		{
			Path:    "/recommend",
			Method:  http.MethodGet,
			Handler: Recommend(service),
		},
		{
			Path:    "/recommendations",
			Method:  http.MethodGet,
			Handler: ListRecommendations(service),
		},
		{
			Path:    "/recommendations",
			Method:  http.MethodPatch,
			Handler: UpdateRecommendation(service),
		},
	}
}

func Actions(service executing.Executor) []router.Route {
	return []router.Route{
		{
			Path:    "/actions",
			Method:  http.MethodGet,
			Handler: ListActions(service),
		},
		{
			Path:    "/execute",
			Method:  http.MethodPost,
			Handler: ExecuteAction(service),
		},
		{
			Path:    "/simulate",
			Method:  http.MethodPost,
			Handler: SimulateAction(service),
		},
	}
}

func Goals(service goal.GoalService) []router.Route {
	return []router.Route{
		{
			Path:    "/goals",
			Method:  http.MethodPost,
			Handler: CreateGoal(service),
		},
		{
			Path:    "/goals",
			Method:  http.MethodGet,
			Handler: ListGoals(service),
		},
	}
}

func Integrations(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/integrations/google-ads/connect",
			Method:  http.MethodPost,
			Handler: ConnectGoogleAds(service),
		},
		{
			Path:    "/integrations/:platform/test",
			Method:  http.MethodGet,
			Handler: TestIntegration(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/cron/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
