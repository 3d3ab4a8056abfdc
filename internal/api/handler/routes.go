package handler

import (
	"net/http"

	"github.com/horizonhq/horizon-api/infrastructure/database/postgres"
	"github.com/horizonhq/horizon-api/internal/api/handler/router"
	"github.com/horizonhq/horizon-api/internal/config"
	"github.com/horizonhq/horizon-api/internal/usecases/cohorting"
	"github.com/horizonhq/horizon-api/internal/usecases/forecasting"
	"github.com/horizonhq/horizon-api/internal/usecases/fundraising"
	"github.com/horizonhq/horizon-api/internal/usecases/projecting"
	"github.com/horizonhq/horizon-api/pkg/middleware"
)

func Healthcheck(conn postgres.Conn) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(conn),
		},
	}
}

func RunwayScenarios(service projecting.ScenarioService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/scenarios/runway",
			Method:  http.MethodPost,
			Handler: CreateRunwayScenario(service),
		},
		{
			Path:    "/v1/scenarios/runway",
			Method:  http.MethodGet,
			Handler: ListRunwayScenarios(service),
		},
		{
			Path:    "/v1/scenarios/runway/comparison",
			Method:  http.MethodGet,
			Handler: CompareRunwayScenarios(service),
		},
		{
			Path:    "/v1/scenarios/runway/:id",
			Method:  http.MethodGet,
			Handler: GetRunwayScenario(service),
		},
		{
			Path:    "/v1/scenarios/runway/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRunwayScenario(service),
		},
	}
}

func FundraisingPredictions(service fundraising.PredictionService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/predictions/fundraising",
			Method:  http.MethodPost,
			Handler: CreateFundraisingPrediction(service),
		},
		{
			Path:    "/v1/predictions/fundraising",
			Method:  http.MethodGet,
			Handler: ListFundraisingPredictions(service),
		},
		{
			Path:    "/v1/predictions/fundraising/:id",
			Method:  http.MethodGet,
			Handler: GetFundraisingPrediction(service),
		},
		{
			Path:    "/v1/predictions/fundraising/:id",
			Method:  http.MethodDelete,
			Handler: DeleteFundraisingPrediction(service),
		},
	}
}

func CashflowForecasts(service forecasting.ForecastService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/forecasts/cashflow",
			Method:  http.MethodPost,
			Handler: CreateCashflowForecast(service),
		},
		{
			Path:    "/v1/forecasts/cashflow",
			Method:  http.MethodGet,
			Handler: ListCashflowForecasts(service),
		},
		{
			Path:    "/v1/forecasts/cashflow/:id",
			Method:  http.MethodGet,
			Handler: GetCashflowForecast(service),
		},
		{
			Path:    "/v1/forecasts/cashflow/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCashflowForecast(service),
		},
	}
}

func RevenueCohorts(service cohorting.CohortService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cohorts",
			Method:  http.MethodPost,
			Handler: CreateRevenueCohort(service),
		},
		{
			Path:    "/v1/cohorts",
			Method:  http.MethodGet,
			Handler: ListRevenueCohorts(service),
		},
		{
			Path:    "/v1/cohorts/:id",
			Method:  http.MethodGet,
			Handler: GetRevenueCohort(service),
		},
		{
			Path:    "/v1/cohorts/:id",
			Method:  http.MethodDelete,
			Handler: DeleteRevenueCohort(service),
		},
		{
			Path:    "/v1/cohorts/:id/metrics",
			Method:  http.MethodPut,
			Handler: UpdateCohortMetrics(service),
		},
		{
			Path:    "/v1/cohorts/:id/projections",
			Method:  http.MethodPost,
			Handler: GenerateCohortProjections(service),
		},
	}
}

// CronJobs publica as rotas operacionais, guardadas pelo token administrativo
func CronJobs(services CronJobServices, authConfig config.Auth) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminToken(authConfig)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminToken(authConfig)},
		},
	}
}
