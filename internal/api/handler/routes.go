package handler

import (
	"net/http"

	"github.com/vfg2006/creative-analysis-api/infrastructure/repository"
	"github.com/vfg2006/creative-analysis-api/internal/api/handler/router"
	"github.com/vfg2006/creative-analysis-api/internal/scheduler"
	"github.com/vfg2006/creative-analysis-api/internal/usecases/authenticating"
	"github.com/vfg2006/creative-analysis-api/pkg/middleware"
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
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
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
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// Analysis retorna as rotas de consulta dos resultados de análise de criativos
func Analysis(
	resultRepo repository.AnalysisResultRepository,
	summaryRepo repository.DashboardSummaryRepository,
	runRepo repository.AnalysisRunRepository,
) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/analysis",
			Method:      http.MethodGet,
			Handler:     GetAnalysisResults(resultRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(summaryRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/runs",
			Method:      http.MethodGet,
			Handler:     ListAnalysisRuns(runRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/runs/:id",
			Method:      http.MethodGet,
			Handler:     GetAnalysisRun(runRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/ads/:id/analysis",
			Method:      http.MethodGet,
			Handler:     GetAdAnalysisHistory(resultRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(syncService *scheduler.AnalysisSyncService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/analysis/run",
			Method:      http.MethodPost,
			Handler:     RunAnalysisSync(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetAnalysisSyncStatus(syncService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
