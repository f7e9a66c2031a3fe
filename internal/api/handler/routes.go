package handler

import (
	"net/http"

	"github.com/yuuki-courage/aads/internal/api/handler/router"
	"github.com/yuuki-courage/aads/internal/usecases/pipeline"
	"github.com/yuuki-courage/aads/pkg/middleware"
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

func Analysis(p pipeline.Pipeline) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/analyze",
			Method:      http.MethodPost,
			Handler:     Analyze(p),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Bulk(p pipeline.Pipeline) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/bulk/generate",
			Method:      http.MethodPost,
			Handler:     GenerateBulk(p),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/bulk/actions",
			Method:      http.MethodPost,
			Handler:     ApplyActions(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/bulk/campaign-template",
			Method:      http.MethodPost,
			Handler:     CampaignTemplate(p),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
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
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}
