package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/cloud-spend-api/internal/api/handler/router"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/administering"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/workload"
	"github.com/vfg2006/cloud-spend-api/pkg/middleware"
)

type Middleware = func(http.Handler) http.Handler

func adminOnly() []Middleware {
	return []Middleware{middleware.AdminOnly()}
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
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
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: []Middleware{middleware.Authenticated()},
		},
	}
}

func Reference(service administering.Administrator) []router.Route {
	return []router.Route{
		{Path: "/v1/reference", Method: http.MethodGet, Handler: GetReferenceLists(service)},
		{Path: "/v1/reference/providers", Method: http.MethodGet, Handler: listHandler("reference.providers", service.ListProviders)},
		{Path: "/v1/reference/teams", Method: http.MethodGet, Handler: listHandler("reference.teams", service.ListTeams)},
		{Path: "/v1/reference/divisions", Method: http.MethodGet, Handler: listHandler("reference.divisions", service.ListDivisions)},
		{Path: "/v1/reference/projects", Method: http.MethodGet, Handler: ListProjects(service)},
	}
}

func Spend(spender spending.Spender, forecaster forecasting.Forecaster, workloads workload.WorkloadGetter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/spend/:dimension",
			Method:  http.MethodGet,
			Handler: GetSpend(spender),
		},
		{
			Path:    "/v1/forecast/:dimension",
			Method:  http.MethodGet,
			Handler: GetForecast(forecaster),
		},
		{
			Path:    "/v1/workload",
			Method:  http.MethodGet,
			Handler: GetWorkload(workloads, time.Now),
		},
	}
}

// Reports recebe o limitador compartilhado pelas exportações CSV
func Reports(service reporting.Reporter, limit Middleware) []router.Route {
	limited := []Middleware{limit}
	return []router.Route{
		{
			Path:        "/v1/reports/budget/:dimension",
			Method:      http.MethodGet,
			Handler:     GetBudgetReport(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/reports/over-under",
			Method:      http.MethodGet,
			Handler:     GetOverUnderReport(service),
			Middlewares: limited,
		},
		{
			Path:        "/v1/reports/items",
			Method:      http.MethodGet,
			Handler:     GetItemCostReport(service),
			Middlewares: limited,
		},
	}
}

func Admin(service administering.Administrator) []router.Route {
	return []router.Route{
		{Path: "/v1/admin/budgets", Method: http.MethodGet, Handler: ListBudgets(service), Middlewares: adminOnly()},
		{Path: "/v1/admin/budgets", Method: http.MethodPost, Handler: createHandler("budget.create", service.CreateBudget), Middlewares: adminOnly()},
		{Path: "/v1/admin/budgets/clone", Method: http.MethodPost, Handler: CloneBudgets(service), Middlewares: adminOnly()},
		{
			Path:        "/v1/admin/budgets/:id",
			Method:      http.MethodPut,
			Handler:     updateHandler("budget.update", func(b *domain.BudgetEntry, id int) { b.ID = id }, service.UpdateBudget),
			Middlewares: adminOnly(),
		},
		{Path: "/v1/admin/budgets/:id", Method: http.MethodDelete, Handler: deleteHandler("budget.delete", service.DeleteBudget), Middlewares: adminOnly()},

		{Path: "/v1/admin/teams", Method: http.MethodGet, Handler: listHandler("team.list", service.ListTeams), Middlewares: adminOnly()},
		{Path: "/v1/admin/teams", Method: http.MethodPost, Handler: createHandler("team.create", service.CreateTeam), Middlewares: adminOnly()},
		{
			Path:        "/v1/admin/teams/:id",
			Method:      http.MethodPut,
			Handler:     updateHandler("team.update", func(t *domain.Team, id int) { t.ID = id }, service.UpdateTeam),
			Middlewares: adminOnly(),
		},
		{Path: "/v1/admin/teams/:id", Method: http.MethodDelete, Handler: deleteHandler("team.delete", service.DeleteTeam), Middlewares: adminOnly()},

		{Path: "/v1/admin/projects", Method: http.MethodGet, Handler: ListProjects(service), Middlewares: adminOnly()},
		{Path: "/v1/admin/projects", Method: http.MethodPost, Handler: createHandler("project.create", service.CreateProject), Middlewares: adminOnly()},
		{
			Path:        "/v1/admin/projects/:id",
			Method:      http.MethodPut,
			Handler:     updateHandler("project.update", func(p *domain.Project, id int) { p.ID = id }, service.UpdateProject),
			Middlewares: adminOnly(),
		},
		{Path: "/v1/admin/projects/:id", Method: http.MethodDelete, Handler: deleteHandler("project.delete", service.DeleteProject), Middlewares: adminOnly()},

		{Path: "/v1/admin/divisions", Method: http.MethodGet, Handler: listHandler("division.list", service.ListDivisions), Middlewares: adminOnly()},
		{Path: "/v1/admin/divisions", Method: http.MethodPost, Handler: createHandler("division.create", service.CreateDivision), Middlewares: adminOnly()},
		{
			Path:        "/v1/admin/divisions/:id",
			Method:      http.MethodPut,
			Handler:     updateHandler("division.update", func(d *domain.Division, id int) { d.ID = id }, service.UpdateDivision),
			Middlewares: adminOnly(),
		},
		{Path: "/v1/admin/divisions/:id", Method: http.MethodDelete, Handler: deleteHandler("division.delete", service.DeleteDivision), Middlewares: adminOnly()},

		{Path: "/v1/admin/providers", Method: http.MethodGet, Handler: listHandler("provider.list", service.ListProviders), Middlewares: adminOnly()},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: adminOnly(),
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: adminOnly(),
		},
	}
}
