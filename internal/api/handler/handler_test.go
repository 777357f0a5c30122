package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/internal/api/handler/router"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	adminmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/administering/mocks"
	authmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/authenticating/mocks"
	forecastmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting/mocks"
	reportmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/reporting/mocks"
	spendmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/spending/mocks"
	workloadmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/workload/mocks"
	"github.com/vfg2006/cloud-spend-api/pkg/apiErrors"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"github.com/vfg2006/cloud-spend-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	auth     *authmocks.MockAuthenticator
	spender  *spendmocks.MockSpender
	forecast *forecastmocks.MockForecaster
	workload *workloadmocks.MockWorkloadGetter
	reporter *reportmocks.MockReporter
	admin    *adminmocks.MockAdministrator
	cron     *stubJob
	handler  http.Handler
}

type stubJob struct {
	accept bool
	runs   int
}

func (j *stubJob) TriggerManualSync() bool {
	if j.accept {
		j.runs++
	}
	return j.accept
}

func (j *stubJob) GetStatus() map[string]any {
	return map[string]any{"sync_running": !j.accept}
}

var fixedNow = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	f := &fixture{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		spender:  spendmocks.NewMockSpender(ctrl),
		forecast: forecastmocks.NewMockForecaster(ctrl),
		workload: workloadmocks.NewMockWorkloadGetter(ctrl),
		reporter: reportmocks.NewMockReporter(ctrl),
		admin:    adminmocks.NewMockAdministrator(ctrl),
		cron:     &stubJob{accept: true},
	}

	spend := Spend(f.spender, f.forecast, f.workload)
	spend[2].Handler = GetWorkload(f.workload, func() time.Time { return fixedNow })

	rt := router.New(
		router.WithRoutes(Healthcheck(nil)...),
		router.WithRoutes(Authentication(f.auth)...),
		router.WithRoutes(Reference(f.admin)...),
		router.WithRoutes(spend...),
		router.WithRoutes(Reports(f.reporter, middleware.RateLimit(0))...),
		router.WithRoutes(Admin(f.admin)...),
		router.WithRoutes(CronJobs(CronJobServices{CronJobTypeBudgetRollover: f.cron})...),
	)
	f.handler = middleware.AuthMiddleware(f.auth)(rt)
	return f
}

func (f *fixture) do(method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *fixture) asAdmin() string {
	f.auth.EXPECT().ValidateToken("admin-token").
		Return(&domain.Claims{UserEmail: "admin@example.com", UserRoleID: domain.RoleAdmin}, nil).
		AnyTimes()
	return "admin-token"
}

func TestHealthcheck(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/healthcheck", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestGetSpend(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setup      func(f *fixture)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "filtros convertidos para a consulta",
			target: "/v1/spend/team?prvid=1,2&teamid=0&time_start=1714521600&budget=1",
			setup: func(f *fixture) {
				start := int64(1714521600)
				f.spender.EXPECT().GetSpend(gomock.Any(), domain.SpendRequest{
					Window:    domain.Window{Format: domain.FormatMonthly, Start: &start},
					Ids:       domain.Ids{Providers: []int{1, 2}},
					Dimension: domain.DimensionTeam,
					AddBudget: true,
				}).Return([]domain.SpendPoint{domain.NewSpendPoint("2024-05", 3, "Infra", 1200)}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"label":"Infra"`,
		},
		{
			name:       "id não numérico rejeitado antes da consulta",
			target:     "/v1/spend/team?prvid=1,x",
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"code":"VAL_004"`,
		},
		{
			name:       "dimensão desconhecida",
			target:     "/v1/spend/region",
			setup:      func(f *fixture) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"field":"dimension"`,
		},
		{
			name:   "banco indisponível",
			target: "/v1/spend/provider",
			setup: func(f *fixture) {
				f.spender.EXPECT().GetSpend(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewStoreError("metrics.sum", domain.ErrStoreUnavailable, errors.New("dial tcp")))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   `"code":"SRV_005"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			rec := f.do(http.MethodGet, tt.target, "", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestGetForecast(t *testing.T) {
	f := newFixture(t)
	f.forecast.EXPECT().
		EstimateSpend(gomock.Any(), gomock.Any()).
		Return([]domain.SpendPoint{domain.NewSpendPoint("2024-06", 1, "AWS", 1653)}, nil)

	rec := f.do(http.MethodGet, "/v1/forecast/provider", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"spend":1653`)
}

func TestGetWorkload(t *testing.T) {
	t.Run("exige provider único e projeto", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/v1/workload?prvid=1,2&prjid=4", "", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("janela diária resolvida", func(t *testing.T) {
		f := newFixture(t)
		want := domain.ResolveWindow(domain.Window{Format: domain.FormatDaily}, fixedNow)
		f.workload.EXPECT().
			GetWorkload(gomock.Any(), want, 1, 4).
			Return([]domain.WorkloadPoint{{Day: "2024-05-01", Bucket: "Compute", Spend: 40}}, nil)

		rec := f.do(http.MethodGet, "/v1/workload?prvid=1&prjid=4&format=monthly", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"bucket":"Compute"`)
	})
}

func TestReports(t *testing.T) {
	f := newFixture(t)
	f.reporter.EXPECT().
		OverUnderReport(gomock.Any(), gomock.Any(), domain.Ids{Teams: []int{3}}).
		Return(domain.Table{
			{"Team: Infra"},
			{"Provider", "2024-05 Spend", "2024-05 Budget"},
			{"AWS", int64(1200), nil},
		}, nil)

	rec := f.do(http.MethodGet, "/v1/reports/over-under?teamid=3", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "over-under-")
	assert.Equal(t, "Team: Infra\nProvider,2024-05 Spend,2024-05 Budget\nAWS,1200,\n", rec.Body.String())
}

func TestAdminRoutes(t *testing.T) {
	t.Run("sem token", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/v1/admin/budgets", "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lista orçamentos com filtros", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()
		team := 3
		f.admin.EXPECT().
			ListBudgets(gomock.Any(), domain.BudgetFilter{TeamID: &team, MonthPrefix: "2024"}).
			Return(nil, nil)

		rec := f.do(http.MethodGet, "/v1/admin/budgets?team_id=3&month=2024", "", token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("filtros zerados do grid não filtram", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()
		f.admin.EXPECT().
			ListBudgets(gomock.Any(), domain.BudgetFilter{}).
			Return([]domain.BudgetEntry{{ID: 1, ProviderID: 1, TeamID: 2, Month: "2024-01"}}, nil)

		rec := f.do(http.MethodGet, "/v1/admin/budgets?id=0&provider_id=0&team_id=0&amount=0", "", token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":1`)
	})

	t.Run("filtro de orçamento inválido", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()

		rec := f.do(http.MethodGet, "/v1/admin/budgets?provider_id=abc", "", token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFilter)
	})

	t.Run("atualiza usando o id da rota", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()
		f.admin.EXPECT().
			UpdateTeam(gomock.Any(), &domain.Team{ID: 9, Name: "Dados"}).
			Return(nil)

		rec := f.do(http.MethodPut, "/v1/admin/teams/9", `{"id":1,"name":"Dados"}`, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":9`)
	})

	t.Run("remoção de registro inexistente", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()
		f.admin.EXPECT().
			DeleteDivision(gomock.Any(), 5).
			Return(domain.NewStoreError("divisions.delete", domain.ErrNotFound, nil))

		rec := f.do(http.MethodDelete, "/v1/admin/divisions/5", "", token)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("clone", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()
		f.admin.EXPECT().
			CloneBudgets(gomock.Any(), domain.CloneRequest{Source: "2024-04", Target: "2024-05"}).
			Return(&domain.CloneResult{Source: "2024-04", Target: "2024-05", Cloned: 3}, nil)

		rec := f.do(http.MethodPost, "/v1/admin/budgets/clone", `{"source":"2024-04","target":"2024-05"}`, token)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"source":"2024-04","target":"2024-05","cloned":3}`, rec.Body.String())
	})

	t.Run("corpo inválido", func(t *testing.T) {
		f := newFixture(t)
		token := f.asAdmin()

		rec := f.do(http.MethodPost, "/v1/admin/teams", `{`, token)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	f.auth.EXPECT().Login("admin@example.com", "segredo").Return("jwt", nil)

	rec := f.do(http.MethodPost, "/v1/login", `{"email":"admin@example.com","password":"segredo"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"jwt"}`, rec.Body.String())
}

func TestCronJobs(t *testing.T) {
	f := newFixture(t)
	token := f.asAdmin()

	rec := f.do(http.MethodPost, "/v1/cron/budget-rollover/run", "", token)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, f.cron.runs)

	rec = f.do(http.MethodPost, "/v1/cron/unknown/run", "", token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	f.cron.accept = false
	rec = f.do(http.MethodPost, "/v1/cron/budget-rollover/run", "", token)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(http.MethodGet, "/v1/cron/status", "", token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"budget-rollover"`)
}

func TestReferenceLists(t *testing.T) {
	f := newFixture(t)
	f.admin.EXPECT().ListTeams(gomock.Any()).Return([]domain.Team{{ID: 1, Name: "Infra"}}, nil)

	rec := f.do(http.MethodGet, "/v1/reference/teams", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Infra","division_id":null}]`, rec.Body.String())
}
