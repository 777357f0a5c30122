package spending

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	references *mocks.MockReferenceRepository
	metrics    *mocks.MockMetricRepository
	budgets    *mocks.MockBudgetRepository
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)

	f := &fixture{
		references: mocks.NewMockReferenceRepository(ctrl),
		metrics:    mocks.NewMockMetricRepository(ctrl),
		budgets:    mocks.NewMockBudgetRepository(ctrl),
	}
	f.service = &Service{
		references: f.references,
		metrics:    f.metrics,
		budgets:    f.budgets,
		now:        func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) },
	}
	return f
}

func cost(bucket string, id int, value string) domain.CostRow {
	return domain.CostRow{Bucket: bucket, ID: id, Cost: decimal.RequireFromString(value)}
}

func intPtr(v int) *int {
	return &v
}

func TestService_GetSpend_ProviderWithBudget(t *testing.T) {
	f := newFixture(t)

	ids := domain.Ids{Providers: []int{1}}
	f.references.EXPECT().
		GetProviders(gomock.Any(), []int{1}).
		Return(map[int]domain.Provider{1: {ID: 1, Name: "AWS"}}, nil).
		Times(2)
	f.metrics.EXPECT().
		SumCostByDimension(gomock.Any(), gomock.Any(), ids, domain.DimensionProvider).
		DoAndReturn(func(_ context.Context, w domain.Window, _ domain.Ids, _ domain.Dimension) ([]domain.CostRow, error) {
			assert.True(t, w.IsResolved())
			return []domain.CostRow{
				cost("2024-01", 1, "1000.4"),
				cost("2024-02", 1, "1500.5"),
			}, nil
		})
	f.budgets.EXPECT().
		SumBudgetByDimension(gomock.Any(), ids, domain.DimensionProvider).
		Return([]domain.BudgetRow{
			{Month: "2024-01", ID: 1, Amount: 1200},
			{Month: "2024-06", ID: 1, Amount: 900},
		}, nil)

	points, err := f.service.GetSpend(context.Background(), domain.SpendRequest{
		Window:    domain.Window{Format: domain.FormatMonthly},
		Ids:       ids,
		Dimension: domain.DimensionProvider,
		AddBudget: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []domain.SpendPoint{
		{Month: "2024-01", ID: 1, Name: "AWS", Series: domain.SeriesSpend, Label: "AWS", Spend: 1000},
		{Month: "2024-02", ID: 1, Name: "AWS", Series: domain.SeriesSpend, Label: "AWS", Spend: 1501},
		{Month: "2024-01", ID: 1, Name: "AWS", Series: domain.SeriesBudget, Label: "AWS-Budget", Spend: 1200},
	}, points)
}

func TestService_GetSpend_ProjectIgnoresBudget(t *testing.T) {
	f := newFixture(t)

	ids := domain.Ids{Project: intPtr(7)}
	f.references.EXPECT().
		GetProjects(gomock.Any(), ids).
		Return(map[int]domain.Project{7: {ID: 7, ExternalName: "billing-prod"}}, nil)
	f.metrics.EXPECT().
		SumCostByDimension(gomock.Any(), gomock.Any(), ids, domain.DimensionProject).
		Return([]domain.CostRow{cost("2024-03", 7, "10")}, nil)

	points, err := f.service.GetSpend(context.Background(), domain.SpendRequest{
		Ids:       ids,
		Dimension: domain.DimensionProject,
		AddBudget: true,
	})
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, "billing-prod", points[0].Name)
	assert.Equal(t, int64(10), points[0].Spend)
}

func TestService_Aggregate_SkipsOrphans(t *testing.T) {
	f := newFixture(t)

	f.references.EXPECT().
		GetTeams(gomock.Any(), gomock.Nil()).
		Return(map[int]domain.Team{3: {ID: 3, Name: "Core"}}, nil)
	f.metrics.EXPECT().
		SumCostByDimension(gomock.Any(), gomock.Any(), domain.Ids{}, domain.DimensionTeam).
		Return([]domain.CostRow{
			cost("2024-01", 3, "5"),
			cost("2024-01", 99, "500"),
		}, nil)

	m, err := f.service.Aggregate(context.Background(), domain.Window{}, domain.Ids{}, domain.DimensionTeam)
	require.NoError(t, err)

	assert.Equal(t, []int{3}, m.IDs())
	assert.Equal(t, int64(5), m.Get(3, "2024-01"))
}

func TestService_Aggregate_Division(t *testing.T) {
	f := newFixture(t)

	ids := domain.Ids{Divisions: []int{10}, Teams: []int{42}}
	f.references.EXPECT().
		GetDivisions(gomock.Any(), []int{10}).
		Return(map[int]domain.Division{10: {ID: 10, Name: "Platform"}}, nil)
	f.references.EXPECT().
		GetTeamIDsByDivisions(gomock.Any(), []int{10}).
		Return([]int{1, 2}, nil)
	f.references.EXPECT().
		GetTeamDivisions(gomock.Any(), []int{1, 2}).
		Return(map[int]*int{1: intPtr(10), 2: intPtr(10)}, nil)
	f.metrics.EXPECT().
		SumCostByDimension(gomock.Any(), gomock.Any(), ids.WithTeams([]int{1, 2}), domain.DimensionTeam).
		Return([]domain.CostRow{
			cost("2024-01", 1, "100"),
			cost("2024-01", 2, "50"),
			cost("2024-02", 2, "25"),
		}, nil)

	m, err := f.service.Aggregate(context.Background(), domain.Window{}, ids, domain.DimensionDivision)
	require.NoError(t, err)

	assert.Equal(t, []int{10}, m.IDs())
	assert.Equal(t, "Platform", m.Name(10))
	assert.Equal(t, int64(150), m.Get(10, "2024-01"))
	assert.Equal(t, int64(25), m.Get(10, "2024-02"))
}

func TestService_Aggregate_DivisionWithoutTeams(t *testing.T) {
	f := newFixture(t)

	f.references.EXPECT().GetDivisions(gomock.Any(), []int{4}).Return(map[int]domain.Division{}, nil)
	f.references.EXPECT().GetTeamIDsByDivisions(gomock.Any(), []int{4}).Return([]int{}, nil)

	m, err := f.service.Aggregate(context.Background(), domain.Window{}, domain.Ids{Divisions: []int{4}}, domain.DimensionDivision)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestService_Aggregate_PropagatesStoreError(t *testing.T) {
	f := newFixture(t)

	storeErr := domain.NewStoreError("metric.SumCostByDimension", domain.ErrStoreUnavailable, errors.New("connection refused"))
	f.references.EXPECT().GetProviders(gomock.Any(), gomock.Any()).Return(map[int]domain.Provider{}, nil).AnyTimes()
	f.metrics.EXPECT().
		SumCostByDimension(gomock.Any(), gomock.Any(), gomock.Any(), domain.DimensionProvider).
		Return(nil, storeErr)

	_, err := f.service.Aggregate(context.Background(), domain.Window{}, domain.Ids{}, domain.DimensionProvider)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestService_DimensionNames_InvalidDimension(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.DimensionNames(context.Background(), domain.Ids{}, domain.Dimension("region"))
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestRollupToDivisions(t *testing.T) {
	teams := domain.NewSpendMatrix()
	teams.SetName(1, "Core")
	teams.Add(1, "2024-01", 100)
	teams.SetName(2, "Data")
	teams.Add(2, "2024-01", 40)
	teams.SetName(3, "Sem divisão")
	teams.Add(3, "2024-01", 999)
	teams.SetName(4, "Fora do filtro")
	teams.Add(4, "2024-01", 7)

	teamDivisions := map[int]*int{1: intPtr(10), 2: intPtr(10), 3: nil, 4: intPtr(20)}
	divisions := map[int]domain.Division{10: {ID: 10, Name: "Platform"}}

	out := RollupToDivisions(teams, teamDivisions, divisions)

	assert.Equal(t, []int{10}, out.IDs())
	assert.Equal(t, int64(140), out.Get(10, "2024-01"))
	assert.Equal(t, int64(140), out.Total(10))
}
