package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	spendingmocks "github.com/vfg2006/cloud-spend-api/internal/usecases/spending/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	spender    *spendingmocks.MockSpender
	references *mocks.MockReferenceRepository
	metrics    *mocks.MockMetricRepository
	budgets    *mocks.MockBudgetRepository
	service    *Service
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		spender:    spendingmocks.NewMockSpender(ctrl),
		references: mocks.NewMockReferenceRepository(ctrl),
		metrics:    mocks.NewMockMetricRepository(ctrl),
		budgets:    mocks.NewMockBudgetRepository(ctrl),
	}
	f.service = &Service{
		spending:   f.spender,
		references: f.references,
		metrics:    f.metrics,
		budgets:    f.budgets,
		now:        func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) },
	}
	return f
}

func TestService_BudgetReport(t *testing.T) {
	f := newFixture(t)

	actuals := matrix(map[string]map[string]int64{"AWS": {"2024-02": 900}}, map[string]int{"AWS": 1})
	budgets := matrix(map[string]map[string]int64{
		"AWS": {"2024-01": 1200, "2024-02": 1000, "2023-06": 50},
	}, map[string]int{"AWS": 1})

	ids := domain.Ids{Providers: []int{1}}
	f.spender.EXPECT().
		Aggregate(gomock.Any(), gomock.Any(), ids, domain.DimensionProvider).
		DoAndReturn(func(_ context.Context, w domain.Window, _ domain.Ids, _ domain.Dimension) (*domain.SpendMatrix, error) {
			assert.Equal(t, domain.FormatMonthly, w.Format)
			assert.True(t, w.IsResolved())
			return actuals, nil
		})
	f.spender.EXPECT().
		AggregateBudgets(gomock.Any(), ids, domain.DimensionProvider).
		Return(budgets, nil)

	table, err := f.service.BudgetReport(context.Background(), domain.Window{Format: domain.FormatDaily}, ids, domain.DimensionProvider)
	require.NoError(t, err)

	assert.Equal(t, domain.Table{
		{"Actuals:", "2024-01", "2024-02", "Subtotal"},
		{"AWS", int64(0), int64(900), int64(900)},
		{"Totals", int64(0), int64(900), int64(900)},
		{nil, nil, nil, nil},
		{"Budgets:", "2024-01", "2024-02", "Subtotal"},
		{"AWS", int64(1200), int64(1000), int64(2200)},
		{"Totals", int64(1200), int64(1000), int64(2200)},
		{nil, nil, nil, nil},
	}, table)
}

func TestService_OverUnderReport_PerTeam(t *testing.T) {
	f := newFixture(t)

	ids := domain.Ids{Teams: []int{7, 8}}
	responses := domain.ResponseIndex{}
	responses.Set(7, "AWS", "2024-03", "revisado")

	f.budgets.EXPECT().GetResponses(gomock.Any(), ids).Return(responses, nil)
	f.references.EXPECT().
		GetTeams(gomock.Any(), []int{7, 8}).
		Return(map[int]domain.Team{7: {ID: 7, Name: "Core"}, 8: {ID: 8, Name: "Data"}}, nil)

	for _, team := range []int{7, 8} {
		teamIds := ids.WithTeams([]int{team})
		spend := matrix(map[string]map[string]int64{"AWS": {"2024-03": int64(team * 10)}}, map[string]int{"AWS": 1})
		f.spender.EXPECT().Aggregate(gomock.Any(), gomock.Any(), teamIds, domain.DimensionProvider).Return(spend, nil)
		f.spender.EXPECT().AggregateBudgets(gomock.Any(), teamIds, domain.DimensionProvider).Return(domain.NewSpendMatrix(), nil)
	}

	table, err := f.service.OverUnderReport(context.Background(), domain.Window{}, ids)
	require.NoError(t, err)
	require.Len(t, table, 8)

	assert.Equal(t, "Core:", table[0][0])
	assert.Equal(t, domain.Row{"AWS", int64(70), int64(0), int64(70), "revisado", int64(70)}, table[1])
	assert.Equal(t, "Data:", table[4][0])
	assert.Equal(t, domain.Row{"AWS", int64(80), int64(0), int64(80), "", int64(80)}, table[5])
}

func TestService_OverUnderReport_AllTeams(t *testing.T) {
	f := newFixture(t)

	f.budgets.EXPECT().GetResponses(gomock.Any(), domain.Ids{}).Return(domain.ResponseIndex{}, nil)
	f.spender.EXPECT().Aggregate(gomock.Any(), gomock.Any(), domain.Ids{}, domain.DimensionProvider).Return(domain.NewSpendMatrix(), nil)
	f.spender.EXPECT().AggregateBudgets(gomock.Any(), domain.Ids{}, domain.DimensionProvider).Return(domain.NewSpendMatrix(), nil)

	table, err := f.service.OverUnderReport(context.Background(), domain.Window{}, domain.Ids{})
	require.NoError(t, err)
	assert.Equal(t, domain.Row{"All Teams:", "Subtotal"}, table[0])
}

func TestService_ItemCostReport_PropagatesError(t *testing.T) {
	f := newFixture(t)

	f.metrics.EXPECT().
		ListItemCosts(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, domain.NewStoreError("metric.ListItemCosts", domain.ErrStoreUnavailable, errors.New("timeout")))

	_, err := f.service.ItemCostReport(context.Background(), domain.Window{}, domain.Ids{})
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
