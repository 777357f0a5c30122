package workload

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository/mocks"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func strPtr(s string) *string {
	return &s
}

func TestBucketer_Classify(t *testing.T) {
	rules := []domain.MatchRule{
		{ID: 1, GroupName: "Compute", TextMatch: "BoxUsage"},
		{ID: 2, GroupName: "Quebrada", TextMatch: "(["},
		{ID: 3, GroupName: "Storage", TextMatch: "EBS|S3"},
		{ID: 4, GroupName: "Tudo de compute", TextMatch: ".*Usage"},
	}
	b := NewBucketer(context.Background(), rules)

	tests := []struct {
		name   string
		metric string
		want   string
	}{
		{name: "primeira regra vence", metric: "BoxUsage:m5.large", want: "Compute"},
		{name: "alternância casa no início", metric: "S3-Requests", want: "Storage"},
		{name: "padrão não casa no meio do nome", metric: "DataTransfer-EBS", want: "DataTransfer-EBS"},
		{name: "regra após expressão inválida continua valendo", metric: "SpotUsage", want: "Tudo de compute"},
		{name: "sem regra usa o próprio nome", metric: "Support", want: "Support"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Classify(tt.metric).Name)
		})
	}
}

func TestScope(t *testing.T) {
	project := 7

	providerID, projectID, err := Scope(domain.Ids{Providers: []int{2}, Project: &project})
	require.NoError(t, err)
	assert.Equal(t, 2, providerID)
	assert.Equal(t, 7, projectID)

	_, _, err = Scope(domain.Ids{Providers: []int{1, 2}, Project: &project})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	_, _, err = Scope(domain.Ids{Project: &project})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)

	_, _, err = Scope(domain.Ids{Providers: []int{2}})
	assert.ErrorIs(t, err, domain.ErrInvalidFilter)
}

func TestService_GetWorkload(t *testing.T) {
	ctrl := gomock.NewController(t)
	rules := mocks.NewMockMatchRuleRepository(ctrl)
	metrics := mocks.NewMockMetricRepository(ctrl)
	service := NewService(rules, metrics)

	start, end := int64(1704067200), int64(1706745599)
	window := domain.Window{Format: domain.FormatDaily, Start: &start, End: &end}
	factor := decimal.NewFromFloat(0.5)

	rules.EXPECT().
		ListByProvider(gomock.Any(), 1).
		Return([]domain.MatchRule{
			{ID: 1, ProviderID: 1, GroupName: "Compute", TextMatch: "BoxUsage", ScaleFactor: decimal.NewNullDecimal(factor), ScaleUnit: strPtr("hours"), Rank: 1},
		}, nil)
	metrics.EXPECT().
		GetMetricTypes(gomock.Any(), 1).
		Return(map[int]string{10: "BoxUsage:small", 11: "BoxUsage:large", 12: "Support"}, nil)
	metrics.EXPECT().
		SumCostByMetric(gomock.Any(), window, 1, 7).
		Return([]domain.MetricCost{
			{Day: "2024-01-02", MetricID: 10, Cost: decimal.NewFromInt(5)},
			{Day: "2024-01-02", MetricID: 11, Cost: decimal.NewFromInt(7)},
			{Day: "2024-01-02", MetricID: 12, Cost: decimal.NewFromInt(3)},
			{Day: "2024-01-01", MetricID: 10, Cost: decimal.NewFromInt(4)},
			{Day: "2024-01-01", MetricID: 12, Cost: decimal.Zero},
			{Day: "2024-01-01", MetricID: 99, Cost: decimal.NewFromInt(100)},
		}, nil)

	points, err := service.GetWorkload(context.Background(), window, 1, 7)
	require.NoError(t, err)
	require.Len(t, points, 3)

	assert.Equal(t, "2024-01-01", points[0].Day)
	assert.Equal(t, "Compute", points[0].Bucket)
	assert.Equal(t, int64(4), points[0].Spend)

	assert.Equal(t, "2024-01-02", points[1].Day)
	assert.Equal(t, "Compute", points[1].Bucket)
	assert.Equal(t, int64(12), points[1].Spend)
	require.NotNil(t, points[1].ScaleFactor)
	assert.True(t, factor.Equal(*points[1].ScaleFactor))
	assert.Equal(t, "hours", *points[1].ScaleUnit)

	assert.Equal(t, domain.WorkloadPoint{Day: "2024-01-02", Bucket: "Support", Spend: 3}, points[2])
}
