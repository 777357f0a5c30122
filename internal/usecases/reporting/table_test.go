package reporting

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

func matrix(cells map[string]map[string]int64, ids map[string]int) *domain.SpendMatrix {
	m := domain.NewSpendMatrix()
	for name, byMonth := range cells {
		id := ids[name]
		m.SetName(id, name)
		for month, v := range byMonth {
			m.Add(id, month, v)
		}
	}
	return m
}

func TestCostTable(t *testing.T) {
	m := matrix(map[string]map[string]int64{
		"GCP": {"2024-01": 10, "2024-02": 20},
		"AWS": {"2024-01": 100},
	}, map[string]int{"AWS": 1, "GCP": 2})

	table := CostTable(m, []string{"2024-01", "2024-02"}, "Actuals:")

	assert.Equal(t, domain.Table{
		{"Actuals:", "2024-01", "2024-02", "Subtotal"},
		{"AWS", int64(100), int64(0), int64(100)},
		{"GCP", int64(10), int64(20), int64(30)},
		{"Totals", int64(110), int64(20), int64(130)},
		{nil, nil, nil, nil},
	}, table)
}

func TestCostTable_TotalsMatchColumns(t *testing.T) {
	m := matrix(map[string]map[string]int64{
		"a": {"2024-01": 3, "2024-02": -5, "2024-03": 8},
		"b": {"2024-02": 11},
		"c": {"2024-01": 1, "2024-03": 2},
	}, map[string]int{"a": 1, "b": 2, "c": 3})
	months := []string{"2024-01", "2024-02", "2024-03"}

	table := CostTable(m, months, "x")
	body := table[1 : len(table)-2]
	totals := table[len(table)-2]

	var grand int64
	for col := 1; col <= len(months); col++ {
		var sum int64
		for _, row := range body {
			sum += row[col].(int64)
		}
		assert.Equal(t, sum, totals[col])
	}
	for _, row := range body {
		grand += row[len(row)-1].(int64)
	}
	assert.Equal(t, grand, totals[len(totals)-1])
}

func TestCostTable_Empty(t *testing.T) {
	table := CostTable(domain.NewSpendMatrix(), nil, "Budgets:")
	assert.Equal(t, domain.Table{
		{"Budgets:", "Subtotal"},
		{"Totals", int64(0)},
		{nil, nil},
	}, table)
}

func TestOverUnderTable(t *testing.T) {
	actuals := matrix(map[string]map[string]int64{"AWS": {"2024-01": 150}}, map[string]int{"AWS": 1})
	budgets := matrix(map[string]map[string]int64{
		"AWS":   {"2024-01": 100},
		"Azure": {"2024-01": 40},
	}, map[string]int{"AWS": 1, "Azure": 3})

	responses := domain.ResponseIndex{}
	responses.Set(7, "AWS", "2024-01", "pico de migração")
	team := 7

	table := OverUnderTable(actuals, budgets, responses, &team, []string{"2024-01"}, "Core:")

	require.Len(t, table, 5)
	assert.Equal(t, domain.Row{"Core:", "2024-01 Actuals", "2024-01 Budget", "2024-01 Over/(-)Under Budget", "2024-01 Response", "Subtotal"}, table[0])
	assert.Equal(t, domain.Row{"AWS", int64(150), int64(100), int64(50), "pico de migração", int64(150)}, table[1])
	assert.Equal(t, domain.Row{"Azure", int64(0), int64(40), int64(-40), "", int64(0)}, table[2])
	assert.Equal(t, domain.Row{"Totals", int64(150), int64(140), int64(10), nil, int64(150)}, table[3])
	assert.Equal(t, make(domain.Row, 6), table[4])
}

func TestOverUnderTable_WithoutTeamHasEmptyResponses(t *testing.T) {
	actuals := matrix(map[string]map[string]int64{"AWS": {"2024-01": 1}}, map[string]int{"AWS": 1})
	responses := domain.ResponseIndex{}
	responses.Set(7, "AWS", "2024-01", "ok")

	table := OverUnderTable(actuals, domain.NewSpendMatrix(), responses, nil, []string{"2024-01"}, "All Teams:")
	assert.Equal(t, "", table[1][4])
}

func TestItemTable(t *testing.T) {
	table := ItemTable([]domain.ItemCostRow{
		{Bucket: "2024-01", Item: "BoxUsage", Cost: decimal.RequireFromString("10.5"), Project: "web", Provider: "AWS", Team: "Core"},
		{Bucket: "2024-01", Item: "Storage", Cost: decimal.RequireFromString("4.2"), Project: "web", Provider: "AWS", Team: "Core"},
	})

	assert.Equal(t, domain.Table{
		{"Date", "Item", "Cost", "Project", "Provider", "Team"},
		{"2024-01", "BoxUsage", int64(11), "web", "AWS", "Core"},
		{"2024-01", "Storage", int64(4), "web", "AWS", "Core"},
		{"Total:", nil, int64(15), nil, nil, nil},
	}, table)
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, domain.Table{
		{"Actuals:", "2024-01", "Subtotal"},
		{"Time, com vírgula", int64(-3), 7},
		{nil, nil, nil},
	})
	require.NoError(t, err)

	assert.Equal(t, "Actuals:,2024-01,Subtotal\n\"Time, com vírgula\",-3,7\n,,\n", buf.String())
}
