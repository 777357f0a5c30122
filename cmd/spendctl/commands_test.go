package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

var errNoDatabase = errors.New("sem banco no teste")

// offlineApp falha se algum comando tentar conectar
func offlineApp(connected *bool) *app {
	return &app{
		connect: func(context.Context) (postgres.Conn, error) {
			*connected = true
			return nil, errNoDatabase
		},
	}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidationHappensBeforeConnecting(t *testing.T) {
	badRules := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(badRules, []byte("rules:\n  - group: X\n    match: \"(\"\n"), 0o600))

	tests := []struct {
		name string
		args []string
	}{
		{name: "clone com mês inválido", args: []string{"budgets", "clone", "--from", "2024-13", "--to", "2024-05"}},
		{name: "clone para o mesmo mês", args: []string{"budgets", "clone", "--from", "2024-05", "--to", "2024-05"}},
		{name: "forecast com dimensão inválida", args: []string{"forecast", "--dimension", "region"}},
		{name: "forecast com ids inválidos", args: []string{"forecast", "--prvid", "1,a"}},
		{name: "rules sem provider", args: []string{"rules", "import", "--file", badRules}},
		{name: "rules com regex inválida", args: []string{"rules", "import", "--provider", "1", "--file", badRules}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connected := false
			_, err := run(t, offlineApp(&connected), tt.args...)

			require.Error(t, err)
			assert.NotErrorIs(t, err, errNoDatabase)
			assert.False(t, connected)
		})
	}
}

func TestConnectionErrorIsReported(t *testing.T) {
	connected := false
	_, err := run(t, offlineApp(&connected), "budgets", "clone", "--from", "2024-04", "--to", "2024-05")

	require.ErrorIs(t, err, errNoDatabase)
	assert.True(t, connected)
}

func TestForecastRequest(t *testing.T) {
	req, err := forecastRequest("team", "", "3,4", true)
	require.NoError(t, err)

	assert.Equal(t, domain.DimensionTeam, req.Dimension)
	assert.Nil(t, req.Ids.Providers)
	assert.Equal(t, []int{3, 4}, req.Ids.Teams)
	assert.True(t, req.AddBudget)
	assert.Equal(t, domain.FormatMonthly, req.Window.Format)
}

func TestPrintPoints(t *testing.T) {
	var out bytes.Buffer
	err := printPoints(&out, []domain.SpendPoint{
		domain.NewSpendPoint("2024-06", 1, "AWS", 1653),
		domain.NewBudgetPoint("2024-06", 1, "AWS", 1500),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"MONTH    NAME        SERIES  SPEND\n"+
			"2024-06  AWS         spend   1653\n"+
			"2024-06  AWS-Budget  budget  1500\n",
		out.String())
}
