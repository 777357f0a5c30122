package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		input     Window
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mensal sem limites cobre três meses até o fim do mês corrente",
			input:     Window{Format: FormatMonthly},
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "formato vazio é tratado como mensal",
			input:     Window{},
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		},
		{
			name:      "diário aplica o atraso de dois dias",
			input:     Window{Format: FormatDaily},
			wantStart: time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 13, 12, 30, 0, 0, time.UTC),
		},
		{
			name:      "apenas um limite informado recalcula ambos",
			input:     Window{Format: FormatMonthly, Start: int64Ptr(100)},
			wantStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 31, 23, 59, 59, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWindow(tt.input, now)

			require.True(t, got.IsResolved())
			assert.Equal(t, tt.wantStart.Unix(), *got.Start)
			assert.Equal(t, tt.wantEnd.Unix(), *got.End)
		})
	}
}

func TestResolveWindow_MonthlyInvariants(t *testing.T) {
	for month := time.January; month <= time.December; month++ {
		now := time.Date(2023, month, 28, 8, 0, 0, 0, time.UTC)
		got := ResolveWindow(Window{Format: FormatMonthly}, now)

		end := got.EndTime(time.UTC)
		start := got.StartTime(time.UTC)

		assert.False(t, end.Before(now), "mês %s", month)
		assert.Equal(t, LastDayOfMonth(now).Day(), end.Day(), "mês %s", month)
		assert.Equal(t, 1, start.Day(), "mês %s", month)
		assert.Equal(t, FirstOfMonth(now).AddDate(0, -2, 0).Unix(), *got.Start, "mês %s", month)
		assert.GreaterOrEqual(t, *got.End-*got.Start, int64(3*29*86400), "mês %s", month)
	}
}

func TestResolveWindow_DailyInvariants(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		wantSpan int64
	}{
		{
			name:     "meia-noite cobre exatamente 29 dias",
			now:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantSpan: 29 * 86400,
		},
		{
			name:     "meio do dia soma as horas já decorridas",
			now:      time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC),
			wantSpan: 29*86400 + 12*3600 + 30*60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveWindow(Window{Format: FormatDaily}, tt.now)

			assert.Equal(t, tt.now.Unix()-LagSeconds, *got.End)
			assert.Equal(t, tt.wantSpan, *got.End-*got.Start)
			assert.Zero(t, got.StartTime(time.UTC).Hour())
		})
	}
}

func TestResolveWindow_KeepsResolvedWindow(t *testing.T) {
	input := Window{Format: FormatDaily, Start: int64Ptr(10), End: int64Ptr(20)}

	got := ResolveWindow(input, time.Now())

	assert.Equal(t, int64(10), *got.Start)
	assert.Equal(t, int64(20), *got.End)
	assert.Equal(t, FormatDaily, got.Format)
}

func TestResolveWindow_DoesNotMutateInput(t *testing.T) {
	input := Window{Format: FormatMonthly}

	_ = ResolveWindow(input, time.Now())

	assert.Nil(t, input.Start)
	assert.Nil(t, input.End)
}

func TestLastDayOfMonth(t *testing.T) {
	assert.Equal(t, 29, LastDayOfMonth(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)).Day())
	assert.Equal(t, 28, LastDayOfMonth(time.Date(2023, 2, 10, 0, 0, 0, 0, time.UTC)).Day())
	assert.Equal(t, 31, LastDayOfMonth(time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)).Day())
}

func int64Ptr(v int64) *int64 {
	return &v
}
