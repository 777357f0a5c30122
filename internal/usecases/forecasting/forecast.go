package forecasting

import (
	"math"
	"time"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

// MonthStats resume os custos diários de um mês
type MonthStats struct {
	Avg      float64
	Len      int
	Std      float64
	SliceAvg float64
	SliceLen int
}

// ComputeMonthStats calcula média, desvio padrão populacional e a média
// dos primeiros sliceLen valores. sliceLen <= 0 usa todos os valores.
func ComputeMonthStats(sliceLen int, values []float64) MonthStats {
	stats := MonthStats{Len: len(values)}
	if len(values) == 0 {
		return stats
	}

	stats.Avg = mean(values)

	var sq float64
	for _, v := range values {
		sq += (v - stats.Avg) * (v - stats.Avg)
	}
	stats.Std = math.Sqrt(sq / float64(len(values)))

	if sliceLen <= 0 || sliceLen > len(values) {
		sliceLen = len(values)
	}
	stats.SliceAvg = mean(values[:sliceLen])
	stats.SliceLen = sliceLen

	return stats
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// idHistory guarda os valores diários por mês na ordem em que os meses aparecem
type idHistory struct {
	months []string
	days   map[string][]float64
}

// Forecast projeta o gasto mensal de cada id a partir do histórico diário.
// O histórico deve vir ordenado por dia. Meses já encerrados em relação a now não são emitidos.
func Forecast(window domain.Window, history []domain.HistoryRow, now time.Time) []domain.ForecastPoint {
	loc := now.Location()
	order := make([]int, 0)
	byID := make(map[int]*idHistory)

	for _, row := range history {
		h, ok := byID[row.ID]
		if !ok {
			h = &idHistory{days: make(map[string][]float64)}
			byID[row.ID] = h
			order = append(order, row.ID)
		}
		if _, ok := h.days[row.Month]; !ok {
			h.months = append(h.months, row.Month)
		}
		h.days[row.Month] = append(h.days[row.Month], row.DailySum.InexactFloat64())
	}

	points := make([]domain.ForecastPoint, 0)
	firstOfNow := domain.FirstOfMonth(now)

	for _, id := range order {
		h := byID[id]
		curMonth := h.months[len(h.months)-1]

		start, err := domain.ParseMonth(curMonth, loc)
		if err != nil {
			continue
		}

		cur := ComputeMonthStats(0, h.days[curMonth])
		var prev *MonthStats
		if len(h.months) > 1 {
			p := ComputeMonthStats(cur.Len, h.days[h.months[len(h.months)-2]])
			prev = &p
		}

		points = append(points, walk(id, start, forecastEnd(window, start), firstOfNow, cur, prev)...)
	}

	return points
}

// forecastEnd garante um horizonte mínimo de três meses a partir de start
func forecastEnd(window domain.Window, start time.Time) time.Time {
	if window.End == nil || *window.End < start.Unix()+domain.ForecastPeriodSeconds {
		return start.AddDate(0, 3, 0)
	}
	return time.Unix(*window.End, 0).In(start.Location())
}

func walk(id int, start, end, firstOfNow time.Time, cur MonthStats, prev *MonthStats) []domain.ForecastPoint {
	trend, decay := 1.0, 1.0
	if prev != nil && prev.SliceAvg != 0 {
		trend = cur.SliceAvg / prev.SliceAvg
		if trend < 0 {
			decay = -1.0
		}
	}

	daily := cur.Avg
	if prev != nil && cur.Std != 0 {
		daily = prev.Avg
	}

	points := make([]domain.ForecastPoint, 0)
	for month := start; month.Before(end); {
		last := domain.LastDayOfMonth(month)
		estimate := int64(daily * float64(last.Day()))

		if last.After(firstOfNow) {
			points = append(points, domain.ForecastPoint{
				Month:    last.Format(domain.MonthLayout),
				ID:       id,
				Estimate: estimate,
			})
		}

		month = last.AddDate(0, 0, 1)
		daily *= trend
		trend = (trend + 2*decay) / 3
	}

	return points
}
