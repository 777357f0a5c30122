package domain

import "github.com/shopspring/decimal"

// HistoryRow é a soma de um dia, rotulada pelo mês ao qual o dia pertence
type HistoryRow struct {
	Month    string
	ID       int
	DailySum decimal.Decimal
}

type ForecastPoint struct {
	Month    string `json:"month"`
	ID       int    `json:"id"`
	Estimate int64  `json:"estimate"`
}
