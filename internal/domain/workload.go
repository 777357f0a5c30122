package domain

import "github.com/shopspring/decimal"

// MatchRule classifica métricas de um provider em um grupo de workload.
// Regras de menor Rank têm prioridade.
type MatchRule struct {
	ID          int                 `json:"id"`
	ProviderID  int                 `json:"provider_id"`
	GroupName   string              `json:"group_name"`
	TextMatch   string              `json:"text_match"`
	ScaleFactor decimal.NullDecimal `json:"scale_factor"`
	ScaleUnit   *string             `json:"scale_unit"`
	Rank        int                 `json:"rank"`
}

// MetricCost é a soma diária de custo de um tipo de métrica
type MetricCost struct {
	Day      string
	MetricID int
	Cost     decimal.Decimal
}

// WorkloadPoint é o custo diário de um grupo de workload.
// ScaleFactor e ScaleUnit são repassados sem serem aplicados.
type WorkloadPoint struct {
	Day         string           `json:"day"`
	Bucket      string           `json:"bucket"`
	Spend       int64            `json:"spend"`
	ScaleFactor *decimal.Decimal `json:"scale_factor,omitempty"`
	ScaleUnit   *string          `json:"scale_unit,omitempty"`
}
