package domain

import "github.com/shopspring/decimal"

// ItemCostRow detalha o custo de um item de billing em um bucket
type ItemCostRow struct {
	Bucket   string
	Item     string
	Cost     decimal.Decimal
	Project  string
	Provider string
	Team     string
}
