package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Provider struct {
	ID      int             `json:"id"`
	Name    string          `json:"name"`
	LastETL *time.Time      `json:"last_etl,omitempty"`
	TaxRate decimal.Decimal `json:"tax_rate"`
}

type Division struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Team pode não pertencer a nenhuma divisão
type Team struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	DivisionID *int   `json:"division_id"`
}

// Project é uma conta/projeto externo atribuído a um provider e a um time
type Project struct {
	ID           int    `json:"id"`
	ExternalName string `json:"external_name"`
	ExternalID   string `json:"external_id"`
	ProviderID   int    `json:"provider_id"`
	TeamID       int    `json:"team_id"`
}

// ReferenceLists agrupa as listas usadas nos seletores da interface
type ReferenceLists struct {
	Providers []Provider `json:"providers"`
	Teams     []Team     `json:"teams"`
	Divisions []Division `json:"divisions"`
	Projects  []Project  `json:"projects"`
}
