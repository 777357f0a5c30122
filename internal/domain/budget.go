package domain

import (
	"strings"
	"time"
)

// BudgetEntry é o orçamento de um time para um provider em um mês
type BudgetEntry struct {
	ID         int     `json:"id"`
	ProviderID int     `json:"provider_id"`
	TeamID     int     `json:"team_id"`
	Month      string  `json:"month"`
	Amount     int64   `json:"amount"`
	Comment    string  `json:"comment"`
	Response   *string `json:"response"`
}

func (b *BudgetEntry) Validate() error {
	if b.ProviderID <= 0 {
		return NewFilterError("provider_id", "")
	}
	if b.TeamID <= 0 {
		return NewFilterError("team_id", "")
	}
	return ValidateMonth(b.Month)
}

// BudgetRow é a soma de orçamentos por mês e id da dimensão
type BudgetRow struct {
	Month  string
	ID     int
	Amount int64
}

// BudgetFilter filtra a listagem administrativa de orçamentos.
// MonthPrefix e AmountPrefix casam pelo início do valor.
type BudgetFilter struct {
	ID           *int   `json:"id,omitempty"`
	ProviderID   *int   `json:"provider_id,omitempty"`
	TeamID       *int   `json:"team_id,omitempty"`
	MonthPrefix  string `json:"month,omitempty"`
	AmountPrefix string `json:"amount,omitempty"`
}

// CloneRequest copia os orçamentos de um mês para outro
type CloneRequest struct {
	Source     string `json:"source"`
	Target     string `json:"target"`
	ProviderID *int   `json:"provider_id,omitempty"`
	TeamID     *int   `json:"team_id,omitempty"`
}

func (c CloneRequest) Validate() error {
	if err := ValidateMonth(c.Source); err != nil {
		return err
	}
	if err := ValidateMonth(c.Target); err != nil {
		return err
	}
	if c.Source == c.Target {
		return NewFilterError("target", c.Target)
	}
	return nil
}

type CloneResult struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Cloned int64  `json:"cloned"`
}

func ValidateMonth(month string) error {
	if _, err := time.Parse(MonthLayout, strings.TrimSpace(month)); err != nil {
		return NewFilterError("month", month)
	}
	return nil
}

// ResponseIndex indexa as respostas de orçamento: time -> nome do provider -> mês
type ResponseIndex map[int]map[string]map[string]string

func (r ResponseIndex) Set(teamID int, provider, month, response string) {
	byProvider, ok := r[teamID]
	if !ok {
		byProvider = make(map[string]map[string]string)
		r[teamID] = byProvider
	}
	byMonth, ok := byProvider[provider]
	if !ok {
		byMonth = make(map[string]string)
		byProvider[provider] = byMonth
	}
	byMonth[month] = response
}

// Lookup retorna "" quando não há resposta registrada
func (r ResponseIndex) Lookup(teamID int, provider, month string) string {
	return r[teamID][provider][month]
}
