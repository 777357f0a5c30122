package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Dimension é o eixo de agrupamento de uma consulta de custo
type Dimension string

const (
	DimensionProvider Dimension = "provider"
	DimensionTeam     Dimension = "team"
	DimensionProject  Dimension = "project"
	DimensionDivision Dimension = "division"
)

func ParseDimension(raw string) (Dimension, error) {
	switch d := Dimension(raw); d {
	case DimensionProvider, DimensionTeam, DimensionProject, DimensionDivision:
		return d, nil
	}
	return "", NewFilterError("dimension", raw)
}

// CostRow é uma linha agregada vinda do banco: soma do custo por bucket e id
type CostRow struct {
	Bucket string
	ID     int
	Cost   decimal.Decimal
}

type Series string

const (
	SeriesSpend  Series = "spend"
	SeriesBudget Series = "budget"
)

const budgetSuffix = "-Budget"

// SpendPoint é um ponto de série pronto para serialização em gráficos
type SpendPoint struct {
	Month  string `json:"month"`
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Series Series `json:"series"`
	Label  string `json:"label"`
	Spend  int64  `json:"spend"`
}

func NewSpendPoint(month string, id int, name string, spend int64) SpendPoint {
	return SpendPoint{Month: month, ID: id, Name: name, Series: SeriesSpend, Label: name, Spend: spend}
}

func NewBudgetPoint(month string, id int, name string, amount int64) SpendPoint {
	return SpendPoint{Month: month, ID: id, Name: name, Series: SeriesBudget, Label: name + budgetSuffix, Spend: amount}
}

// SpendRequest descreve uma consulta de gastos agregados
type SpendRequest struct {
	Window    Window
	Ids       Ids
	Dimension Dimension
	AddBudget bool
}

// WholeUnits arredonda para unidades inteiras, metade para longe de zero
func WholeUnits(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// SpendMatrix é o contêiner id -> bucket -> valor.
// Leituras de células ausentes retornam zero sem criar chaves.
type SpendMatrix struct {
	names  map[int]string
	values map[int]map[string]int64
}

func NewSpendMatrix() *SpendMatrix {
	return &SpendMatrix{
		names:  make(map[int]string),
		values: make(map[int]map[string]int64),
	}
}

func (m *SpendMatrix) SetName(id int, name string) {
	m.names[id] = name
}

func (m *SpendMatrix) Name(id int) string {
	return m.names[id]
}

func (m *SpendMatrix) Add(id int, bucket string, amount int64) {
	row, ok := m.values[id]
	if !ok {
		row = make(map[string]int64)
		m.values[id] = row
	}
	row[bucket] += amount
}

func (m *SpendMatrix) Get(id int, bucket string) int64 {
	return m.values[id][bucket]
}

func (m *SpendMatrix) Has(id int, bucket string) bool {
	_, ok := m.values[id][bucket]
	return ok
}

// Total soma todos os buckets de um id
func (m *SpendMatrix) Total(id int) int64 {
	var total int64
	for _, v := range m.values[id] {
		total += v
	}
	return total
}

func (m *SpendMatrix) Len() int {
	return len(m.values)
}

// IDs retorna os ids com valores, ordenados por nome e depois por id
func (m *SpendMatrix) IDs() []int {
	ids := make([]int, 0, len(m.values))
	for id := range m.values {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ni, nj := m.names[ids[i]], m.names[ids[j]]
		if ni != nj {
			return ni < nj
		}
		return ids[i] < ids[j]
	})
	return ids
}

// Buckets retorna todos os buckets presentes, em ordem crescente
func (m *SpendMatrix) Buckets() []string {
	seen := make(map[string]struct{})
	for _, row := range m.values {
		for bucket := range row {
			seen[bucket] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

// BucketsOf retorna os buckets de um único id, em ordem crescente
func (m *SpendMatrix) BucketsOf(id int) []string {
	seen := make(map[string]struct{}, len(m.values[id]))
	for bucket := range m.values[id] {
		seen[bucket] = struct{}{}
	}
	return sortedKeys(seen)
}

// UnionBuckets junta e ordena os buckets de várias listas
func UnionBuckets(lists ...[]string) []string {
	seen := make(map[string]struct{})
	for _, list := range lists {
		for _, b := range list {
			seen[b] = struct{}{}
		}
	}
	return sortedKeys(seen)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
