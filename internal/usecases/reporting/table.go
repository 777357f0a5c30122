package reporting

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

const (
	subtotalHeader = "Subtotal"
	totalsLabel    = "Totals"
	itemTotalLabel = "Total:"
)

// CostTable monta a tabela id x mês com subtotal por linha, linha de totais
// e uma linha vazia ao final para separar tabelas concatenadas
func CostTable(m *domain.SpendMatrix, months []string, label string) domain.Table {
	header := domain.Row{label}
	for _, month := range months {
		header = append(header, month)
	}
	header = append(header, subtotalHeader)

	table := domain.Table{header}
	monthTotals := make([]int64, len(months))

	for _, id := range m.IDs() {
		row := domain.Row{m.Name(id)}
		var subtotal int64
		for i, month := range months {
			value := m.Get(id, month)
			row = append(row, value)
			subtotal += value
			monthTotals[i] += value
		}
		row = append(row, subtotal)
		table = append(table, row)
	}

	totals := domain.Row{totalsLabel}
	var grand int64
	for _, v := range monthTotals {
		totals = append(totals, v)
		grand += v
	}
	totals = append(totals, grand)

	table = append(table, totals, make(domain.Row, len(totals)))
	return table
}

// OverUnderTable intercala, por mês, gasto, orçamento, diferença e resposta.
// Sem time definido as respostas ficam vazias.
func OverUnderTable(actuals, budgets *domain.SpendMatrix, responses domain.ResponseIndex, teamID *int, months []string, label string) domain.Table {
	header := domain.Row{label}
	for _, month := range months {
		header = append(header,
			month+" Actuals",
			month+" Budget",
			month+" Over/(-)Under Budget",
			month+" Response",
		)
	}
	header = append(header, subtotalHeader)

	table := domain.Table{header}
	actualTotals := make([]int64, len(months))
	budgetTotals := make([]int64, len(months))

	for _, row := range unionRows(actuals, budgets) {
		line := domain.Row{row.name}
		var subtotal int64
		for i, month := range months {
			actual := actuals.Get(row.id, month)
			budget := budgets.Get(row.id, month)

			response := ""
			if teamID != nil {
				response = responses.Lookup(*teamID, row.name, month)
			}

			line = append(line, actual, budget, actual-budget, response)
			subtotal += actual
			actualTotals[i] += actual
			budgetTotals[i] += budget
		}
		line = append(line, subtotal)
		table = append(table, line)
	}

	totals := domain.Row{totalsLabel}
	var grand int64
	for i := range months {
		totals = append(totals, actualTotals[i], budgetTotals[i], actualTotals[i]-budgetTotals[i], nil)
		grand += actualTotals[i]
	}
	totals = append(totals, grand)

	table = append(table, totals, make(domain.Row, len(totals)))
	return table
}

type namedID struct {
	id   int
	name string
}

func unionRows(a, b *domain.SpendMatrix) []namedID {
	seen := make(map[int]string)
	for _, id := range a.IDs() {
		seen[id] = a.Name(id)
	}
	for _, id := range b.IDs() {
		if _, ok := seen[id]; !ok {
			seen[id] = b.Name(id)
		}
	}

	rows := make([]namedID, 0, len(seen))
	for id, name := range seen {
		rows = append(rows, namedID{id: id, name: name})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].name != rows[j].name {
			return rows[i].name < rows[j].name
		}
		return rows[i].id < rows[j].id
	})
	return rows
}

// ItemTable lista o custo de cada item e fecha com o total da coluna de custo
func ItemTable(items []domain.ItemCostRow) domain.Table {
	table := domain.Table{{"Date", "Item", "Cost", "Project", "Provider", "Team"}}

	var total int64
	for _, item := range items {
		cost := domain.WholeUnits(item.Cost)
		total += cost
		table = append(table, domain.Row{item.Bucket, item.Item, cost, item.Project, item.Provider, item.Team})
	}

	return append(table, domain.Row{itemTotalLabel, nil, total, nil, nil, nil})
}

// WriteCSV grava a tabela em CSV; células nil viram campos vazios
func WriteCSV(w io.Writer, table domain.Table) error {
	writer := csv.NewWriter(w)

	for _, row := range table {
		record := make([]string, len(row))
		for i, cell := range row {
			record[i] = formatCell(cell)
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("reporting: escrever linha csv: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
