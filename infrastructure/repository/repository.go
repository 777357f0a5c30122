// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

const (
	providersTable    = "providers"
	teamsTable        = "teams"
	divisionsTable    = "divisions"
	projectsTable     = "projects"
	metricTypesTable  = "metric_types"
	metricEventsTable = "metric_events"
	budgetsTable      = "budget_entries"
	matchRulesTable   = "match_rules"
)

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// inFilter retorna nil quando a lista não filtra; lista vazia gera (1=0)
func inFilter(column string, ids []int) squirrel.Sqlizer {
	if ids == nil {
		return nil
	}
	return squirrel.Eq{column: ids}
}

func whereAll(b squirrel.SelectBuilder, preds ...squirrel.Sqlizer) squirrel.SelectBuilder {
	for _, p := range preds {
		if p != nil {
			b = b.Where(p)
		}
	}
	return b
}

// windowFilter restringe a coluna datetime ao intervalo fechado da janela
func windowFilter(column string, w domain.Window) (squirrel.Sqlizer, error) {
	if !w.IsResolved() {
		return nil, domain.NewFilterError("window", "unresolved")
	}
	return squirrel.Expr(
		fmt.Sprintf("%s BETWEEN to_timestamp(?) AND to_timestamp(?)", column),
		*w.Start, *w.End,
	), nil
}

// dimensionColumn mapeia a dimensão para a coluna de metric_events
func dimensionColumn(alias string, dim domain.Dimension) (string, error) {
	switch dim {
	case domain.DimensionProvider:
		return alias + ".provider_id", nil
	case domain.DimensionTeam:
		return alias + ".team_id", nil
	case domain.DimensionProject:
		return alias + ".project_id", nil
	}
	return "", domain.NewFilterError("dimension", string(dim))
}

// readError registra a consulta que falhou e classifica o erro
func readError(op, query string, args []interface{}, err error) error {
	logrus.WithFields(logrus.Fields{
		"op":    op,
		"query": query,
		"args":  args,
	}).WithError(err).Error("repository: erro ao executar consulta")

	if postgres.IsConnectionError(err) {
		return domain.NewStoreError(op, domain.ErrStoreUnavailable, err)
	}
	return fmt.Errorf("%s: erro ao executar a query: %w", op, err)
}

// writeError classifica falhas de escrita; ErrNotFound e erros de filtro passam intactos
func writeError(op string, err error) error {
	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidFilter) {
		return err
	}

	logrus.WithField("op", op).WithError(err).Error("repository: erro ao executar escrita")

	if postgres.IsConnectionError(err) {
		return domain.NewStoreError(op, domain.ErrStoreUnavailable, err)
	}
	return domain.NewStoreError(op, domain.ErrWriteFailed, err)
}

func buildError(op string, err error) error {
	return fmt.Errorf("%s: erro ao construir a query: %w", op, err)
}

// requireAffected converte zero linhas afetadas em ErrNotFound
func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
