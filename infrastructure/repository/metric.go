package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

// MetricRepository agrega os eventos de custo importados dos providers
type MetricRepository interface {
	SumCostByDimension(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) ([]domain.CostRow, error)
	DailyCostHistory(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) ([]domain.HistoryRow, error)
	SumCostByMetric(ctx context.Context, window domain.Window, providerID, projectID int) ([]domain.MetricCost, error)
	GetMetricTypes(ctx context.Context, providerID int) (map[int]string, error)
	ListItemCosts(ctx context.Context, window domain.Window, ids domain.Ids) ([]domain.ItemCostRow, error)
}

type metricRepository struct {
	conn postgres.Queryer
}

func NewMetricRepository(conn postgres.Queryer) MetricRepository {
	return &metricRepository{
		conn: conn,
	}
}

func bucketExpr(format domain.Format) string {
	return fmt.Sprintf("to_char(me.datetime, '%s')", format.SQLPattern())
}

// eventFilters aplica janela e filtros de dimensão sobre metric_events
func eventFilters(b squirrel.SelectBuilder, window domain.Window, ids domain.Ids) (squirrel.SelectBuilder, error) {
	byWindow, err := windowFilter("me.datetime", window)
	if err != nil {
		return b, err
	}

	var project squirrel.Sqlizer
	if ids.Project != nil {
		project = squirrel.Eq{"me.project_id": *ids.Project}
	}

	return whereAll(b,
		byWindow,
		inFilter("me.team_id", ids.Teams),
		project,
		inFilter("me.provider_id", ids.Providers),
	), nil
}

func sumCostQuery(window domain.Window, ids domain.Ids, dim domain.Dimension) (squirrel.SelectBuilder, error) {
	column, err := dimensionColumn("me", dim)
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	b := psql.Select(
		bucketExpr(window.Format)+" AS bucket",
		column,
		"COALESCE(SUM(me.cost), 0)",
	).
		From(metricEventsTable+" me").
		GroupBy(column, "bucket")

	return eventFilters(b, window, ids)
}

func (r *metricRepository) SumCostByDimension(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) ([]domain.CostRow, error) {
	builder, err := sumCostQuery(window, ids, dim)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildError("metric.SumCostByDimension", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("metric.SumCostByDimension", query, args, err)
	}
	defer rows.Close()

	result := make([]domain.CostRow, 0)
	for rows.Next() {
		var row domain.CostRow
		if err := rows.Scan(&row.Bucket, &row.ID, &row.Cost); err != nil {
			return nil, readError("metric.SumCostByDimension", query, args, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("metric.SumCostByDimension", query, args, err)
	}

	return result, nil
}

// dailyHistoryQuery soma por dia, mas rotula cada linha com o mês do dia
func dailyHistoryQuery(window domain.Window, ids domain.Ids, dim domain.Dimension) (squirrel.SelectBuilder, error) {
	column, err := dimensionColumn("me", dim)
	if err != nil {
		return squirrel.SelectBuilder{}, err
	}

	day := bucketExpr(domain.FormatDaily)
	b := psql.Select(
		bucketExpr(domain.FormatMonthly)+" AS month",
		column,
		"COALESCE(SUM(me.cost), 0)",
	).
		From(metricEventsTable+" me").
		GroupBy(column, day, "month").
		OrderBy(column, day)

	return eventFilters(b, window, ids)
}

func (r *metricRepository) DailyCostHistory(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) ([]domain.HistoryRow, error) {
	builder, err := dailyHistoryQuery(window, ids, dim)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildError("metric.DailyCostHistory", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("metric.DailyCostHistory", query, args, err)
	}
	defer rows.Close()

	result := make([]domain.HistoryRow, 0)
	for rows.Next() {
		var row domain.HistoryRow
		if err := rows.Scan(&row.Month, &row.ID, &row.DailySum); err != nil {
			return nil, readError("metric.DailyCostHistory", query, args, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("metric.DailyCostHistory", query, args, err)
	}

	return result, nil
}

func metricCostQuery(window domain.Window, providerID, projectID int) (squirrel.SelectBuilder, error) {
	ids := domain.Ids{Providers: []int{providerID}, Project: &projectID}

	b := psql.Select(
		bucketExpr(domain.FormatDaily)+" AS day",
		"me.metric_type_id",
		"COALESCE(SUM(me.cost), 0)",
	).
		From(metricEventsTable+" me").
		GroupBy("day", "me.metric_type_id").
		OrderBy("day", "me.metric_type_id")

	return eventFilters(b, window, ids)
}

func (r *metricRepository) SumCostByMetric(ctx context.Context, window domain.Window, providerID, projectID int) ([]domain.MetricCost, error) {
	builder, err := metricCostQuery(window, providerID, projectID)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildError("metric.SumCostByMetric", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("metric.SumCostByMetric", query, args, err)
	}
	defer rows.Close()

	result := make([]domain.MetricCost, 0)
	for rows.Next() {
		var row domain.MetricCost
		if err := rows.Scan(&row.Day, &row.MetricID, &row.Cost); err != nil {
			return nil, readError("metric.SumCostByMetric", query, args, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("metric.SumCostByMetric", query, args, err)
	}

	return result, nil
}

func (r *metricRepository) GetMetricTypes(ctx context.Context, providerID int) (map[int]string, error) {
	query, args, err := psql.Select("mt.id", "mt.name").
		From(metricTypesTable + " mt").
		Where(squirrel.Eq{"mt.provider_id": providerID}).
		ToSql()
	if err != nil {
		return nil, buildError("metric.GetMetricTypes", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("metric.GetMetricTypes", query, args, err)
	}
	defer rows.Close()

	types := make(map[int]string)
	for rows.Next() {
		var (
			id   int
			name string
		)
		if err := rows.Scan(&id, &name); err != nil {
			return nil, readError("metric.GetMetricTypes", query, args, err)
		}
		types[id] = name
	}

	if err := rows.Err(); err != nil {
		return nil, readError("metric.GetMetricTypes", query, args, err)
	}

	return types, nil
}

func itemCostQuery(window domain.Window, ids domain.Ids) (squirrel.SelectBuilder, error) {
	b := psql.Select(
		bucketExpr(window.Format)+" AS bucket",
		"mt.name",
		"COALESCE(SUM(me.cost), 0)",
		"p.external_name",
		"pr.name",
		"t.name",
	).
		From(metricEventsTable+" me").
		Join(metricTypesTable+" mt ON mt.id = me.metric_type_id").
		Join(projectsTable+" p ON p.id = me.project_id").
		Join(providersTable+" pr ON pr.id = me.provider_id").
		Join(teamsTable+" t ON t.id = me.team_id").
		GroupBy("bucket", "mt.name", "p.external_name", "pr.name", "t.name").
		OrderBy("bucket", "mt.name", "p.external_name")

	return eventFilters(b, window, ids)
}

func (r *metricRepository) ListItemCosts(ctx context.Context, window domain.Window, ids domain.Ids) ([]domain.ItemCostRow, error) {
	builder, err := itemCostQuery(window, ids)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildError("metric.ListItemCosts", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("metric.ListItemCosts", query, args, err)
	}
	defer rows.Close()

	result := make([]domain.ItemCostRow, 0)
	for rows.Next() {
		var row domain.ItemCostRow
		if err := rows.Scan(&row.Bucket, &row.Item, &row.Cost, &row.Project, &row.Provider, &row.Team); err != nil {
			return nil, readError("metric.ListItemCosts", query, args, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("metric.ListItemCosts", query, args, err)
	}

	return result, nil
}
