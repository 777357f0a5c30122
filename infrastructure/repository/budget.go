package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type BudgetRepository interface {
	SumBudgetByDimension(ctx context.Context, ids domain.Ids, dim domain.Dimension) ([]domain.BudgetRow, error)
	GetResponses(ctx context.Context, ids domain.Ids) (domain.ResponseIndex, error)
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.BudgetEntry, error)
	GetBudget(ctx context.Context, id int) (*domain.BudgetEntry, error)
	InsertBudget(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
	UpdateBudget(ctx context.Context, entry *domain.BudgetEntry) error
	DeleteBudget(ctx context.Context, id int) error
	CloneMonth(ctx context.Context, req domain.CloneRequest) (int64, error)
}

type budgetRepository struct {
	conn postgres.Conn
}

func NewBudgetRepository(conn postgres.Conn) BudgetRepository {
	return &budgetRepository{
		conn: conn,
	}
}

// sumBudgetQuery agrupa orçamentos por mês e provider ou time
func sumBudgetQuery(ids domain.Ids, dim domain.Dimension) (squirrel.SelectBuilder, error) {
	var column string
	switch dim {
	case domain.DimensionProvider:
		column = "b.provider_id"
	case domain.DimensionTeam:
		column = "b.team_id"
	default:
		return squirrel.SelectBuilder{}, domain.NewFilterError("dimension", string(dim))
	}

	return whereAll(
		psql.Select("b.month", column, "COALESCE(SUM(b.amount), 0)").
			From(budgetsTable+" b").
			GroupBy(column, "b.month").
			OrderBy(column, "b.month"),
		inFilter("b.team_id", ids.Teams),
		inFilter("b.provider_id", ids.Providers),
	), nil
}

func (r *budgetRepository) SumBudgetByDimension(ctx context.Context, ids domain.Ids, dim domain.Dimension) ([]domain.BudgetRow, error) {
	builder, err := sumBudgetQuery(ids, dim)
	if err != nil {
		return nil, err
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, buildError("budget.SumBudgetByDimension", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("budget.SumBudgetByDimension", query, args, err)
	}
	defer rows.Close()

	result := make([]domain.BudgetRow, 0)
	for rows.Next() {
		var row domain.BudgetRow
		if err := rows.Scan(&row.Month, &row.ID, &row.Amount); err != nil {
			return nil, readError("budget.SumBudgetByDimension", query, args, err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("budget.SumBudgetByDimension", query, args, err)
	}

	return result, nil
}

func responsesQuery(ids domain.Ids) squirrel.SelectBuilder {
	return whereAll(
		psql.Select("b.team_id", "p.name", "b.month", "b.response").
			From(budgetsTable+" b").
			Join(providersTable+" p ON p.id = b.provider_id").
			Where(squirrel.NotEq{"b.response": nil}),
		inFilter("b.team_id", ids.Teams),
		inFilter("b.provider_id", ids.Providers),
	)
}

func (r *budgetRepository) GetResponses(ctx context.Context, ids domain.Ids) (domain.ResponseIndex, error) {
	query, args, err := responsesQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("budget.GetResponses", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("budget.GetResponses", query, args, err)
	}
	defer rows.Close()

	responses := make(domain.ResponseIndex)
	for rows.Next() {
		var (
			teamID                    int
			provider, month, response string
		)
		if err := rows.Scan(&teamID, &provider, &month, &response); err != nil {
			return nil, readError("budget.GetResponses", query, args, err)
		}
		responses.Set(teamID, provider, month, response)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("budget.GetResponses", query, args, err)
	}

	return responses, nil
}

func listBudgetsQuery(filter domain.BudgetFilter) squirrel.SelectBuilder {
	b := psql.Select("b.id", "b.provider_id", "b.team_id", "b.month", "b.amount", "b.comment", "b.response").
		From(budgetsTable+" b").
		OrderBy("b.month DESC", "b.team_id", "b.provider_id")

	if filter.ID != nil {
		b = b.Where(squirrel.Eq{"b.id": *filter.ID})
	}
	if filter.ProviderID != nil {
		b = b.Where(squirrel.Eq{"b.provider_id": *filter.ProviderID})
	}
	if filter.TeamID != nil {
		b = b.Where(squirrel.Eq{"b.team_id": *filter.TeamID})
	}
	if filter.MonthPrefix != "" {
		b = b.Where(squirrel.Like{"b.month": filter.MonthPrefix + "%"})
	}
	if filter.AmountPrefix != "" {
		b = b.Where(squirrel.Expr("CAST(b.amount AS TEXT) LIKE ?", filter.AmountPrefix+"%"))
	}

	return b
}

func (r *budgetRepository) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.BudgetEntry, error) {
	query, args, err := listBudgetsQuery(filter).ToSql()
	if err != nil {
		return nil, buildError("budget.ListBudgets", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("budget.ListBudgets", query, args, err)
	}
	defer rows.Close()

	budgets := make([]domain.BudgetEntry, 0)
	for rows.Next() {
		entry, err := scanBudget(rows)
		if err != nil {
			return nil, readError("budget.ListBudgets", query, args, err)
		}
		budgets = append(budgets, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("budget.ListBudgets", query, args, err)
	}

	return budgets, nil
}

func (r *budgetRepository) GetBudget(ctx context.Context, id int) (*domain.BudgetEntry, error) {
	query, args, err := listBudgetsQuery(domain.BudgetFilter{ID: &id}).ToSql()
	if err != nil {
		return nil, buildError("budget.GetBudget", err)
	}

	entry, err := scanBudget(r.conn.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, readError("budget.GetBudget", query, args, err)
	}

	return &entry, nil
}

func (r *budgetRepository) InsertBudget(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	query, args, err := psql.Insert(budgetsTable).
		Columns("provider_id", "team_id", "month", "amount", "comment", "response").
		Values(entry.ProviderID, entry.TeamID, entry.Month, entry.Amount, entry.Comment, entry.Response).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, buildError("budget.InsertBudget", err)
	}

	created := *entry
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, writeError("budget.InsertBudget", err)
	}

	return &created, nil
}

func (r *budgetRepository) UpdateBudget(ctx context.Context, entry *domain.BudgetEntry) error {
	query, args, err := psql.Update(budgetsTable).
		Set("provider_id", entry.ProviderID).
		Set("team_id", entry.TeamID).
		Set("month", entry.Month).
		Set("amount", entry.Amount).
		Set("comment", entry.Comment).
		Set("response", entry.Response).
		Where(squirrel.Eq{"id": entry.ID}).
		ToSql()
	if err != nil {
		return buildError("budget.UpdateBudget", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("budget.UpdateBudget", err)
	}

	return writeErrorOrNil("budget.UpdateBudget", requireAffected(res))
}

func (r *budgetRepository) DeleteBudget(ctx context.Context, id int) error {
	query, args, err := psql.Delete(budgetsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return buildError("budget.DeleteBudget", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("budget.DeleteBudget", err)
	}

	return writeErrorOrNil("budget.DeleteBudget", requireAffected(res))
}

// cloneMonthQuery copia os orçamentos do mês de origem ignorando os que já existem no destino
func cloneMonthQuery(req domain.CloneRequest) squirrel.InsertBuilder {
	source := squirrel.Select().
		Columns("s.provider_id", "s.team_id").
		Column("CAST(? AS TEXT)", req.Target).
		Column("s.amount").
		Column("CAST(? AS TEXT)", fmt.Sprintf("Cloned from %s", req.Source)).
		From(budgetsTable + " s").
		Where(squirrel.Eq{"s.month": req.Source}).
		Where(squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM "+budgetsTable+" d WHERE d.provider_id = s.provider_id AND d.team_id = s.team_id AND d.month = ?)",
			req.Target,
		))

	if req.ProviderID != nil {
		source = source.Where(squirrel.Eq{"s.provider_id": *req.ProviderID})
	}
	if req.TeamID != nil {
		source = source.Where(squirrel.Eq{"s.team_id": *req.TeamID})
	}

	return psql.Insert(budgetsTable).
		Columns("provider_id", "team_id", "month", "amount", "comment").
		Select(source).
		Suffix("ON CONFLICT DO NOTHING")
}

// CloneMonth é atômico: todas as linhas são copiadas ou nenhuma
func (r *budgetRepository) CloneMonth(ctx context.Context, req domain.CloneRequest) (int64, error) {
	query, args, err := cloneMonthQuery(req).ToSql()
	if err != nil {
		return 0, buildError("budget.CloneMonth", err)
	}

	var cloned int64
	err = r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		res, err := tx.Exec(ctx, query, args...)
		if err != nil {
			return err
		}
		cloned, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return 0, writeError("budget.CloneMonth", err)
	}

	return cloned, nil
}

func writeErrorOrNil(op string, err error) error {
	if err == nil {
		return nil
	}
	return writeError(op, err)
}

func scanBudget(row scanner) (domain.BudgetEntry, error) {
	var (
		b        domain.BudgetEntry
		comment  sql.NullString
		response sql.NullString
	)

	if err := row.Scan(&b.ID, &b.ProviderID, &b.TeamID, &b.Month, &b.Amount, &comment, &response); err != nil {
		return domain.BudgetEntry{}, err
	}

	b.Comment = comment.String
	if response.Valid {
		b.Response = &response.String
	}

	return b, nil
}
