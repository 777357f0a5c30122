package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type MatchRuleRepository interface {
	ListByProvider(ctx context.Context, providerID int) ([]domain.MatchRule, error)
	ReplaceForProvider(ctx context.Context, providerID int, rules []domain.MatchRule) error
}

type matchRuleRepository struct {
	conn postgres.Conn
}

func NewMatchRuleRepository(conn postgres.Conn) MatchRuleRepository {
	return &matchRuleRepository{
		conn: conn,
	}
}

func matchRulesQuery(providerID int) squirrel.SelectBuilder {
	return psql.Select("r.id", "r.provider_id", "r.group_name", "r.text_match", "r.scale_factor", "r.scale_unit", "r.rank").
		From(matchRulesTable+" r").
		Where(squirrel.Eq{"r.provider_id": providerID}).
		OrderBy("r.rank ASC", "r.id ASC")
}

// ListByProvider retorna as regras em ordem de prioridade
func (r *matchRuleRepository) ListByProvider(ctx context.Context, providerID int) ([]domain.MatchRule, error) {
	query, args, err := matchRulesQuery(providerID).ToSql()
	if err != nil {
		return nil, buildError("matchRule.ListByProvider", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("matchRule.ListByProvider", query, args, err)
	}
	defer rows.Close()

	rules := make([]domain.MatchRule, 0)
	for rows.Next() {
		var (
			rule      domain.MatchRule
			scaleUnit sql.NullString
		)
		err := rows.Scan(&rule.ID, &rule.ProviderID, &rule.GroupName, &rule.TextMatch, &rule.ScaleFactor, &scaleUnit, &rule.Rank)
		if err != nil {
			return nil, readError("matchRule.ListByProvider", query, args, err)
		}
		if scaleUnit.Valid {
			rule.ScaleUnit = &scaleUnit.String
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("matchRule.ListByProvider", query, args, err)
	}

	return rules, nil
}

// ReplaceForProvider troca todas as regras do provider em uma única transação
func (r *matchRuleRepository) ReplaceForProvider(ctx context.Context, providerID int, rules []domain.MatchRule) error {
	deleteQuery, deleteArgs, err := psql.Delete(matchRulesTable).
		Where(squirrel.Eq{"provider_id": providerID}).
		ToSql()
	if err != nil {
		return buildError("matchRule.ReplaceForProvider", err)
	}

	insert := psql.Insert(matchRulesTable).
		Columns("provider_id", "group_name", "text_match", "scale_factor", "scale_unit", "rank")
	for _, rule := range rules {
		insert = insert.Values(providerID, rule.GroupName, rule.TextMatch, rule.ScaleFactor, rule.ScaleUnit, rule.Rank)
	}

	err = r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.Exec(ctx, deleteQuery, deleteArgs...); err != nil {
			return err
		}
		if len(rules) == 0 {
			return nil
		}

		insertQuery, insertArgs, err := insert.ToSql()
		if err != nil {
			return buildError("matchRule.ReplaceForProvider", err)
		}
		_, err = tx.Exec(ctx, insertQuery, insertArgs...)
		return err
	})
	if err != nil {
		return writeError("matchRule.ReplaceForProvider", err)
	}

	return nil
}
