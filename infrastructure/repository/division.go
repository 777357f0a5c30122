package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type DivisionRepository interface {
	ListDivisions(ctx context.Context) ([]domain.Division, error)
	InsertDivision(ctx context.Context, division *domain.Division) (*domain.Division, error)
	UpdateDivision(ctx context.Context, division *domain.Division) error
	DeleteDivision(ctx context.Context, id int) error
}

type divisionRepository struct {
	conn postgres.Conn
}

func NewDivisionRepository(conn postgres.Conn) DivisionRepository {
	return &divisionRepository{
		conn: conn,
	}
}

func (r *divisionRepository) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	query, args, err := divisionsQuery(nil).ToSql()
	if err != nil {
		return nil, buildError("division.ListDivisions", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("division.ListDivisions", query, args, err)
	}
	defer rows.Close()

	divisions := make([]domain.Division, 0)
	for rows.Next() {
		var d domain.Division
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, readError("division.ListDivisions", query, args, err)
		}
		divisions = append(divisions, d)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("division.ListDivisions", query, args, err)
	}

	return divisions, nil
}

func (r *divisionRepository) InsertDivision(ctx context.Context, division *domain.Division) (*domain.Division, error) {
	query, args, err := psql.Insert(divisionsTable).
		Columns("name").
		Values(division.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, buildError("division.InsertDivision", err)
	}

	created := *division
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, writeError("division.InsertDivision", err)
	}

	return &created, nil
}

func (r *divisionRepository) UpdateDivision(ctx context.Context, division *domain.Division) error {
	query, args, err := psql.Update(divisionsTable).
		Set("name", division.Name).
		Where(squirrel.Eq{"id": division.ID}).
		ToSql()
	if err != nil {
		return buildError("division.UpdateDivision", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("division.UpdateDivision", err)
	}

	return writeErrorOrNil("division.UpdateDivision", requireAffected(res))
}

// DeleteDivision desvincula os times antes de remover a divisão
func (r *divisionRepository) DeleteDivision(ctx context.Context, id int) error {
	detachQuery, detachArgs, err := psql.Update(teamsTable).
		Set("division_id", nil).
		Where(squirrel.Eq{"division_id": id}).
		ToSql()
	if err != nil {
		return buildError("division.DeleteDivision", err)
	}

	deleteQuery, deleteArgs, err := psql.Delete(divisionsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return buildError("division.DeleteDivision", err)
	}

	err = r.conn.RunInTransaction(ctx, func(tx postgres.Queryer) error {
		if _, err := tx.Exec(ctx, detachQuery, detachArgs...); err != nil {
			return err
		}
		res, err := tx.Exec(ctx, deleteQuery, deleteArgs...)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return writeError("division.DeleteDivision", err)
	}

	return nil
}
