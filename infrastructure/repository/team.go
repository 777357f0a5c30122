package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type TeamRepository interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	InsertTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
	DeleteTeam(ctx context.Context, id int) error
}

type teamRepository struct {
	conn postgres.Conn
}

func NewTeamRepository(conn postgres.Conn) TeamRepository {
	return &teamRepository{
		conn: conn,
	}
}

func (r *teamRepository) ListTeams(ctx context.Context) ([]domain.Team, error) {
	query, args, err := teamsQuery(nil).ToSql()
	if err != nil {
		return nil, buildError("team.ListTeams", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("team.ListTeams", query, args, err)
	}
	defer rows.Close()

	teams := make([]domain.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, readError("team.ListTeams", query, args, err)
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("team.ListTeams", query, args, err)
	}

	return teams, nil
}

func (r *teamRepository) InsertTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	query, args, err := psql.Insert(teamsTable).
		Columns("name", "division_id").
		Values(team.Name, nullableInt(team.DivisionID)).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, buildError("team.InsertTeam", err)
	}

	created := *team
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, writeError("team.InsertTeam", err)
	}

	return &created, nil
}

func (r *teamRepository) UpdateTeam(ctx context.Context, team *domain.Team) error {
	query, args, err := psql.Update(teamsTable).
		Set("name", team.Name).
		Set("division_id", nullableInt(team.DivisionID)).
		Where(squirrel.Eq{"id": team.ID}).
		ToSql()
	if err != nil {
		return buildError("team.UpdateTeam", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("team.UpdateTeam", err)
	}

	return writeErrorOrNil("team.UpdateTeam", requireAffected(res))
}

func (r *teamRepository) DeleteTeam(ctx context.Context, id int) error {
	query, args, err := psql.Delete(teamsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return buildError("team.DeleteTeam", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("team.DeleteTeam", err)
	}

	return writeErrorOrNil("team.DeleteTeam", requireAffected(res))
}
