package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

type ProjectRepository interface {
	ListProjects(ctx context.Context, ids domain.Ids) ([]domain.Project, error)
	InsertProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) error
	DeleteProject(ctx context.Context, id int) error
}

type projectRepository struct {
	conn postgres.Conn
}

func NewProjectRepository(conn postgres.Conn) ProjectRepository {
	return &projectRepository{
		conn: conn,
	}
}

func (r *projectRepository) ListProjects(ctx context.Context, ids domain.Ids) ([]domain.Project, error) {
	query, args, err := projectsQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("project.ListProjects", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("project.ListProjects", query, args, err)
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, readError("project.ListProjects", query, args, err)
		}
		projects = append(projects, p)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("project.ListProjects", query, args, err)
	}

	return projects, nil
}

func (r *projectRepository) InsertProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	query, args, err := psql.Insert(projectsTable).
		Columns("external_name", "external_id", "provider_id", "team_id").
		Values(project.ExternalName, project.ExternalID, project.ProviderID, project.TeamID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, buildError("project.InsertProject", err)
	}

	created := *project
	if err := r.conn.QueryRow(ctx, query, args...).Scan(&created.ID); err != nil {
		return nil, writeError("project.InsertProject", err)
	}

	return &created, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project *domain.Project) error {
	query, args, err := psql.Update(projectsTable).
		Set("external_name", project.ExternalName).
		Set("external_id", project.ExternalID).
		Set("provider_id", project.ProviderID).
		Set("team_id", project.TeamID).
		Where(squirrel.Eq{"id": project.ID}).
		ToSql()
	if err != nil {
		return buildError("project.UpdateProject", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("project.UpdateProject", err)
	}

	return writeErrorOrNil("project.UpdateProject", requireAffected(res))
}

func (r *projectRepository) DeleteProject(ctx context.Context, id int) error {
	query, args, err := psql.Delete(projectsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return buildError("project.DeleteProject", err)
	}

	res, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return writeError("project.DeleteProject", err)
	}

	return writeErrorOrNil("project.DeleteProject", requireAffected(res))
}
