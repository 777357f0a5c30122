package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

// ReferenceRepository resolve ids de dimensão para seus registros.
// Filtro nil retorna todas as linhas; nenhuma linha retorna mapa vazio.
type ReferenceRepository interface {
	GetProviders(ctx context.Context, ids []int) (map[int]domain.Provider, error)
	GetTeams(ctx context.Context, ids []int) (map[int]domain.Team, error)
	GetDivisions(ctx context.Context, ids []int) (map[int]domain.Division, error)
	GetProjects(ctx context.Context, ids domain.Ids) (map[int]domain.Project, error)
	GetTeamDivisions(ctx context.Context, teamIDs []int) (map[int]*int, error)
	GetTeamIDsByDivisions(ctx context.Context, divisionIDs []int) ([]int, error)
}

type referenceRepository struct {
	conn postgres.Queryer
}

func NewReferenceRepository(conn postgres.Queryer) ReferenceRepository {
	return &referenceRepository{
		conn: conn,
	}
}

func providersQuery(ids []int) squirrel.SelectBuilder {
	return whereAll(
		psql.Select("p.id", "p.name", "p.last_etl", "p.tax_rate").
			From(providersTable+" p").
			OrderBy("p.id"),
		inFilter("p.id", ids),
	)
}

func (r *referenceRepository) GetProviders(ctx context.Context, ids []int) (map[int]domain.Provider, error) {
	query, args, err := providersQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("reference.GetProviders", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("reference.GetProviders", query, args, err)
	}
	defer rows.Close()

	providers := make(map[int]domain.Provider)
	for rows.Next() {
		p, err := scanProvider(rows)
		if err != nil {
			return nil, readError("reference.GetProviders", query, args, err)
		}
		providers[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, readError("reference.GetProviders", query, args, err)
	}

	return providers, nil
}

func teamsQuery(ids []int) squirrel.SelectBuilder {
	return whereAll(
		psql.Select("t.id", "t.name", "t.division_id").
			From(teamsTable+" t").
			OrderBy("t.name", "t.id"),
		inFilter("t.id", ids),
	)
}

func (r *referenceRepository) GetTeams(ctx context.Context, ids []int) (map[int]domain.Team, error) {
	query, args, err := teamsQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("reference.GetTeams", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("reference.GetTeams", query, args, err)
	}
	defer rows.Close()

	teams := make(map[int]domain.Team)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, readError("reference.GetTeams", query, args, err)
		}
		teams[t.ID] = t
	}

	if err := rows.Err(); err != nil {
		return nil, readError("reference.GetTeams", query, args, err)
	}

	return teams, nil
}

func divisionsQuery(ids []int) squirrel.SelectBuilder {
	return whereAll(
		psql.Select("d.id", "d.name").
			From(divisionsTable+" d").
			OrderBy("d.name", "d.id"),
		inFilter("d.id", ids),
	)
}

func (r *referenceRepository) GetDivisions(ctx context.Context, ids []int) (map[int]domain.Division, error) {
	query, args, err := divisionsQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("reference.GetDivisions", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("reference.GetDivisions", query, args, err)
	}
	defer rows.Close()

	divisions := make(map[int]domain.Division)
	for rows.Next() {
		var d domain.Division
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, readError("reference.GetDivisions", query, args, err)
		}
		divisions[d.ID] = d
	}

	if err := rows.Err(); err != nil {
		return nil, readError("reference.GetDivisions", query, args, err)
	}

	return divisions, nil
}

// projectsQuery filtra por provider, time e projeto
func projectsQuery(ids domain.Ids) squirrel.SelectBuilder {
	var project squirrel.Sqlizer
	if ids.Project != nil {
		project = squirrel.Eq{"p.id": *ids.Project}
	}

	return whereAll(
		psql.Select("p.id", "p.external_name", "p.external_id", "p.provider_id", "p.team_id").
			From(projectsTable+" p").
			OrderBy("p.external_name", "p.id"),
		inFilter("p.provider_id", ids.Providers),
		inFilter("p.team_id", ids.Teams),
		project,
	)
}

func (r *referenceRepository) GetProjects(ctx context.Context, ids domain.Ids) (map[int]domain.Project, error) {
	query, args, err := projectsQuery(ids).ToSql()
	if err != nil {
		return nil, buildError("reference.GetProjects", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("reference.GetProjects", query, args, err)
	}
	defer rows.Close()

	projects := make(map[int]domain.Project)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, readError("reference.GetProjects", query, args, err)
		}
		projects[p.ID] = p
	}

	if err := rows.Err(); err != nil {
		return nil, readError("reference.GetProjects", query, args, err)
	}

	return projects, nil
}

// GetTeamDivisions retorna time -> divisão; times sem divisão mapeiam para nil
func (r *referenceRepository) GetTeamDivisions(ctx context.Context, teamIDs []int) (map[int]*int, error) {
	teams, err := r.GetTeams(ctx, teamIDs)
	if err != nil {
		return nil, err
	}

	divisions := make(map[int]*int, len(teams))
	for id, t := range teams {
		divisions[id] = t.DivisionID
	}
	return divisions, nil
}

func teamIDsByDivisionsQuery(divisionIDs []int) squirrel.SelectBuilder {
	return whereAll(
		psql.Select("DISTINCT t.id").
			From(teamsTable+" t").
			OrderBy("t.id"),
		inFilter("t.division_id", divisionIDs),
	)
}

// GetTeamIDsByDivisions nunca retorna nil: lista vazia significa nenhum time
func (r *referenceRepository) GetTeamIDsByDivisions(ctx context.Context, divisionIDs []int) ([]int, error) {
	query, args, err := teamIDsByDivisionsQuery(divisionIDs).ToSql()
	if err != nil {
		return nil, buildError("reference.GetTeamIDsByDivisions", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, readError("reference.GetTeamIDsByDivisions", query, args, err)
	}
	defer rows.Close()

	teamIDs := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, readError("reference.GetTeamIDsByDivisions", query, args, err)
		}
		teamIDs = append(teamIDs, id)
	}

	if err := rows.Err(); err != nil {
		return nil, readError("reference.GetTeamIDsByDivisions", query, args, err)
	}

	return teamIDs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProvider(row scanner) (domain.Provider, error) {
	var (
		p       domain.Provider
		lastETL sql.NullTime
		taxRate decimal.NullDecimal
	)

	if err := row.Scan(&p.ID, &p.Name, &lastETL, &taxRate); err != nil {
		return domain.Provider{}, err
	}

	if lastETL.Valid {
		t := lastETL.Time.In(time.Local)
		p.LastETL = &t
	}
	if taxRate.Valid {
		p.TaxRate = taxRate.Decimal
	}

	return p, nil
}

func scanTeam(row scanner) (domain.Team, error) {
	var (
		t          domain.Team
		divisionID sql.NullInt64
	)

	if err := row.Scan(&t.ID, &t.Name, &divisionID); err != nil {
		return domain.Team{}, err
	}
	t.DivisionID = intPtr(divisionID)

	return t, nil
}

func scanProject(row scanner) (domain.Project, error) {
	var p domain.Project
	err := row.Scan(&p.ID, &p.ExternalName, &p.ExternalID, &p.ProviderID, &p.TeamID)
	return p, err
}
