package administering

import (
	"context"
	"strconv"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
)

func (s *Service) ListTeams(ctx context.Context) ([]domain.Team, error) {
	return s.teams.ListTeams(ctx)
}

func (s *Service) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	name, err := requireName("name", team.Name)
	if err != nil {
		return nil, err
	}
	team.Name = name

	created, err := s.teams.InsertTeam(ctx, team)
	if err != nil {
		return nil, err
	}

	logWrite(ctx, "team.create", created.ID)
	return created, nil
}

func (s *Service) UpdateTeam(ctx context.Context, team *domain.Team) error {
	if err := requireID(team.ID); err != nil {
		return err
	}
	name, err := requireName("name", team.Name)
	if err != nil {
		return err
	}
	team.Name = name

	if err := s.teams.UpdateTeam(ctx, team); err != nil {
		return err
	}

	logWrite(ctx, "team.update", team.ID)
	return nil
}

func (s *Service) DeleteTeam(ctx context.Context, id int) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, "team.delete", id)
	return nil
}

func (s *Service) ListProjects(ctx context.Context, ids domain.Ids) ([]domain.Project, error) {
	return s.projects.ListProjects(ctx, ids)
}

func validateProject(project *domain.Project) error {
	name, err := requireName("external_name", project.ExternalName)
	if err != nil {
		return err
	}
	project.ExternalName = name

	if project.ProviderID <= 0 {
		return domain.NewFilterError("provider_id", strconv.Itoa(project.ProviderID))
	}
	if project.TeamID <= 0 {
		return domain.NewFilterError("team_id", strconv.Itoa(project.TeamID))
	}
	return nil
}

func (s *Service) CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	if err := validateProject(project); err != nil {
		return nil, err
	}

	created, err := s.projects.InsertProject(ctx, project)
	if err != nil {
		return nil, err
	}

	logWrite(ctx, "project.create", created.ID)
	return created, nil
}

func (s *Service) UpdateProject(ctx context.Context, project *domain.Project) error {
	if err := requireID(project.ID); err != nil {
		return err
	}
	if err := validateProject(project); err != nil {
		return err
	}

	if err := s.projects.UpdateProject(ctx, project); err != nil {
		return err
	}

	logWrite(ctx, "project.update", project.ID)
	return nil
}

func (s *Service) DeleteProject(ctx context.Context, id int) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.projects.DeleteProject(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, "project.delete", id)
	return nil
}

func (s *Service) ListDivisions(ctx context.Context) ([]domain.Division, error) {
	return s.divisions.ListDivisions(ctx)
}

func (s *Service) CreateDivision(ctx context.Context, division *domain.Division) (*domain.Division, error) {
	name, err := requireName("name", division.Name)
	if err != nil {
		return nil, err
	}
	division.Name = name

	created, err := s.divisions.InsertDivision(ctx, division)
	if err != nil {
		return nil, err
	}

	logWrite(ctx, "division.create", created.ID)
	return created, nil
}

func (s *Service) UpdateDivision(ctx context.Context, division *domain.Division) error {
	if err := requireID(division.ID); err != nil {
		return err
	}
	name, err := requireName("name", division.Name)
	if err != nil {
		return err
	}
	division.Name = name

	if err := s.divisions.UpdateDivision(ctx, division); err != nil {
		return err
	}

	logWrite(ctx, "division.update", division.ID)
	return nil
}

// DeleteDivision desvincula os times da divisão antes de removê-la
func (s *Service) DeleteDivision(ctx context.Context, id int) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.divisions.DeleteDivision(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, "division.delete", id)
	return nil
}
