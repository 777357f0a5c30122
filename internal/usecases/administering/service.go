// Package administering mantém os dados de referência e os orçamentos
package administering

import (
	"context"
	"strconv"
	"strings"

	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Administrator interface {
	ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.BudgetEntry, error)
	CreateBudget(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error)
	UpdateBudget(ctx context.Context, entry *domain.BudgetEntry) error
	DeleteBudget(ctx context.Context, id int) error
	CloneBudgets(ctx context.Context, req domain.CloneRequest) (*domain.CloneResult, error)

	ListTeams(ctx context.Context) ([]domain.Team, error)
	CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
	DeleteTeam(ctx context.Context, id int) error

	ListProjects(ctx context.Context, ids domain.Ids) ([]domain.Project, error)
	CreateProject(ctx context.Context, project *domain.Project) (*domain.Project, error)
	UpdateProject(ctx context.Context, project *domain.Project) error
	DeleteProject(ctx context.Context, id int) error

	ListDivisions(ctx context.Context) ([]domain.Division, error)
	CreateDivision(ctx context.Context, division *domain.Division) (*domain.Division, error)
	UpdateDivision(ctx context.Context, division *domain.Division) error
	DeleteDivision(ctx context.Context, id int) error

	ListProviders(ctx context.Context) ([]domain.Provider, error)
	ReferenceLists(ctx context.Context) (*domain.ReferenceLists, error)
}

type Service struct {
	budgets   repository.BudgetRepository
	teams     repository.TeamRepository
	projects  repository.ProjectRepository
	divisions repository.DivisionRepository
	providers repository.ProviderRepository
}

func NewService(
	budgets repository.BudgetRepository,
	teams repository.TeamRepository,
	projects repository.ProjectRepository,
	divisions repository.DivisionRepository,
	providers repository.ProviderRepository,
) Administrator {
	return &Service{
		budgets:   budgets,
		teams:     teams,
		projects:  projects,
		divisions: divisions,
		providers: providers,
	}
}

// ReferenceLists carrega em paralelo as listas dos seletores
func (s *Service) ReferenceLists(ctx context.Context) (*domain.ReferenceLists, error) {
	lists := &domain.ReferenceLists{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		lists.Providers, err = s.providers.ListProviders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		lists.Teams, err = s.teams.ListTeams(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		lists.Divisions, err = s.divisions.ListDivisions(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		lists.Projects, err = s.projects.ListProjects(gctx, domain.Ids{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lists, nil
}

func (s *Service) ListProviders(ctx context.Context) ([]domain.Provider, error) {
	return s.providers.ListProviders(ctx)
}

func requireID(id int) error {
	if id <= 0 {
		return domain.NewFilterError("id", strconv.Itoa(id))
	}
	return nil
}

func requireName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewFilterError(field, name)
	}
	return name, nil
}

func logWrite(ctx context.Context, op string, id int) {
	log.ForContext(ctx).WithFields(log.Fields{
		"op": op,
		"id": id,
	}).Info("administering: registro alterado")
}
