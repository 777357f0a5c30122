package spending

import (
	"context"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"golang.org/x/sync/errgroup"
)

// divisionScope são as divisões selecionadas e os times que pertencem a elas
type divisionScope struct {
	divisions     map[int]domain.Division
	teamIDs       []int
	teamDivisions map[int]*int
}

// resolveDivisionScope substitui o filtro de times pelos times das divisões selecionadas
func (s *Service) resolveDivisionScope(ctx context.Context, ids domain.Ids) (*divisionScope, error) {
	scope := &divisionScope{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scope.divisions, err = s.references.GetDivisions(gctx, ids.Divisions)
		return err
	})
	g.Go(func() error {
		var err error
		scope.teamIDs, err = s.references.GetTeamIDsByDivisions(gctx, ids.Divisions)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(scope.teamIDs) == 0 {
		scope.teamIDs = []int{}
		scope.teamDivisions = map[int]*int{}
		return scope, nil
	}

	teamDivisions, err := s.references.GetTeamDivisions(ctx, scope.teamIDs)
	if err != nil {
		return nil, err
	}
	scope.teamDivisions = teamDivisions

	return scope, nil
}

func (s *Service) aggregateDivisions(ctx context.Context, window domain.Window, ids domain.Ids) (*domain.SpendMatrix, error) {
	scope, err := s.resolveDivisionScope(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(scope.teamIDs) == 0 {
		return domain.NewSpendMatrix(), nil
	}

	rows, err := s.metrics.SumCostByDimension(ctx, window, ids.WithTeams(scope.teamIDs), domain.DimensionTeam)
	if err != nil {
		return nil, err
	}

	teams := costMatrix(ctx, domain.DimensionTeam, rows, teamKeys(scope.teamDivisions))
	return RollupToDivisions(teams, scope.teamDivisions, scope.divisions), nil
}

func (s *Service) aggregateDivisionBudgets(ctx context.Context, ids domain.Ids) (*domain.SpendMatrix, error) {
	scope, err := s.resolveDivisionScope(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(scope.teamIDs) == 0 {
		return domain.NewSpendMatrix(), nil
	}

	rows, err := s.budgets.SumBudgetByDimension(ctx, ids.WithTeams(scope.teamIDs), domain.DimensionTeam)
	if err != nil {
		return nil, err
	}

	teams := budgetMatrix(ctx, domain.DimensionTeam, rows, teamKeys(scope.teamDivisions))
	return RollupToDivisions(teams, scope.teamDivisions, scope.divisions), nil
}

// RollupToDivisions soma os valores dos times na divisão de cada time.
// Times sem divisão, ou com divisão fora do mapa, ficam de fora.
func RollupToDivisions(teams *domain.SpendMatrix, teamDivisions map[int]*int, divisions map[int]domain.Division) *domain.SpendMatrix {
	out := domain.NewSpendMatrix()

	for _, teamID := range teams.IDs() {
		divisionID := teamDivisions[teamID]
		if divisionID == nil {
			continue
		}
		division, ok := divisions[*divisionID]
		if !ok {
			continue
		}

		out.SetName(division.ID, division.Name)
		for _, bucket := range teams.BucketsOf(teamID) {
			out.Add(division.ID, bucket, teams.Get(teamID, bucket))
		}
	}

	return out
}

// teamKeys usa o próprio id como nome; só a presença no mapa importa aqui
func teamKeys(teamDivisions map[int]*int) map[int]string {
	names := make(map[int]string, len(teamDivisions))
	for id := range teamDivisions {
		names[id] = ""
	}
	return names
}
