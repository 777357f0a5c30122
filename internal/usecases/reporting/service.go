// Package reporting monta os relatórios tabulares exportados em CSV
package reporting

import (
	"context"
	"time"

	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

const (
	actualsLabel  = "Actuals:"
	budgetsLabel  = "Budgets:"
	allTeamsLabel = "All Teams:"
)

type Reporter interface {
	BudgetReport(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) (domain.Table, error)
	OverUnderReport(ctx context.Context, window domain.Window, ids domain.Ids) (domain.Table, error)
	ItemCostReport(ctx context.Context, window domain.Window, ids domain.Ids) (domain.Table, error)
}

type Service struct {
	spending   spending.Spender
	references repository.ReferenceRepository
	metrics    repository.MetricRepository
	budgets    repository.BudgetRepository
	now        func() time.Time
}

func NewService(
	spender spending.Spender,
	references repository.ReferenceRepository,
	metrics repository.MetricRepository,
	budgets repository.BudgetRepository,
) Reporter {
	return &Service{
		spending:   spender,
		references: references,
		metrics:    metrics,
		budgets:    budgets,
		now:        time.Now,
	}
}

// BudgetReport concatena as tabelas de gastos e de orçamentos sobre os mesmos meses
func (s *Service) BudgetReport(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) (domain.Table, error) {
	window = s.monthlyWindow(window)

	actuals, budgets, err := s.load(ctx, window, ids, dim)
	if err != nil {
		return nil, err
	}

	months := s.reportMonths(window, actuals, budgets)

	table := CostTable(actuals, months, actualsLabel)
	return append(table, CostTable(budgets, months, budgetsLabel)...), nil
}

// OverUnderReport gera uma tabela por time do filtro, ou uma única para todos os times
func (s *Service) OverUnderReport(ctx context.Context, window domain.Window, ids domain.Ids) (domain.Table, error) {
	window = s.monthlyWindow(window)

	responses, err := s.budgets.GetResponses(ctx, ids)
	if err != nil {
		return nil, err
	}

	if ids.Teams == nil {
		return s.overUnder(ctx, window, ids, responses, nil, allTeamsLabel)
	}

	teams, err := s.references.GetTeams(ctx, ids.Teams)
	if err != nil {
		return nil, err
	}

	tables := make([]domain.Table, len(ids.Teams))
	g, gctx := errgroup.WithContext(ctx)

	for i, teamID := range ids.Teams {
		team, ok := teams[teamID]
		if !ok {
			log.ForContext(ctx).WithField("team_id", teamID).Warn("reporting: time sem referência ignorado")
			continue
		}

		g.Go(func() error {
			id := teamID
			table, err := s.overUnder(gctx, window, ids.WithTeams([]int{teamID}), responses, &id, team.Name+":")
			if err != nil {
				return err
			}
			tables[i] = table
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(domain.Table, 0)
	for _, table := range tables {
		out = append(out, table...)
	}
	return out, nil
}

// ItemCostReport lista o custo de cada item de billing na janela
func (s *Service) ItemCostReport(ctx context.Context, window domain.Window, ids domain.Ids) (domain.Table, error) {
	window = domain.ResolveWindow(window, s.now())

	items, err := s.metrics.ListItemCosts(ctx, window, ids)
	if err != nil {
		return nil, err
	}

	return ItemTable(items), nil
}

func (s *Service) overUnder(ctx context.Context, window domain.Window, ids domain.Ids, responses domain.ResponseIndex, teamID *int, label string) (domain.Table, error) {
	actuals, budgets, err := s.load(ctx, window, ids, domain.DimensionProvider)
	if err != nil {
		return nil, err
	}

	months := s.reportMonths(window, actuals, budgets)
	return OverUnderTable(actuals, budgets, responses, teamID, months, label), nil
}

func (s *Service) load(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) (actuals, budgets *domain.SpendMatrix, err error) {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		actuals, err = s.spending.Aggregate(gctx, window, ids, dim)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = s.spending.AggregateBudgets(gctx, ids, dim)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return actuals, budgets, nil
}

// monthlyWindow força buckets mensais, já que orçamentos são mensais
func (s *Service) monthlyWindow(window domain.Window) domain.Window {
	window.Format = domain.FormatMonthly
	return domain.ResolveWindow(window, s.now())
}

// reportMonths une os meses com gasto e os meses de orçamento dentro da janela
func (s *Service) reportMonths(window domain.Window, actuals, budgets *domain.SpendMatrix) []string {
	loc := s.now().Location()

	inRange := make([]string, 0)
	for _, month := range budgets.Buckets() {
		start, err := domain.ParseMonth(month, loc)
		if err != nil {
			continue
		}
		if window.Contains(start) {
			inRange = append(inRange, month)
		}
	}

	return domain.UnionBuckets(actuals.Buckets(), inRange)
}
