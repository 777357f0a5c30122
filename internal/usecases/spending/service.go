// Package spending agrega os custos por dimensão e os compara com os orçamentos
package spending

import (
	"context"
	"time"

	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Spender interface {
	GetSpend(ctx context.Context, req domain.SpendRequest) ([]domain.SpendPoint, error)
	Aggregate(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) (*domain.SpendMatrix, error)
	AggregateBudgets(ctx context.Context, ids domain.Ids, dim domain.Dimension) (*domain.SpendMatrix, error)
	DimensionNames(ctx context.Context, ids domain.Ids, dim domain.Dimension) (map[int]string, error)
}

type Service struct {
	references repository.ReferenceRepository
	metrics    repository.MetricRepository
	budgets    repository.BudgetRepository
	now        func() time.Time
}

func NewService(
	references repository.ReferenceRepository,
	metrics repository.MetricRepository,
	budgets repository.BudgetRepository,
) Spender {
	return &Service{
		references: references,
		metrics:    metrics,
		budgets:    budgets,
		now:        time.Now,
	}
}

// GetSpend retorna a série de gastos e, opcionalmente, a série de orçamento.
// Pontos de orçamento só aparecem nos meses presentes nos gastos.
func (s *Service) GetSpend(ctx context.Context, req domain.SpendRequest) ([]domain.SpendPoint, error) {
	window := domain.ResolveWindow(req.Window, s.now())

	actuals, err := s.Aggregate(ctx, window, req.Ids, req.Dimension)
	if err != nil {
		return nil, err
	}

	skipZero := req.Dimension == domain.DimensionDivision
	points := make([]domain.SpendPoint, 0)
	for _, id := range actuals.IDs() {
		for _, bucket := range actuals.BucketsOf(id) {
			spend := actuals.Get(id, bucket)
			if skipZero && spend == 0 {
				continue
			}
			points = append(points, domain.NewSpendPoint(bucket, id, actuals.Name(id), spend))
		}
	}

	if !req.AddBudget || req.Dimension == domain.DimensionProject {
		return points, nil
	}

	budgets, err := s.AggregateBudgets(ctx, req.Ids, req.Dimension)
	if err != nil {
		return nil, err
	}

	months := make(map[string]struct{})
	for _, bucket := range actuals.Buckets() {
		months[bucket] = struct{}{}
	}

	for _, id := range budgets.IDs() {
		for _, month := range budgets.BucketsOf(id) {
			if _, ok := months[month]; !ok {
				continue
			}
			amount := budgets.Get(id, month)
			if skipZero && amount == 0 {
				continue
			}
			points = append(points, domain.NewBudgetPoint(month, id, budgets.Name(id), amount))
		}
	}

	return points, nil
}

// Aggregate soma os custos da janela agrupados pela dimensão
func (s *Service) Aggregate(ctx context.Context, window domain.Window, ids domain.Ids, dim domain.Dimension) (*domain.SpendMatrix, error) {
	window = domain.ResolveWindow(window, s.now())

	if dim == domain.DimensionDivision {
		return s.aggregateDivisions(ctx, window, ids)
	}

	var (
		names map[int]string
		rows  []domain.CostRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = s.DimensionNames(gctx, ids, dim)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.metrics.SumCostByDimension(gctx, window, ids, dim)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return costMatrix(ctx, dim, rows, names), nil
}

// AggregateBudgets soma os orçamentos por mês; projetos não têm orçamento
func (s *Service) AggregateBudgets(ctx context.Context, ids domain.Ids, dim domain.Dimension) (*domain.SpendMatrix, error) {
	switch dim {
	case domain.DimensionProject:
		return domain.NewSpendMatrix(), nil
	case domain.DimensionDivision:
		return s.aggregateDivisionBudgets(ctx, ids)
	}

	var (
		names map[int]string
		rows  []domain.BudgetRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = s.DimensionNames(gctx, ids, dim)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.budgets.SumBudgetByDimension(gctx, ids, dim)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return budgetMatrix(ctx, dim, rows, names), nil
}

// DimensionNames resolve os nomes de exibição dos ids da dimensão
func (s *Service) DimensionNames(ctx context.Context, ids domain.Ids, dim domain.Dimension) (map[int]string, error) {
	names := make(map[int]string)

	switch dim {
	case domain.DimensionProvider:
		providers, err := s.references.GetProviders(ctx, ids.Providers)
		if err != nil {
			return nil, err
		}
		for id, p := range providers {
			names[id] = p.Name
		}
	case domain.DimensionTeam:
		teams, err := s.references.GetTeams(ctx, ids.Teams)
		if err != nil {
			return nil, err
		}
		for id, t := range teams {
			names[id] = t.Name
		}
	case domain.DimensionProject:
		projects, err := s.references.GetProjects(ctx, ids)
		if err != nil {
			return nil, err
		}
		for id, p := range projects {
			names[id] = p.ExternalName
		}
	case domain.DimensionDivision:
		divisions, err := s.references.GetDivisions(ctx, ids.Divisions)
		if err != nil {
			return nil, err
		}
		for id, d := range divisions {
			names[id] = d.Name
		}
	default:
		return nil, domain.NewFilterError("dimension", string(dim))
	}

	return names, nil
}

// costMatrix descarta linhas cujo id não existe nas referências
func costMatrix(ctx context.Context, dim domain.Dimension, rows []domain.CostRow, names map[int]string) *domain.SpendMatrix {
	m := domain.NewSpendMatrix()
	orphans := 0

	for _, row := range rows {
		name, ok := names[row.ID]
		if !ok {
			orphans++
			continue
		}
		m.SetName(row.ID, name)
		m.Add(row.ID, row.Bucket, domain.WholeUnits(row.Cost))
	}

	logOrphans(ctx, dim, "custos", orphans)
	return m
}

func budgetMatrix(ctx context.Context, dim domain.Dimension, rows []domain.BudgetRow, names map[int]string) *domain.SpendMatrix {
	m := domain.NewSpendMatrix()
	orphans := 0

	for _, row := range rows {
		name, ok := names[row.ID]
		if !ok {
			orphans++
			continue
		}
		m.SetName(row.ID, name)
		m.Add(row.ID, row.Month, row.Amount)
	}

	logOrphans(ctx, dim, "orçamentos", orphans)
	return m
}

func logOrphans(ctx context.Context, dim domain.Dimension, kind string, count int) {
	if count == 0 {
		return
	}
	log.ForContext(ctx).WithFields(log.Fields{
		"dimension": dim,
		"orphans":   count,
	}).Warnf("spending: linhas de %s sem referência ignoradas", kind)
}
