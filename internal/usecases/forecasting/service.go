// Package forecasting projeta os gastos dos próximos meses com base no histórico diário
package forecasting

import (
	"context"
	"time"

	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Forecaster interface {
	EstimateSpend(ctx context.Context, req domain.SpendRequest) ([]domain.SpendPoint, error)
}

type Service struct {
	metrics  repository.MetricRepository
	spending spending.Spender
	now      func() time.Time
}

func NewService(metrics repository.MetricRepository, spender spending.Spender) Forecaster {
	return &Service{
		metrics:  metrics,
		spending: spender,
		now:      time.Now,
	}
}

// EstimateSpend projeta o gasto por provider ou time. O histórico usa sempre a
// janela mensal padrão; a janela da requisição só define o fim da projeção.
func (s *Service) EstimateSpend(ctx context.Context, req domain.SpendRequest) ([]domain.SpendPoint, error) {
	if req.Dimension != domain.DimensionProvider && req.Dimension != domain.DimensionTeam {
		return nil, domain.NewFilterError("dimension", string(req.Dimension))
	}

	now := s.now()
	history := domain.ResolveWindow(domain.Window{Format: domain.FormatMonthly}, now)

	var (
		names map[int]string
		rows  []domain.HistoryRow
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		names, err = s.spending.DimensionNames(gctx, req.Ids, req.Dimension)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.metrics.DailyCostHistory(gctx, history, req.Ids, req.Dimension)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	points := make([]domain.SpendPoint, 0)
	months := make(map[string]struct{})
	orphans := 0

	for _, estimate := range Forecast(req.Window, rows, now) {
		name, ok := names[estimate.ID]
		if !ok {
			orphans++
			continue
		}
		points = append(points, domain.NewSpendPoint(estimate.Month, estimate.ID, name, estimate.Estimate))
		months[estimate.Month] = struct{}{}
	}

	if orphans > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"dimension": req.Dimension,
			"orphans":   orphans,
		}).Warn("forecasting: projeções sem referência ignoradas")
	}

	if !req.AddBudget {
		return points, nil
	}

	budgets, err := s.spending.AggregateBudgets(ctx, req.Ids, req.Dimension)
	if err != nil {
		return nil, err
	}

	for _, id := range budgets.IDs() {
		for _, month := range budgets.BucketsOf(id) {
			if _, ok := months[month]; !ok {
				continue
			}
			points = append(points, domain.NewBudgetPoint(month, id, budgets.Name(id), budgets.Get(id, month)))
		}
	}

	return points, nil
}
