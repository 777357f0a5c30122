// Package workload agrupa o custo diário de um projeto em grupos de workload
package workload

import (
	"context"
	"fmt"
	"sort"

	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type WorkloadGetter interface {
	GetWorkload(ctx context.Context, window domain.Window, providerID, projectID int) ([]domain.WorkloadPoint, error)
}

type Service struct {
	rules   repository.MatchRuleRepository
	metrics repository.MetricRepository
}

func NewService(rules repository.MatchRuleRepository, metrics repository.MetricRepository) WorkloadGetter {
	return &Service{
		rules:   rules,
		metrics: metrics,
	}
}

// Scope exige exatamente um provider e um projeto
func Scope(ids domain.Ids) (providerID, projectID int, err error) {
	providerID, ok := ids.SingleProvider()
	if !ok {
		return 0, 0, domain.NewFilterError("prvid", fmt.Sprint(ids.Providers))
	}
	if ids.Project == nil {
		return 0, 0, domain.NewFilterError("prjid", "")
	}
	return providerID, *ids.Project, nil
}

type cellKey struct {
	day    string
	bucket string
}

// GetWorkload soma, por dia e bucket, o custo das métricas do projeto.
// A janela deve estar resolvida.
func (s *Service) GetWorkload(ctx context.Context, window domain.Window, providerID, projectID int) ([]domain.WorkloadPoint, error) {
	var (
		rules       []domain.MatchRule
		metricTypes map[int]string
		costs       []domain.MetricCost
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rules, err = s.rules.ListByProvider(gctx, providerID)
		return err
	})
	g.Go(func() error {
		var err error
		metricTypes, err = s.metrics.GetMetricTypes(gctx, providerID)
		return err
	})
	g.Go(func() error {
		var err error
		costs, err = s.metrics.SumCostByMetric(gctx, window, providerID, projectID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	buckets := NewBucketer(ctx, rules).ClassifyAll(metricTypes)

	sums := make(map[cellKey]int64)
	cells := make(map[cellKey]Bucket)
	unknown := 0

	for _, c := range costs {
		spend := domain.WholeUnits(c.Cost)
		if spend == 0 {
			continue
		}

		bucket, ok := buckets[c.MetricID]
		if !ok {
			unknown++
			continue
		}

		key := cellKey{day: c.Day, bucket: bucket.Name}
		sums[key] += spend
		cells[key] = bucket
	}

	if unknown > 0 {
		log.ForContext(ctx).WithFields(log.Fields{
			"provider_id": providerID,
			"unknown":     unknown,
		}).Warn("workload: métricas desconhecidas para o provider ignoradas")
	}

	keys := make([]cellKey, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].bucket < keys[j].bucket
	})

	points := make([]domain.WorkloadPoint, 0, len(keys))
	for _, key := range keys {
		bucket := cells[key]
		points = append(points, domain.WorkloadPoint{
			Day:         key.day,
			Bucket:      key.bucket,
			Spend:       sums[key],
			ScaleFactor: bucket.ScaleFactor,
			ScaleUnit:   bucket.ScaleUnit,
		})
	}

	return points, nil
}
