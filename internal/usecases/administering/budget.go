package administering

import (
	"context"
	"strings"

	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

func (s *Service) ListBudgets(ctx context.Context, filter domain.BudgetFilter) ([]domain.BudgetEntry, error) {
	filter.MonthPrefix = strings.TrimSpace(filter.MonthPrefix)
	filter.AmountPrefix = strings.TrimSpace(filter.AmountPrefix)
	return s.budgets.ListBudgets(ctx, filter)
}

func (s *Service) CreateBudget(ctx context.Context, entry *domain.BudgetEntry) (*domain.BudgetEntry, error) {
	entry.Month = strings.TrimSpace(entry.Month)
	if err := entry.Validate(); err != nil {
		return nil, err
	}

	created, err := s.budgets.InsertBudget(ctx, entry)
	if err != nil {
		return nil, err
	}

	logWrite(ctx, "budget.create", created.ID)
	return created, nil
}

func (s *Service) UpdateBudget(ctx context.Context, entry *domain.BudgetEntry) error {
	if err := requireID(entry.ID); err != nil {
		return err
	}
	entry.Month = strings.TrimSpace(entry.Month)
	if err := entry.Validate(); err != nil {
		return err
	}

	if err := s.budgets.UpdateBudget(ctx, entry); err != nil {
		return err
	}

	logWrite(ctx, "budget.update", entry.ID)
	return nil
}

func (s *Service) DeleteBudget(ctx context.Context, id int) error {
	if err := requireID(id); err != nil {
		return err
	}

	if err := s.budgets.DeleteBudget(ctx, id); err != nil {
		return err
	}

	logWrite(ctx, "budget.delete", id)
	return nil
}

// CloneBudgets copia os orçamentos de um mês para outro. Entradas que já
// existem no mês de destino são mantidas, então repetir a operação é seguro.
func (s *Service) CloneBudgets(ctx context.Context, req domain.CloneRequest) (*domain.CloneResult, error) {
	req.Source = strings.TrimSpace(req.Source)
	req.Target = strings.TrimSpace(req.Target)
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cloned, err := s.budgets.CloneMonth(ctx, req)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"source": req.Source,
		"target": req.Target,
		"cloned": cloned,
	}).Info("administering: orçamentos clonados")

	return &domain.CloneResult{Source: req.Source, Target: req.Target, Cloned: cloned}, nil
}
