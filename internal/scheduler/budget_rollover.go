package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/cloud-spend-api/internal/config"
	"github.com/vfg2006/cloud-spend-api/internal/domain"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"github.com/vfg2006/cloud-spend-api/pkg/utils"
)

// BudgetCloner é a parte do administering usada pelo job de virada de mês
type BudgetCloner interface {
	CloneBudgets(ctx context.Context, req domain.CloneRequest) (*domain.CloneResult, error)
}

// Job é o contrato exposto para as rotas de cron
type Job interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// BudgetRolloverService copia no início de cada mês os orçamentos do mês anterior
type BudgetRolloverService struct {
	scheduler *gocron.Scheduler
	config    config.BudgetRollover
	cloner    BudgetCloner
	now       func() time.Time

	syncMutex           sync.Mutex
	syncRunning         bool
	lastRunID           string
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *domain.CloneResult
	lastError           string
}

func NewBudgetRolloverService(cloner BudgetCloner, cfg config.BudgetRollover) *BudgetRolloverService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.Enabled,
	}).Info("Configuração do agendador de virada de orçamento carregada")

	return &BudgetRolloverService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		cloner:    cloner,
		now:       time.Now,
	}
}

// Start agenda o job e o para quando ctx for cancelado
func (s *BudgetRolloverService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Virada de orçamento desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.rollover(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar virada de orçamento: %w", err)
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("Agendador de virada de orçamento iniciado")

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de virada de orçamento")
		s.scheduler.Stop()
	}()

	return nil
}

// rollover clona o mês anterior para o mês corrente. Execuções concorrentes são descartadas.
func (s *BudgetRolloverService) rollover(ctx context.Context) {
	if !s.begin() {
		log.L.Info("Virada de orçamento já em andamento, ignorando")
		return
	}
	s.run(ctx)
}

// run executa a virada; quem chama já reservou a execução com begin
func (s *BudgetRolloverService) run(ctx context.Context) {
	runID, err := utils.GenerateID(12)
	if err != nil {
		runID = fmt.Sprintf("run-%d", s.now().UnixNano())
	}

	now := s.now()
	current := domain.FirstOfMonth(now)
	req := domain.CloneRequest{
		Source: current.AddDate(0, -1, 0).Format(domain.MonthLayout),
		Target: current.Format(domain.MonthLayout),
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id": runID,
		"source": req.Source,
		"target": req.Target,
	})
	logger.Info("Iniciando virada de orçamento")

	s.syncMutex.Lock()
	s.lastRunID = runID
	s.lastSyncStartedAt = now
	s.syncMutex.Unlock()

	result, err := s.cloner.CloneBudgets(ctx, req)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()
	if err != nil {
		s.lastError = err.Error()
		s.lastResult = nil
		logger.WithError(err).Error("Erro na virada de orçamento")
		return
	}

	s.lastError = ""
	s.lastResult = result
	logger.WithField("cloned", result.Cloned).Info("Virada de orçamento concluída")
}

func (s *BudgetRolloverService) begin() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	return true
}

// TriggerManualSync dispara a virada fora do agendamento.
// Retorna false quando já existe uma execução em andamento.
func (s *BudgetRolloverService) TriggerManualSync() bool {
	if !s.begin() {
		log.L.Info("Virada de orçamento já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando virada de orçamento manual")
	go s.run(context.Background())
	return true
}

// GetStatus retorna o status atual da virada
func (s *BudgetRolloverService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.Enabled,
		"last_run_id":            s.lastRunID,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
	if s.lastResult != nil {
		status["last_cloned"] = s.lastResult.Cloned
	}
	if s.lastError != "" {
		status["last_error"] = s.lastError
	}
	return status
}
