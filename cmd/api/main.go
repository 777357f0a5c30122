package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-spend-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-spend-api/infrastructure/repository"
	"github.com/vfg2006/cloud-spend-api/internal/api"
	"github.com/vfg2006/cloud-spend-api/internal/api/handler"
	"github.com/vfg2006/cloud-spend-api/internal/config"
	"github.com/vfg2006/cloud-spend-api/internal/scheduler"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/administering"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/workload"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logFile, err := log.Configure(log.Options{Level: cfg.App.LogLevel, File: cfg.App.LogFile})
	if err != nil {
		logrus.WithError(err).Fatal("Configuração de log inválida")
	}
	if logFile != nil {
		defer logFile.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	referenceRepo := repository.NewReferenceRepository(pgConn)
	metricRepo := repository.NewMetricRepository(pgConn)
	budgetRepo := repository.NewBudgetRepository(pgConn)
	matchRuleRepo := repository.NewMatchRuleRepository(pgConn)
	teamRepo := repository.NewTeamRepository(pgConn)
	projectRepo := repository.NewProjectRepository(pgConn)
	divisionRepo := repository.NewDivisionRepository(pgConn)
	providerRepo := repository.NewProviderRepository(pgConn)

	spender := spending.NewService(referenceRepo, metricRepo, budgetRepo)
	administrator := administering.NewService(budgetRepo, teamRepo, projectRepo, divisionRepo, providerRepo)

	rollover := scheduler.NewBudgetRolloverService(administrator, cfg.BudgetRollover)
	if err := rollover.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de virada de orçamento")
	}

	server := api.New(cfg, api.Services{
		Spending:       spender,
		Forecasting:    forecasting.NewService(metricRepo, spender),
		Workload:       workload.NewService(matchRuleRepo, metricRepo),
		Reporting:      reporting.NewService(spender, referenceRepo, metricRepo, budgetRepo),
		Administering:  administrator,
		Authenticating: authenticating.NewService(cfg.Auth),
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeBudgetRollover: rollover,
		},
		Database: pgConn,
	})

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("Servidor finalizado com erro")
	}
}

// pgconn abre a conexão com o PostgreSQL ou encerra o processo
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.WithFields(log.Fields{
		"host":     dbConfig.Host,
		"database": dbConfig.Name,
	}).Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
