package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/cloud-spend-api/internal/api/handler"
	"github.com/vfg2006/cloud-spend-api/internal/api/handler/router"
	"github.com/vfg2006/cloud-spend-api/internal/config"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/administering"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/forecasting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/reporting"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/spending"
	"github.com/vfg2006/cloud-spend-api/internal/usecases/workload"
	"github.com/vfg2006/cloud-spend-api/pkg/log"
	"github.com/vfg2006/cloud-spend-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Spending       spending.Spender
	Forecasting    forecasting.Forecaster
	Workload       workload.WorkloadGetter
	Reporting      reporting.Reporter
	Administering  administering.Administrator
	Authenticating authenticating.Authenticator
	CronJobs       handler.CronJobServices
	Database       handler.Pinger
}

// NewHandler monta o router com a cadeia de middlewares global
func NewHandler(cfg *config.Config, services Services) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithRoutes(handler.Authentication(services.Authenticating)...),
		router.WithRoutes(handler.Reference(services.Administering)...),
		router.WithRoutes(handler.Spend(services.Spending, services.Forecasting, services.Workload)...),
		router.WithRoutes(handler.Reports(services.Reporting, middleware.RateLimit(cfg.Export.RequestsPerMinute))...),
		router.WithRoutes(handler.Admin(services.Administering)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticating),
		middleware.QueryTimeout(cfg.Database.QueryTimeout),
	}

	return alice.New(middlewares...).Then(rt)
}

func New(cfg *config.Config, services Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}
}

// Run atende até receber SIGINT/SIGTERM ou o cancelamento de ctx
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	case err := <-errCh:
		log.L.WithError(err).Error("Erro durante a execução do servidor")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
