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
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/postwise-api/internal/api/handler"
	"github.com/vfg2006/postwise-api/internal/api/handler/router"
	"github.com/vfg2006/postwise-api/internal/config"
	"github.com/vfg2006/postwise-api/internal/usecases/authenticating"
	"github.com/vfg2006/postwise-api/internal/usecases/connecting"
	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
	"github.com/vfg2006/postwise-api/internal/usecases/executing"
	"github.com/vfg2006/postwise-api/internal/usecases/goal"
	"github.com/vfg2006/postwise-api/internal/usecases/ingesting"
	"github.com/vfg2006/postwise-api/internal/usecases/recommending"
	"github.com/vfg2006/postwise-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Ingester      ingesting.Ingester
	Diagnoser     diagnosing.Diagnoser
	Recommender   recommending.Recommender
	Executor      executing.Executor
	Goals         goal.GoalService
	Connector     connecting.Connector
	Authenticator authenticating.Authenticator
	CronJobs      handler.CronJobServices
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Ingestion(services.Ingester, cfg.Ingest.MaxUploadBytes)...),
		router.WithRoutes(handler.Diagnosis(services.Diagnoser)...),
		router.WithRoutes(handler.Recommendations(services.Recommender)...),
		router.WithRoutes(handler.Actions(services.Executor)...),
		router.WithRoutes(handler.Goals(services.Goals)...),
		router.WithRoutes(handler.Integrations(services.Connector)...),
		router.WithRoutes(handler.CronJobs(services.CronJobs)...),
	)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           Chain(cfg, services.Authenticator, rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}, nil
}

// Chain aplica os middlewares globais; o auth fica por último para que CORS responda ao preflight
func Chain(cfg *config.Config, authenticator authenticating.Authenticator, h http.Handler) http.Handler {
	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.CorsAllowedOrigins),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(h)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
