package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/postwise-api/infrastructure/broker"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/infrastructure/integrator/llm"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/api"
	"github.com/vfg2006/postwise-api/internal/api/handler"
	"github.com/vfg2006/postwise-api/internal/config"
	"github.com/vfg2006/postwise-api/internal/scheduler"
	"github.com/vfg2006/postwise-api/internal/usecases/authenticating"
	"github.com/vfg2006/postwise-api/internal/usecases/connecting"
	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
	"github.com/vfg2006/postwise-api/internal/usecases/executing"
	"github.com/vfg2006/postwise-api/internal/usecases/goal"
	"github.com/vfg2006/postwise-api/internal/usecases/ingesting"
	"github.com/vfg2006/postwise-api/internal/usecases/recommending"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	accountRepo := repository.NewAccountRepository(pgConn)
	datasetRepo := repository.NewDatasetRepository(pgConn, cfg.Ingest.InsertBatchSize)
	metricRowRepo := repository.NewMetricRowRepository(pgConn)
	goalRepo := repository.NewGoalRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)
	actionRepo := repository.NewActionRepository(pgConn)

	rationaleWriter, err := llm.New(ctx, cfg.Rationale)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar o redator de justificativas")
	}
	logrus.WithField("provider", rationaleWriter.Provider()).Info("Redator de justificativas configurado")

	publisher, err := broker.New(cfg.Broker)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao broker")
	}
	defer publisher.Close()

	loader := diagnosing.NewDatasetLoader(datasetRepo, metricRowRepo)

	services := api.Services{
		Ingester:      ingesting.NewService(accountRepo, datasetRepo),
		Diagnoser:     diagnosing.NewService(loader),
		Recommender:   recommending.NewService(loader, goalRepo, recommendationRepo, rationaleWriter, cfg.Rationale.Timeout),
		Executor:      executing.NewService(actionRepo, publisher),
		Goals:         goal.NewService(goalRepo),
		Connector:     connecting.NewService(),
		Authenticator: authenticating.NewService(cfg.Auth),
	}

	retentionService := scheduler.NewDatasetRetentionService(datasetRepo, cfg.DatasetRetention)
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de datasets")
	}
	services.CronJobs = handler.CronJobServices{DatasetRetention: retentionService}

	server, err := api.New(cfg, services)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
