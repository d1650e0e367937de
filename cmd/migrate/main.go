package main

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/infrastructure/migration"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/config"
)

var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Manage the PostWise database",
	SilenceUsage: true,
}

// upCmd aplica o schema embutido
var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		_, conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		return migration.Up(ctx, conn.DB)
	},
}

// seedCmd grava contas, datasets e metas de exemplo
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert sample accounts, datasets and goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		cfg, conn, err := connect(ctx)
		if err != nil {
			return err
		}
		defer conn.Close()

		seeder := migration.NewSeeder(
			repository.NewAccountRepository(conn),
			repository.NewDatasetRepository(conn, cfg.Ingest.InsertBatchSize),
			repository.NewGoalRepository(conn),
		)

		result, err := seeder.Seed(ctx)
		if err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"datasets": result.DatasetIDs,
			"goals":    result.GoalIDs,
			"rows":     result.Rows,
		}).Info("Banco populado com sucesso")
		return nil
	},
}

func connect(ctx context.Context) (*config.Config, *postgres.Connection, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	return cfg, conn, nil
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 2*time.Minute, "Operation timeout")
	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Error("Falha na migração")
		os.Exit(1)
	}
}
