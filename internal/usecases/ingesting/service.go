package ingesting

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
	"github.com/vfg2006/postwise-api/pkg/metrics"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

type Ingester interface {
	Ingest(ctx context.Context, fileName string, data []byte) (*domain.IngestResponse, error)
}

type Service struct {
	accountRepository repository.AccountRepository
	datasetRepository repository.DatasetRepository
}

func NewService(accountRepository repository.AccountRepository, datasetRepository repository.DatasetRepository) Ingester {
	return &Service{
		accountRepository: accountRepository,
		datasetRepository: datasetRepository,
	}
}

// Ingest lê o CSV enviado, valida e deriva as métricas de cada linha e grava tudo
// como um novo dataset. Linhas inválidas são descartadas e contadas em RowsSkipped.
func (s *Service) Ingest(ctx context.Context, fileName string, data []byte) (*domain.IngestResponse, error) {
	logger := log.ForContext(ctx).WithField("file", fileName)

	if len(data) == 0 {
		return nil, NewIngestError(ErrMissingFile, apiErrors.ErrMissingRequiredData, nil)
	}

	records, issues := parseCSV(data)
	if len(issues) > 0 {
		logger.WithField("issues", len(issues)).Warn("ingest: CSV inválido")
		return nil, NewIngestError(ErrMalformedCSV, apiErrors.ErrInvalidFormat, issues)
	}

	platform := InferPlatform(fileName)

	rows := make([]*domain.MetricRow, 0, len(records))
	skipped := 0
	for _, rec := range records {
		row, issue := buildMetricRow(rec, platform)
		if issue != nil {
			skipped++
			logger.WithFields(log.Fields{
				"line":   issue.Line,
				"field":  issue.Field,
				"reason": issue.Reason,
			}).Warn("ingest: linha descartada")
			continue
		}
		rows = append(rows, row)
	}

	account, err := s.accountRepository.Upsert(ctx, platform, platform.AccountName())
	if err != nil {
		return nil, NewIngestError(errors.Wrap(ErrSaveAccount, err.Error()), apiErrors.ErrDatabaseOperation, nil)
	}

	dataset := &domain.Dataset{
		AccountID: account.ID,
		Source:    platform.Source(),
		FileName:  truncateRunes(fileName, maxFileNameLength),
		Checksum:  utils.Checksum(data),
	}

	if err := s.datasetRepository.CreateWithRows(ctx, dataset, rows); err != nil {
		return nil, NewIngestError(errors.Wrap(ErrSaveDataset, err.Error()), apiErrors.ErrDatabaseOperation, nil)
	}

	metrics.IngestedRows(string(platform), "accepted", len(rows))
	metrics.IngestedRows(string(platform), "skipped", skipped)

	logger.WithFields(log.Fields{
		"dataset_id": dataset.ID,
		"rows":       len(rows),
		"skipped":    skipped,
	}).Info("ingest: dataset criado")

	return &domain.IngestResponse{
		Success:       true,
		DatasetID:     dataset.ID,
		RowsProcessed: len(rows),
		RowsSkipped:   skipped,
		Platform:      platform,
	}, nil
}
