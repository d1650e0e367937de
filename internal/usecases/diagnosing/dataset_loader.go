package diagnosing

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

// DatasetLoader resolve qual dataset uma leitura usa e carrega suas linhas.
// Sem ID explícito, o dataset mais recente é usado.
type DatasetLoader struct {
	datasetRepository   repository.DatasetRepository
	metricRowRepository repository.MetricRowRepository
}

func NewDatasetLoader(datasetRepository repository.DatasetRepository, metricRowRepository repository.MetricRowRepository) *DatasetLoader {
	return &DatasetLoader{
		datasetRepository:   datasetRepository,
		metricRowRepository: metricRowRepository,
	}
}

// Load devolve o dataset e suas linhas. Dataset inexistente ou vazio resulta em ErrNoData.
func (l *DatasetLoader) Load(ctx context.Context, datasetID string) (*domain.Dataset, []*domain.MetricRow, error) {
	var (
		dataset *domain.Dataset
		err     error
	)

	if datasetID != "" {
		dataset, err = l.datasetRepository.GetByID(ctx, datasetID)
	} else {
		dataset, err = l.datasetRepository.GetLatest(ctx)
	}
	if err != nil {
		return nil, nil, NewDiagnosisError(errors.Wrap(ErrLoadDataset, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	if dataset == nil {
		return nil, nil, NewDiagnosisError(ErrNoData, apiErrors.ErrResourceNotFound, datasetID)
	}

	rows, err := l.metricRowRepository.ListByDataset(ctx, dataset.ID)
	if err != nil {
		return nil, nil, NewDiagnosisError(errors.Wrap(ErrLoadDataset, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	if len(rows) == 0 {
		return nil, nil, NewDiagnosisError(ErrNoData, apiErrors.ErrResourceNotFound, dataset.ID)
	}

	return dataset, rows, nil
}
