package diagnosing

import (
	"context"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/log"
)

type Diagnoser interface {
	Diagnose(ctx context.Context, datasetID string) (*domain.Diagnosis, error)
	Waste(ctx context.Context, datasetID string) (*domain.WasteReport, error)
}

type Service struct {
	loader *DatasetLoader
}

func NewService(loader *DatasetLoader) Diagnoser {
	return &Service{
		loader: loader,
	}
}

func (s *Service) Diagnose(ctx context.Context, datasetID string) (*domain.Diagnosis, error) {
	dataset, rows, err := s.loader.Load(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithField("dataset_id", dataset.ID).Debugf("diagnose: agregando %d linhas", len(rows))

	return Diagnosis(dataset.ID, Aggregate(rows)), nil
}

func (s *Service) Waste(ctx context.Context, datasetID string) (*domain.WasteReport, error) {
	dataset, rows, err := s.loader.Load(ctx, datasetID)
	if err != nil {
		return nil, err
	}

	return &domain.WasteReport{
		DatasetID: dataset.ID,
		Campaigns: ClassifyWaste(Aggregate(rows)),
	}, nil
}
