package diagnosing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/infrastructure/repository/mocks"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestDiagnose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	metricRowRepo := mocks.NewMockMetricRowRepository(ctrl)
	service := NewService(NewDatasetLoader(datasetRepo, metricRowRepo))

	rows := []*domain.MetricRow{
		metricRow(domain.PlatformGoogle, "Brand", 100, 50, 5, 1000, 400, 4),
	}

	tests := []struct {
		name      string
		datasetID string
		setup     func()
		validate  func(t *testing.T, result *domain.Diagnosis, err error)
	}{
		{
			name:      "deve usar o dataset informado",
			datasetID: "ds-1",
			setup: func() {
				datasetRepo.EXPECT().GetByID(gomock.Any(), "ds-1").Return(&domain.Dataset{ID: "ds-1"}, nil)
				metricRowRepo.EXPECT().ListByDataset(gomock.Any(), "ds-1").Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.Diagnosis, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ds-1", result.DatasetID)
				assert.Equal(t, 100.0, result.TotalSpend)
				assert.Empty(t, result.WasteCampaigns)
			},
		},
		{
			name: "deve usar o dataset mais recente quando nenhum é informado",
			setup: func() {
				datasetRepo.EXPECT().GetLatest(gomock.Any()).Return(&domain.Dataset{ID: "ds-9"}, nil)
				metricRowRepo.EXPECT().ListByDataset(gomock.Any(), "ds-9").Return(rows, nil)
			},
			validate: func(t *testing.T, result *domain.Diagnosis, err error) {
				require.NoError(t, err)
				assert.Equal(t, "ds-9", result.DatasetID)
			},
		},
		{
			name: "deve retornar not found quando não há dataset",
			setup: func() {
				datasetRepo.EXPECT().GetLatest(gomock.Any()).Return(nil, nil)
			},
			validate: func(t *testing.T, result *domain.Diagnosis, err error) {
				assert.Nil(t, result)
				var diagErr *DiagnosisError
				require.True(t, errors.As(err, &diagErr))
				assert.Equal(t, apiErrors.ErrResourceNotFound, diagErr.Code)
				assert.ErrorIs(t, err, ErrNoData)
			},
		},
		{
			name:      "deve retornar not found quando o dataset não tem linhas",
			datasetID: "ds-empty",
			setup: func() {
				datasetRepo.EXPECT().GetByID(gomock.Any(), "ds-empty").Return(&domain.Dataset{ID: "ds-empty"}, nil)
				metricRowRepo.EXPECT().ListByDataset(gomock.Any(), "ds-empty").Return([]*domain.MetricRow{}, nil)
			},
			validate: func(t *testing.T, result *domain.Diagnosis, err error) {
				assert.ErrorIs(t, err, ErrNoData)
			},
		},
		{
			name:      "deve retornar erro de banco",
			datasetID: "ds-1",
			setup: func() {
				datasetRepo.EXPECT().GetByID(gomock.Any(), "ds-1").Return(nil, errors.New("timeout"))
			},
			validate: func(t *testing.T, result *domain.Diagnosis, err error) {
				var diagErr *DiagnosisError
				require.True(t, errors.As(err, &diagErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, diagErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			result, err := service.Diagnose(context.Background(), tt.datasetID)
			tt.validate(t, result, err)
		})
	}
}

func TestWaste(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	metricRowRepo := mocks.NewMockMetricRowRepository(ctrl)
	service := NewService(NewDatasetLoader(datasetRepo, metricRowRepo))

	datasetRepo.EXPECT().GetLatest(gomock.Any()).Return(&domain.Dataset{ID: "ds-3"}, nil)
	metricRowRepo.EXPECT().ListByDataset(gomock.Any(), "ds-3").Return([]*domain.MetricRow{
		metricRow(domain.PlatformMeta, "Lookalike", 100, 10, 2, 100, 80, 0.8),
		metricRow(domain.PlatformGoogle, "Brand", 100, 10, 2, 100, 420, 4.2),
	}, nil)

	report, err := service.Waste(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, "ds-3", report.DatasetID)
	require.Len(t, report.Campaigns, 1)
	assert.Equal(t, "Lookalike", report.Campaigns[0].Entity)
	assert.Equal(t, "Consider pausing this campaign - very low ROAS", report.Campaigns[0].Recommendation)
}
