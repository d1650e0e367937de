package ingesting

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/infrastructure/repository/mocks"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const validCSV = "\ufeffDate,Campaign,Impressions,Clicks,Spend,Conversions,Conv_Value\n" +
	"2024-01-01,Brand,1000,100,50,5,200\n" +
	"\n" +
	"2024-01-02,Brand,2000,0,0,0,0\n"

func TestIngest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(accountRepo, datasetRepo)

	tests := []struct {
		name     string
		fileName string
		data     string
		setup    func()
		validate func(t *testing.T, resp *domain.IngestResponse, err error)
	}{
		{
			name:     "deve importar linhas e derivar métricas",
			fileName: "google_export.csv",
			data:     validCSV,
			setup: func() {
				accountRepo.EXPECT().
					Upsert(gomock.Any(), domain.PlatformGoogle, "Google Account").
					Return(&domain.Account{ID: "acc-1", Platform: domain.PlatformGoogle}, nil)
				datasetRepo.EXPECT().
					CreateWithRows(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error {
						assert.Equal(t, "acc-1", dataset.AccountID)
						assert.Equal(t, domain.DatasetSourceGoogleAds, dataset.Source)
						assert.NotEmpty(t, dataset.Checksum)
						require.Len(t, rows, 2)

						first := rows[0]
						assert.Equal(t, "Brand", first.Campaign)
						assert.InDelta(t, 0.5, first.CPC, 1e-9)
						assert.InDelta(t, 50, first.CPM, 1e-9)
						assert.InDelta(t, 0.1, first.CTR, 1e-9)
						assert.InDelta(t, 0.05, first.CVRate, 1e-9)
						assert.InDelta(t, 4, first.ROAS, 1e-9)
						assert.InDelta(t, 10, first.CostPerConv, 1e-9)

						second := rows[1]
						assert.Zero(t, second.CPC)
						assert.Zero(t, second.ROAS)
						assert.Zero(t, second.CostPerConv)

						dataset.ID = "ds-1"
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Success)
				assert.Equal(t, "ds-1", resp.DatasetID)
				assert.Equal(t, 2, resp.RowsProcessed)
				assert.Equal(t, 0, resp.RowsSkipped)
				assert.Equal(t, domain.PlatformGoogle, resp.Platform)
			},
		},
		{
			name:     "deve descartar linhas sem data ou campanha",
			fileName: "meta.csv",
			data: "date,campaign,spend,roas\n" +
				",Orphan,10,\n" +
				"2024-01-01,,10,\n" +
				"not-a-date,Bad,10,\n" +
				"2024-01-01,Prospecting,abc,\n" +
				"2024-01-01,Retargeting,100,3.5\n",
			setup: func() {
				accountRepo.EXPECT().
					Upsert(gomock.Any(), domain.PlatformMeta, "Meta Account").
					Return(&domain.Account{ID: "acc-2", Platform: domain.PlatformMeta}, nil)
				datasetRepo.EXPECT().
					CreateWithRows(gomock.Any(), gomock.Any(), gomock.Len(1)).
					DoAndReturn(func(_ context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error {
						assert.Equal(t, domain.DatasetSourceMetaAds, dataset.Source)
						assert.Equal(t, "Retargeting", rows[0].Campaign)
						assert.Equal(t, 3.5, rows[0].ROAS)
						dataset.ID = "ds-2"
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, resp.RowsProcessed)
				assert.Equal(t, 4, resp.RowsSkipped)
				assert.Equal(t, domain.PlatformMeta, resp.Platform)
			},
		},
		{
			name:     "deve criar dataset vazio quando nenhuma linha é válida",
			fileName: "meta.csv",
			data:     "date,campaign\n,\n",
			setup: func() {
				accountRepo.EXPECT().
					Upsert(gomock.Any(), domain.PlatformMeta, "Meta Account").
					Return(&domain.Account{ID: "acc-2"}, nil)
				datasetRepo.EXPECT().
					CreateWithRows(gomock.Any(), gomock.Any(), gomock.Len(0)).
					Return(nil)
			},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 0, resp.RowsProcessed)
				assert.Equal(t, 1, resp.RowsSkipped)
			},
		},
		{
			name:     "deve descartar linhas com valores maiores que a coluna",
			fileName: strings.Repeat("ç", 300) + ".csv",
			data: "date,campaign,device\n" +
				"2024-01-01," + strings.Repeat("a", 300) + ",mobile\n" +
				"2024-01-01,Brand," + strings.Repeat("d", 65) + "\n" +
				"2024-01-01," + strings.Repeat("é", 255) + ",desktop\n",
			setup: func() {
				accountRepo.EXPECT().
					Upsert(gomock.Any(), domain.PlatformMeta, "Meta Account").
					Return(&domain.Account{ID: "acc-2"}, nil)
				datasetRepo.EXPECT().
					CreateWithRows(gomock.Any(), gomock.Any(), gomock.Len(1)).
					DoAndReturn(func(_ context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error {
						assert.Equal(t, maxFileNameLength, utf8.RuneCountInString(dataset.FileName))
						assert.True(t, utf8.ValidString(dataset.FileName))
						assert.Equal(t, strings.Repeat("é", 255), rows[0].Campaign)
						dataset.ID = "ds-3"
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, resp.RowsProcessed)
				assert.Equal(t, 2, resp.RowsSkipped)
			},
		},
		{
			name:     "deve rejeitar CSV com número de colunas divergente",
			fileName: "google.csv",
			data:     "date,campaign,spend\n2024-01-01,A\n2024-01-02,B,10\n",
			setup:    func() {},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				assert.Nil(t, resp)
				var ingestErr *IngestError
				require.True(t, errors.As(err, &ingestErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, ingestErr.Code)
				assert.ErrorIs(t, err, ErrMalformedCSV)

				issues, ok := ingestErr.Details.([]ParseIssue)
				require.True(t, ok)
				require.Len(t, issues, 1)
				assert.Equal(t, 2, issues[0].Line)
			},
		},
		{
			name:     "deve rejeitar aspas soltas no meio de um campo",
			fileName: "google.csv",
			data:     "date,campaign\na\"b,X\n",
			setup:    func() {},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				assert.Nil(t, resp)
				var ingestErr *IngestError
				require.True(t, errors.As(err, &ingestErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, ingestErr.Code)
				assert.ErrorIs(t, err, ErrMalformedCSV)

				issues, ok := ingestErr.Details.([]ParseIssue)
				require.True(t, ok)
				require.Len(t, issues, 1)
				assert.Equal(t, 2, issues[0].Line)
				assert.NotEmpty(t, issues[0].Message)
			},
		},
		{
			name:     "deve rejeitar aspas não fechadas no primeiro campo",
			fileName: "google.csv",
			data:     "date,campaign\n\"2024-01-01,X\n",
			setup:    func() {},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				assert.Nil(t, resp)
				var ingestErr *IngestError
				require.True(t, errors.As(err, &ingestErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, ingestErr.Code)
				assert.ErrorIs(t, err, ErrMalformedCSV)

				issues, ok := ingestErr.Details.([]ParseIssue)
				require.True(t, ok)
				require.Len(t, issues, 1)
				assert.GreaterOrEqual(t, issues[0].Line, 2)
			},
		},
		{
			name:     "deve rejeitar arquivo vazio",
			fileName: "google.csv",
			data:     "",
			setup:    func() {},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrMissingFile)
			},
		},
		{
			name:     "deve retornar erro de banco quando o dataset não é salvo",
			fileName: "google.csv",
			data:     validCSV,
			setup: func() {
				accountRepo.EXPECT().
					Upsert(gomock.Any(), domain.PlatformGoogle, "Google Account").
					Return(&domain.Account{ID: "acc-1"}, nil)
				datasetRepo.EXPECT().
					CreateWithRows(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection reset"))
			},
			validate: func(t *testing.T, resp *domain.IngestResponse, err error) {
				assert.Nil(t, resp)
				var ingestErr *IngestError
				require.True(t, errors.As(err, &ingestErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, ingestErr.Code)
				assert.ErrorIs(t, err, ErrSaveDataset)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			resp, err := service.Ingest(context.Background(), tt.fileName, []byte(tt.data))
			tt.validate(t, resp, err)
		})
	}
}

func TestInferPlatform(t *testing.T) {
	assert.Equal(t, domain.PlatformGoogle, InferPlatform("Google_Ads_Jan.CSV"))
	assert.Equal(t, domain.PlatformMeta, InferPlatform("facebook.csv"))
	assert.Equal(t, domain.PlatformMeta, InferPlatform(""))
}

func TestBuildMetricRowKeepsProvidedRatios(t *testing.T) {
	records, issues := parseCSV([]byte("date,campaign,spend,clicks,cpc,ad_group,device\n2024-01-01,A,100,10,7,,mobile\n"))
	require.Empty(t, issues)
	require.Len(t, records, 1)

	row, issue := buildMetricRow(records[0], domain.PlatformMeta)
	require.Nil(t, issue)
	assert.Equal(t, 7.0, row.CPC)
	assert.Nil(t, row.AdGroup)
	require.NotNil(t, row.Device)
	assert.Equal(t, "mobile", *row.Device)
	assert.Nil(t, row.Placement)
}

func TestBuildMetricRowRejectsLongCampaign(t *testing.T) {
	records, issues := parseCSV([]byte("date,campaign\n2024-01-01," + strings.Repeat("x", 300) + "\n"))
	require.Empty(t, issues)
	require.Len(t, records, 1)

	row, issue := buildMetricRow(records[0], domain.PlatformMeta)
	assert.Nil(t, row)
	require.NotNil(t, issue)
	assert.Equal(t, "campaign", issue.Field)
	assert.Equal(t, "too long", issue.Reason)
	assert.Equal(t, 2, issue.Line)
}

func TestIngestSingleRowDerivedMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	service := NewService(accountRepo, datasetRepo)

	var stored []*domain.MetricRow
	accountRepo.EXPECT().
		Upsert(gomock.Any(), domain.PlatformMeta, "Meta Account").
		Return(&domain.Account{ID: "acc-1"}, nil)
	datasetRepo.EXPECT().
		CreateWithRows(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error {
			dataset.ID = "ds-1"
			dataset.RowCount = len(rows)
			stored = rows
			return nil
		})

	csv := "date,campaign,impressions,clicks,spend,conversions,conv_value\n" +
		"2024-01-01,X,1000,50,100,5,400\n"

	resp, err := service.Ingest(context.Background(), "meta_report.csv", []byte(csv))

	require.NoError(t, err)
	assert.Equal(t, domain.PlatformMeta, resp.Platform)
	assert.Equal(t, 1, resp.RowsProcessed)
	require.Len(t, stored, 1)

	row := stored[0]
	assert.Equal(t, "X", row.Campaign)
	assert.Equal(t, 2024, row.Date.Year())
	assert.InDelta(t, 2.0, row.CPC, 1e-9)
	assert.InDelta(t, 0.05, row.CTR, 1e-9)
	assert.InDelta(t, 0.1, row.CVRate, 1e-9)
	assert.InDelta(t, 4.0, row.ROAS, 1e-9)
	assert.InDelta(t, 20.0, row.CostPerConv, 1e-9)
}
