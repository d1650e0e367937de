package migration

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/infrastructure/repository/mocks"
	"github.com/vfg2006/postwise-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestSeedRows(t *testing.T) {
	google := SeedRows(domain.PlatformGoogle)
	meta := SeedRows(domain.PlatformMeta)

	assert.Len(t, google, 15)
	assert.Len(t, meta, 10)

	retargeting := google[10]
	assert.Equal(t, "Retargeting", retargeting.Campaign)
	assert.Equal(t, 120.0, retargeting.Spend)
	assert.Equal(t, 1.0, retargeting.Conversions)
	assert.Equal(t, 20.0, retargeting.Clicks)
	assert.Equal(t, 1000.0, retargeting.Impressions)
	assert.InDelta(t, 180.0, retargeting.ConvValue, 1e-9)
	assert.InDelta(t, 1.5, retargeting.ROAS, 1e-9)
	assert.Equal(t, "2024-01-01", retargeting.Date.Format("2006-01-02"))
	assert.Equal(t, "2024-01-05", google[14].Date.Format("2006-01-02"))

	for _, row := range meta {
		assert.Equal(t, domain.PlatformMeta, row.Platform)
	}
}

func TestSeedRowsWithoutConversions(t *testing.T) {
	brand := SeedRows(domain.PlatformGoogle)[0]

	assert.Equal(t, "Brand Awareness", brand.Campaign)
	assert.Zero(t, brand.Conversions)
	assert.Zero(t, brand.CPC)
	assert.Zero(t, brand.CostPerConv)
	assert.InDelta(t, 4.2, brand.ROAS, 1e-9)
}

func TestSeeder(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	accountRepo.EXPECT().Upsert(gomock.Any(), domain.PlatformGoogle, "Google Account").
		Return(&domain.Account{ID: "acc_g", Platform: domain.PlatformGoogle}, nil)
	accountRepo.EXPECT().Upsert(gomock.Any(), domain.PlatformMeta, "Meta Account").
		Return(&domain.Account{ID: "acc_m", Platform: domain.PlatformMeta}, nil)

	datasetRepo.EXPECT().CreateWithRows(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ds *domain.Dataset, rows []*domain.MetricRow) error {
			ds.ID = "ds_" + ds.AccountID
			assert.Equal(t, ds.AccountID == "acc_g", ds.Source == domain.DatasetSourceGoogleAds)
			assert.Len(t, ds.Checksum, 64)
			return nil
		}).Times(2)

	var goalTypes []domain.GoalType
	goalRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g *domain.Goal) error {
			g.ID = "goal_" + string(g.Type)
			goalTypes = append(goalTypes, g.Type)
			return nil
		}).Times(2)

	result, err := NewSeeder(accountRepo, datasetRepo, goalRepo).Seed(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"ds_acc_g", "ds_acc_m"}, result.DatasetIDs)
	assert.Equal(t, []string{"goal_cpl", "goal_roas"}, result.GoalIDs)
	assert.Equal(t, 25, result.Rows)
	assert.Equal(t, []domain.GoalType{domain.GoalTypeCPL, domain.GoalTypeROAS}, goalTypes)
}

func TestSeederStopsOnDatasetError(t *testing.T) {
	ctrl := gomock.NewController(t)
	accountRepo := mocks.NewMockAccountRepository(ctrl)
	datasetRepo := mocks.NewMockDatasetRepository(ctrl)
	goalRepo := mocks.NewMockGoalRepository(ctrl)

	accountRepo.EXPECT().Upsert(gomock.Any(), domain.PlatformGoogle, gomock.Any()).Return(&domain.Account{ID: "acc_g"}, nil)
	datasetRepo.EXPECT().CreateWithRows(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := NewSeeder(accountRepo, datasetRepo, goalRepo).Seed(context.Background())

	assert.ErrorContains(t, err, "disk full")
}

func TestSchemaIsEmbedded(t *testing.T) {
	assert.Contains(t, Schema(), "CREATE TABLE IF NOT EXISTS audit_logs")
}
