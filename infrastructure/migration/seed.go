package migration

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

type seedCampaign struct {
	Name     string
	Platform domain.Platform
	ROAS     float64
	Spend    float64
}

var seedCampaigns = []seedCampaign{
	{Name: "Brand Awareness", Platform: domain.PlatformGoogle, ROAS: 4.2, Spend: 1000},
	{Name: "Lead Generation", Platform: domain.PlatformGoogle, ROAS: 2.8, Spend: 800},
	{Name: "Retargeting", Platform: domain.PlatformGoogle, ROAS: 1.5, Spend: 600},
	{Name: "Holiday Campaign", Platform: domain.PlatformMeta, ROAS: 3.5, Spend: 1200},
	{Name: "Lookalike Audience", Platform: domain.PlatformMeta, ROAS: 2.1, Spend: 900},
}

const seedDays = 5

var seedStartDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

// SeedRows gera as linhas diárias de exemplo de uma plataforma. Os valores são determinísticos.
func SeedRows(platform domain.Platform) []*domain.MetricRow {
	rows := make([]*domain.MetricRow, 0, seedDays*len(seedCampaigns))

	for _, c := range seedCampaigns {
		if c.Platform != platform {
			continue
		}

		spend := c.Spend / seedDays
		conversions := math.Floor(spend / (c.ROAS * 50))
		clicks := conversions * 20
		impressions := clicks * 50
		convValue := spend * c.ROAS

		for day := 0; day < seedDays; day++ {
			rows = append(rows, &domain.MetricRow{
				Platform:    c.Platform,
				Date:        seedStartDate.AddDate(0, 0, day),
				Campaign:    c.Name,
				AdGroup:     ptr(c.Name + " - Ad Group 1"),
				Ad:          ptr(c.Name + " - Ad 1"),
				Audience:    ptr("All Users"),
				Device:      ptr("Desktop"),
				Impressions: impressions,
				Clicks:      clicks,
				Spend:       spend,
				Conversions: conversions,
				ConvValue:   convValue,
				CPC:         utils.Ratio(spend, clicks),
				CPM:         utils.Ratio(spend, impressions) * 1000,
				CTR:         utils.Ratio(clicks, impressions),
				CVRate:      utils.Ratio(conversions, clicks),
				ROAS:        utils.Ratio(convValue, spend),
				CostPerConv: utils.Ratio(spend, conversions),
			})
		}
	}

	return rows
}

type SeedResult struct {
	DatasetIDs []string
	GoalIDs    []string
	Rows       int
}

type Seeder struct {
	accountRepository repository.AccountRepository
	datasetRepository repository.DatasetRepository
	goalRepository    repository.GoalRepository
}

func NewSeeder(
	accountRepository repository.AccountRepository,
	datasetRepository repository.DatasetRepository,
	goalRepository repository.GoalRepository,
) *Seeder {
	return &Seeder{
		accountRepository: accountRepository,
		datasetRepository: datasetRepository,
		goalRepository:    goalRepository,
	}
}

// Seed grava contas, um dataset por plataforma e as metas de exemplo
func (s *Seeder) Seed(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	for _, platform := range []domain.Platform{domain.PlatformGoogle, domain.PlatformMeta} {
		account, err := s.accountRepository.Upsert(ctx, platform, platform.AccountName())
		if err != nil {
			return nil, fmt.Errorf("erro ao criar conta %s: %w", platform, err)
		}

		fileName := fmt.Sprintf("seed_%s.csv", platform)
		dataset := &domain.Dataset{
			AccountID: account.ID,
			Source:    platform.Source(),
			FileName:  fileName,
			Checksum:  utils.Checksum([]byte(fileName)),
		}

		rows := SeedRows(platform)
		if err := s.datasetRepository.CreateWithRows(ctx, dataset, rows); err != nil {
			return nil, fmt.Errorf("erro ao criar dataset %s: %w", platform, err)
		}

		result.DatasetIDs = append(result.DatasetIDs, dataset.ID)
		result.Rows += len(rows)

		logrus.WithFields(logrus.Fields{
			"dataset_id": dataset.ID,
			"platform":   platform,
			"rows":       len(rows),
		}).Info("Dataset de exemplo criado")
	}

	goals := []*domain.Goal{
		{Type: domain.GoalTypeCPL, TargetCPL: ptr(25.0)},
		{Type: domain.GoalTypeROAS, TargetROAS: ptr(3.0)},
	}
	for _, g := range goals {
		if err := s.goalRepository.Create(ctx, g); err != nil {
			return nil, fmt.Errorf("erro ao criar meta %s: %w", g.Type, err)
		}
		result.GoalIDs = append(result.GoalIDs, g.ID)
	}

	return result, nil
}
