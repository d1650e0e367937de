package diagnosing

import (
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

// WasteROASThreshold é o ROAS abaixo do qual uma campanha é considerada desperdício
const WasteROASThreshold = 2.0

// Aggregate reduz as linhas de um dataset em totais, médias e somas por plataforma e campanha.
//
// O campo ROAS dos agregados por plataforma e campanha é a soma do ROAS de cada linha,
// igual ao comportamento herdado. As médias de Totals usam razões recalculadas.
func Aggregate(rows []*domain.MetricRow) *domain.Aggregation {
	agg := &domain.Aggregation{
		Platforms:     make(map[string]*domain.PlatformAggregate),
		Campaigns:     make(map[string]*domain.CampaignAggregate),
		CampaignOrder: make([]string, 0),
	}

	for _, row := range rows {
		agg.TotalSpend += row.Spend
		agg.TotalClicks += row.Clicks
		agg.TotalConversions += row.Conversions
		agg.TotalImpressions += row.Impressions
		agg.TotalConvValue += row.ConvValue

		platform, ok := agg.Platforms[string(row.Platform)]
		if !ok {
			platform = &domain.PlatformAggregate{Platform: row.Platform}
			agg.Platforms[string(row.Platform)] = platform
		}
		platform.Spend += row.Spend
		platform.Clicks += row.Clicks
		platform.Conversions += row.Conversions
		platform.Impressions += row.Impressions
		platform.ConvValue += row.ConvValue
		platform.ROAS += row.ROAS

		// a plataforma da campanha é a da primeira linha em que ela aparece
		campaign, ok := agg.Campaigns[row.Campaign]
		if !ok {
			campaign = &domain.CampaignAggregate{Campaign: row.Campaign, Platform: row.Platform}
			agg.Campaigns[row.Campaign] = campaign
			agg.CampaignOrder = append(agg.CampaignOrder, row.Campaign)
		}
		campaign.Spend += row.Spend
		campaign.Clicks += row.Clicks
		campaign.Conversions += row.Conversions
		campaign.Impressions += row.Impressions
		campaign.ConvValue += row.ConvValue
		campaign.ROAS += row.ROAS
	}

	agg.AverageCPC = utils.Ratio(agg.TotalSpend, agg.TotalClicks)
	agg.AverageCTR = utils.Ratio(agg.TotalClicks, agg.TotalImpressions)
	agg.AverageCVR = utils.Ratio(agg.TotalConversions, agg.TotalClicks)
	agg.AverageROAS = utils.Ratio(agg.TotalConvValue, agg.TotalSpend)
	agg.AverageCPL = utils.Ratio(agg.TotalSpend, agg.TotalConversions)

	return agg
}

// WastePercentage mede a distância do ROAS até o limite, em porcentagem, nunca negativa
func WastePercentage(roas float64) float64 {
	pct := (WasteROASThreshold - roas) / WasteROASThreshold * 100
	if pct < 0 {
		return 0
	}
	return pct
}

// Diagnosis monta a resposta de diagnóstico a partir da agregação
func Diagnosis(datasetID string, agg *domain.Aggregation) *domain.Diagnosis {
	campaigns := agg.OrderedCampaigns()

	waste := make([]domain.DiagnosisWasteCampaign, 0)
	for _, c := range campaigns {
		if c.ROAS >= WasteROASThreshold {
			continue
		}
		waste = append(waste, domain.DiagnosisWasteCampaign{
			Campaign:        c.Campaign,
			Platform:        c.Platform,
			Spend:           c.Spend,
			Conversions:     c.Conversions,
			ROAS:            c.ROAS,
			WastePercentage: WastePercentage(c.ROAS),
		})
	}

	return &domain.Diagnosis{
		Totals:              agg.Totals,
		PlatformBreakdown:   agg.Platforms,
		CampaignPerformance: campaigns,
		WasteCampaigns:      waste,
		DatasetID:           datasetID,
	}
}
