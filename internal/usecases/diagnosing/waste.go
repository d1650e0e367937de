package diagnosing

import (
	"sort"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

const minReportedWastePercentage = 10.0

// WasteRecommendation devolve a sugestão fixa para a faixa de ROAS
func WasteRecommendation(roas float64) string {
	switch {
	case roas < 1.0:
		return "Consider pausing this campaign - very low ROAS"
	case roas < 1.5:
		return "Reduce budget by 50% - low ROAS"
	case roas < WasteROASThreshold:
		return "Optimize targeting and creative - below target ROAS"
	default:
		return "Campaign performing well"
	}
}

// ClassifyWaste recalcula ROAS e CPL por campanha e mantém apenas as campanhas com
// desperdício acima de 10%, da maior para a menor.
func ClassifyWaste(agg *domain.Aggregation) []domain.WasteCampaign {
	result := make([]domain.WasteCampaign, 0)

	for _, c := range agg.OrderedCampaigns() {
		roas := utils.Ratio(c.ConvValue, c.Spend)
		waste := WastePercentage(roas)
		if waste <= minReportedWastePercentage {
			continue
		}

		result = append(result, domain.WasteCampaign{
			ID:              c.Campaign,
			Entity:          c.Campaign,
			Platform:        c.Platform,
			Spend:           c.Spend,
			Conversions:     c.Conversions,
			ROAS:            roas,
			CPL:             utils.Ratio(c.Spend, c.Conversions),
			WastePercentage: waste,
			Recommendation:  WasteRecommendation(roas),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].WastePercentage != result[j].WastePercentage {
			return result[i].WastePercentage > result[j].WastePercentage
		}
		return result[i].Entity < result[j].Entity
	})

	return result
}
