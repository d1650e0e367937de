package connecting

import (
	"math"

	"github.com/vfg2006/postwise-api/internal/domain"
)

const demoStatusActive = "ACTIVE"

var demoCampaigns = map[domain.Platform][]domain.DemoCampaign{
	domain.PlatformGoogle: {
		{ID: "123456789", Name: "Campaña Demo - Búsqueda", Status: demoStatusActive, Budget: 1000, Spend: 750, Impressions: 50000, Clicks: 2500, Conversions: 125, ROAS: 3.2},
		{ID: "987654321", Name: "Campaña Demo - Display", Status: demoStatusActive, Budget: 800, Spend: 600, Impressions: 75000, Clicks: 1800, Conversions: 90, ROAS: 2.8},
		{ID: "456789123", Name: "Campaña Demo - Shopping", Status: demoStatusActive, Budget: 1200, Spend: 900, Impressions: 30000, Clicks: 3200, Conversions: 160, ROAS: 4.1},
	},
	domain.PlatformMeta: {
		{ID: "120330000000000000", Name: "Campaña Demo - Facebook Feed", Status: demoStatusActive, Budget: 800, Spend: 600, Impressions: 45000, Clicks: 1800, Conversions: 90, ROAS: 2.5},
		{ID: "120330000000000001", Name: "Campaña Demo - Instagram Stories", Status: demoStatusActive, Budget: 600, Spend: 450, Impressions: 35000, Clicks: 1400, Conversions: 70, ROAS: 3.1},
		{ID: "120330000000000002", Name: "Campaña Demo - Messenger", Status: demoStatusActive, Budget: 400, Spend: 300, Impressions: 20000, Clicks: 800, Conversions: 40, ROAS: 2.8},
		{ID: "120330000000000003", Name: "Campaña Demo - Audience Network", Status: demoStatusActive, Budget: 700, Spend: 525, Impressions: 60000, Clicks: 2400, Conversions: 120, ROAS: 2.9},
	},
}

// snapshot soma as campanhas de demonstração. averageRoas é a média simples
// arredondada para uma casa decimal.
func snapshot(campaigns []domain.DemoCampaign) *domain.DemoSnapshot {
	s := &domain.DemoSnapshot{
		Campaigns: append([]domain.DemoCampaign(nil), campaigns...),
	}

	var roasSum float64
	for _, c := range campaigns {
		s.TotalBudget += c.Budget
		s.TotalSpend += c.Spend
		s.TotalImpressions += c.Impressions
		s.TotalClicks += c.Clicks
		s.TotalConversions += c.Conversions
		roasSum += c.ROAS
	}

	if len(campaigns) > 0 {
		s.AverageROAS = math.Round(roasSum/float64(len(campaigns))*10) / 10
	}

	return s
}
