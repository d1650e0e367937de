package domain

// Totals agrega todas as linhas de um dataset
type Totals struct {
	TotalSpend       float64 `json:"totalSpend"`
	TotalClicks      float64 `json:"totalClicks"`
	TotalConversions float64 `json:"totalConversions"`
	TotalImpressions float64 `json:"totalImpressions"`
	TotalConvValue   float64 `json:"totalConvValue"`
	AverageCPC       float64 `json:"averageCpc"`
	AverageCTR       float64 `json:"averageCtr"`
	AverageCVR       float64 `json:"averageCvr"`
	AverageROAS      float64 `json:"averageRoas"`
	AverageCPL       float64 `json:"averageCpl"`
}

// PlatformAggregate soma as linhas de uma plataforma.
// ROAS é a soma do ROAS de cada linha, não a razão recalculada.
type PlatformAggregate struct {
	Platform    Platform `json:"platform"`
	Spend       float64  `json:"spend"`
	Clicks      float64  `json:"clicks"`
	Conversions float64  `json:"conversions"`
	Impressions float64  `json:"impressions"`
	ConvValue   float64  `json:"convValue"`
	ROAS        float64  `json:"roas"`
}

// CampaignAggregate soma as linhas de uma campanha.
// ROAS segue a mesma regra de PlatformAggregate.
type CampaignAggregate struct {
	Campaign    string   `json:"campaign"`
	Platform    Platform `json:"platform"`
	Spend       float64  `json:"spend"`
	Clicks      float64  `json:"clicks"`
	Conversions float64  `json:"conversions"`
	Impressions float64  `json:"impressions"`
	ConvValue   float64  `json:"convValue"`
	ROAS        float64  `json:"roas"`
}

// Aggregation é o resultado de uma passada sobre as linhas de um dataset.
// CampaignOrder guarda as campanhas na ordem em que aparecem nas linhas.
type Aggregation struct {
	Totals
	Platforms     map[string]*PlatformAggregate
	Campaigns     map[string]*CampaignAggregate
	CampaignOrder []string
}

// OrderedCampaigns devolve as campanhas na ordem de primeira aparição
func (a *Aggregation) OrderedCampaigns() []*CampaignAggregate {
	campaigns := make([]*CampaignAggregate, 0, len(a.CampaignOrder))
	for _, name := range a.CampaignOrder {
		campaigns = append(campaigns, a.Campaigns[name])
	}
	return campaigns
}

type DiagnosisWasteCampaign struct {
	Campaign        string   `json:"campaign"`
	Platform        Platform `json:"platform"`
	Spend           float64  `json:"spend"`
	Conversions     float64  `json:"conversions"`
	ROAS            float64  `json:"roas"`
	WastePercentage float64  `json:"wastePercentage"`
}

type Diagnosis struct {
	Totals
	PlatformBreakdown   map[string]*PlatformAggregate `json:"platformBreakdown"`
	CampaignPerformance []*CampaignAggregate          `json:"campaignPerformance"`
	WasteCampaigns      []DiagnosisWasteCampaign      `json:"wasteCampaigns"`
	DatasetID           string                        `json:"datasetId"`
}

type WasteCampaign struct {
	ID              string   `json:"id"`
	Entity          string   `json:"entity"`
	Platform        Platform `json:"platform"`
	Spend           float64  `json:"spend"`
	Conversions     float64  `json:"conversions"`
	ROAS            float64  `json:"roas"`
	CPL             float64  `json:"cpl"`
	WastePercentage float64  `json:"wastePercentage"`
	Recommendation  string   `json:"recommendation"`
}

type WasteReport struct {
	DatasetID string          `json:"datasetId"`
	Campaigns []WasteCampaign `json:"campaigns"`
}
