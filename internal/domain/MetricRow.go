package domain

import "time"

// MetricRow é uma observação importada de um CSV. Não é alterada depois de criada.
type MetricRow struct {
	ID          string    `json:"id"`
	DatasetID   string    `json:"datasetId"`
	Platform    Platform  `json:"platform"`
	Date        time.Time `json:"date"`
	Campaign    string    `json:"campaign"`
	AdGroup     *string   `json:"adGroup,omitempty"`
	Ad          *string   `json:"ad,omitempty"`
	Audience    *string   `json:"audience,omitempty"`
	Device      *string   `json:"device,omitempty"`
	Placement   *string   `json:"placement,omitempty"`
	Impressions float64   `json:"impressions"`
	Clicks      float64   `json:"clicks"`
	Spend       float64   `json:"spend"`
	Conversions float64   `json:"conversions"`
	ConvValue   float64   `json:"convValue"`
	CPC         float64   `json:"cpc"`
	CPM         float64   `json:"cpm"`
	CTR         float64   `json:"ctr"`
	CVRate      float64   `json:"cvRate"`
	ROAS        float64   `json:"roas"`
	CostPerConv float64   `json:"costPerConv"`
}
