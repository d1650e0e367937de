package domain

type GoogleAdsConnectRequest struct {
	CustomerID     string `json:"customerId"`
	DeveloperToken string `json:"developerToken"`
	ClientID       string `json:"clientId"`
	ClientSecret   string `json:"clientSecret"`
	RefreshToken   string `json:"refreshToken"`
}

type ConnectResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	CustomerID string `json:"customerId"`
}

type DemoCampaign struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Status      string  `json:"status"`
	Budget      float64 `json:"budget"`
	Spend       float64 `json:"spend"`
	Impressions int     `json:"impressions"`
	Clicks      int     `json:"clicks"`
	Conversions int     `json:"conversions"`
	ROAS        float64 `json:"roas"`
}

type DemoSnapshot struct {
	Campaigns        []DemoCampaign `json:"campaigns"`
	TotalBudget      float64        `json:"totalBudget"`
	TotalSpend       float64        `json:"totalSpend"`
	TotalImpressions int            `json:"totalImpressions"`
	TotalClicks      int            `json:"totalClicks"`
	TotalConversions int            `json:"totalConversions"`
	AverageROAS      float64        `json:"averageRoas"`
}
