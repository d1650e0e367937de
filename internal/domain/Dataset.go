package domain

import "time"

type DatasetSource string

const (
	DatasetSourceGoogleAds DatasetSource = "google_ads"
	DatasetSourceMetaAds   DatasetSource = "meta_ads"
)

type Dataset struct {
	ID        string        `json:"id"`
	AccountID string        `json:"accountId"`
	Source    DatasetSource `json:"source"`
	FileName  string        `json:"fileName"`
	Checksum  string        `json:"checksum"`
	RowCount  int           `json:"rowCount"`
	CreatedAt time.Time     `json:"createdAt"`
}

type IngestResponse struct {
	Success       bool     `json:"success"`
	DatasetID     string   `json:"datasetId"`
	RowsProcessed int      `json:"rowsProcessed"`
	RowsSkipped   int      `json:"rowsSkipped"`
	Platform      Platform `json:"platform"`
}
