package domain

import "time"

type Platform string

const (
	PlatformGoogle Platform = "google"
	PlatformMeta   Platform = "meta"
)

// AccountName é o nome de exibição usado na deduplicação de contas por plataforma
func (p Platform) AccountName() string {
	switch p {
	case PlatformGoogle:
		return "Google Account"
	default:
		return "Meta Account"
	}
}

func (p Platform) Source() DatasetSource {
	if p == PlatformGoogle {
		return DatasetSourceGoogleAds
	}
	return DatasetSourceMetaAds
}

type Account struct {
	ID        string    `json:"id"`
	Platform  Platform  `json:"platform"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
