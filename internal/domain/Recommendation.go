package domain

import "time"

type RecommendationLevel string

const (
	RecommendationLevelIncrease RecommendationLevel = "increase"
	RecommendationLevelDecrease RecommendationLevel = "decrease"
)

type RecommendationStatus string

const (
	RecommendationStatusPending  RecommendationStatus = "pending"
	RecommendationStatusAccepted RecommendationStatus = "accepted"
	RecommendationStatusRejected RecommendationStatus = "rejected"
)

type Recommendation struct {
	ID                  string               `json:"id"`
	DatasetID           string               `json:"datasetId"`
	GoalID              *string              `json:"goalId"`
	Level               RecommendationLevel  `json:"level"`
	Entity              string               `json:"entity"`
	Platform            Platform             `json:"platform"`
	CurrentSpend        float64              `json:"currentSpend"`
	SuggestedSpend      float64              `json:"suggestedSpend"`
	ExpectedConversions float64              `json:"expectedConversions"`
	ExpectedROAS        float64              `json:"expectedRoas"`
	Rationale           string               `json:"rationale"`
	Status              RecommendationStatus `json:"status"`
	CreatedAt           time.Time            `json:"createdAt"`
	Actions             []*Action            `json:"actions,omitempty"`
}

// ReviewAction é a decisão do usuário sobre uma recomendação pendente
type ReviewAction string

const (
	ReviewActionAccept ReviewAction = "accept"
	ReviewActionReject ReviewAction = "reject"
)

// Status retorna o status resultante da decisão, ou false para valores desconhecidos
func (a ReviewAction) Status() (RecommendationStatus, bool) {
	switch a {
	case ReviewActionAccept:
		return RecommendationStatusAccepted, true
	case ReviewActionReject:
		return RecommendationStatusRejected, true
	}
	return "", false
}

type UpdateRecommendationRequest struct {
	RecommendationID string       `json:"recommendationId"`
	Action           ReviewAction `json:"action"`
}

type RecommendationBatch struct {
	DatasetID       string            `json:"datasetId"`
	Aggressiveness  int               `json:"aggressiveness"`
	Recommendations []*Recommendation `json:"recommendations"`
}
