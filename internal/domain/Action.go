package domain

import "time"

type ActionType string

const (
	ActionTypeIncreaseBudget ActionType = "increase_budget"
	ActionTypeDecreaseBudget ActionType = "decrease_budget"
	ActionTypePause          ActionType = "pause"
)

const EntityTypeCampaign = "campaign"

// ActionTypeForLevel traduz o nível da recomendação para o tipo de ação
func ActionTypeForLevel(level RecommendationLevel) ActionType {
	switch level {
	case RecommendationLevelIncrease:
		return ActionTypeIncreaseBudget
	case RecommendationLevelDecrease:
		return ActionTypeDecreaseBudget
	default:
		return ActionTypePause
	}
}

type ActionParams struct {
	CurrentSpend   float64 `json:"currentSpend"`
	SuggestedSpend float64 `json:"suggestedSpend"`
}

type ExpectedImpact struct {
	ExpectedConversions float64 `json:"expectedConversions"`
	ExpectedROAS        float64 `json:"expectedRoas"`
}

type Action struct {
	ID               string          `json:"id"`
	RecommendationID string          `json:"recommendationId"`
	Platform         Platform        `json:"platform"`
	EntityType       string          `json:"entityType"`
	EntityID         string          `json:"entityId"`
	ActionType       ActionType      `json:"actionType"`
	Params           ActionParams    `json:"params"`
	DryRun           bool            `json:"dryRun"`
	ExpectedImpact   ExpectedImpact  `json:"expectedImpact"`
	Applied          bool            `json:"applied"`
	AppliedAt        *time.Time      `json:"appliedAt"`
	CreatedAt        time.Time       `json:"createdAt"`
	Recommendation   *Recommendation `json:"recommendation,omitempty"`
}

// ExecutionResult é o resultado simulado gravado no audit log
type ExecutionResult struct {
	Success    bool         `json:"success"`
	Message    string       `json:"message"`
	Platform   Platform     `json:"platform"`
	EntityType string       `json:"entityType"`
	EntityID   string       `json:"entityId"`
	ActionType ActionType   `json:"actionType"`
	Params     ActionParams `json:"params"`
	Timestamp  time.Time    `json:"timestamp"`
}

type AuditPayload struct {
	ActionID string `json:"actionId"`
}

// AuditLog só recebe inserts
type AuditLog struct {
	ID        string          `json:"id"`
	ActionID  string          `json:"actionId"`
	Payload   AuditPayload    `json:"payload"`
	Result    ExecutionResult `json:"result"`
	CreatedAt time.Time       `json:"createdAt"`
}

type ActionRequest struct {
	ActionID string `json:"actionId"`
}

type ExecuteResponse struct {
	Action *Action          `json:"action"`
	Result *ExecutionResult `json:"result"`
}

type CampaignState struct {
	Spend  float64 `json:"spend"`
	Status string  `json:"status"`
}

type SimulationImpact struct {
	SpendChange           float64 `json:"spendChange"`
	SpendChangePercentage float64 `json:"spendChangePercentage"`
	ExpectedConversions   float64 `json:"expectedConversions"`
	ExpectedROAS          float64 `json:"expectedRoas"`
}

type Simulation struct {
	CurrentState  CampaignState    `json:"currentState"`
	ProposedState CampaignState    `json:"proposedState"`
	Impact        SimulationImpact `json:"impact"`
}

type SimulationResult struct {
	Success        bool           `json:"success"`
	Message        string         `json:"message"`
	Platform       Platform       `json:"platform"`
	EntityType     string         `json:"entityType"`
	EntityID       string         `json:"entityId"`
	ActionType     ActionType     `json:"actionType"`
	Params         ActionParams   `json:"params"`
	ExpectedImpact ExpectedImpact `json:"expectedImpact"`
	Simulation     Simulation     `json:"simulation"`
	Timestamp      time.Time      `json:"timestamp"`
}

// ActionExecutedEvent é publicado no broker depois que uma execução é confirmada
type ActionExecutedEvent struct {
	ActionID         string          `json:"actionId"`
	RecommendationID string          `json:"recommendationId"`
	Result           ExecutionResult `json:"result"`
	AppliedAt        time.Time       `json:"appliedAt"`
}
