package executing

import (
	"time"

	"github.com/vfg2006/postwise-api/internal/domain"
)

const (
	executedMessage  = "Action executed successfully (simulation)"
	simulatedMessage = "Simulation completed successfully"

	stateActive = "active"
	statePaused = "paused"
)

// ExecutionResultFor monta o resultado simulado gravado no audit log
func ExecutionResultFor(action *domain.Action, at time.Time) domain.ExecutionResult {
	return domain.ExecutionResult{
		Success:    true,
		Message:    executedMessage,
		Platform:   action.Platform,
		EntityType: action.EntityType,
		EntityID:   action.EntityID,
		ActionType: action.ActionType,
		Params:     action.Params,
		Timestamp:  at,
	}
}

// SimulationFor calcula o impacto projetado a partir dos parâmetros gravados na ação
func SimulationFor(action *domain.Action, at time.Time) *domain.SimulationResult {
	params := action.Params
	spendChange := params.SuggestedSpend - params.CurrentSpend

	var spendChangePct float64
	if params.CurrentSpend != 0 {
		spendChangePct = spendChange / params.CurrentSpend * 100
	}

	proposedStatus := stateActive
	if action.ActionType == domain.ActionTypePause {
		proposedStatus = statePaused
	}

	return &domain.SimulationResult{
		Success:        true,
		Message:        simulatedMessage,
		Platform:       action.Platform,
		EntityType:     action.EntityType,
		EntityID:       action.EntityID,
		ActionType:     action.ActionType,
		Params:         params,
		ExpectedImpact: action.ExpectedImpact,
		Simulation: domain.Simulation{
			CurrentState: domain.CampaignState{
				Spend:  params.CurrentSpend,
				Status: stateActive,
			},
			ProposedState: domain.CampaignState{
				Spend:  params.SuggestedSpend,
				Status: proposedStatus,
			},
			Impact: domain.SimulationImpact{
				SpendChange:           spendChange,
				SpendChangePercentage: spendChangePct,
				ExpectedConversions:   action.ExpectedImpact.ExpectedConversions,
				ExpectedROAS:          action.ExpectedImpact.ExpectedROAS,
			},
		},
		Timestamp: at,
	}
}
