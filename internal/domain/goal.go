package domain

import "time"

type GoalType string

const (
	GoalTypeCPL    GoalType = "cpl"
	GoalTypeROAS   GoalType = "roas"
	GoalTypeBudget GoalType = "budget"
)

func (t GoalType) IsValid() bool {
	switch t {
	case GoalTypeCPL, GoalTypeROAS, GoalTypeBudget:
		return true
	}
	return false
}

type Goal struct {
	ID         string    `json:"id"`
	Type       GoalType  `json:"type"`
	TargetCPL  *float64  `json:"targetCpl,omitempty"`
	TargetROAS *float64  `json:"targetRoas,omitempty"`
	BudgetCap  *float64  `json:"budgetCap,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CreateGoalRequest struct {
	Type       string   `json:"type"`
	TargetCPL  *float64 `json:"targetCpl"`
	TargetROAS *float64 `json:"targetRoas"`
	BudgetCap  *float64 `json:"budgetCap"`
}

// FieldError descreve um campo rejeitado na validação de um payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
