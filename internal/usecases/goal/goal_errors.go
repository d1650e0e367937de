package goal

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidGoal = errors.New("Invalid data")
	ErrSaveGoal    = errors.New("error saving goal")
	ErrLoadGoals   = errors.New("error loading goals")
)

// GoalError carrega o código de API e os campos rejeitados
type GoalError struct {
	Err     error
	Code    string
	Details any
}

func (e *GoalError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *GoalError) Unwrap() error {
	return e.Err
}

func NewGoalError(err error, code string, details any) *GoalError {
	return &GoalError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
