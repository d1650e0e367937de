package recommending

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidAggressiveness  = errors.New("aggressiveness must be an integer between 0 and 100")
	ErrInvalidReviewAction    = errors.New("action must be accept or reject")
	ErrMissingRecommendation  = errors.New("recommendationId is required")
	ErrRecommendationNotFound = errors.New("Recommendation not found")
	ErrNotPending             = errors.New("Recommendation is not pending")
	ErrSaveRecommendations    = errors.New("error saving recommendations")
	ErrLoadRecommendations    = errors.New("error loading recommendations")
)

// RecommendationError carrega o código de API de uma falha de geração ou revisão
type RecommendationError struct {
	Err     error
	Code    string
	Details string
}

func (e *RecommendationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *RecommendationError) Unwrap() error {
	return e.Err
}

func NewRecommendationError(err error, code string, details string) *RecommendationError {
	return &RecommendationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
