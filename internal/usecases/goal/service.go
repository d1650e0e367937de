package goal

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
)

type GoalService interface {
	Create(ctx context.Context, req domain.CreateGoalRequest) (*domain.Goal, error)
	List(ctx context.Context) ([]*domain.Goal, error)
	Current(ctx context.Context) (*domain.Goal, error)
}

type Service struct {
	goalRepository repository.GoalRepository
}

func NewService(goalRepository repository.GoalRepository) GoalService {
	return &Service{
		goalRepository: goalRepository,
	}
}

// Validate confere o tipo e os alvos de uma meta e devolve todos os campos rejeitados
func Validate(req domain.CreateGoalRequest) []domain.FieldError {
	fieldErrors := make([]domain.FieldError, 0)

	if req.Type == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "type", Message: "required"})
	} else if !domain.GoalType(req.Type).IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{Field: "type", Message: "must be one of cpl, roas, budget"})
	}

	targets := []struct {
		field string
		value *float64
	}{
		{"targetCpl", req.TargetCPL},
		{"targetRoas", req.TargetROAS},
		{"budgetCap", req.BudgetCap},
	}
	for _, target := range targets {
		if target.value != nil && *target.value < 0 {
			fieldErrors = append(fieldErrors, domain.FieldError{Field: target.field, Message: "must be greater than or equal to 0"})
		}
	}

	return fieldErrors
}

func (s *Service) Create(ctx context.Context, req domain.CreateGoalRequest) (*domain.Goal, error) {
	if fieldErrors := Validate(req); len(fieldErrors) > 0 {
		return nil, NewGoalError(ErrInvalidGoal, apiErrors.ErrInvalidRequest, fieldErrors)
	}

	goal := &domain.Goal{
		Type:       domain.GoalType(req.Type),
		TargetCPL:  req.TargetCPL,
		TargetROAS: req.TargetROAS,
		BudgetCap:  req.BudgetCap,
	}

	if err := s.goalRepository.Create(ctx, goal); err != nil {
		return nil, NewGoalError(errors.Wrap(ErrSaveGoal, err.Error()), apiErrors.ErrDatabaseOperation, nil)
	}

	log.ForContext(ctx).Infof("goals: meta %s criada", goal.Type)

	return goal, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Goal, error) {
	goals, err := s.goalRepository.List(ctx)
	if err != nil {
		return nil, NewGoalError(errors.Wrap(ErrLoadGoals, err.Error()), apiErrors.ErrDatabaseOperation, nil)
	}
	return goals, nil
}

// Current devolve a meta mais recente, ou nil quando não há nenhuma
func (s *Service) Current(ctx context.Context) (*domain.Goal, error) {
	goal, err := s.goalRepository.GetLatest(ctx)
	if err != nil {
		return nil, NewGoalError(errors.Wrap(ErrLoadGoals, err.Error()), apiErrors.ErrDatabaseOperation, nil)
	}
	return goal, nil
}
