package executing

import (
	"context"
	"errors"
	"strings"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/infrastructure/broker"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
	"github.com/vfg2006/postwise-api/pkg/metrics"
)

type Executor interface {
	ListActions(ctx context.Context) ([]*domain.Action, error)
	Execute(ctx context.Context, actionID string) (*domain.ExecuteResponse, error)
	Simulate(ctx context.Context, actionID string) (*domain.SimulationResult, error)
}

type Service struct {
	actionRepository repository.ActionRepository
	publisher        broker.Publisher
	now              func() time.Time
}

func NewService(actionRepository repository.ActionRepository, publisher broker.Publisher) Executor {
	return &Service{
		actionRepository: actionRepository,
		publisher:        publisher,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) ListActions(ctx context.Context) ([]*domain.Action, error) {
	actions, err := s.actionRepository.List(ctx)
	if err != nil {
		return nil, NewExecutionError(pkgerrors.Wrap(ErrLoadAction, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	return actions, nil
}

// Execute marca a ação como aplicada e grava o audit log na mesma transação.
// Nenhuma plataforma externa é chamada; o resultado é sempre simulado.
func (s *Service) Execute(ctx context.Context, actionID string) (*domain.ExecuteResponse, error) {
	action, err := s.load(ctx, actionID)
	if err != nil {
		return nil, err
	}

	if action.Applied {
		return nil, NewExecutionError(ErrAlreadyApplied, apiErrors.ErrResourceConflict, action.ID)
	}

	appliedAt := s.now()
	result := ExecutionResultFor(action, appliedAt)

	entry := &domain.AuditLog{
		ActionID: action.ID,
		Payload:  domain.AuditPayload{ActionID: action.ID},
		Result:   result,
	}

	if err := s.actionRepository.MarkApplied(ctx, action.ID, appliedAt, entry); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, NewExecutionError(ErrAlreadyApplied, apiErrors.ErrResourceConflict, action.ID)
		}
		return nil, NewExecutionError(pkgerrors.Wrap(ErrApplyAction, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	action.Applied = true
	action.AppliedAt = &appliedAt

	metrics.ActionExecuted(string(action.ActionType))

	logger := log.ForContext(ctx).WithField("action_id", action.ID)
	logger.Infof("execute: ação %s aplicada em %s", action.ActionType, action.EntityID)

	// a publicação não desfaz a execução já confirmada
	event := domain.ActionExecutedEvent{
		ActionID:         action.ID,
		RecommendationID: action.RecommendationID,
		Result:           result,
		AppliedAt:        appliedAt,
	}
	if err := s.publisher.PublishActionExecuted(ctx, event); err != nil {
		logger.WithError(err).Warn("execute: falha ao publicar evento")
	}

	return &domain.ExecuteResponse{
		Action: action,
		Result: &result,
	}, nil
}

// Simulate calcula o impacto da ação sem alterar nenhum estado
func (s *Service) Simulate(ctx context.Context, actionID string) (*domain.SimulationResult, error) {
	action, err := s.load(ctx, actionID)
	if err != nil {
		return nil, err
	}

	return SimulationFor(action, s.now()), nil
}

func (s *Service) load(ctx context.Context, actionID string) (*domain.Action, error) {
	if strings.TrimSpace(actionID) == "" {
		return nil, NewExecutionError(ErrMissingActionID, apiErrors.ErrMissingRequiredData, "")
	}

	action, err := s.actionRepository.GetByID(ctx, actionID)
	if err != nil {
		return nil, NewExecutionError(pkgerrors.Wrap(ErrLoadAction, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	if action == nil {
		return nil, NewExecutionError(ErrActionNotFound, apiErrors.ErrResourceNotFound, actionID)
	}

	return action, nil
}
