package executing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	brokermocks "github.com/vfg2006/postwise-api/infrastructure/broker/mocks"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/infrastructure/repository/mocks"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *mocks.MockActionRepository, *brokermocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	actionRepo := mocks.NewMockActionRepository(ctrl)
	publisher := brokermocks.NewMockPublisher(ctrl)

	service := NewService(actionRepo, publisher).(*Service)
	service.now = func() time.Time { return fixedNow }

	return service, actionRepo, publisher
}

func pendingAction() *domain.Action {
	return &domain.Action{
		ID:               "act-1",
		RecommendationID: "rec-1",
		Platform:         domain.PlatformGoogle,
		EntityType:       domain.EntityTypeCampaign,
		EntityID:         "Brand Awareness",
		ActionType:       domain.ActionTypeIncreaseBudget,
		Params:           domain.ActionParams{CurrentSpend: 1000, SuggestedSpend: 1050},
		DryRun:           true,
		ExpectedImpact:   domain.ExpectedImpact{ExpectedConversions: 21, ExpectedROAS: 4.2},
	}
}

func TestExecute(t *testing.T) {
	tests := []struct {
		name     string
		actionID string
		setup    func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher)
		validate func(t *testing.T, resp *domain.ExecuteResponse, err error)
	}{
		{
			name:     "deve aplicar a ação, gravar audit log e publicar evento",
			actionID: "act-1",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(pendingAction(), nil)
				actionRepo.EXPECT().
					MarkApplied(gomock.Any(), "act-1", fixedNow, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, _ time.Time, entry *domain.AuditLog) error {
						assert.Equal(t, "act-1", entry.ActionID)
						assert.Equal(t, "act-1", entry.Payload.ActionID)
						assert.True(t, entry.Result.Success)
						assert.Equal(t, "Action executed successfully (simulation)", entry.Result.Message)
						assert.Equal(t, domain.PlatformGoogle, entry.Result.Platform)
						assert.Equal(t, 1050.0, entry.Result.Params.SuggestedSpend)
						return nil
					})
				publisher.EXPECT().
					PublishActionExecuted(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event domain.ActionExecutedEvent) error {
						assert.Equal(t, "act-1", event.ActionID)
						assert.Equal(t, "rec-1", event.RecommendationID)
						assert.Equal(t, fixedNow, event.AppliedAt)
						return nil
					})
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Action.Applied)
				require.NotNil(t, resp.Action.AppliedAt)
				assert.Equal(t, fixedNow, *resp.Action.AppliedAt)
				assert.Equal(t, fixedNow, resp.Result.Timestamp)
				assert.Equal(t, domain.ActionTypeIncreaseBudget, resp.Result.ActionType)
			},
		},
		{
			name:     "deve ignorar falha na publicação do evento",
			actionID: "act-1",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(pendingAction(), nil)
				actionRepo.EXPECT().MarkApplied(gomock.Any(), "act-1", fixedNow, gomock.Any()).Return(nil)
				publisher.EXPECT().PublishActionExecuted(gomock.Any(), gomock.Any()).Return(errors.New("channel closed"))
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				require.NoError(t, err)
				assert.True(t, resp.Result.Success)
			},
		},
		{
			name:     "deve recusar ação já aplicada",
			actionID: "act-1",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				applied := pendingAction()
				applied.Applied = true
				actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(applied, nil)
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				assert.Nil(t, resp)
				var execErr *ExecutionError
				require.True(t, errors.As(err, &execErr))
				assert.Equal(t, apiErrors.ErrResourceConflict, execErr.Code)
				assert.ErrorIs(t, err, ErrAlreadyApplied)
			},
		},
		{
			name:     "deve recusar quando outra execução venceu a corrida",
			actionID: "act-1",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(pendingAction(), nil)
				actionRepo.EXPECT().MarkApplied(gomock.Any(), "act-1", fixedNow, gomock.Any()).Return(repository.ErrConflict)
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				assert.Nil(t, resp)
				assert.ErrorIs(t, err, ErrAlreadyApplied)
			},
		},
		{
			name:     "deve exigir o id da ação",
			actionID: " ",
			setup:    func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				var execErr *ExecutionError
				require.True(t, errors.As(err, &execErr))
				assert.Equal(t, apiErrors.ErrMissingRequiredData, execErr.Code)
			},
		},
		{
			name:     "deve retornar not found",
			actionID: "ghost",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				actionRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				var execErr *ExecutionError
				require.True(t, errors.As(err, &execErr))
				assert.Equal(t, apiErrors.ErrResourceNotFound, execErr.Code)
			},
		},
		{
			name:     "deve retornar erro de banco ao aplicar",
			actionID: "act-1",
			setup: func(actionRepo *mocks.MockActionRepository, publisher *brokermocks.MockPublisher) {
				actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(pendingAction(), nil)
				actionRepo.EXPECT().MarkApplied(gomock.Any(), "act-1", fixedNow, gomock.Any()).Return(errors.New("broken pipe"))
			},
			validate: func(t *testing.T, resp *domain.ExecuteResponse, err error) {
				var execErr *ExecutionError
				require.True(t, errors.As(err, &execErr))
				assert.Equal(t, apiErrors.ErrDatabaseOperation, execErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, actionRepo, publisher := newTestService(t)
			tt.setup(actionRepo, publisher)
			resp, err := service.Execute(context.Background(), tt.actionID)
			tt.validate(t, resp, err)
		})
	}
}

func TestExecuteTwiceIsRejected(t *testing.T) {
	service, actionRepo, publisher := newTestService(t)

	action := pendingAction()
	actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(action, nil).Times(2)
	actionRepo.EXPECT().MarkApplied(gomock.Any(), "act-1", fixedNow, gomock.Any()).Return(nil).Times(1)
	publisher.EXPECT().PublishActionExecuted(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	_, err := service.Execute(context.Background(), "act-1")
	require.NoError(t, err)

	_, err = service.Execute(context.Background(), "act-1")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestSimulate(t *testing.T) {
	service, actionRepo, _ := newTestService(t)
	actionRepo.EXPECT().GetByID(gomock.Any(), "act-1").Return(pendingAction(), nil)

	result, err := service.Simulate(context.Background(), "act-1")

	require.NoError(t, err)
	assert.Equal(t, "Simulation completed successfully", result.Message)
	assert.Equal(t, "active", result.Simulation.CurrentState.Status)
	assert.Equal(t, "active", result.Simulation.ProposedState.Status)
	assert.Equal(t, 1000.0, result.Simulation.CurrentState.Spend)
	assert.Equal(t, 1050.0, result.Simulation.ProposedState.Spend)
	assert.InDelta(t, 50, result.Simulation.Impact.SpendChange, 1e-9)
	assert.InDelta(t, 5, result.Simulation.Impact.SpendChangePercentage, 1e-9)
	assert.Equal(t, 21.0, result.Simulation.Impact.ExpectedConversions)
	assert.Equal(t, 4.2, result.Simulation.Impact.ExpectedROAS)
}

func TestSimulationFor(t *testing.T) {
	t.Run("pausa muda o status proposto", func(t *testing.T) {
		action := pendingAction()
		action.ActionType = domain.ActionTypePause

		result := SimulationFor(action, fixedNow)

		assert.Equal(t, "paused", result.Simulation.ProposedState.Status)
	})

	t.Run("gasto atual zero não gera NaN", func(t *testing.T) {
		action := pendingAction()
		action.Params = domain.ActionParams{CurrentSpend: 0, SuggestedSpend: 100}

		result := SimulationFor(action, fixedNow)

		assert.Equal(t, 100.0, result.Simulation.Impact.SpendChange)
		assert.Zero(t, result.Simulation.Impact.SpendChangePercentage)
	})
}

func TestSimulateNotFound(t *testing.T) {
	service, actionRepo, _ := newTestService(t)
	actionRepo.EXPECT().GetByID(gomock.Any(), "ghost").Return(nil, nil)

	_, err := service.Simulate(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrActionNotFound)
}

func TestListActions(t *testing.T) {
	service, actionRepo, _ := newTestService(t)
	actionRepo.EXPECT().List(gomock.Any()).Return([]*domain.Action{pendingAction()}, nil)

	actions, err := service.ListActions(context.Background())

	require.NoError(t, err)
	require.Len(t, actions, 1)
}
