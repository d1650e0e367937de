package recommending

import (
	"context"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/postwise-api/infrastructure/integrator/llm"
	"github.com/vfg2006/postwise-api/infrastructure/repository"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/internal/usecases/diagnosing"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/log"
	"github.com/vfg2006/postwise-api/pkg/metrics"
)

type Recommender interface {
	Generate(ctx context.Context, datasetID string, aggressiveness int) (*domain.RecommendationBatch, error)
	List(ctx context.Context) ([]*domain.Recommendation, error)
	UpdateStatus(ctx context.Context, req domain.UpdateRecommendationRequest) (*domain.Recommendation, error)
}

type Service struct {
	loader                   *diagnosing.DatasetLoader
	goalRepository           repository.GoalRepository
	recommendationRepository repository.RecommendationRepository
	writer                   llm.Writer
	rationaleTimeout         time.Duration
}

func NewService(
	loader *diagnosing.DatasetLoader,
	goalRepository repository.GoalRepository,
	recommendationRepository repository.RecommendationRepository,
	writer llm.Writer,
	rationaleTimeout time.Duration,
) Recommender {
	return &Service{
		loader:                   loader,
		goalRepository:           goalRepository,
		recommendationRepository: recommendationRepository,
		writer:                   writer,
		rationaleTimeout:         rationaleTimeout,
	}
}

// Generate propõe aumentos e reduções de verba para o dataset e grava o lote inteiro
// numa única transação.
func (s *Service) Generate(ctx context.Context, datasetID string, aggressiveness int) (*domain.RecommendationBatch, error) {
	if aggressiveness < 0 || aggressiveness > 100 {
		return nil, NewRecommendationError(ErrInvalidAggressiveness, apiErrors.ErrInvalidFormat, "")
	}

	dataset, rows, err := s.loader.Load(ctx, datasetID)
	if err != nil {
		var diagErr *diagnosing.DiagnosisError
		if errors.As(err, &diagErr) {
			return nil, NewRecommendationError(diagErr.Err, diagErr.Code, diagErr.Details)
		}
		return nil, err
	}

	logger := log.ForContext(ctx).WithField("dataset_id", dataset.ID)

	goal, err := s.goalRepository.GetLatest(ctx)
	if err != nil {
		return nil, NewRecommendationError(pkgerrors.Wrap(ErrSaveRecommendations, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	proposals := Propose(Candidates(diagnosing.Aggregate(rows).OrderedCampaigns()), aggressiveness)

	for _, rec := range proposals {
		rec.DatasetID = dataset.ID
		if goal != nil {
			rec.GoalID = &goal.ID
		}
		s.polishRationale(ctx, rec)
	}

	if err := s.recommendationRepository.CreateBatch(ctx, proposals); err != nil {
		logger.WithError(err).Error("recommend: lote descartado")
		return nil, NewRecommendationError(pkgerrors.Wrap(ErrSaveRecommendations, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	for _, rec := range proposals {
		metrics.RecommendationGenerated(string(rec.Level))
	}

	logger.Infof("recommend: %d recomendações geradas (agressividade %d)", len(proposals), aggressiveness)

	return &domain.RecommendationBatch{
		DatasetID:       dataset.ID,
		Aggressiveness:  aggressiveness,
		Recommendations: proposals,
	}, nil
}

// polishRationale tenta reescrever a justificativa com o provedor configurado.
// Qualquer falha mantém o texto do template.
func (s *Service) polishRationale(ctx context.Context, rec *domain.Recommendation) {
	if s.writer == nil || s.writer.Provider() == llm.ProviderNone {
		return
	}

	provider := s.writer.Provider()

	rctx, cancel := context.WithTimeout(ctx, s.rationaleTimeout)
	defer cancel()

	text, err := s.writer.Rewrite(rctx, llm.RationaleRequest{
		Campaign:       rec.Entity,
		Platform:       string(rec.Platform),
		Level:          string(rec.Level),
		CurrentSpend:   rec.CurrentSpend,
		SuggestedSpend: rec.SuggestedSpend,
		CurrentROAS:    rec.ExpectedROAS,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).Warnf("recommend: rationale mantido para %s", rec.Entity)
		metrics.RationaleOutcome(provider, "fallback")
		return
	}
	if text == "" {
		metrics.RationaleOutcome(provider, "empty")
		return
	}

	rec.Rationale = text
	metrics.RationaleOutcome(provider, "rewritten")
}

func (s *Service) List(ctx context.Context) ([]*domain.Recommendation, error) {
	recommendations, err := s.recommendationRepository.List(ctx)
	if err != nil {
		return nil, NewRecommendationError(pkgerrors.Wrap(ErrLoadRecommendations, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	return recommendations, nil
}

// UpdateStatus aceita ou rejeita uma recomendação pendente. Aceitar cria uma ação
// em modo simulação na mesma transação.
func (s *Service) UpdateStatus(ctx context.Context, req domain.UpdateRecommendationRequest) (*domain.Recommendation, error) {
	if req.RecommendationID == "" {
		return nil, NewRecommendationError(ErrMissingRecommendation, apiErrors.ErrMissingRequiredData, "")
	}

	status, ok := req.Action.Status()
	if !ok {
		return nil, NewRecommendationError(ErrInvalidReviewAction, apiErrors.ErrInvalidRequest, string(req.Action))
	}

	rec, err := s.recommendationRepository.GetByID(ctx, req.RecommendationID)
	if err != nil {
		return nil, NewRecommendationError(pkgerrors.Wrap(ErrLoadRecommendations, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}
	if rec == nil {
		return nil, NewRecommendationError(ErrRecommendationNotFound, apiErrors.ErrResourceNotFound, req.RecommendationID)
	}
	if rec.Status != domain.RecommendationStatusPending {
		return nil, NewRecommendationError(ErrNotPending, apiErrors.ErrResourceConflict, string(rec.Status))
	}

	var action *domain.Action
	if status == domain.RecommendationStatusAccepted {
		action = ActionFor(rec)
	}

	if err := s.recommendationRepository.Transition(ctx, rec.ID, status, action); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, NewRecommendationError(ErrNotPending, apiErrors.ErrResourceConflict, "")
		}
		return nil, NewRecommendationError(pkgerrors.Wrap(ErrSaveRecommendations, err.Error()), apiErrors.ErrDatabaseOperation, "")
	}

	rec.Status = status
	if action != nil {
		rec.Actions = []*domain.Action{action}
	}

	log.ForContext(ctx).WithField("recommendation_id", rec.ID).Infof("recommendations: status alterado para %s", status)

	return rec, nil
}

// ActionFor monta a ação simulada que nasce de uma recomendação aceita
func ActionFor(rec *domain.Recommendation) *domain.Action {
	return &domain.Action{
		RecommendationID: rec.ID,
		Platform:         rec.Platform,
		EntityType:       domain.EntityTypeCampaign,
		EntityID:         rec.Entity,
		ActionType:       domain.ActionTypeForLevel(rec.Level),
		Params: domain.ActionParams{
			CurrentSpend:   rec.CurrentSpend,
			SuggestedSpend: rec.SuggestedSpend,
		},
		DryRun: true,
		ExpectedImpact: domain.ExpectedImpact{
			ExpectedConversions: rec.ExpectedConversions,
			ExpectedROAS:        rec.ExpectedROAS,
		},
	}
}
