package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

const (
	recommendationsTable  = "recommendations r"
	recommendationColumns = "r.id, r.dataset_id, r.goal_id, r.level, r.entity, r.platform, r.current_spend, r.suggested_spend, " +
		"r.expected_conversions, r.expected_roas, r.rationale, r.status, r.created_at"
)

type RecommendationRepository interface {
	CreateBatch(ctx context.Context, recommendations []*domain.Recommendation) error
	GetByID(ctx context.Context, id string) (*domain.Recommendation, error)
	List(ctx context.Context) ([]*domain.Recommendation, error)
	Transition(ctx context.Context, id string, to domain.RecommendationStatus, action *domain.Action) error
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// recommendationBatchSize mantém cada INSERT abaixo do limite de 65535 parâmetros do postgres
const recommendationBatchSize = 1000

var recommendationInsertColumns = []string{
	"id", "dataset_id", "goal_id", "level", "entity", "platform", "current_spend", "suggested_spend",
	"expected_conversions", "expected_roas", "rationale", "status", "created_at",
}

// CreateBatch grava todas as recomendações de uma geração na mesma transação
func (r *recommendationRepository) CreateBatch(ctx context.Context, recommendations []*domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	now := time.Now().UTC()
	for i, rec := range recommendations {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id da recomendação: %w", err)
		}
		rec.ID = id
		// preserva a ordem de geração em created_at
		rec.CreatedAt = now.Add(time.Duration(i) * time.Microsecond)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return insertRecommendations(ctx, tx, recommendations, recommendationBatchSize)
	})
}

// insertRecommendations grava as recomendações em lotes de batchSize dentro da transação q
func insertRecommendations(ctx context.Context, q postgres.Queryer, recommendations []*domain.Recommendation, batchSize int) error {
	for start := 0; start < len(recommendations); start += batchSize {
		end := min(start+batchSize, len(recommendations))

		insert := squirrel.
			Insert("recommendations").
			Columns(recommendationInsertColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, rec := range recommendations[start:end] {
			insert = insert.Values(
				rec.ID,
				rec.DatasetID,
				rec.GoalID,
				rec.Level,
				rec.Entity,
				rec.Platform,
				rec.CurrentSpend,
				rec.SuggestedSpend,
				rec.ExpectedConversions,
				rec.ExpectedROAS,
				rec.Rationale,
				rec.Status,
				rec.CreatedAt,
			)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir recomendações %d-%d: %w", start, end, err)
		}
	}

	return nil
}

func (r *recommendationRepository) GetByID(ctx context.Context, id string) (*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		Where(squirrel.Eq{"r.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rec, err := scanRecommendation(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
	}

	return rec, nil
}

// List retorna as recomendações mais recentes primeiro, com suas ações
func (r *recommendationRepository) List(ctx context.Context) ([]*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select(recommendationColumns).
		From(recommendationsTable).
		OrderBy("r.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	recommendations := make([]*domain.Recommendation, 0)
	byID := make(map[string]*domain.Recommendation)
	for rows.Next() {
		rec, err := scanRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendação: %w", err)
		}
		rec.Actions = make([]*domain.Action, 0)
		recommendations = append(recommendations, rec)
		byID[rec.ID] = rec
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(byID) == 0 {
		return recommendations, nil
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}

	actions, err := listActions(ctx, r.conn, squirrel.Eq{"a.recommendation_id": ids})
	if err != nil {
		return nil, err
	}

	for _, action := range actions {
		if rec, ok := byID[action.RecommendationID]; ok {
			rec.Actions = append(rec.Actions, action)
		}
	}

	return recommendations, nil
}

// Transition move uma recomendação pendente para o status to.
// Quando action não é nil ela é criada na mesma transação.
func (r *recommendationRepository) Transition(ctx context.Context, id string, to domain.RecommendationStatus, action *domain.Action) error {
	query, args, err := squirrel.
		Update("recommendations").
		Set("status", to).
		Where(squirrel.Eq{"id": id, "status": domain.RecommendationStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar recomendação: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		if action == nil {
			return nil
		}

		if err := insertAction(ctx, tx, action); err != nil {
			if postgres.IsUniqueViolation(err) {
				return ErrConflict
			}
			return err
		}

		return nil
	})
}

func scanRecommendation(s scanner) (*domain.Recommendation, error) {
	rec := &domain.Recommendation{}
	var goalID sql.NullString

	if err := s.Scan(
		&rec.ID,
		&rec.DatasetID,
		&goalID,
		&rec.Level,
		&rec.Entity,
		&rec.Platform,
		&rec.CurrentSpend,
		&rec.SuggestedSpend,
		&rec.ExpectedConversions,
		&rec.ExpectedROAS,
		&rec.Rationale,
		&rec.Status,
		&rec.CreatedAt,
	); err != nil {
		return nil, err
	}

	rec.GoalID = nullStringPtr(goalID)

	return rec, nil
}
