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
	actionsTable  = "actions a"
	actionColumns = "a.id, a.recommendation_id, a.platform, a.entity_type, a.entity_id, a.action_type, a.params, " +
		"a.dry_run, a.expected_impact, a.applied, a.applied_at, a.created_at"
)

type ActionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Action, error)
	List(ctx context.Context) ([]*domain.Action, error)
	MarkApplied(ctx context.Context, id string, appliedAt time.Time, entry *domain.AuditLog) error
}

type actionRepository struct {
	conn *postgres.Connection
}

func NewActionRepository(conn *postgres.Connection) ActionRepository {
	return &actionRepository{
		conn: conn,
	}
}

func (r *actionRepository) GetByID(ctx context.Context, id string) (*domain.Action, error) {
	query, args, err := squirrel.
		Select(actionColumns).
		From(actionsTable).
		Where(squirrel.Eq{"a.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	action, err := scanAction(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ação: %w", err)
	}

	return action, nil
}

// List retorna as ações mais recentes primeiro, com a recomendação de origem
func (r *actionRepository) List(ctx context.Context) ([]*domain.Action, error) {
	query, args, err := squirrel.
		Select(actionColumns + ", " + recommendationColumns).
		From(actionsTable).
		Join("recommendations r ON r.id = a.recommendation_id").
		OrderBy("a.created_at DESC").
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

	actions := make([]*domain.Action, 0)
	for rows.Next() {
		action, err := scanActionWithRecommendation(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ação: %w", err)
		}
		actions = append(actions, action)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return actions, nil
}

// MarkApplied marca a ação como aplicada e grava o audit log na mesma transação.
// Retorna ErrConflict quando a ação já estava aplicada.
func (r *actionRepository) MarkApplied(ctx context.Context, id string, appliedAt time.Time, entry *domain.AuditLog) error {
	query, args, err := squirrel.
		Update("actions").
		Set("applied", true).
		Set("applied_at", appliedAt).
		Where(squirrel.Eq{"id": id, "applied": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("erro ao atualizar ação: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}

		return insertAuditLog(ctx, tx, entry)
	})
}

func listActions(ctx context.Context, q postgres.Queryer, where squirrel.Sqlizer) ([]*domain.Action, error) {
	query, args, err := squirrel.
		Select(actionColumns).
		From(actionsTable).
		Where(where).
		OrderBy("a.created_at DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	actions := make([]*domain.Action, 0)
	for rows.Next() {
		action, err := scanAction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ação: %w", err)
		}
		actions = append(actions, action)
	}

	return actions, rows.Err()
}

func insertAction(ctx context.Context, q postgres.Queryer, action *domain.Action) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da ação: %w", err)
	}
	action.ID = id
	action.CreatedAt = time.Now().UTC()

	params, err := json.Marshal(action.Params)
	if err != nil {
		return fmt.Errorf("erro ao serializar parâmetros: %w", err)
	}

	impact, err := json.Marshal(action.ExpectedImpact)
	if err != nil {
		return fmt.Errorf("erro ao serializar impacto esperado: %w", err)
	}

	query, args, err := squirrel.
		Insert("actions").
		Columns("id", "recommendation_id", "platform", "entity_type", "entity_id", "action_type", "params",
			"dry_run", "expected_impact", "applied", "created_at").
		Values(action.ID, action.RecommendationID, action.Platform, action.EntityType, action.EntityID, action.ActionType,
			string(params), action.DryRun, string(impact), false, action.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir ação: %w", err)
	}

	return nil
}

type actionRow struct {
	action    *domain.Action
	params    []byte
	impact    []byte
	appliedAt sql.NullTime
}

func (ar *actionRow) dest() []any {
	a := ar.action
	return []any{
		&a.ID,
		&a.RecommendationID,
		&a.Platform,
		&a.EntityType,
		&a.EntityID,
		&a.ActionType,
		&ar.params,
		&a.DryRun,
		&ar.impact,
		&a.Applied,
		&ar.appliedAt,
		&a.CreatedAt,
	}
}

func (ar *actionRow) finish() (*domain.Action, error) {
	if err := json.Unmarshal(ar.params, &ar.action.Params); err != nil {
		return nil, fmt.Errorf("parâmetros inválidos: %w", err)
	}
	if err := json.Unmarshal(ar.impact, &ar.action.ExpectedImpact); err != nil {
		return nil, fmt.Errorf("impacto esperado inválido: %w", err)
	}
	if ar.appliedAt.Valid {
		ar.action.AppliedAt = &ar.appliedAt.Time
	}
	return ar.action, nil
}

func scanAction(s scanner) (*domain.Action, error) {
	ar := &actionRow{action: &domain.Action{}}
	if err := s.Scan(ar.dest()...); err != nil {
		return nil, err
	}
	return ar.finish()
}

func scanActionWithRecommendation(s scanner) (*domain.Action, error) {
	ar := &actionRow{action: &domain.Action{}}
	rec := &domain.Recommendation{}
	var goalID sql.NullString

	dest := append(ar.dest(),
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
	)
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	rec.GoalID = nullStringPtr(goalID)
	action, err := ar.finish()
	if err != nil {
		return nil, err
	}
	action.Recommendation = rec

	return action, nil
}
