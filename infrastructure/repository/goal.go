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
	goalsTable  = "goals g"
	goalColumns = "g.id, g.type, g.target_cpl, g.target_roas, g.budget_cap, g.created_at"
)

type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) error
	List(ctx context.Context) ([]*domain.Goal, error)
	GetLatest(ctx context.Context) (*domain.Goal, error)
}

type goalRepository struct {
	conn *postgres.Connection
}

func NewGoalRepository(conn *postgres.Connection) GoalRepository {
	return &goalRepository{
		conn: conn,
	}
}

func (r *goalRepository) Create(ctx context.Context, goal *domain.Goal) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id da meta: %w", err)
	}
	goal.ID = id
	goal.CreatedAt = time.Now().UTC()

	query, args, err := squirrel.
		Insert("goals").
		Columns("id", "type", "target_cpl", "target_roas", "budget_cap", "created_at").
		Values(goal.ID, goal.Type, goal.TargetCPL, goal.TargetROAS, goal.BudgetCap, goal.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir meta: %w", err)
	}

	return nil
}

func (r *goalRepository) List(ctx context.Context) ([]*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns).
		From(goalsTable).
		OrderBy("g.created_at DESC").
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

	goals := make([]*domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear meta: %w", err)
		}
		goals = append(goals, goal)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return goals, nil
}

// GetLatest retorna a meta atual, ou nil quando nenhuma foi cadastrada
func (r *goalRepository) GetLatest(ctx context.Context) (*domain.Goal, error) {
	query, args, err := squirrel.
		Select(goalColumns).
		From(goalsTable).
		OrderBy("g.created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal, err := scanGoal(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta: %w", err)
	}

	return goal, nil
}

func scanGoal(s scanner) (*domain.Goal, error) {
	goal := &domain.Goal{}
	var targetCPL, targetROAS, budgetCap sql.NullFloat64

	if err := s.Scan(&goal.ID, &goal.Type, &targetCPL, &targetROAS, &budgetCap, &goal.CreatedAt); err != nil {
		return nil, err
	}

	goal.TargetCPL = nullFloatPtr(targetCPL)
	goal.TargetROAS = nullFloatPtr(targetROAS)
	goal.BudgetCap = nullFloatPtr(budgetCap)

	return goal, nil
}

func nullFloatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	return &f.Float64
}
