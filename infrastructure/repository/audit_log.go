package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

// insertAuditLog é o único caminho de escrita em audit_logs
func insertAuditLog(ctx context.Context, q postgres.Queryer, entry *domain.AuditLog) error {
	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do audit log: %w", err)
		}
		entry.ID = id
	}

	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload: %w", err)
	}

	result, err := json.Marshal(entry.Result)
	if err != nil {
		return fmt.Errorf("erro ao serializar resultado: %w", err)
	}

	query, args, err := squirrel.
		Insert("audit_logs").
		Columns("id", "action_id", "payload", "result", "created_at").
		Values(entry.ID, entry.ActionID, string(payload), string(result), entry.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir audit log: %w", err)
	}

	return nil
}
