package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

type AccountRepository interface {
	Upsert(ctx context.Context, platform domain.Platform, name string) (*domain.Account, error)
}

type accountRepository struct {
	conn *postgres.Connection
}

func NewAccountRepository(conn *postgres.Connection) AccountRepository {
	return &accountRepository{
		conn: conn,
	}
}

// Upsert retorna a conta (platform, name), criando-a quando ainda não existe
func (r *accountRepository) Upsert(ctx context.Context, platform domain.Platform, name string) (*domain.Account, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id da conta: %w", err)
	}

	query, args, err := squirrel.
		Insert("accounts").
		Columns("id", "platform", "name").
		Values(id, platform, name).
		Suffix("ON CONFLICT (platform, name) DO UPDATE SET name = EXCLUDED.name RETURNING id, platform, name, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	acc := &domain.Account{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&acc.ID, &acc.Platform, &acc.Name, &acc.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao salvar conta: %w", err)
	}

	return acc, nil
}
