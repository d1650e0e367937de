package migration

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"

	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schema string

// Schema retorna o DDL embutido no binário
func Schema() string {
	return schema
}

// Up aplica o schema. Todos os comandos usam IF NOT EXISTS, então rodar de novo é seguro.
func Up(ctx context.Context, db *sql.DB) error {
	logrus.Info("Aplicando schema do banco de dados")

	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("erro ao aplicar schema: %w", err)
	}

	logrus.Info("Schema aplicado com sucesso")
	return nil
}
