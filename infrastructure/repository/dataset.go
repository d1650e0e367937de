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
	datasetsTable  = "datasets d"
	datasetColumns = "d.id, d.account_id, d.source, d.file_name, d.checksum, d.row_count, d.created_at"
)

type DatasetRepository interface {
	CreateWithRows(ctx context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error
	GetByID(ctx context.Context, id string) (*domain.Dataset, error)
	GetLatest(ctx context.Context) (*domain.Dataset, error)
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

type datasetRepository struct {
	conn      *postgres.Connection
	batchSize int
}

func NewDatasetRepository(conn *postgres.Connection, batchSize int) DatasetRepository {
	return &datasetRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// CreateWithRows grava o dataset e todas as suas linhas numa única transação
func (r *datasetRepository) CreateWithRows(ctx context.Context, dataset *domain.Dataset, rows []*domain.MetricRow) error {
	if dataset.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar id do dataset: %w", err)
		}
		dataset.ID = id
	}
	if dataset.CreatedAt.IsZero() {
		dataset.CreatedAt = time.Now().UTC()
	}
	dataset.RowCount = len(rows)

	for _, row := range rows {
		row.DatasetID = dataset.ID
	}

	query, args, err := squirrel.
		Insert("datasets").
		Columns("id", "account_id", "source", "file_name", "checksum", "row_count", "created_at").
		Values(dataset.ID, dataset.AccountID, dataset.Source, dataset.FileName, dataset.Checksum, dataset.RowCount, dataset.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir dataset: %w", err)
		}

		return insertMetricRows(ctx, tx, rows, r.batchSize)
	})
}

func (r *datasetRepository) GetByID(ctx context.Context, id string) (*domain.Dataset, error) {
	return r.getOne(ctx, squirrel.Select(datasetColumns).From(datasetsTable).Where(squirrel.Eq{"d.id": id}))
}

// GetLatest retorna o dataset criado mais recentemente
func (r *datasetRepository) GetLatest(ctx context.Context) (*domain.Dataset, error) {
	return r.getOne(ctx, squirrel.Select(datasetColumns).From(datasetsTable).OrderBy("d.created_at DESC").Limit(1))
}

func (r *datasetRepository) getOne(ctx context.Context, builder squirrel.SelectBuilder) (*domain.Dataset, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	ds := &domain.Dataset{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&ds.ID,
		&ds.AccountID,
		&ds.Source,
		&ds.FileName,
		&ds.Checksum,
		&ds.RowCount,
		&ds.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear dataset: %w", err)
	}

	return ds, nil
}

// DeleteStale remove datasets anteriores a before que não geraram recomendações.
// As linhas de métrica são removidas em cascata.
func (r *datasetRepository) DeleteStale(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete("datasets").
		Where(squirrel.Lt{"created_at": before}).
		Where("NOT EXISTS (SELECT 1 FROM recommendations r WHERE r.dataset_id = datasets.id)").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover datasets antigos: %w", err)
	}

	return result.RowsAffected()
}
