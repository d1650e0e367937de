package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/postwise-api/infrastructure/database/postgres"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

const metricRowsTable = "metric_rows mr"

var metricRowColumns = []string{
	"id", "dataset_id", "platform", "date", "campaign",
	"ad_group", "ad", "audience", "device", "placement",
	"impressions", "clicks", "spend", "conversions", "conv_value",
	"cpc", "cpm", "ctr", "cv_rate", "roas", "cost_per_conv",
}

type MetricRowRepository interface {
	ListByDataset(ctx context.Context, datasetID string) ([]*domain.MetricRow, error)
}

type metricRowRepository struct {
	conn *postgres.Connection
}

func NewMetricRowRepository(conn *postgres.Connection) MetricRowRepository {
	return &metricRowRepository{
		conn: conn,
	}
}

func (r *metricRowRepository) ListByDataset(ctx context.Context, datasetID string) ([]*domain.MetricRow, error) {
	query, args, err := squirrel.
		Select(prefixed("mr", metricRowColumns)...).
		From(metricRowsTable).
		Where(squirrel.Eq{"mr.dataset_id": datasetID}).
		OrderBy("mr.date ASC", "mr.campaign ASC").
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

	metricRows := make([]*domain.MetricRow, 0)
	for rows.Next() {
		row, err := scanMetricRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear linha de métrica: %w", err)
		}
		metricRows = append(metricRows, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metricRows, nil
}

func scanMetricRow(s scanner) (*domain.MetricRow, error) {
	row := &domain.MetricRow{}
	var adGroup, ad, audience, device, placement sql.NullString

	if err := s.Scan(
		&row.ID,
		&row.DatasetID,
		&row.Platform,
		&row.Date,
		&row.Campaign,
		&adGroup,
		&ad,
		&audience,
		&device,
		&placement,
		&row.Impressions,
		&row.Clicks,
		&row.Spend,
		&row.Conversions,
		&row.ConvValue,
		&row.CPC,
		&row.CPM,
		&row.CTR,
		&row.CVRate,
		&row.ROAS,
		&row.CostPerConv,
	); err != nil {
		return nil, err
	}

	row.AdGroup = nullStringPtr(adGroup)
	row.Ad = nullStringPtr(ad)
	row.Audience = nullStringPtr(audience)
	row.Device = nullStringPtr(device)
	row.Placement = nullStringPtr(placement)

	return row, nil
}

// insertMetricRows grava as linhas em lotes de batchSize dentro da transação q
func insertMetricRows(ctx context.Context, q postgres.Queryer, rows []*domain.MetricRow, batchSize int) error {
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))

		insert := squirrel.
			Insert("metric_rows").
			Columns(metricRowColumns...).
			PlaceholderFormat(squirrel.Dollar)

		for _, row := range rows[start:end] {
			if row.ID == "" {
				id, err := utils.GenerateID()
				if err != nil {
					return fmt.Errorf("erro ao gerar id da linha: %w", err)
				}
				row.ID = id
			}

			insert = insert.Values(
				row.ID,
				row.DatasetID,
				row.Platform,
				row.Date.Format("2006-01-02"),
				row.Campaign,
				row.AdGroup,
				row.Ad,
				row.Audience,
				row.Device,
				row.Placement,
				row.Impressions,
				row.Clicks,
				row.Spend,
				row.Conversions,
				row.ConvValue,
				row.CPC,
				row.CPM,
				row.CTR,
				row.CVRate,
				row.ROAS,
				row.CostPerConv,
			)
		}

		query, args, err := insert.ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir linhas %d-%d: %w", start, end, err)
		}
	}

	return nil
}

func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func nullStringPtr(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
