package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/internal/domain"
)

// recordingQueryer guarda os argumentos de cada ExecContext
type recordingQueryer struct {
	execArgs [][]interface{}
	failAt   int
}

func (q *recordingQueryer) ExecContext(_ context.Context, _ string, args ...interface{}) (sql.Result, error) {
	q.execArgs = append(q.execArgs, args)
	if q.failAt > 0 && len(q.execArgs) == q.failAt {
		return nil, errors.New("connection reset")
	}
	return driver.RowsAffected(len(args)), nil
}

func (q *recordingQueryer) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("não suportado")
}

func (q *recordingQueryer) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func buildRecommendations(n int) []*domain.Recommendation {
	recs := make([]*domain.Recommendation, n)
	for i := range recs {
		recs[i] = &domain.Recommendation{ID: "rec", DatasetID: "ds-1", Entity: "Brand"}
	}
	return recs
}

func TestInsertRecommendations(t *testing.T) {
	tests := []struct {
		name        string
		total       int
		batchSize   int
		failAt      int
		wantBatches []int
		wantErr     bool
	}{
		{
			name:        "deve inserir em um único lote quando cabe no limite",
			total:       3,
			batchSize:   1000,
			wantBatches: []int{3},
		},
		{
			name:        "deve dividir em lotes respeitando o tamanho máximo",
			total:       6000,
			batchSize:   recommendationBatchSize,
			wantBatches: []int{1000, 1000, 1000, 1000, 1000, 1000},
		},
		{
			name:        "deve inserir o resto no último lote",
			total:       2501,
			batchSize:   1000,
			wantBatches: []int{1000, 1000, 501},
		},
		{
			name:      "deve interromper no primeiro lote com erro",
			total:     2500,
			batchSize: 1000,
			failAt:    2,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &recordingQueryer{failAt: tt.failAt}
			err := insertRecommendations(context.Background(), q, buildRecommendations(tt.total), tt.batchSize)

			if tt.wantErr {
				require.Error(t, err)
				assert.Len(t, q.execArgs, tt.failAt)
				return
			}

			require.NoError(t, err)
			require.Len(t, q.execArgs, len(tt.wantBatches))
			for i, rows := range tt.wantBatches {
				assert.Len(t, q.execArgs[i], rows*len(recommendationInsertColumns))
				assert.LessOrEqual(t, len(q.execArgs[i]), 65535)
			}
		})
	}
}
