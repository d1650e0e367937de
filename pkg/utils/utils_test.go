package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, Ratio(10, 0))
	assert.Equal(t, 2.5, Ratio(5, 2))
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 1.23, RoundWithTwoDecimalPlace(1.2345))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "ISO", input: "2024-01-05", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "com espaços", input: " 2024-01-05 ", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "formato americano", input: "01/05/2024", want: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339", input: "2024-01-05T10:00:00Z", want: time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)},
		{name: "inválida", input: "ontem", wantErr: true},
		{name: "vazia", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestGenerateID(t *testing.T) {
	id, err := GenerateID()
	require.NoError(t, err)
	assert.Len(t, id, idLength)
}

func TestChecksum(t *testing.T) {
	a := Checksum([]byte("date,campaign\n"))
	b := Checksum([]byte("date,campaign\n"))
	c := Checksum([]byte("date,campaign,spend\n"))

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}
