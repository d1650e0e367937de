package recommending

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
)

func campaign(name string, spend, conversions, convValue float64) *domain.CampaignAggregate {
	return &domain.CampaignAggregate{
		Campaign:    name,
		Platform:    domain.PlatformGoogle,
		Spend:       spend,
		Conversions: conversions,
		ConvValue:   convValue,
	}
}

func TestCandidatesSortedByRecomputedROAS(t *testing.T) {
	candidates := Candidates([]*domain.CampaignAggregate{
		campaign("Low", 100, 1, 50),
		campaign("High", 100, 1, 500),
		{Campaign: "Idle", Platform: domain.PlatformMeta, ROAS: 9},
		campaign("Mid", 100, 1, 300),
	})

	require.Len(t, candidates, 4)
	assert.Equal(t, []string{"High", "Mid", "Low", "Idle"}, []string{
		candidates[0].Campaign, candidates[1].Campaign, candidates[2].Campaign, candidates[3].Campaign,
	})
	// spend zero gera ROAS 0, ignorando o ROAS somado
	assert.Zero(t, candidates[3].ROAS)
}

func TestProposeFullAggressiveness(t *testing.T) {
	candidates := Candidates([]*domain.CampaignAggregate{
		campaign("A", 100, 10, 500),
		campaign("B", 200, 20, 600),
		campaign("C", 300, 30, 150),
	})

	proposals := Propose(candidates, 100)

	require.Len(t, proposals, 2)
	for _, p := range proposals {
		assert.Equal(t, domain.RecommendationLevelIncrease, p.Level)
		assert.Equal(t, domain.RecommendationStatusPending, p.Status)
	}

	assert.Equal(t, "A", proposals[0].Entity)
	assert.InDelta(t, 110, proposals[0].SuggestedSpend, 1e-9)
	assert.InDelta(t, 11, proposals[0].ExpectedConversions, 1e-9)
	assert.InDelta(t, 5, proposals[0].ExpectedROAS, 1e-9)
	assert.Equal(t, "High-performing campaign with 5.00x ROAS. Increasing budget by 10.0% to scale successful performance.", proposals[0].Rationale)

	assert.Equal(t, "B", proposals[1].Entity)
	assert.InDelta(t, 220, proposals[1].SuggestedSpend, 1e-9)
}

func TestProposeZeroAggressiveness(t *testing.T) {
	candidates := Candidates([]*domain.CampaignAggregate{
		campaign("Star", 100, 10, 900),
		campaign("Weak", 100, 10, 100),
		campaign("Weaker", 200, 10, 100),
		campaign("Okay", 100, 10, 160),
	})

	proposals := Propose(candidates, 0)

	require.Len(t, proposals, 2)
	assert.Equal(t, "Weak", proposals[0].Entity)
	assert.Equal(t, "Weaker", proposals[1].Entity)
	for _, p := range proposals {
		assert.Equal(t, domain.RecommendationLevelDecrease, p.Level)
		assert.InDelta(t, p.CurrentSpend*0.9, p.SuggestedSpend, 1e-9)
	}
	assert.Equal(t, "Underperforming campaign with 1.00x ROAS. Reducing budget by 10.0% to minimize waste.", proposals[0].Rationale)
}

func TestProposeLimitsIncreasesToThree(t *testing.T) {
	aggregates := make([]*domain.CampaignAggregate, 0)
	for _, name := range []string{"A", "B", "C", "D", "E"} {
		aggregates = append(aggregates, campaign(name, 100, 10, 400))
	}

	proposals := Propose(Candidates(aggregates), 80)

	require.Len(t, proposals, 3)
	assert.InDelta(t, 108, proposals[0].SuggestedSpend, 1e-9)
}

func TestProposeMixedOrder(t *testing.T) {
	candidates := Candidates([]*domain.CampaignAggregate{
		campaign("Loser", 100, 1, 50),
		campaign("Winner", 100, 1, 400),
	})

	proposals := Propose(candidates, 50)

	require.Len(t, proposals, 2)
	assert.Equal(t, domain.RecommendationLevelIncrease, proposals[0].Level)
	assert.Equal(t, "Winner", proposals[0].Entity)
	assert.Equal(t, domain.RecommendationLevelDecrease, proposals[1].Level)
	assert.Equal(t, "Loser", proposals[1].Entity)
	assert.InDelta(t, 95, proposals[1].SuggestedSpend, 1e-9)
}

func TestProposeEmpty(t *testing.T) {
	assert.Empty(t, Propose(nil, 50))
}

func TestParseAggressiveness(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
		wantErr  bool
	}{
		{"vazio usa o padrão", "", 50, false},
		{"valor mínimo", "0", 0, false},
		{"valor máximo", "100", 100, false},
		{"acima do limite", "101", 0, true},
		{"negativo", "-1", 0, true},
		{"não inteiro", "12.5", 0, true},
		{"texto", "high", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := ParseAggressiveness(tt.raw)
			if tt.wantErr {
				var recErr *RecommendationError
				require.True(t, errors.As(err, &recErr))
				assert.Equal(t, apiErrors.ErrInvalidFormat, recErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, value)
		})
	}
}
