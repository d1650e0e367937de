package recommending

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/vfg2006/postwise-api/internal/domain"
	"github.com/vfg2006/postwise-api/pkg/apiErrors"
	"github.com/vfg2006/postwise-api/pkg/utils"
)

const (
	DefaultAggressiveness = 50

	maxIncreaseCandidates = 3
	maxChangePercentage   = 50.0
	increaseROASFloor     = 2.0
	decreaseROASCeiling   = 1.5
)

// Candidate é uma campanha com ROAS recalculado a partir das somas
type Candidate struct {
	Campaign    string
	Platform    domain.Platform
	Spend       float64
	Conversions float64
	ROAS        float64
}

// Candidates converte os agregados por campanha, ordenando por ROAS decrescente.
// Empates seguem o nome da campanha.
func Candidates(campaigns []*domain.CampaignAggregate) []Candidate {
	candidates := make([]Candidate, 0, len(campaigns))
	for _, c := range campaigns {
		candidates = append(candidates, Candidate{
			Campaign:    c.Campaign,
			Platform:    c.Platform,
			Spend:       c.Spend,
			Conversions: c.Conversions,
			ROAS:        utils.Ratio(c.ConvValue, c.Spend),
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ROAS != candidates[j].ROAS {
			return candidates[i].ROAS > candidates[j].ROAS
		}
		return candidates[i].Campaign < candidates[j].Campaign
	})

	return candidates
}

// Propose aplica a regra de agressividade sobre candidatos já ordenados.
// Aumentos vêm antes das reduções. Nada é persistido aqui.
func Propose(candidates []Candidate, aggressiveness int) []*domain.Recommendation {
	total := len(candidates)
	a := float64(aggressiveness)

	topCount := int(math.Ceil(float64(total) * a / 100))
	bottomCount := int(math.Ceil(float64(total) * (100 - a) / 100))

	proposals := make([]*domain.Recommendation, 0)

	increasePct := math.Min(a/10, maxChangePercentage)
	for i := 0; i < min(topCount, maxIncreaseCandidates, total); i++ {
		c := candidates[i]
		if c.ROAS <= increaseROASFloor {
			continue
		}
		proposals = append(proposals, proposal(c, domain.RecommendationLevelIncrease, 1+increasePct/100,
			fmt.Sprintf("High-performing campaign with %.2fx ROAS. Increasing budget by %.1f%% to scale successful performance.", c.ROAS, increasePct)))
	}

	decreasePct := math.Min((100-a)/10, maxChangePercentage)
	for i := max(total-bottomCount, 0); i < total; i++ {
		c := candidates[i]
		if c.ROAS >= decreaseROASCeiling {
			continue
		}
		proposals = append(proposals, proposal(c, domain.RecommendationLevelDecrease, 1-decreasePct/100,
			fmt.Sprintf("Underperforming campaign with %.2fx ROAS. Reducing budget by %.1f%% to minimize waste.", c.ROAS, decreasePct)))
	}

	return proposals
}

func proposal(c Candidate, level domain.RecommendationLevel, factor float64, rationale string) *domain.Recommendation {
	return &domain.Recommendation{
		Level:               level,
		Entity:              c.Campaign,
		Platform:            c.Platform,
		CurrentSpend:        c.Spend,
		SuggestedSpend:      c.Spend * factor,
		ExpectedConversions: c.Conversions * factor,
		ExpectedROAS:        c.ROAS,
		Rationale:           rationale,
		Status:              domain.RecommendationStatusPending,
	}
}

// ParseAggressiveness lê o parâmetro da query. Vazio resulta no padrão 50.
func ParseAggressiveness(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultAggressiveness, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 || value > 100 {
		return 0, NewRecommendationError(ErrInvalidAggressiveness, apiErrors.ErrInvalidFormat, raw)
	}

	return value, nil
}
