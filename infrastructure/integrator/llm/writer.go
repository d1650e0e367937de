package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/postwise-api/internal/config"
)

const (
	ProviderNone   = "none"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Parâmetros usados em todas as chamadas de reescrita
const (
	maxOutputTokens = 100
	temperature     = 0.7
)

// RationaleRequest reúne os dados de uma proposta usados no prompt
type RationaleRequest struct {
	Campaign       string
	Platform       string
	Level          string
	CurrentSpend   float64
	SuggestedSpend float64
	CurrentROAS    float64
}

// Writer reescreve a justificativa de uma recomendação.
// Uma resposta vazia significa que o texto padrão deve ser mantido.
type Writer interface {
	Rewrite(ctx context.Context, req RationaleRequest) (string, error)
	Provider() string
}

// New cria o writer configurado em RATIONALE_PROVIDER
func New(ctx context.Context, cfg config.Rationale) (Writer, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIWriter(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel), nil
	case ProviderGemini:
		return NewGeminiWriter(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case ProviderNone, "":
		return NoopWriter{}, nil
	default:
		return nil, fmt.Errorf("provedor de rationale desconhecido: %s", cfg.Provider)
	}
}

// BuildPrompt monta o prompt enviado a qualquer provedor
func BuildPrompt(req RationaleRequest) string {
	var b strings.Builder
	b.WriteString("Analyze this ad campaign recommendation and provide a brief, actionable rationale:\n\n")
	fmt.Fprintf(&b, "Campaign: %s\n", req.Campaign)
	fmt.Fprintf(&b, "Platform: %s\n", req.Platform)
	fmt.Fprintf(&b, "Current Spend: $%.2f\n", req.CurrentSpend)
	fmt.Fprintf(&b, "Suggested Spend: $%.2f\n", req.SuggestedSpend)
	fmt.Fprintf(&b, "Current ROAS: %.2fx\n", req.CurrentROAS)
	fmt.Fprintf(&b, "Action: %s budget\n\n", req.Level)
	b.WriteString("Provide a 1-2 sentence rationale that explains why this recommendation makes sense. ")
	b.WriteString("Focus on performance metrics and business impact.")
	return b.String()
}

// NoopWriter mantém sempre o texto padrão
type NoopWriter struct{}

func (NoopWriter) Rewrite(context.Context, RationaleRequest) (string, error) {
	return "", nil
}

func (NoopWriter) Provider() string {
	return ProviderNone
}
