package llm

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// GeminiWriter usa o SDK genai
type GeminiWriter struct {
	client *genai.Client
	model  string
}

func NewGeminiWriter(ctx context.Context, apiKey, model string) (*GeminiWriter, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY é obrigatório")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	return &GeminiWriter{
		client: client,
		model:  model,
	}, nil
}

func (w *GeminiWriter) Provider() string {
	return ProviderGemini
}

func (w *GeminiWriter) Rewrite(ctx context.Context, req RationaleRequest) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(BuildPrompt(req), genai.RoleUser),
	}

	resp, err := w.client.Models.GenerateContent(ctx, w.model, contents, &genai.GenerateContentConfig{
		MaxOutputTokens: maxOutputTokens,
		Temperature:     genai.Ptr[float32](temperature),
	})
	if err != nil {
		return "", fmt.Errorf("erro ao chamar o Gemini: %w", err)
	}

	return strings.TrimSpace(resp.Text()), nil
}
