package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	MaxTokens   int             `json:"max_tokens"`
	Temperature float64         `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// OpenAIWriter chama a API de chat completions
type OpenAIWriter struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewOpenAIWriter(apiKey, baseURL, model string) *OpenAIWriter {
	return &OpenAIWriter{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{},
	}
}

func (w *OpenAIWriter) Provider() string {
	return ProviderOpenAI
}

// Rewrite faz uma única chamada, sem retentativas. O prazo vem do contexto.
func (w *OpenAIWriter) Rewrite(ctx context.Context, req RationaleRequest) (string, error) {
	payload, err := json.Marshal(openAIRequest{
		Model:       w.model,
		Messages:    []openAIMessage{{Role: "user", Content: BuildPrompt(req)}},
		MaxTokens:   maxOutputTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("erro ao serializar requisição: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, w.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("erro ao criar requisição: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+w.apiKey)

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("erro ao chamar a OpenAI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI retornou status %d: %s", resp.StatusCode, string(body))
	}

	var completion openAIResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("erro ao decodificar resposta: %w", err)
	}

	if completion.Error != nil {
		return "", fmt.Errorf("OpenAI: %s", completion.Error.Message)
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}

	return strings.TrimSpace(completion.Choices[0].Message.Content), nil
}
