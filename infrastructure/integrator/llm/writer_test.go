package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/postwise-api/internal/config"
)

var sampleRequest = RationaleRequest{
	Campaign:       "Brand Awareness",
	Platform:       "google",
	Level:          "increase",
	CurrentSpend:   1000,
	SuggestedSpend: 1050,
	CurrentROAS:    4.2,
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(sampleRequest)

	assert.Contains(t, prompt, "Campaign: Brand Awareness")
	assert.Contains(t, prompt, "Platform: google")
	assert.Contains(t, prompt, "Current Spend: $1000.00")
	assert.Contains(t, prompt, "Suggested Spend: $1050.00")
	assert.Contains(t, prompt, "Current ROAS: 4.20x")
	assert.Contains(t, prompt, "Action: increase budget")
}

func TestOpenAIWriterRewrite(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		validate func(t *testing.T, text string, err error)
	}{
		{
			name:   "deve retornar o texto da primeira escolha",
			status: http.StatusOK,
			body:   `{"choices":[{"message":{"role":"assistant","content":"  Strong ROAS justifies scaling.  "}}]}`,
			validate: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				assert.Equal(t, "Strong ROAS justifies scaling.", text)
			},
		},
		{
			name:   "deve retornar vazio sem escolhas",
			status: http.StatusOK,
			body:   `{"choices":[]}`,
			validate: func(t *testing.T, text string, err error) {
				require.NoError(t, err)
				assert.Empty(t, text)
			},
		},
		{
			name:   "deve retornar erro em status diferente de 200",
			status: http.StatusTooManyRequests,
			body:   `{"error":{"message":"rate limited"}}`,
			validate: func(t *testing.T, text string, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "429")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/chat/completions", r.URL.Path)
				assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

				raw, _ := io.ReadAll(r.Body)
				var req openAIRequest
				require.NoError(t, json.Unmarshal(raw, &req))
				assert.Equal(t, "gpt-3.5-turbo", req.Model)
				assert.Equal(t, 100, req.MaxTokens)
				require.Len(t, req.Messages, 1)
				assert.Equal(t, "user", req.Messages[0].Role)

				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			writer := NewOpenAIWriter("test-key", server.URL+"/", "gpt-3.5-turbo")
			text, err := writer.Rewrite(context.Background(), sampleRequest)
			tt.validate(t, text, err)
		})
	}
}

func TestOpenAIWriterRespectsContextDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewOpenAIWriter("k", server.URL, "m").Rewrite(ctx, sampleRequest)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	writer, err := New(context.Background(), config.Rationale{Provider: "none"})
	require.NoError(t, err)
	assert.Equal(t, ProviderNone, writer.Provider())

	text, err := writer.Rewrite(context.Background(), sampleRequest)
	require.NoError(t, err)
	assert.Empty(t, text)

	writer, err = New(context.Background(), config.Rationale{Provider: "openai", OpenAIAPIKey: "k", OpenAIBaseURL: "http://localhost", OpenAIModel: "m"})
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, writer.Provider())

	_, err = New(context.Background(), config.Rationale{Provider: "gemini"})
	assert.Error(t, err)

	_, err = New(context.Background(), config.Rationale{Provider: "claude"})
	assert.Error(t, err)
}
