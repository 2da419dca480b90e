package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	appai "hilla/internal/application/ai"
	"hilla/internal/shared/logger"
)

const (
	openaiEndpoint = "https://api.openai.com/v1/chat/completions"

	DefaultOpenAIModel     = "gpt-4o-mini"
	DefaultOpenAIMaxTokens = 600
)

type openaiRequest struct {
	Model     string          `json:"model"`
	Messages  []openaiMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
	Error *providerAPIError `json:"error"`
}

// OpenAIProvider calls the OpenAI chat completions API.
type OpenAIProvider struct {
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
	logger     logger.Interface
}

func NewOpenAIProvider(apiKey, model string, maxTokens int, log logger.Interface) *OpenAIProvider {
	if model == "" {
		model = DefaultOpenAIModel
	}
	if maxTokens <= 0 {
		maxTokens = DefaultOpenAIMaxTokens
	}
	return &OpenAIProvider{
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: &http.Client{},
		logger:     log,
	}
}

var _ appai.Provider = (*OpenAIProvider)(nil)

func (p *OpenAIProvider) Name() string {
	return "openai"
}

func (p *OpenAIProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(openaiRequest{
		Model: p.model,
		Messages: []openaiMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: p.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var data openaiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProviderResponseSize)).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if data.Error != nil {
		return "", fmt.Errorf("openai API error (status %d): %s", resp.StatusCode, data.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if len(data.Choices) == 0 {
		return "", fmt.Errorf("empty response from openai")
	}

	p.logger.Debugw("openai generation completed", "model", p.model)

	return data.Choices[0].Message.Content, nil
}
