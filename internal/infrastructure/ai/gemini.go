// Package ai contains HTTP clients for the external text-generation
// providers behind the generation gateway.
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
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	DefaultGeminiModel           = "gemini-2.0-flash"
	DefaultGeminiMaxOutputTokens = 512

	// Maximum response body size for provider APIs (1MB)
	maxProviderResponseSize = 1 << 20
)

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig geminiGenConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenConfig struct {
	MaxOutputTokens int `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *providerAPIError `json:"error"`
}

// providerAPIError is the error envelope both Google and OpenAI style
// APIs return; the message text drives failure classification upstream.
type providerAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

// GeminiProvider calls the Google Generative Language REST API.
type GeminiProvider struct {
	apiKey          string
	model           string
	maxOutputTokens int
	httpClient      *http.Client
	logger          logger.Interface
}

func NewGeminiProvider(apiKey, model string, maxOutputTokens int, log logger.Interface) *GeminiProvider {
	if model == "" {
		model = DefaultGeminiModel
	}
	if maxOutputTokens <= 0 {
		maxOutputTokens = DefaultGeminiMaxOutputTokens
	}
	return &GeminiProvider{
		apiKey:          apiKey,
		model:           model,
		maxOutputTokens: maxOutputTokens,
		httpClient:      &http.Client{},
		logger:          log,
	}
}

var _ appai.Provider = (*GeminiProvider)(nil)

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
		GenerationConfig: geminiGenConfig{MaxOutputTokens: p.maxOutputTokens},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf(geminiEndpoint, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var data geminiResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxProviderResponseSize)).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode response (status %d): %w", resp.StatusCode, err)
	}

	if data.Error != nil {
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, data.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	if len(data.Candidates) == 0 || len(data.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from gemini")
	}

	p.logger.Debugw("gemini generation completed", "model", p.model)

	return data.Candidates[0].Content.Parts[0].Text, nil
}
