package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

// Client mengubah (system prompt, pesan user) jadi satu string JSON mentah
// dari model. Parsing ke ActionSet dilakukan pemanggil.
type Client interface {
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

// GroqConfig — konfigurasi klien Groq (OpenAI-compatible).
type GroqConfig struct {
	BaseURL string // kosong → endpoint Groq default
	APIKey  string
	Model   string
}

type GroqClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewGroqClient(cfg *GroqConfig) (*GroqClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("groq: API key wajib diisi")
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("groq: model wajib diisi")
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = groqBaseURL
	}
	return &GroqClient{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}, nil
}

// Complete memanggil chat/completions dengan response_format json_object
// supaya model selalu mengembalikan JSON valid.
func (c *GroqClient) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	chatReq := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userMessage},
		},
		Temperature:    0,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	body, err := sonic.Marshal(chatReq)
	if err != nil {
		return "", fmt.Errorf("groq: gagal marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/chat/completions", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("groq: gagal membuat request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("groq: request gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("groq: status %d: %s", resp.StatusCode, string(raw))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("groq: gagal baca response: %w", err)
	}
	var chatResp chatResponse
	if err := sonic.Unmarshal(raw, &chatResp); err != nil {
		return "", fmt.Errorf("groq: gagal decode response: %w", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("groq: response tanpa choices")
	}
	return chatResp.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float64         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      chatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}
