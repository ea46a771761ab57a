package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// systemPrompt frames every generation call. The user-facing prompt with
// profile, logs and the output-format contract is built by the caller.
const systemPrompt = `You are an expert fitness coach, nutritionist, and wellness advisor. ` +
	`Your goal is to help users transform their lives through personalized fitness guidance, ` +
	`nutrition advice, and healthy lifestyle recommendations. ` +
	`Always provide evidence-based, safe, and personalized recommendations.`

const (
	retryBaseDelay = 500 * time.Millisecond
	retryJitter    = 250 * time.Millisecond
)

// Client provides access to a language model for text generation.
type Client interface {
	// Generate sends a prompt and returns the raw text reply.
	Generate(ctx context.Context, prompt string) (string, error)
}

type ContentItem struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type ChatMessage struct {
	Role    string        `json:"role"`
	Content []ContentItem `json:"content"`
}

type ChatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// openAIClient implements Client against the OpenAI chat-completions API.
type openAIClient struct {
	cfg        Config
	httpClient *http.Client
}

// NewOpenAIClient builds a Client from the given config. It fails with
// ErrMissingAPIKey when no credential is configured; no request is ever
// attempted without one.
func NewOpenAIClient(cfg Config) (Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return &openAIClient{
		cfg:        cfg,
		httpClient: &http.Client{},
	}, nil
}

func (c *openAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	messages := []ChatMessage{
		{
			Role: "system",
			Content: []ContentItem{
				{Type: "text", Text: systemPrompt},
			},
		},
		{
			Role: "user",
			Content: []ContentItem{
				{Type: "text", Text: prompt},
			},
		},
	}

	req := ChatCompletionRequest{
		Model:       c.cfg.Model,
		Messages:    messages,
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries
	if attempts < 1 {
		// A negative MaxRetries still means one request.
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		if i > 0 {
			if err := c.backoff(ctx, i); err != nil {
				break
			}
		}

		text, err := c.doRequest(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err

		// Don't retry on context cancellation/timeout
		if ctx.Err() != nil {
			break
		}
	}

	return "", lastErr
}

// backoff sleeps between retry attempts, scaling with the attempt number
// plus random jitter, and returns early when the context expires.
func (c *openAIClient) backoff(ctx context.Context, attempt int) error {
	delay := time.Duration(attempt) * retryBaseDelay
	delay += time.Duration(rand.Int63n(int64(retryJitter)))

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

func (c *openAIClient) doRequest(ctx context.Context, req ChatCompletionRequest) (string, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.cfg.APIKey))

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		var errorResponse struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		if err := json.NewDecoder(response.Body).Decode(&errorResponse); err != nil || errorResponse.Error.Message == "" {
			return "", fmt.Errorf("OpenAI API returned non-200 status code: %d", response.StatusCode)
		}
		return "", fmt.Errorf("OpenAI API error: %s", errorResponse.Error.Message)
	}

	var result ChatCompletionResponse
	if err := json.NewDecoder(response.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}

	if len(result.Choices) == 0 {
		return "", ErrEmptyCompletion
	}

	return result.Choices[0].Message.Content, nil
}
