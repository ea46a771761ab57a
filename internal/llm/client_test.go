package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func TestNewOpenAIClientMissingAPIKey(t *testing.T) {
	_, err := NewOpenAIClient(Config{})

	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGenerateSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 0.7, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		require.Len(t, req.Messages[1].Content, 1)
		assert.Equal(t, "plan tomorrow", req.Messages[1].Content[0].Text)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"Jog 20 minutes|Eat a salad"}}]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(testConfig(srv.URL))
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "plan tomorrow")

	require.NoError(t, err)
	assert.Equal(t, "Jog 20 minutes|Eat a salad", reply)
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"message":"Rate limit reached"}}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan tomorrow")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rate limit reached")
}

func TestGenerateNon200WithoutErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan tomorrow")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-200 status code: 503")
}

func TestGenerateEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan tomorrow")

	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestGenerateAtMostOnceByDefault(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, err := NewOpenAIClient(testConfig(srv.URL))
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan tomorrow")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestGenerateNegativeRetriesStillSendsOnce(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = -1

	client, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "plan tomorrow")

	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, 1, attempts)
}

func TestGenerateRetryOnTransientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1

	client, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	reply, err := client.Generate(context.Background(), "plan tomorrow")

	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
	assert.Equal(t, 2, attempts)
}

func TestGenerateNoRetryAfterTimeout(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 50
	cfg.MaxRetries = 2

	client, err := NewOpenAIClient(cfg)
	require.NoError(t, err)

	_, err = client.Generate(context.Background(), "plan tomorrow")

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
