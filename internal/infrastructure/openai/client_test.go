package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lensmatch/backend/internal/domain"
)

func TestNewClient(t *testing.T) {
	client := NewClient("test-api-key", "https://api.example.com/", "gpt-4o-mini")

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL, "trailing slash should be trimmed")
	assert.Equal(t, "gpt-4o-mini", client.model)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
}

func newChatReply(content string) string {
	data, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": chatMessage{Role: "assistant", Content: content}},
		},
	})
	return string(data)
}

func TestClassify_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		assert.Equal(t, 0.0, req.Temperature)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[1].Content, "acuvue oasys 1 day")
		assert.Contains(t, req.Messages[1].Content, "1. Acuvue Oasys 1-Day")
		assert.Contains(t, req.Messages[1].Content, "2. Biofinity")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(newChatReply("Acuvue Oasys 1-Day")))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	choice, err := client.Classify(context.Background(), "acuvue oasys 1 day", []string{"Acuvue Oasys 1-Day", "Biofinity"})
	require.NoError(t, err)
	assert.Equal(t, "Acuvue Oasys 1-Day", choice)
}

func TestClassify_NoMatchSentinel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newChatReply("no match")))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	choice, err := client.Classify(context.Background(), "unreadable scrawl", []string{"Acuvue Oasys 1-Day"})
	require.NoError(t, err)
	assert.Empty(t, choice, "sentinel reply should map to no match, case-insensitively")
}

func TestClassify_EmptyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(newChatReply("   ")))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	choice, err := client.Classify(context.Background(), "text", []string{"Biofinity"})
	require.NoError(t, err)
	assert.Empty(t, choice)
}

func TestClassify_NoLabels(t *testing.T) {
	client := NewClient("test-api-key", "http://unused.invalid", "gpt-4o-mini")

	choice, err := client.Classify(context.Background(), "text", nil)
	require.NoError(t, err)
	assert.Empty(t, choice)
}

func TestClassify_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": {"message": "rate limited"}}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	_, err := client.Classify(context.Background(), "text", []string{"Biofinity"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClassifierUnavailable))
}

func TestClassify_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	_, err := client.Classify(context.Background(), "text", []string{"Biofinity"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClassifierUnavailable))
}

func TestClassify_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	client := NewClient("test-api-key", server.URL, "gpt-4o-mini")

	_, err := client.Classify(context.Background(), "text", []string{"Biofinity"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrClassifierUnavailable))
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := buildUserPrompt("oasys max", []string{"Acuvue Oasys Max 1-Day", "Acuvue Oasys 2-Week"})

	assert.Contains(t, prompt, "Prescription text:\noasys max")
	assert.Contains(t, prompt, "1. Acuvue Oasys Max 1-Day")
	assert.Contains(t, prompt, "2. Acuvue Oasys 2-Week")
}
