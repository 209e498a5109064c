package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/lensmatch/backend/internal/domain"
)

// NoMatchSentinel is the token the model must return when none of the
// offered candidates fits.
const NoMatchSentinel = "NO MATCH"

const systemPrompt = "You identify contact lens products from noisy prescription text. " +
	"Choose the single best matching product from the numbered candidate list. " +
	"Reply with the matching candidate label exactly as written, and nothing else. " +
	"If none of the candidates fits, reply with exactly: " + NoMatchSentinel

// Client calls an OpenAI-style chat completions API to disambiguate a lens
// among a bounded candidate list. Sampling is pinned deterministic
// (temperature 0) so the same text and candidates always classify the same
// way.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
}

// NewClient creates a classifier client. The timeout is deliberately short:
// this call gates user-facing resolution latency.
func NewClient(apiKey, baseURL, model string) *Client {
	// A couple of requests per second is plenty for a fallback path
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		model:       model,
		rateLimiter: limiter,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Classify presents the raw text and the numbered candidate labels to the
// model and returns its reply. An empty string means no match; the caller is
// responsible for validating the reply against the supplied labels.
func (c *Client) Classify(ctx context.Context, rawText string, labels []string) (string, error) {
	if len(labels) == 0 {
		return "", nil
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limiter: %v", domain.ErrClassifierUnavailable, err)
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserPrompt(rawText, labels)},
		},
		Temperature: 0,
		MaxTokens:   64,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: status %d: %s", domain.ErrClassifierUnavailable, resp.StatusCode, truncate(body, 200))
	}

	var chat chatResponse
	if err := json.Unmarshal(body, &chat); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", domain.ErrClassifierUnavailable, err)
	}
	if len(chat.Choices) == 0 {
		return "", fmt.Errorf("%w: empty response", domain.ErrClassifierUnavailable)
	}

	reply := strings.TrimSpace(chat.Choices[0].Message.Content)
	if reply == "" || strings.EqualFold(reply, NoMatchSentinel) {
		return "", nil
	}
	return reply, nil
}

// buildUserPrompt numbers the candidate labels under the raw text
func buildUserPrompt(rawText string, labels []string) string {
	var b strings.Builder
	b.WriteString("Prescription text:\n")
	b.WriteString(rawText)
	b.WriteString("\n\nCandidates:\n")
	for i, label := range labels {
		fmt.Fprintf(&b, "%d. %s\n", i+1, label)
	}
	return b.String()
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
