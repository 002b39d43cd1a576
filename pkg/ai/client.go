package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	// ClaudeAPIEndpoint is the Anthropic API endpoint.
	ClaudeAPIEndpoint = "https://api.anthropic.com/v1/messages"
	// ClaudeAPIVersion is the API version.
	ClaudeAPIVersion = "2023-06-01"
)

// Client is a thin Claude messages-API client.
type Client struct {
	apiKey     string
	model      string
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a new Claude API client.
func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:   apiKey,
		model:    model,
		endpoint: ClaudeAPIEndpoint,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// sendMessage sends one user message and returns the first text block of
// the response.
func (c *Client) sendMessage(ctx context.Context, prompt string) (string, error) {
	claudeReq := claudeRequest{
		Model:     c.model,
		MaxTokens: 1024,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
	}

	reqBody, err := json.Marshal(claudeReq)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(reqBody))
	if err != nil {
		return "", errors.Wrap(err, "failed to create HTTP request")
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Api-Key", c.apiKey)
	httpReq.Header.Set("Anthropic-Version", ClaudeAPIVersion)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", errors.Wrap(err, "HTTP request failed")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var claudeResp claudeResponse
	if err := json.Unmarshal(respBody, &claudeResp); err != nil {
		return "", errors.Wrapf(err, "failed to parse Claude response: %s", string(respBody))
	}

	if len(claudeResp.Content) == 0 {
		return "", errors.New("no content in Claude response")
	}

	return claudeResp.Content[0].Text, nil
}

// jsonQuery sends a prompt expected to return JSON and unmarshals the
// (possibly fenced) response into out.
func (c *Client) jsonQuery(ctx context.Context, prompt string, out interface{}) error {
	responseText, err := c.sendMessage(ctx, prompt)
	if err != nil {
		return err
	}

	cleaned := stripMarkdownCodeFences(responseText)
	if err := json.Unmarshal([]byte(cleaned), out); err != nil {
		return errors.Wrapf(err, "failed to parse analysis response: %s", responseText)
	}
	return nil
}

// stripMarkdownCodeFences removes markdown code fences from JSON responses.
func stripMarkdownCodeFences(text string) string {
	cleaned := text

	if len(cleaned) > 7 && cleaned[:7] == "```json" {
		start := 7
		for start < len(cleaned) && cleaned[start] != '\n' {
			start++
		}
		start++ // skip the newline

		end := len(cleaned)
		if end > 3 && cleaned[end-3:] == "```" {
			end -= 3
		}
		for end > 0 && (cleaned[end-1] == '\n' || cleaned[end-1] == ' ' || cleaned[end-1] == '\r') {
			end--
		}

		cleaned = cleaned[start:end]
	}

	return cleaned
}
