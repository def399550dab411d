// Package openrouter is a minimal client for the OpenRouter
// chat-completions API.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

const maxConcurrentRequests = 10

type Config struct {
	APIKey    string
	BaseURL   string // e.g. https://openrouter.ai/api/v1
	Model     string
	Referrer  string // optional HTTP-Referer attribution header
	MaxTokens int
	Timeout   time.Duration
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

type Client struct {
	cfg        Config
	logger     *zap.Logger
	httpClient *http.Client
	semaphore  *semaphore.Weighted
}

func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		cfg:        cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		semaphore:  semaphore.NewWeighted(maxConcurrentRequests),
	}
}

// Configured reports whether an API credential is present.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// Complete makes a single chat-completion request and returns the first
// choice's content. No retries: callers treat any failure as a signal to
// fall back.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if !c.Configured() {
		return "", fmt.Errorf("openrouter: no API key configured")
	}

	body, err := json.Marshal(chatRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages: []Message{
			{Role: RoleSystem, Content: system},
			{Role: RoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openrouter: could not encode request: %w", err)
	}

	if err := c.semaphore.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("openrouter: could not acquire request slot: %w", err)
	}
	defer c.semaphore.Release(1)

	url := c.cfg.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("openrouter: could not build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Referrer != "" {
		req.Header.Set("HTTP-Referer", c.cfg.Referrer)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("[OpenRouter] Request failed",
			zap.Error(err), zap.String("model", c.cfg.Model))
		return "", fmt.Errorf("openrouter: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("openrouter: could not read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("[OpenRouter] Non-2xx response",
			zap.Int("status", resp.StatusCode),
			zap.String("model", c.cfg.Model),
			zap.ByteString("body", respBody))
		return "", fmt.Errorf("openrouter: unexpected status %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("openrouter: could not decode response: %w", err)
	}
	if len(parsed.Choices) == 0 || parsed.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openrouter: response contained no completion")
	}

	c.logger.Info("[OpenRouter] Completion received",
		zap.String("model", c.cfg.Model),
		zap.Duration("duration", time.Since(start)),
		zap.Int("content_length", len(parsed.Choices[0].Message.Content)))
	return parsed.Choices[0].Message.Content, nil
}
