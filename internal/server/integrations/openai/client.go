// Package openai is a small client for an OpenAI-compatible chat-completion
// endpoint. It backs the `bot ask` and `draw` commands; the prompts mirror
// the ones the terminal has always used.
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

	"github.com/sethvargo/go-retry"
)

const (
	answerSystemPrompt = "please answer the users question. Do not format it in any way other than a simple response."
	asciiSystemPrompt  = "The user will prompt you with something to turn into ASCII art. Only return the ASCII art. Do not label it."
)

type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey, model string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Ask returns a plain one-shot answer to a question.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	return c.complete(ctx, answerSystemPrompt, question)
}

// Draw asks the model for ASCII art and splits the result into lines.
func (c *Client) Draw(ctx context.Context, prompt string) ([]string, error) {
	art, err := c.complete(ctx, asciiSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}
	return strings.Split(strings.ReplaceAll(art, "\r\n", "\n"), "\n"), nil
}

func (c *Client) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", err
	}

	var answer string

	// Completion endpoints shed load with 429/5xx; retry those briefly and
	// give up on anything else.
	backoff := retry.WithMaxRetries(2, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if c.apiKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.apiKey)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return retry.RetryableError(fmt.Errorf("chat endpoint returned %s", resp.Status))
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
			return fmt.Errorf("chat endpoint returned %s: %s", resp.Status, b)
		}

		var parsed chatResponse
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return fmt.Errorf("decoding completion: %w", err)
		}
		if len(parsed.Choices) == 0 {
			return fmt.Errorf("completion had no choices")
		}

		answer = parsed.Choices[0].Message.Content
		return nil
	})
	if err != nil {
		return "", err
	}

	return answer, nil
}
