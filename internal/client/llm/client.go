// Package llm клиент текстовой модели с OpenAI-совместимым chat completions API
package llm

import (
	"arcade_backend/internal/config"
	"arcade_backend/internal/model"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/valyala/fasthttp"
)

// Completer одна реплика модели на один промпт
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type Client struct {
	http     *fasthttp.Client
	endpoint string
	apiKey   string
	model    string
	timeout  time.Duration
}

func NewClient(cfg config.LLMConfig) *Client {
	return &Client{
		http: &fasthttp.Client{
			ReadTimeout:                   cfg.Timeout(),
			WriteTimeout:                  cfg.Timeout(),
			MaxIdleConnDuration:           90 * time.Second,
			MaxConnsPerHost:               16,
			MaxConnWaitTimeout:            3 * time.Second,
			DisableHeaderNamesNormalizing: true,
		},
		endpoint: cfg.Endpoint(),
		apiKey:   cfg.APIKey(),
		model:    cfg.Model(),
		timeout:  cfg.Timeout(),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string    `json:"model,omitempty"`
	Messages []message `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Complete любая сетевая ошибка или не-200 ответ оборачиваются в model.ErrRemoteUnavailable
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Model:    c.model,
		Messages: []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseResponse(resp)
		fasthttp.ReleaseRequest(req)
	}()

	req.SetRequestURI(c.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.SetBody(body)

	if err := c.http.DoTimeout(req, resp, c.deadline(ctx)); err != nil {
		return "", errors.Wrapf(model.ErrRemoteUnavailable, "llm request: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", errors.Wrapf(model.ErrRemoteUnavailable, "llm status %d", resp.StatusCode())
	}

	var parsed completionResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return "", errors.Wrapf(model.ErrMalformedPayload, "llm body: %v", err)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.Wrap(model.ErrMalformedPayload, "llm returned no choices")
	}

	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}

// deadline таймаут запроса не больше остатка ctx
func (c *Client) deadline(ctx context.Context) time.Duration {
	timeout := c.timeout
	if d, ok := ctx.Deadline(); ok {
		if left := time.Until(d); left < timeout {
			timeout = left
		}
	}
	if timeout <= 0 {
		timeout = time.Millisecond
	}
	return timeout
}
