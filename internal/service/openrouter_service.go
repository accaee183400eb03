package service

import (
	"context"

	"github.com/go-resty/resty/v2"
	"github.com/nocv-se/nocv-backend/internal/apperr"
	"github.com/nocv-se/nocv-backend/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// ToolFunction describes the forced function-call contract sent to the
// gateway. Parameters is a JSON schema object.
type ToolFunction struct {
	Name        string
	Description string
	Parameters  map[string]any
}

type OpenRouterServiceInterface interface {
	CompleteToolCall(ctx context.Context, systemPrompt, userPrompt string, tool ToolFunction) (string, error)
}

type OpenRouterService struct {
	client *resty.Client
	model  string
}

func NewOpenRouterService() *OpenRouterService {
	cfg := config.LoadOpenRouterConfig()
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	return &OpenRouterService{client: client, model: cfg.Model}
}

// CompleteToolCall posts a chat completion with tool_choice forced to the
// given function and returns the raw JSON arguments of the returned tool call.
// Free-text model output is never accepted: a 2xx response without the
// expected tool call fails with MalformedResponseError.
func (s *OpenRouterService) CompleteToolCall(ctx context.Context, systemPrompt, userPrompt string, tool ToolFunction) (string, error) {
	payload := map[string]any{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userPrompt},
		},
		"tools": []map[string]any{
			{
				"type": "function",
				"function": map[string]any{
					"name":        tool.Name,
					"description": tool.Description,
					"parameters":  tool.Parameters,
				},
			},
		},
		"tool_choice": map[string]any{
			"type":     "function",
			"function": map[string]any{"name": tool.Name},
		},
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post("/chat/completions")
	if err != nil {
		err = errors.Wrap(err, "openrouter chat completion")
		logrus.WithError(err).Error("openrouter request failed")
		return "", &apperr.UpstreamError{Body: err.Error()}
	}

	switch {
	case resp.StatusCode() == 429:
		return "", &apperr.RateLimitedError{}
	case resp.StatusCode() == 402:
		return "", &apperr.QuotaExceededError{}
	case resp.IsError():
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"body":   resp.String(),
		}).Error("openrouter returned error status")
		return "", &apperr.UpstreamError{Status: resp.StatusCode(), Body: resp.String()}
	}

	body := resp.String()
	call := gjson.Get(body, "choices.0.message.tool_calls.0.function")
	if !call.Exists() {
		logrus.WithField("body", body).Warn("openrouter response missing tool call")
		return "", &apperr.MalformedResponseError{Reason: "missing tool call"}
	}
	if name := call.Get("name").String(); name != tool.Name {
		return "", &apperr.MalformedResponseError{Reason: "unexpected tool name: " + name}
	}
	args := call.Get("arguments").String()
	if args == "" || !gjson.Valid(args) {
		return "", &apperr.MalformedResponseError{Reason: "tool call arguments are not valid JSON"}
	}
	return args, nil
}
