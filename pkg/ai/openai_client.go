package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"cropwise/pkg/suitability"
)

type openAI struct {
	endpoint string
	key      string
	model    string
	httpc    *http.Client
}

func NewOpenAI(endpoint, key, model string) Client {
	return &openAI{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		model:    model,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

type chatReq struct {
	Model       string              `json:"model"`
	Messages    []map[string]string `json:"messages"`
	Temperature float64             `json:"temperature"`
}

type chatResp struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *openAI) Summarize(ctx context.Context, field suitability.FieldContext, results []suitability.CropSuitability) string {
	content, err := c.complete(ctx, renderSummaryPrompt(field, top(results)))
	if err != nil {
		zap.L().Warn("ai: summary fallback", zap.String("field_id", field.FieldID), zap.Error(err))
		return fallbackSummary(field, results)
	}
	return content
}

func (c *openAI) complete(ctx context.Context, prompt string) (string, error) {
	b, err := json.Marshal(chatReq{
		Model: c.model,
		Messages: []map[string]string{
			{"role": "system", "content": "You are an agronomist who writes concise, actionable crop planning summaries in Markdown."},
			{"role": "user", "content": prompt},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", eris.Wrap(err, "ai: encode request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", eris.Wrap(err, "ai: build request")
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", eris.Wrap(err, "ai: call chat completions")
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return "", eris.Errorf("ai: chat completions returned %d", resp.StatusCode)
	}

	var out chatResp
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", eris.Wrap(err, "ai: decode response")
	}
	if len(out.Choices) == 0 {
		return "", eris.New("ai: no choices")
	}
	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", eris.New("ai: empty content")
	}
	return content, nil
}
