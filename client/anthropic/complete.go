package anthropic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/rackline/switchboard/api"
	"github.com/tidwall/gjson"
)

// defaultMaxTokens applies when the request leaves MaxTokens unset; the
// Messages API requires an explicit limit.
const defaultMaxTokens = 4096

func complete(ctx context.Context, sdk anthropic.Client, model string, req api.CompletionRequest) (*api.Completion, error) {
	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = defaultMaxTokens
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: maxTokens,
		Messages:  buildMessages(req),
	}
	if req.Temperature > 0 {
		params.Temperature = anthropic.Float(req.Temperature)
	}
	if system, err := systemPrompt(req); err != nil {
		return nil, err
	} else if system != "" {
		params.System = []anthropic.TextBlockParam{{Text: system}}
	}

	resp, err := sdk.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var content strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			content.WriteString(block.AsText().Text)
		}
	}

	return &api.Completion{
		ID:           resp.ID,
		Model:        string(resp.Model),
		Content:      content.String(),
		FinishReason: string(resp.StopReason),
		Usage: api.Usage{
			PromptTokens:     resp.Usage.InputTokens,
			CompletionTokens: resp.Usage.OutputTokens,
			TotalTokens:      resp.Usage.InputTokens + resp.Usage.OutputTokens,
		},
		Timestamp: strfmt.DateTime(time.Now()),
		Meta:      gjson.Parse(resp.RawJSON()),
	}, nil
}

// buildMessages converts the normalized conversation. System turns ride in
// the dedicated system prompt instead, see systemPrompt.
func buildMessages(req api.CompletionRequest) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case api.RoleSystem:
			continue
		case api.RoleAssistant:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}
	return messages
}

// systemPrompt merges instructions, any system-role turns, and the response
// schema hint. The Messages API has no json_schema response format, so
// structured output is requested through the prompt.
func systemPrompt(req api.CompletionRequest) (string, error) {
	var parts []string
	if req.Instructions != "" {
		parts = append(parts, req.Instructions)
	}
	for _, m := range req.Messages {
		if m.Role == api.RoleSystem {
			parts = append(parts, m.Content)
		}
	}
	if req.ResponseSchema != nil {
		raw, err := json.Marshal(req.ResponseSchema.Schema)
		if err != nil {
			return "", fmt.Errorf("failed to encode response schema %q: %w", req.ResponseSchema.Name, err)
		}
		parts = append(parts, "Respond only with JSON that validates against this schema:\n"+string(raw))
	}
	return strings.Join(parts, "\n\n"), nil
}
