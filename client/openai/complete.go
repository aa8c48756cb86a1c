package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
	"github.com/rackline/switchboard/api"
	"github.com/tidwall/gjson"
)

// complete performs one uncached chat completion call. Both the client
// variant and the memoized handles funnel through here.
func complete(ctx context.Context, sdk openai.Client, model string, req api.CompletionRequest) (*api.Completion, error) {
	params := openai.ChatCompletionNewParams{
		Model:    model,
		Messages: buildMessages(req),
	}
	if req.Temperature > 0 {
		params.Temperature = openai.Float(req.Temperature)
	}
	if req.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(req.MaxTokens)
	}
	if req.ResponseSchema != nil {
		format, err := responseFormat(req.ResponseSchema)
		if err != nil {
			return nil, err
		}
		params.ResponseFormat = format
	}

	resp, err := sdk.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices returned for model %s", model)
	}

	choice := resp.Choices[0]
	return &api.Completion{
		ID:           resp.ID,
		Model:        resp.Model,
		Content:      choice.Message.Content,
		FinishReason: string(choice.FinishReason),
		Usage: api.Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
		Timestamp: strfmt.DateTime(time.Now()),
		Meta:      gjson.Parse(resp.RawJSON()),
	}, nil
}

// buildMessages converts the normalized request into chat message params,
// with instructions leading as the system message.
func buildMessages(req api.CompletionRequest) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.Messages)+1)
	if req.Instructions != "" {
		messages = append(messages, openai.SystemMessage(req.Instructions))
	}
	for _, m := range req.Messages {
		switch m.Role {
		case api.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case api.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}
	return messages
}

// responseFormat maps a structured output definition onto the json_schema
// response format.
func responseFormat(out *api.StructuredOutput) (openai.ChatCompletionNewParamsResponseFormatUnion, error) {
	raw, err := json.Marshal(out.Schema)
	if err != nil {
		return openai.ChatCompletionNewParamsResponseFormatUnion{}, fmt.Errorf("failed to encode response schema %q: %w", out.Name, err)
	}
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return openai.ChatCompletionNewParamsResponseFormatUnion{}, fmt.Errorf("failed to decode response schema %q: %w", out.Name, err)
	}

	def := shared.ResponseFormatJSONSchemaJSONSchemaParam{
		Name:   out.Name,
		Schema: schema,
		Strict: openai.Bool(true),
	}
	if out.Description != "" {
		def.Description = openai.String(out.Description)
	}

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{JSONSchema: def},
	}, nil
}
