package api

import (
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/tidwall/gjson"
)

// Message roles understood by every client variant.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single conversation turn in provider-neutral form.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is the normalized input accepted by all client variants.
// RequestID tags any cache entries produced while serving the request, so a
// later CleanRequestCache call can release them in bulk.
type CompletionRequest struct {
	// RequestID identifies the logical caller request this completion belongs
	// to. It scopes cache eviction and is excluded from content fingerprints.
	RequestID uuid.UUID `json:"request_id"`

	// Instructions is the system prompt, kept separate from Messages so each
	// vendor adapter can place it where its API expects.
	Instructions string `json:"instructions,omitempty"`

	Messages []Message `json:"messages"`

	Temperature float64 `json:"temperature,omitempty"`
	MaxTokens   int64   `json:"max_tokens,omitempty"`

	// ResponseSchema requests structured output. Vendors without a native
	// equivalent fold the schema into the system prompt.
	ResponseSchema *StructuredOutput `json:"response_schema,omitempty"`
}

// StructuredOutput defines a schema for formatted model responses.
type StructuredOutput struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Schema      *jsonschema.Schema `json:"schema"`
}

// Usage captures token accounting as reported by the vendor.
type Usage struct {
	PromptTokens     int64 `json:"prompt_tokens"`
	CompletionTokens int64 `json:"completion_tokens"`
	TotalTokens      int64 `json:"total_tokens"`
}

// Completion is the normalized result of a generation call. Meta holds the
// raw vendor payload for callers that need fields the normalization drops.
type Completion struct {
	ID           string          `json:"id"`
	Model        string          `json:"model"`
	Content      string          `json:"content"`
	FinishReason string          `json:"finish_reason"`
	Usage        Usage           `json:"usage"`
	Timestamp    strfmt.DateTime `json:"timestamp,omitempty"`
	Meta         gjson.Result    `json:"-"`
}
