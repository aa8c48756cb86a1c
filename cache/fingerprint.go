package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/pkg/uuidx"
)

// Fingerprint derives the cache key for a completion request against a given
// model. The request id is deliberately excluded: two requests with identical
// content hit the same entry even when they belong to different scopes.
func Fingerprint(model string, req api.CompletionRequest) string {
	payload := struct {
		Model          string                `json:"model"`
		Instructions   string                `json:"instructions,omitempty"`
		Messages       []api.Message         `json:"messages"`
		Temperature    float64               `json:"temperature,omitempty"`
		MaxTokens      int64                 `json:"max_tokens,omitempty"`
		ResponseSchema *api.StructuredOutput `json:"response_schema,omitempty"`
	}{
		Model:          model,
		Instructions:   req.Instructions,
		Messages:       req.Messages,
		Temperature:    req.Temperature,
		MaxTokens:      req.MaxTokens,
		ResponseSchema: req.ResponseSchema,
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		// Only unmarshalable schema values can end up here. The key is unique
		// per call, so the request effectively opts out of caching instead of
		// sharing an entry with other unfingerprintable requests.
		return "unfingerprintable:" + uuidx.NewString()
	}
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Through is the consult-then-populate path every client variant funnels
// completions through. When caching is off (disabled flag or nil cache) it
// invokes do directly, so clients never branch on cache presence themselves.
func Through(
	ctx context.Context,
	c *Cache,
	enabled bool,
	fingerprint string,
	requestID uuid.UUID,
	do func(context.Context) (*api.Completion, error),
) (*api.Completion, error) {
	if !enabled || c == nil {
		return do(ctx)
	}

	if completion, ok := c.Get(fingerprint); ok {
		c.logger.Debug("response cache hit", slog.String("fingerprint", fingerprint))
		return &completion, nil
	}

	completion, err := do(ctx)
	if err != nil {
		return nil, err
	}
	c.Set(fingerprint, requestID, *completion)
	return completion, nil
}
