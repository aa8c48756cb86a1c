// Package anthropic implements the client variant for Anthropic models via
// the Messages API.
package anthropic

import (
	"context"
	"log/slog"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/cache"
	"github.com/rackline/switchboard/pkg/slogx"
)

// Params mirrors the construction contract shared by all client variants.
type Params struct {
	Model  string
	Config api.ClientConfig

	Logger        *slog.Logger
	EnableCaching bool
	Cache         *cache.Cache
}

// Client talks to the Anthropic Messages API, holding a non-owning reference
// to the session's shared cache.
type Client struct {
	sdk     anthropic.Client
	model   string
	logger  *slog.Logger
	caching bool
	cache   *cache.Cache
}

var _ api.Client = (*Client)(nil)

// New constructs a client. Construction is cheap and performs no I/O.
func New(p Params) *Client {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return &Client{
		sdk:     anthropic.NewClient(requestOptions(p.Config)...),
		model:   p.Model,
		logger:  p.Logger,
		caching: p.EnableCaching,
		cache:   p.Cache,
	}
}

// Model returns the flat model identifier this client was resolved for.
func (c *Client) Model() string { return c.model }

func (c *Client) Complete(ctx context.Context, req api.CompletionRequest) (*api.Completion, error) {
	fingerprint := cache.Fingerprint(c.model, req)
	return cache.Through(ctx, c.cache, c.caching, fingerprint, req.RequestID, func(ctx context.Context) (*api.Completion, error) {
		c.logger.Debug("dispatching message completion",
			slog.String("model", c.model),
			slogx.Stringer("request_id", req.RequestID))
		return complete(ctx, c.sdk, c.model, req)
	})
}

func requestOptions(cfg api.ClientConfig) []option.RequestOption {
	var options []option.RequestOption
	if cfg.APIKey != "" {
		options = append(options, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.HTTPClient != nil {
		options = append(options, option.WithHTTPClient(cfg.HTTPClient))
	}
	return options
}
