// Package openai implements the client variant for OpenAI models and, via
// base URL overrides, for every OpenAI-compatible vendor in the catalog
// (Google, Groq, Cerebras, xAI, and friends).
package openai

import (
	"context"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/cache"
	"github.com/rackline/switchboard/pkg/slogx"
)

// Params carries everything a resolved client needs: the target model, the
// caller's configuration bag, and the shared cache wiring.
type Params struct {
	Model  string
	Config api.ClientConfig

	// BaseURL selects an OpenAI-compatible endpoint. Config.BaseURL, when
	// set, wins over this.
	BaseURL string

	Logger        *slog.Logger
	EnableCaching bool
	Cache         *cache.Cache
}

// Client talks to an OpenAI-compatible chat completions endpoint. It holds a
// non-owning reference to the session's shared cache.
type Client struct {
	sdk     openai.Client
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
		sdk:     openai.NewClient(requestOptions(p.Config, p.BaseURL)...),
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
		c.logger.Debug("dispatching chat completion",
			slog.String("model", c.model),
			slogx.Stringer("request_id", req.RequestID))
		return complete(ctx, c.sdk, c.model, req)
	})
}

// requestOptions translates the opaque config bag into SDK request options.
// The caller's BaseURL override takes precedence over the kind's endpoint.
func requestOptions(cfg api.ClientConfig, baseURL string) []option.RequestOption {
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}

	var options []option.RequestOption
	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}
	if cfg.APIKey != "" {
		options = append(options, option.WithAPIKey(cfg.APIKey))
	}
	if cfg.Organization != "" {
		options = append(options, option.WithOrganization(cfg.Organization))
	}
	if cfg.HTTPClient != nil {
		options = append(options, option.WithHTTPClient(cfg.HTTPClient))
	}
	return options
}
