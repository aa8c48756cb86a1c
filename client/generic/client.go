// Package generic implements the multi-vendor client variant. It wraps an
// externally constructed model handle and layers the shared response cache
// on top, so namespaced references and caller-built handles cache exactly
// like the vendor-specific variants.
package generic

import (
	"context"
	"log/slog"

	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/cache"
	"github.com/rackline/switchboard/pkg/slogx"
)

// Params carries the handle to wrap plus the shared cache wiring. Unlike the
// vendor variants there is no model name: the handle already knows it.
type Params struct {
	Model api.Model

	Logger        *slog.Logger
	EnableCaching bool
	Cache         *cache.Cache
}

// Client delegates completion to the wrapped handle.
type Client struct {
	model   api.Model
	logger  *slog.Logger
	caching bool
	cache   *cache.Cache
}

var _ api.Client = (*Client)(nil)

func New(p Params) *Client {
	if p.Logger == nil {
		p.Logger = slog.Default()
	}
	return &Client{
		model:   p.Model,
		logger:  p.Logger,
		caching: p.EnableCaching,
		cache:   p.Cache,
	}
}

// Model exposes the wrapped handle.
func (c *Client) Model() api.Model { return c.model }

func (c *Client) Complete(ctx context.Context, req api.CompletionRequest) (*api.Completion, error) {
	fingerprint := cache.Fingerprint(c.model.Name(), req)
	return cache.Through(ctx, c.cache, c.caching, fingerprint, req.RequestID, func(ctx context.Context) (*api.Completion, error) {
		c.logger.Debug("dispatching to model handle",
			slog.String("model", c.model.Name()),
			slogx.Stringer("request_id", req.RequestID))
		return c.model.Complete(ctx, req)
	})
}
