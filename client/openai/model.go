package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/internal/registry"
)

var handles = registry.New[api.Model]()

// Model returns a memoized handle for a model on OpenAI's own endpoint.
func Model(name string, cfg api.ClientConfig) api.Model {
	return CompatModel("", name, cfg)
}

// CompatModel returns a memoized handle for a model behind an
// OpenAI-compatible endpoint. Handles are memoized per endpoint and model
// name; the first caller's config wins for the lifetime of the process.
func CompatModel(baseURL, name string, cfg api.ClientConfig) api.Model {
	handle, _ := handles.GetOrAdd(baseURL+"#"+name, func() api.Model {
		return &model{
			name: name,
			sdk:  openai.NewClient(requestOptions(cfg, baseURL)...),
		}
	})
	return handle
}

var _ api.Model = (*model)(nil)

type model struct {
	name string
	sdk  openai.Client
}

func (m *model) Name() string { return m.name }

// Complete performs the raw vendor call. Caching is layered on by the
// generic client that wraps the handle.
func (m *model) Complete(ctx context.Context, req api.CompletionRequest) (*api.Completion, error) {
	return complete(ctx, m.sdk, m.name, req)
}
