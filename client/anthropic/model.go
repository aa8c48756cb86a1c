package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/internal/registry"
)

var handles = registry.New[api.Model]()

// Model returns a memoized handle for an Anthropic model, for use with the
// generic multi-vendor client. The first caller's config wins for the
// lifetime of the process.
func Model(name string, cfg api.ClientConfig) api.Model {
	handle, _ := handles.GetOrAdd(name, func() api.Model {
		return &model{
			name: name,
			sdk:  anthropic.NewClient(requestOptions(cfg)...),
		}
	})
	return handle
}

var _ api.Model = (*model)(nil)

type model struct {
	name string
	sdk  anthropic.Client
}

func (m *model) Name() string { return m.name }

func (m *model) Complete(ctx context.Context, req api.CompletionRequest) (*api.Completion, error) {
	return complete(ctx, m.sdk, m.name, req)
}
