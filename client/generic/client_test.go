package generic

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/cache"
	"github.com/rackline/switchboard/pkg/uuidx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	name  string
	calls int
	err   error
}

func (m *fakeModel) Name() string { return m.name }

func (m *fakeModel) Complete(_ context.Context, _ api.CompletionRequest) (*api.Completion, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return &api.Completion{Model: m.name, Content: "ok"}, nil
}

func request(content string) api.CompletionRequest {
	return api.CompletionRequest{
		RequestID: uuidx.New(),
		Messages:  []api.Message{{Role: api.RoleUser, Content: content}},
	}
}

func TestCompleteCaches(t *testing.T) {
	model := &fakeModel{name: "fake"}
	client := New(Params{Model: model, EnableCaching: true, Cache: cache.New(nil)})

	req := request("hello")
	first, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	second, err := client.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, model.calls)
	assert.Equal(t, first.Content, second.Content)
}

func TestCompleteCachingDisabled(t *testing.T) {
	model := &fakeModel{name: "fake"}
	client := New(Params{Model: model, EnableCaching: false})

	req := request("hello")
	_, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	_, err = client.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 2, model.calls)
}

func TestCompletePropagatesErrors(t *testing.T) {
	boom := errors.New("boom")
	model := &fakeModel{name: "fake", err: boom}
	client := New(Params{Model: model, EnableCaching: true, Cache: cache.New(nil)})

	_, err := client.Complete(context.Background(), request("hello"))
	assert.ErrorIs(t, err, boom)
}

func TestCompleteLogsDispatch(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	model := &fakeModel{name: "fake"}
	client := New(Params{Model: model, Logger: logger, EnableCaching: true, Cache: cache.New(logger)})

	req := request("hello")
	_, err := client.Complete(context.Background(), req)
	require.NoError(t, err)
	_, err = client.Complete(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "dispatching to model handle"),
		"dispatch is traced once per handle call, never for cache hits")
}

func TestModelAccessor(t *testing.T) {
	model := &fakeModel{name: "fake"}
	client := New(Params{Model: model})
	assert.Same(t, api.Model(model), client.Model())
}
