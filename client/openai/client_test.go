package openai

import (
	"net/http"
	"testing"

	"github.com/invopop/jsonschema"
	"github.com/rackline/switchboard/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMessages(t *testing.T) {
	t.Run("instructions lead as system message", func(t *testing.T) {
		messages := buildMessages(api.CompletionRequest{
			Instructions: "be terse",
			Messages: []api.Message{
				{Role: api.RoleUser, Content: "hi"},
				{Role: api.RoleAssistant, Content: "hello"},
				{Role: api.RoleUser, Content: "bye"},
			},
		})

		require.Len(t, messages, 4)
		assert.NotNil(t, messages[0].OfSystem)
		assert.NotNil(t, messages[1].OfUser)
		assert.NotNil(t, messages[2].OfAssistant)
		assert.NotNil(t, messages[3].OfUser)
	})

	t.Run("no instructions", func(t *testing.T) {
		messages := buildMessages(api.CompletionRequest{
			Messages: []api.Message{{Role: api.RoleUser, Content: "hi"}},
		})
		require.Len(t, messages, 1)
		assert.NotNil(t, messages[0].OfUser)
	})

	t.Run("system turns stay system", func(t *testing.T) {
		messages := buildMessages(api.CompletionRequest{
			Messages: []api.Message{{Role: api.RoleSystem, Content: "context"}},
		})
		require.Len(t, messages, 1)
		assert.NotNil(t, messages[0].OfSystem)
	})
}

func TestRequestOptions(t *testing.T) {
	t.Run("empty config and endpoint yield no options", func(t *testing.T) {
		assert.Empty(t, requestOptions(api.ClientConfig{}, ""))
	})

	t.Run("kind endpoint applies", func(t *testing.T) {
		assert.Len(t, requestOptions(api.ClientConfig{}, "https://api.groq.com/openai/v1"), 1)
	})

	t.Run("full config", func(t *testing.T) {
		options := requestOptions(api.ClientConfig{
			APIKey:       "sk-test",
			BaseURL:      "https://example.test/v1",
			Organization: "org-test",
			HTTPClient:   &http.Client{},
		}, "https://ignored.example/v1")
		assert.Len(t, options, 4)
	})
}

func TestResponseFormat(t *testing.T) {
	type weather struct {
		City string `json:"city"`
		Temp int    `json:"temp"`
	}

	format, err := responseFormat(&api.StructuredOutput{
		Name:        "weather",
		Description: "current weather",
		Schema:      new(jsonschema.Reflector).Reflect(&weather{}),
	})
	require.NoError(t, err)

	require.NotNil(t, format.OfJSONSchema)
	assert.Equal(t, "weather", format.OfJSONSchema.JSONSchema.Name)
	assert.NotEmpty(t, format.OfJSONSchema.JSONSchema.Schema)
}

func TestModelMemoization(t *testing.T) {
	first := Model("memo-model", api.ClientConfig{})
	second := Model("memo-model", api.ClientConfig{})
	assert.Same(t, first, second, "handles are memoized per endpoint and name")

	compat := CompatModel("https://api.groq.com/openai/v1", "memo-model", api.ClientConfig{})
	assert.NotSame(t, first, compat, "a different endpoint is a different handle")
	assert.Equal(t, "memo-model", compat.Name())
}

func TestNewClient(t *testing.T) {
	client := New(Params{Model: "gpt-4o"})
	assert.Equal(t, "gpt-4o", client.Model())
}
