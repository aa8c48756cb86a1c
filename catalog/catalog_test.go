package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("round trips every published model", func(t *testing.T) {
		for _, model := range Models() {
			kind, ok := Lookup(model)
			require.True(t, ok, "model %s should resolve", model)
			assert.NotEqual(t, Generic, kind, "flat models never map to the generic kind")
		}
	})

	t.Run("known pairs", func(t *testing.T) {
		for model, want := range map[string]Kind{
			"gpt-4o":                   OpenAI,
			"claude-3-7-sonnet-latest": Anthropic,
			"gemini-2.5-pro":           Google,
			"llama-3.3-70b":            Cerebras,
			"llama-3.3-70b-versatile":  Groq,
		} {
			kind, ok := Lookup(model)
			require.True(t, ok, model)
			assert.Equal(t, want, kind, model)
		}
	})

	t.Run("unknown model", func(t *testing.T) {
		_, ok := Lookup("not-a-real-model")
		assert.False(t, ok)
	})

	t.Run("namespaced identifiers are not flat models", func(t *testing.T) {
		_, ok := Lookup("openai/gpt-4o")
		assert.False(t, ok)
	})
}

func TestModels(t *testing.T) {
	models := Models()
	require.NotEmpty(t, models)

	t.Run("stable published order", func(t *testing.T) {
		assert.Equal(t, "gpt-4o", models[0])
		assert.Equal(t, models, Models())
	})

	t.Run("no duplicates", func(t *testing.T) {
		seen := make(map[string]struct{}, len(models))
		for _, m := range models {
			_, dup := seen[m]
			assert.False(t, dup, "duplicate entry %s", m)
			seen[m] = struct{}{}
		}
	})
}
