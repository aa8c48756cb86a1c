package catalog

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// flatModels maps every supported flat model identifier to its provider
// kind. Insertion order is the published order: grouped by vendor, newest
// first within a group. Models() and error payloads iterate it as-is, so the
// list callers see stays stable across processes.
var flatModels = orderedmap.New[string, Kind]()

func init() {
	for _, e := range []struct {
		model string
		kind  Kind
	}{
		{"gpt-4o", OpenAI},
		{"gpt-4o-mini", OpenAI},
		{"gpt-4.1", OpenAI},
		{"gpt-4.1-mini", OpenAI},
		{"gpt-4.1-nano", OpenAI},
		{"chatgpt-4o-latest", OpenAI},
		{"o1", OpenAI},
		{"o1-mini", OpenAI},
		{"o3", OpenAI},
		{"o3-mini", OpenAI},
		{"o4-mini", OpenAI},

		{"claude-opus-4-0", Anthropic},
		{"claude-sonnet-4-0", Anthropic},
		{"claude-3-7-sonnet-latest", Anthropic},
		{"claude-3-5-sonnet-latest", Anthropic},
		{"claude-3-5-haiku-latest", Anthropic},

		{"gemini-2.5-pro", Google},
		{"gemini-2.5-flash", Google},
		{"gemini-2.0-flash", Google},
		{"gemini-1.5-pro", Google},
		{"gemini-1.5-flash", Google},

		{"llama-3.3-70b", Cerebras},
		{"llama3.1-8b", Cerebras},
		{"qwen-3-32b", Cerebras},

		{"llama-3.3-70b-versatile", Groq},
		{"llama-3.1-8b-instant", Groq},
		{"gemma2-9b-it", Groq},
		{"mixtral-8x7b-32768", Groq},
	} {
		flatModels.Set(e.model, e.kind)
	}
}

// Lookup resolves a flat model identifier to its provider kind. It is the
// informational query behind ModelProvider: ok is false for anything not in
// the table, including namespaced identifiers.
func Lookup(model string) (Kind, bool) {
	return flatModels.Get(model)
}

// Models returns every supported flat model identifier in published order.
func Models() []string {
	names := make([]string, 0, flatModels.Len())
	for pair := flatModels.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key)
	}
	return names
}
