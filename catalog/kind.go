package catalog

// Kind identifies which vendor adapter handles a model, or the generic
// multi-vendor path for namespaced references and externally built handles.
type Kind string

const (
	OpenAI    Kind = "openai"
	Anthropic Kind = "anthropic"
	Google    Kind = "google"
	Cerebras  Kind = "cerebras"
	Groq      Kind = "groq"

	// Generic marks the multi-vendor client that wraps an externally
	// constructed model handle. It never appears in the flat model table.
	Generic Kind = "generic"
)

func (k Kind) String() string { return string(k) }
