package catalog

import "strings"

// SubProvider selects which vendor adapter sits underneath the generic
// multi-vendor client for a namespaced model reference.
type SubProvider string

const (
	SubOpenAI     SubProvider = "openai"
	SubAnthropic  SubProvider = "anthropic"
	SubGoogle     SubProvider = "google"
	SubXAI        SubProvider = "xai"
	SubGroq       SubProvider = "groq"
	SubCerebras   SubProvider = "cerebras"
	SubTogetherAI SubProvider = "togetherai"
	SubMistral    SubProvider = "mistral"
	SubDeepSeek   SubProvider = "deepseek"
	SubPerplexity SubProvider = "perplexity"
	SubOllama     SubProvider = "ollama"
)

// endpoints holds the OpenAI-compatible base URL per sub-provider. Empty for
// openai (the SDK default) and for anthropic, which goes through the native
// SDK instead of a compatibility endpoint.
var endpoints = map[SubProvider]string{
	SubOpenAI:     "",
	SubAnthropic:  "",
	SubGoogle:     "https://generativelanguage.googleapis.com/v1beta/openai/",
	SubXAI:        "https://api.x.ai/v1",
	SubGroq:       "https://api.groq.com/openai/v1",
	SubCerebras:   "https://api.cerebras.ai/v1",
	SubTogetherAI: "https://api.together.xyz/v1",
	SubMistral:    "https://api.mistral.ai/v1",
	SubDeepSeek:   "https://api.deepseek.com/v1",
	SubPerplexity: "https://api.perplexity.ai",
	SubOllama:     "http://localhost:11434/v1",
}

// subProviderOrder fixes the order SubProviders() and error payloads report.
var subProviderOrder = []SubProvider{
	SubOpenAI, SubAnthropic, SubGoogle, SubXAI, SubGroq, SubCerebras,
	SubTogetherAI, SubMistral, SubDeepSeek, SubPerplexity, SubOllama,
}

// Ref is a parsed namespaced model reference.
type Ref struct {
	SubProvider SubProvider
	Model       string
}

// IsNamespaced reports whether an identifier should be parsed with ParseRef
// rather than looked up in the flat table.
func IsNamespaced(identifier string) bool {
	return strings.Contains(identifier, "/")
}

// ParseRef decomposes a namespaced identifier of the fixed form
// "subProvider/subModel". A slash-containing identifier with any other
// segment count, or with an empty segment, is a MalformedIdentifierError; a
// well-formed one naming an unknown sub-provider is an
// UnsupportedSubProviderError.
func ParseRef(identifier string) (Ref, error) {
	segments := strings.Split(identifier, "/")
	if len(segments) != 2 || segments[0] == "" || segments[1] == "" {
		return Ref{}, &MalformedIdentifierError{Identifier: identifier, Segments: len(segments)}
	}

	sub := SubProvider(segments[0])
	if _, ok := endpoints[sub]; !ok {
		return Ref{}, &UnsupportedSubProviderError{SubProvider: segments[0], Recognized: SubProviders()}
	}

	return Ref{SubProvider: sub, Model: segments[1]}, nil
}

// Endpoint returns the OpenAI-compatible base URL for a recognized
// sub-provider, or the empty string where the vendor's native endpoint (or
// SDK) applies.
func Endpoint(sub SubProvider) string {
	return endpoints[sub]
}

// SubProviders returns the recognized sub-provider names in published order.
func SubProviders() []string {
	names := make([]string, len(subProviderOrder))
	for i, sub := range subProviderOrder {
		names[i] = string(sub)
	}
	return names
}
