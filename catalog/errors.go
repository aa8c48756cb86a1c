package catalog

import (
	"fmt"
	"strings"
)

// UnsupportedModelError is returned when a flat identifier is absent from the
// model table. Supported carries the full published list so callers can
// render help text without a second query.
type UnsupportedModelError struct {
	Model     string
	Supported []string
}

func (e *UnsupportedModelError) Error() string {
	return fmt.Sprintf("unsupported model %q, supported models: %s", e.Model, strings.Join(e.Supported, ", "))
}

// UnsupportedProviderError indicates the model table resolved to a kind that
// has no client constructor. The table and the constructor registry are
// maintained together, so hitting this is an internal consistency fault, not
// a caller mistake.
type UnsupportedProviderError struct {
	Model string
	Kind  Kind
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("no client constructor registered for provider %q (model %q)", e.Kind, e.Model)
}

// MalformedIdentifierError is returned for a slash-containing identifier
// that does not match the two-segment "subProvider/subModel" grammar.
type MalformedIdentifierError struct {
	Identifier string
	Segments   int
}

func (e *MalformedIdentifierError) Error() string {
	return fmt.Sprintf("malformed model identifier %q: want subProvider/subModel, got %d segments", e.Identifier, e.Segments)
}

// UnsupportedSubProviderError is returned for a well-formed namespaced
// identifier whose sub-provider segment is not recognized.
type UnsupportedSubProviderError struct {
	SubProvider string
	Recognized  []string
}

func (e *UnsupportedSubProviderError) Error() string {
	return fmt.Sprintf("unsupported sub-provider %q, recognized sub-providers: %s", e.SubProvider, strings.Join(e.Recognized, ", "))
}
