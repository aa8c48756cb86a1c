package switchboard

import "github.com/rackline/switchboard/api"

// ModelRef identifies the model a client should target. It is a closed union
// with two variants: Name for string identifiers (flat or namespaced) and
// Handle for externally constructed models. Resolution inspects the variant
// exactly once, at the top of GetClient.
type ModelRef interface {
	modelRef()
}

// Name references a model by identifier. A flat name ("gpt-4o") resolves
// through the catalog to a vendor-specific client; a namespaced name
// ("groq/llama-3.3-70b-versatile") routes through the generic multi-vendor
// client.
type Name string

func (Name) modelRef() {}

// Handle wraps an externally constructed model. Handles always resolve to
// the generic multi-vendor client, with the handle injected as-is.
type Handle struct {
	Model api.Model
}

func (Handle) modelRef() {}
