package api

import (
	"context"
	"net/http"
)

// Client is the capability contract shared by every client variant the
// resolver constructs. All variants consult and populate the same shared
// response cache before touching the network, so callers can treat them
// interchangeably.
type Client interface {
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// Model is an externally constructed handle for a vendor model. Handles are
// opaque to the resolution core: whichever way one was built, it always
// routes through the generic multi-vendor client.
type Model interface {
	Name() string
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)
}

// ClientConfig is the caller-supplied configuration bag. The resolution core
// never inspects it; it is handed unchanged to whichever client variant ends
// up being constructed.
type ClientConfig struct {
	// APIKey overrides the vendor SDK's environment-based credential lookup.
	APIKey string

	// BaseURL overrides the endpoint the client talks to. Takes precedence
	// over any endpoint implied by the resolved provider kind.
	BaseURL string

	// Organization is forwarded to vendors that scope keys to an org.
	Organization string

	// HTTPClient replaces the SDK's default transport when set.
	HTTPClient *http.Client
}
