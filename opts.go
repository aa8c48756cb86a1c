package switchboard

import (
	"log/slog"
	"net/http"

	"github.com/fogfish/opts"
	"github.com/rackline/switchboard/api"
)

// Operator construction options.
var (
	// WithLogger sets the logger shared by the operator, its cache, and every
	// client it constructs. Defaults to slog.Default().
	WithLogger = opts.ForName[Operator, *slog.Logger]("logger")

	// Caching toggles the shared response cache. When disabled no cache is
	// created, clients receive none, and CleanRequestCache is a no-op.
	// Enabled by default.
	Caching = opts.ForName[Operator, bool]("caching")
)

// ClientOption configures the client a single GetClient call constructs. The
// resulting ClientConfig is opaque to resolution and threaded through to the
// vendor adapter unchanged.
type ClientOption = opts.Option[api.ClientConfig]

var (
	// WithAPIKey overrides the vendor SDK's environment-based credentials.
	WithAPIKey = opts.ForName[api.ClientConfig, string]("APIKey")

	// WithBaseURL points the client at a different endpoint, winning over
	// the endpoint implied by the resolved provider kind.
	WithBaseURL = opts.ForName[api.ClientConfig, string]("BaseURL")

	// WithOrganization forwards an org scope to vendors that support one.
	WithOrganization = opts.ForName[api.ClientConfig, string]("Organization")

	// WithHTTPClient replaces the SDK's default transport.
	WithHTTPClient = opts.ForName[api.ClientConfig, *http.Client]("HTTPClient")
)
