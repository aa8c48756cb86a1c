// Package api defines the contracts shared between the resolution core and
// the client variants it constructs.
//
// The package is intentionally dependency-light: it holds the capability
// interface every client satisfies (Client), the opaque model handle used by
// the generic multi-vendor path (Model), the normalized completion
// request/response shapes, and the caller-supplied configuration bag that is
// threaded through resolution unchanged (ClientConfig).
//
// Nothing in this package performs I/O. Vendor SDK specifics live in the
// client subpackages.
package api
