/*
Package switchboard resolves model identifiers into ready-to-use LLM clients
while keeping one response cache shared across every client a session
produces.

Three shapes of model reference are accepted, unified by the ModelRef union:

  - a flat identifier ("gpt-4o", "claude-3-7-sonnet-latest") resolved through
    the static catalog to a vendor-specific client
  - a namespaced identifier ("groq/llama-3.3-70b-versatile") routed through
    the generic multi-vendor client on top of a vendor model handle
  - an externally constructed handle (Handle{Model: ...}), always routed
    through the generic client

# Basic usage

	operator, err := switchboard.New()
	if err != nil { ... }

	client, err := operator.GetClient(switchboard.Name("gpt-4o"))
	if err != nil { ... }

	requestID := uuidx.New()
	completion, err := client.Complete(ctx, api.CompletionRequest{
		RequestID: requestID,
		Messages:  []api.Message{{Role: api.RoleUser, Content: "hello"}},
	})
	...
	operator.CleanRequestCache(requestID)

Resolution is synchronous and side-effect free: unsupported, malformed, and
unrecognized identifiers fail before any cache or network access begins, with
typed errors from the catalog package. Cache entries are tagged with the
request id that produced them; CleanRequestCache releases a request's entries
in bulk and is always safe to call, caching or not.
*/
package switchboard
