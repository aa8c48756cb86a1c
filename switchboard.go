package switchboard

import (
	"fmt"
	"log/slog"

	"github.com/fogfish/opts"
	"github.com/google/uuid"
	"github.com/rackline/switchboard/api"
	"github.com/rackline/switchboard/cache"
	"github.com/rackline/switchboard/catalog"
	anthropicclient "github.com/rackline/switchboard/client/anthropic"
	"github.com/rackline/switchboard/client/generic"
	openaiclient "github.com/rackline/switchboard/client/openai"
	"github.com/rackline/switchboard/pkg/slogx"
)

// Operator resolves model references into ready-to-use clients and owns the
// response cache those clients share. Construct one per logical session;
// separate operators never share state unless explicitly given the same
// logger or configuration.
type Operator struct {
	logger  *slog.Logger
	caching bool
	cache   *cache.Cache
}

// New constructs an operator. Caching is enabled unless switched off with
// Caching(false); the cache, when enabled, is created here and lives as long
// as the operator.
func New(options ...opts.Option[Operator]) (*Operator, error) {
	operator := &Operator{
		logger:  slog.Default(),
		caching: true,
	}
	if err := opts.Apply(operator, options); err != nil {
		return nil, err
	}
	if operator.caching {
		operator.cache = cache.New(operator.logger)
	}
	return operator, nil
}

// GetClient resolves a model reference into a client. Clients are cheap,
// stateless wrappers constructed fresh on every call; they all receive the
// operator's shared cache, so cache hits are visible across clients obtained
// from the same operator. No network or cache access happens here.
func (o *Operator) GetClient(ref ModelRef, options ...ClientOption) (api.Client, error) {
	if ref == nil {
		return nil, fmt.Errorf("model reference is required")
	}

	var cfg api.ClientConfig
	if err := opts.Apply(&cfg, options); err != nil {
		return nil, err
	}

	switch r := ref.(type) {
	case Handle:
		return o.wrapHandle(r.Model), nil
	case Name:
		return o.clientForName(string(r), cfg)
	default:
		// The union is sealed; a new variant without a branch here is a bug.
		return nil, fmt.Errorf("unsupported model reference type %T", ref)
	}
}

// CleanRequestCache releases every cache entry tagged with the given request
// id. It never fails: with caching disabled, or nothing cached for the id,
// it is a no-op.
func (o *Operator) CleanRequestCache(requestID uuid.UUID) {
	if o.cache == nil {
		o.logger.Debug("request cache cleanup skipped, caching disabled",
			slogx.Stringer("request_id", requestID))
		return
	}
	o.cache.DeleteByRequestID(requestID)
}

// ModelProvider reports which provider kind serves a flat model identifier.
// Informational only: ok is false for unknown and namespaced identifiers,
// never an error.
func ModelProvider(model string) (catalog.Kind, bool) {
	return catalog.Lookup(model)
}

// SupportedModels returns the published list of flat model identifiers.
func SupportedModels() []string {
	return catalog.Models()
}

func (o *Operator) clientForName(name string, cfg api.ClientConfig) (api.Client, error) {
	if catalog.IsNamespaced(name) {
		ref, err := catalog.ParseRef(name)
		if err != nil {
			return nil, err
		}
		build, ok := handleConstructors[ref.SubProvider]
		if !ok {
			return nil, &catalog.UnsupportedSubProviderError{
				SubProvider: string(ref.SubProvider),
				Recognized:  catalog.SubProviders(),
			}
		}
		return o.wrapHandle(build(ref.Model, cfg)), nil
	}

	kind, ok := catalog.Lookup(name)
	if !ok {
		return nil, &catalog.UnsupportedModelError{Model: name, Supported: catalog.Models()}
	}
	build, ok := clientConstructors[kind]
	if !ok {
		return nil, &catalog.UnsupportedProviderError{Model: name, Kind: kind}
	}
	return build(clientParams{
		model:   name,
		config:  cfg,
		logger:  o.logger,
		caching: o.caching,
		cache:   o.cache,
	}), nil
}

func (o *Operator) wrapHandle(model api.Model) api.Client {
	return generic.New(generic.Params{
		Model:         model,
		Logger:        o.logger,
		EnableCaching: o.caching,
		Cache:         o.cache,
	})
}

type clientParams struct {
	model   string
	config  api.ClientConfig
	logger  *slog.Logger
	caching bool
	cache   *cache.Cache
}

type clientConstructor func(p clientParams) api.Client

// clientConstructors is the dispatch table for flat identifiers: one row per
// provider kind, maintained alongside the catalog's model table. Vendors
// with OpenAI-compatible APIs share the openai variant, parameterized by
// endpoint.
var clientConstructors = map[catalog.Kind]clientConstructor{
	catalog.OpenAI:    openAICompatible(catalog.SubOpenAI),
	catalog.Anthropic: anthropicNative,
	catalog.Google:    openAICompatible(catalog.SubGoogle),
	catalog.Cerebras:  openAICompatible(catalog.SubCerebras),
	catalog.Groq:      openAICompatible(catalog.SubGroq),
}

func anthropicNative(p clientParams) api.Client {
	return anthropicclient.New(anthropicclient.Params{
		Model:         p.model,
		Config:        p.config,
		Logger:        p.logger,
		EnableCaching: p.caching,
		Cache:         p.cache,
	})
}

func openAICompatible(sub catalog.SubProvider) clientConstructor {
	return func(p clientParams) api.Client {
		return openaiclient.New(openaiclient.Params{
			Model:         p.model,
			Config:        p.config,
			BaseURL:       catalog.Endpoint(sub),
			Logger:        p.logger,
			EnableCaching: p.caching,
			Cache:         p.cache,
		})
	}
}

type handleConstructor func(model string, cfg api.ClientConfig) api.Model

// handleConstructors builds the vendor model handle behind a namespaced
// reference: one row per recognized sub-provider.
var handleConstructors = map[catalog.SubProvider]handleConstructor{
	catalog.SubOpenAI:     compatHandle(catalog.SubOpenAI),
	catalog.SubAnthropic:  anthropicclient.Model,
	catalog.SubGoogle:     compatHandle(catalog.SubGoogle),
	catalog.SubXAI:        compatHandle(catalog.SubXAI),
	catalog.SubGroq:       compatHandle(catalog.SubGroq),
	catalog.SubCerebras:   compatHandle(catalog.SubCerebras),
	catalog.SubTogetherAI: compatHandle(catalog.SubTogetherAI),
	catalog.SubMistral:    compatHandle(catalog.SubMistral),
	catalog.SubDeepSeek:   compatHandle(catalog.SubDeepSeek),
	catalog.SubPerplexity: compatHandle(catalog.SubPerplexity),
	catalog.SubOllama:     compatHandle(catalog.SubOllama),
}

func compatHandle(sub catalog.SubProvider) handleConstructor {
	return func(model string, cfg api.ClientConfig) api.Model {
		return openaiclient.CompatModel(catalog.Endpoint(sub), model, cfg)
	}
}
