// Package catalog is the single source of truth for model identifier
// resolution: which flat model names are supported, which provider kind each
// one belongs to, and which namespaced "subProvider/subModel" references are
// accepted.
//
// Everything here is static data and pure functions over it. The tables are
// populated once at process start and never mutated, so lookups are safe from
// any goroutine without locking.
package catalog
