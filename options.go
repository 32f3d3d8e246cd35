// FILE: lixenwraith/dotenv/options.go
package dotenv

import "github.com/rs/zerolog"

// DefaultTagName is the struct tag Scan reads field names from.
const DefaultTagName = "toml"

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger sets the logger used for load, merge, flush and export events.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// WithResolver replaces the resolver used by Load and LoadFile for string sources.
func WithResolver(resolver Resolver) Option {
	return func(r *Registry) {
		if resolver != nil {
			r.resolver = resolver
		}
	}
}

// WithListAppend makes Merge append incoming lists to existing lists instead
// of replacing them. Both sides must be lists of the same type.
// This mirrors the list union of older recursive-merge loaders and is off by default.
func WithListAppend() Option {
	return func(r *Registry) {
		r.appendLists = true
	}
}

// WithTagName sets the struct tag used by Scan. Empty values are ignored.
func WithTagName(tagName string) Option {
	return func(r *Registry) {
		if tagName != "" {
			r.tagName = tagName
		}
	}
}
