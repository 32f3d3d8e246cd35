// FILE: lixenwraith/dotenv/registry.go
package dotenv

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/rs/zerolog"
)

// Registry holds one configuration tree and the keys it must provide.
// It is meant to be created once at the composition root and passed by pointer.
// A Registry is not safe for concurrent mutation; load it before sharing it.
type Registry struct {
	tree     Tree
	required []string
	loaded   bool

	envMap    map[string]any
	serverMap map[string]any

	resolver    Resolver
	logger      zerolog.Logger
	appendLists bool
	tagName     string
}

// New creates an empty, unloaded Registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		tree:      make(Tree),
		envMap:    make(map[string]any),
		serverMap: make(map[string]any),
		resolver:  &FileResolver{},
		logger:    zerolog.Nop(),
		tagName:   DefaultTagName,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load installs a new configuration tree, replacing any previous one.
// source is either a tree (any map with string keys) or a string reference
// handed to the registry's Resolver. Required keys are checked after install.
func (r *Registry) Load(source any) error {
	switch s := source.(type) {
	case string:
		return r.LoadFile(s)
	case map[string]any:
		return r.LoadTree(s)
	case map[any]any, map[string]string:
		return r.install(normalize(s).(Tree), "tree")
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedSource, source)
	}
}

// LoadTree installs a deep copy of tree as the current configuration.
func (r *Registry) LoadTree(tree Tree) error {
	return r.install(cloneTree(tree), "tree")
}

// LoadFile resolves ref through the Resolver and installs the result.
// On resolver failure the current state is left untouched.
func (r *Registry) LoadFile(ref string) error {
	tree, err := r.resolver.Resolve(ref)
	if err != nil {
		return fmt.Errorf("failed to resolve source '%s': %w", ref, err)
	}
	return r.install(cloneTree(tree), ref)
}

func (r *Registry) install(tree Tree, origin string) error {
	r.tree = tree
	r.loaded = true

	r.logger.Debug().
		Str("source", origin).
		Int("keys", len(tree)).
		Msg("configuration loaded")

	return r.checkRequired()
}

// Get returns the value at a dotted path, or the first def (nil if omitted)
// when any segment is missing, an intermediate is not a table, or the value is nil.
func (r *Registry) Get(path string, def ...any) any {
	var fallback any
	if len(def) > 0 {
		fallback = def[0]
	}

	value, ok := lookupPath(r.tree, splitPath(path))
	if !ok || value == nil {
		return fallback
	}
	return value
}

// Lookup returns the value at a dotted path and whether the path exists.
// An explicit nil value is reported as present.
func (r *Registry) Lookup(path string) (any, bool) {
	return lookupPath(r.tree, splitPath(path))
}

// Set assigns value at a dotted path, creating intermediate tables as needed.
// Whatever was stored at the final segment is overwritten.
func (r *Registry) Set(path string, value any) {
	setPath(r.tree, path, normalize(value))
}

// Merge deep-merges tree into the current configuration. Incoming keys win;
// two tables at the same key are merged recursively. On error the current
// configuration is left unchanged.
func (r *Registry) Merge(tree Tree) error {
	incoming := cloneTree(tree)
	merged := cloneTree(r.tree)

	opts := []func(*mergo.Config){mergo.WithOverride}
	if r.appendLists {
		opts = append(opts, mergo.WithAppendSlice)
	}

	if err := mergo.Merge(&merged, incoming, opts...); err != nil {
		return fmt.Errorf("failed to merge configuration: %w", err)
	}
	r.tree = merged

	r.logger.Debug().Int("keys", len(incoming)).Msg("configuration merged")
	return nil
}

// SetRequired replaces the required key set. When the registry is loaded the
// keys are checked immediately.
func (r *Registry) SetRequired(keys ...string) error {
	r.required = append([]string(nil), keys...)

	if r.loaded {
		return r.checkRequired()
	}
	return nil
}

// Required returns a copy of the required key set.
func (r *Registry) Required() []string {
	return append([]string(nil), r.required...)
}

// Flush empties the tree and marks the registry unloaded.
// The required key set is kept.
func (r *Registry) Flush() {
	r.tree = make(Tree)
	r.loaded = false
	r.logger.Debug().Msg("configuration flushed")
}

// IsLoaded reports whether a tree has been installed since the last Flush.
func (r *Registry) IsLoaded() bool {
	return r.loaded
}

// All returns the live configuration tree. Callers must not modify it;
// use Snapshot for a copy that is safe to change.
func (r *Registry) All() Tree {
	return r.tree
}

// Snapshot returns a deep copy of the configuration tree.
func (r *Registry) Snapshot() Tree {
	return cloneTree(r.tree)
}

// Flatten returns the current tree flattened to dotted keys.
func (r *Registry) Flatten() map[string]any {
	return Flatten(r.tree, "")
}

// checkRequired fails on the first required key with no value.
func (r *Registry) checkRequired() error {
	for _, key := range r.required {
		if r.Get(key) == nil {
			r.logger.Warn().Str("key", key).Msg("required variable is missing")
			return &MissingVariableError{Key: key}
		}
	}
	return nil
}
