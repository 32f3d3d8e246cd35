// FILE: lixenwraith/dotenv/builder.go
package dotenv

import (
	"errors"
	"fmt"
)

// ValidatorFunc validates a loaded Registry. It runs after the required keys
// have been checked and should return an error if validation fails.
type ValidatorFunc func(r *Registry) error

// Builder provides a fluent interface for building a Registry
type Builder struct {
	opts       []Option
	tree       Tree
	hasTree    bool
	file       string
	required   []string
	validators []ValidatorFunc
	err        error
}

// NewBuilder creates a new registry builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithOptions adds registry options
func (b *Builder) WithOptions(opts ...Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// WithTree sets an in-memory tree as the source. It takes precedence over a file.
func (b *Builder) WithTree(tree Tree) *Builder {
	b.tree = tree
	b.hasTree = true
	return b
}

// WithFile sets the source file path
func (b *Builder) WithFile(path string) *Builder {
	b.file = path
	return b
}

// WithFileDiscovery searches for a source file; a path set by WithFile wins.
// Finding nothing is not an error, the registry is then built unloaded.
func (b *Builder) WithFileDiscovery(opts FileDiscoveryOptions) *Builder {
	if b.file != "" {
		return b
	}
	if path, ok := DiscoverFile(opts); ok {
		b.file = path
	}
	return b
}

// WithRequired adds keys that must be present once loaded
func (b *Builder) WithRequired(keys ...string) *Builder {
	b.required = append(b.required, keys...)
	return b
}

// WithValidator adds a validation function that runs at the end of Build.
// Validators run in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn == nil {
		b.err = errors.Join(b.err, errors.New("nil validator"))
		return b
	}
	b.validators = append(b.validators, fn)
	return b
}

// Build creates the Registry, loads the source and runs validators
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, fmt.Errorf("invalid builder configuration: %w", b.err)
	}

	r := New(b.opts...)
	if err := r.SetRequired(b.required...); err != nil {
		return nil, err
	}

	switch {
	case b.hasTree:
		if err := r.LoadTree(b.tree); err != nil {
			return nil, err
		}
	case b.file != "":
		if err := r.LoadFile(b.file); err != nil {
			return nil, err
		}
	}

	for _, validator := range b.validators {
		if err := validator(r); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return r, nil
}

// MustBuild is like Build but panics on error
func (b *Builder) MustBuild() *Registry {
	r, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("dotenv build failed: %v", err))
	}
	return r
}
