// FILE: lixenwraith/dotenv/resolver.go
package dotenv

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Supported file formats.
const (
	FormatAuto = "auto"
	FormatTOML = "toml"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// DefaultMaxFileSize bounds how much of a source file FileResolver reads.
const DefaultMaxFileSize int64 = 10 * 1024 * 1024

// Resolver turns an external reference such as a file path into a tree.
type Resolver interface {
	Resolve(ref string) (Tree, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ref string) (Tree, error)

// Resolve calls f(ref).
func (f ResolverFunc) Resolve(ref string) (Tree, error) {
	return f(ref)
}

// FileResolver reads TOML, JSON or YAML files.
type FileResolver struct {
	// Format forces a format; empty or "auto" detects by extension, then content
	Format string

	// MaxFileSize in bytes, 0 uses DefaultMaxFileSize
	MaxFileSize int64
}

// Resolve reads and parses the file at path.
func (f *FileResolver) Resolve(path string) (Tree, error) {
	maxSize := f.MaxFileSize
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to stat config file '%s': %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path '%s' is a directory", path)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("config file '%s' exceeds maximum size %d bytes", path, maxSize)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file '%s': %w", path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	format := f.Format
	if format == "" || format == FormatAuto {
		format = detectFileFormat(path)
		if format == "" {
			format = detectFormatFromContent(data)
		}
	}

	return parseTree(format, data, path)
}

// parseTree decodes data in the given format into a normalized tree.
func parseTree(format string, data []byte, path string) (Tree, error) {
	tree := make(Tree)
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse TOML config file '%s': %w", path, err)
		}
	case FormatJSON:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&tree); err != nil {
			return nil, fmt.Errorf("failed to parse JSON config file '%s': %w", path, err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf("failed to parse YAML config file '%s': %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: unable to determine format of '%s'", ErrUnsupportedFormat, path)
	}

	return cloneTree(tree), nil
}

// detectFileFormat determines format from file extension
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return FormatTOML
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing
func detectFormatFromContent(data []byte) string {
	// JSON first, it is the strictest
	var jsonTest map[string]any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return FormatJSON
	}

	// TOML before YAML: plain "key = value" lines are valid YAML scalars
	var tomlTest map[string]any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return FormatTOML
	}

	var yamlTest map[string]any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return FormatYAML
	}

	return ""
}
