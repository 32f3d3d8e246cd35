// FILE: lixenwraith/dotenv/resolver_test.go
package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestFileResolver tests parsing of each supported format
func TestFileResolver(t *testing.T) {
	tmpDir := t.TempDir()
	resolver := &FileResolver{}

	t.Run("TOML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "valid.toml", `
# Server configuration
[server]
host = "example.com"
port = 9000
enabled = true

[server.tls]
cert = "/path/to/cert.pem"

[database]
connections = [1, 2, 3]
`)
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)

		reg := New()
		require.NoError(t, reg.LoadTree(tree))
		assert.Equal(t, "example.com", reg.Get("server.host"))
		assert.Equal(t, int64(9000), reg.Get("server.port"))
		assert.Equal(t, true, reg.Get("server.enabled"))
		assert.Equal(t, "/path/to/cert.pem", reg.Get("server.tls.cert"))
		assert.Equal(t, []any{int64(1), int64(2), int64(3)}, reg.Get("database.connections"))
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeFile(t, tmpDir, "valid.json", `{"a": {"b": 1, "c": "x"}}`)
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"a": Tree{"b": float64(1), "c": "x"}}, tree)
	})

	t.Run("YAML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "valid.yml", "a:\n  b: 1\n  c: [x, y]\n")
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"a": Tree{"b": 1, "c": []any{"x", "y"}}}, tree)
	})

	t.Run("EmptyYAML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "empty.yaml", "")
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Empty(t, tree)
	})

	t.Run("InvalidTOML", func(t *testing.T) {
		path := writeFile(t, tmpDir, "invalid.toml", `invalid = toml content`)
		_, err := resolver.Resolve(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse TOML")
	})

	t.Run("NonExistentFile", func(t *testing.T) {
		_, err := resolver.Resolve(filepath.Join(tmpDir, "nope.toml"))
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := resolver.Resolve(tmpDir)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "is a directory")
	})

	t.Run("SizeLimit", func(t *testing.T) {
		path := writeFile(t, tmpDir, "big.toml", `key = "a long enough value"`)
		_, err := (&FileResolver{MaxFileSize: 4}).Resolve(path)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum size")
	})

	t.Run("ForcedFormat", func(t *testing.T) {
		path := writeFile(t, tmpDir, "settings.txt", `{"k": "v"}`)
		tree, err := (&FileResolver{Format: FormatJSON}).Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"k": "v"}, tree)
	})
}

// TestFormatDetection tests content sniffing for files without a known extension
func TestFormatDetection(t *testing.T) {
	tmpDir := t.TempDir()
	resolver := &FileResolver{}

	t.Run("TOMLContent", func(t *testing.T) {
		path := writeFile(t, tmpDir, "a.conf", `key = "value"`)
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"key": "value"}, tree)
	})

	t.Run("YAMLContent", func(t *testing.T) {
		path := writeFile(t, tmpDir, "b.conf", "key: value\n")
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"key": "value"}, tree)
	})

	t.Run("JSONContent", func(t *testing.T) {
		path := writeFile(t, tmpDir, "c.conf", `{"key": true}`)
		tree, err := resolver.Resolve(path)
		require.NoError(t, err)
		assert.Equal(t, Tree{"key": true}, tree)
	})

	t.Run("Unknown", func(t *testing.T) {
		path := writeFile(t, tmpDir, "d.conf", "[[[")
		_, err := resolver.Resolve(path)
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})

	t.Run("Extensions", func(t *testing.T) {
		assert.Equal(t, FormatTOML, detectFileFormat("x.TOML"))
		assert.Equal(t, FormatTOML, detectFileFormat("x.tml"))
		assert.Equal(t, FormatJSON, detectFileFormat("x.json"))
		assert.Equal(t, FormatYAML, detectFileFormat("x.yaml"))
		assert.Equal(t, FormatYAML, detectFileFormat("x.yml"))
		assert.Equal(t, "", detectFileFormat("x.conf"))
	})
}
