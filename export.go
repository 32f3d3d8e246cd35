// FILE: lixenwraith/dotenv/export.go
package dotenv

import (
	"encoding"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// DefaultEnvPrefix is prepended to variable names by CopyVarsToProcessEnv
// when no prefix is given.
const DefaultEnvPrefix = "APP_"

// CopyVarsToProcessEnv writes every flattened key to the process environment
// as {prefix}{dotted.key}. Non-scalar values are encoded as JSON.
// The first prefix argument overrides DefaultEnvPrefix (an empty string is allowed).
func (r *Registry) CopyVarsToProcessEnv(prefix ...string) error {
	p := DefaultEnvPrefix
	if len(prefix) > 0 {
		p = prefix[0]
	}

	flat := r.Flatten()
	for _, key := range FlattenKeys(flat) {
		value, err := FormatValue(flat[key])
		if err != nil {
			return fmt.Errorf("failed to encode variable '%s': %w", key, err)
		}
		if err := os.Setenv(p+key, value); err != nil {
			return fmt.Errorf("failed to set environment variable '%s%s': %w", p, key, err)
		}
	}

	r.logger.Debug().
		Str("target", "process").
		Str("prefix", p).
		Int("count", len(flat)).
		Msg("variables exported")
	return nil
}

// CopyVarsToEnvMap copies every flattened key into the registry's env map.
func (r *Registry) CopyVarsToEnvMap() {
	r.copyVars(r.envMap, "env")
}

// CopyVarsToServerMap copies every flattened key into the registry's server map.
func (r *Registry) CopyVarsToServerMap() {
	r.copyVars(r.serverMap, "server")
}

// CopyVarsTo copies every flattened key into dst, overwriting existing entries.
// Values are stored as-is; other entries in dst are left alone.
func (r *Registry) CopyVarsTo(dst map[string]any) {
	r.copyVars(dst, "map")
}

// EnvMap returns the map populated by CopyVarsToEnvMap.
func (r *Registry) EnvMap() map[string]any {
	return r.envMap
}

// ServerMap returns the map populated by CopyVarsToServerMap.
func (r *Registry) ServerMap() map[string]any {
	return r.serverMap
}

func (r *Registry) copyVars(dst map[string]any, target string) {
	flat := r.Flatten()
	for _, key := range FlattenKeys(flat) {
		dst[key] = flat[key]
	}

	r.logger.Debug().
		Str("target", target).
		Int("count", len(flat)).
		Msg("variables exported")
}

// FormatValue renders a leaf value as text. Scalars use their plain form,
// nil is empty, and structured values are encoded as JSON.
func FormatValue(value any) (string, error) {
	switch v := value.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	}

	if isScalar(value) {
		return fmt.Sprint(value), nil
	}

	// Dates and similar types keep their canonical text form.
	if tm, ok := value.(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		if err != nil {
			return "", err
		}
		return string(text), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
