// FILE: lixenwraith/dotenv/decode.go
package dotenv

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the table at path into target, which must be a non-nil pointer.
// An empty path scans the whole tree. A missing or nil path decodes an empty table,
// so fields already set on target keep their values.
// Input is not weakly typed, so a string value does not decode into a numeric field.
func (r *Registry) Scan(path string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be non-nil pointer, got %T", target)
	}

	var section any = r.tree
	if path != "" {
		value, ok := lookupPath(r.tree, splitPath(path))
		if !ok || value == nil {
			value = Tree{}
		}
		section = value
	}

	table, ok := section.(map[string]any)
	if !ok {
		return fmt.Errorf("path %q refers to non-table value (type %T)", path, section)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: r.tagName,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(table); err != nil {
		return fmt.Errorf("decode failed for path %q: %w", path, err)
	}
	return nil
}
