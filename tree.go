// FILE: lixenwraith/dotenv/tree.go
package dotenv

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Tree is a nested configuration table. Values are leaves (scalars or any
// other Go value), lists ([]any, addressed by decimal index) or nested Trees.
type Tree = map[string]any

// splitPath breaks a dotted path into its segments.
func splitPath(path string) []string {
	return strings.Split(path, ".")
}

// listIndex parses segment as a canonical decimal index into a list of
// length n. Signs and leading zeros are rejected.
func listIndex(segment string, n int) (int, bool) {
	if segment == "" || (len(segment) > 1 && segment[0] == '0') {
		return 0, false
	}
	idx, err := strconv.ParseUint(segment, 10, 0)
	if err != nil || idx >= uint64(n) {
		return 0, false
	}
	return int(idx), true
}

// lookupPath walks the tree along segments. Lists are indexed by decimal
// segments. It reports false when a segment is missing or out of range, or
// an intermediate value is neither a Tree nor a list.
func lookupPath(tree Tree, segments []string) (any, bool) {
	var current any = tree
	for _, segment := range segments {
		switch node := current.(type) {
		case map[string]any:
			value, exists := node[segment]
			if !exists {
				return nil, false
			}
			current = value
		case []any:
			idx, ok := listIndex(segment, len(node))
			if !ok {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}

// settable reports whether node can hold a child at segment without
// being replaced.
func settable(node any, segment string) bool {
	switch n := node.(type) {
	case map[string]any:
		return true
	case []any:
		_, ok := listIndex(segment, len(n))
		return ok
	default:
		return false
	}
}

// child and putChild assume settable(node, segment).
func child(node any, segment string) any {
	if list, ok := node.([]any); ok {
		idx, _ := listIndex(segment, len(list))
		return list[idx]
	}
	return node.(map[string]any)[segment]
}

func putChild(node any, segment string, value any) {
	if list, ok := node.([]any); ok {
		idx, _ := listIndex(segment, len(list))
		list[idx] = value
		return
	}
	node.(map[string]any)[segment] = value
}

// setPath sets a value in a nested tree using a dotted path.
// Missing intermediate tables are created. An existing list element is
// replaced in place; any other intermediate that cannot hold the next
// segment is replaced by a new table.
func setPath(tree Tree, path string, value any) {
	segments := splitPath(path)
	var current any = tree

	for i, segment := range segments[:len(segments)-1] {
		next := child(current, segment)
		if !settable(next, segments[i+1]) {
			next = make(Tree)
			putChild(current, segment, next)
		}
		current = next
	}

	putChild(current, segments[len(segments)-1], value)
}

// Flatten converts a nested tree into a single-level map keyed by dotted
// paths to every leaf. List elements are keyed by their index, so
// {"hosts": ["a", "b"]} yields "hosts.0" and "hosts.1".
// Empty sub-tables and empty lists produce no entries.
func Flatten(tree Tree, prefix string) map[string]any {
	flat := make(map[string]any)
	flattenInto(flat, tree, prefix)
	return flat
}

func flattenInto(flat map[string]any, node any, path string) {
	switch n := node.(type) {
	case map[string]any:
		for key, value := range n {
			flattenInto(flat, value, joinPath(path, key))
		}
	case []any:
		for i, value := range n {
			flattenInto(flat, value, joinPath(path, strconv.Itoa(i)))
		}
	default:
		flat[path] = node
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// FlattenKeys returns the keys of a flattened map in lexical order.
// Exports iterate in this order so their output is stable.
func FlattenKeys(flat map[string]any) []string {
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Unflatten rebuilds a nested tree from dotted keys. Keys are applied in
// lexical order; when one key is a prefix of another the deeper one wins.
func Unflatten(flat map[string]any) Tree {
	tree := make(Tree)
	for _, key := range FlattenKeys(flat) {
		setPath(tree, key, normalize(flat[key]))
	}
	return tree
}

// normalize deep-copies maps and lists into the shapes the registry walks.
// Every map becomes a Tree, and []any and []map[string]any become []any
// copied element by element.
func normalize(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return cloneTree(v)
	case map[any]any:
		out := make(Tree, len(v))
		for key, item := range v {
			out[fmt.Sprint(key)] = normalize(item)
		}
		return out
	case map[string]string:
		out := make(Tree, len(v))
		for key, item := range v {
			out[key] = item
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case []map[string]any:
		// TOML arrays of tables decode to this shape
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = cloneTree(item)
		}
		return out
	default:
		return value
	}
}

// cloneTree returns a deep copy of tree. A nil tree yields an empty one.
func cloneTree(tree Tree) Tree {
	out := make(Tree, len(tree))
	for key, value := range tree {
		out[key] = normalize(value)
	}
	return out
}

// isScalar reports whether value has a plain textual form.
func isScalar(value any) bool {
	switch value.(type) {
	case nil, string, bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	default:
		return false
	}
}
