// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// KeySeparator joins the segments of a [KeyPath].
const KeySeparator = ":"

// KeyPath identifies one value in a [Tree]: the nested object keys leading to
// it, joined by ":" (e.g. "Logging:Level"). Segments match case-insensitively;
// the tree keeps the spelling of the first source that introduced a key.
type KeyPath string

// Key builds a KeyPath from its segments.
func Key(segments ...string) KeyPath {
	return KeyPath(strings.Join(segments, KeySeparator))
}

// Segments splits the key path into its object keys.
func (k KeyPath) Segments() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), KeySeparator)
}

// Child appends segments to k.
func (k KeyPath) Child(segments ...string) KeyPath {
	if k == "" {
		return Key(segments...)
	}
	return KeyPath(string(k) + KeySeparator + strings.Join(segments, KeySeparator))
}

func (k KeyPath) String() string {
	return string(k)
}

// Tree is a resolved configuration: nested JSON objects addressed by
// [KeyPath]. Leaf values are strings, json.Number, bools, nil or arrays, which
// are kept opaque.
//
// A Tree returned by [Load] or [Merge] must be treated as read-only; it is
// then safe for concurrent readers. [Tree.Set] is meant for fixtures and is
// not safe for concurrent use.
type Tree struct {
	root map[string]any
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{root: map[string]any{}}
}

// newTreeFromMap takes ownership of m.
func newTreeFromMap(m map[string]any) *Tree {
	if m == nil {
		m = map[string]any{}
	}
	return &Tree{root: m}
}

// Get returns the leaf value at key rendered as a string. The second result
// is false when there is no leaf at key; objects are not leaves.
func (t *Tree) Get(key KeyPath) (string, bool) {
	v, ok := t.lookup(key)
	if !ok {
		return "", false
	}
	if _, isObject := v.(map[string]any); isObject {
		return "", false
	}
	return leafString(v), true
}

// Value returns the leaf value at key or an empty string.
func (t *Tree) Value(key KeyPath) string {
	v, _ := t.Get(key)
	return v
}

// GetOr returns the leaf value at key or fallback when it is absent.
func (t *Tree) GetOr(key KeyPath, fallback string) string {
	if v, ok := t.Get(key); ok {
		return v
	}
	return fallback
}

// Has reports whether key addresses a leaf or an object.
func (t *Tree) Has(key KeyPath) bool {
	_, ok := t.lookup(key)
	return ok
}

// Section returns a copy of the object at key as its own tree. It returns an
// empty tree when key is absent or addresses a leaf.
func (t *Tree) Section(key KeyPath) *Tree {
	v, ok := t.lookup(key)
	if !ok {
		return NewTree()
	}
	obj, isObject := v.(map[string]any)
	if !isObject {
		return NewTree()
	}
	return newTreeFromMap(deepCopy(obj))
}

// Set stores value at key, creating intermediate objects and replacing any
// leaf that sits on the way.
func (t *Tree) Set(key KeyPath, value string) {
	segments := key.Segments()
	if len(segments) == 0 {
		return
	}

	node := t.root
	for _, segment := range segments[:len(segments)-1] {
		name := keyIn(node, segment)
		next, ok := node[name].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[name] = next
		}
		node = next
	}
	last := segments[len(segments)-1]
	node[keyIn(node, last)] = value
}

// Keys returns the key paths of every leaf, sorted.
func (t *Tree) Keys() []KeyPath {
	flat := t.Flatten()
	keys := make([]KeyPath, 0, len(flat))
	for k := range flat {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Flatten returns every leaf keyed by its full path.
func (t *Tree) Flatten() map[KeyPath]string {
	out := make(map[KeyPath]string)
	flatten("", t.root, out)
	return out
}

// Len returns the number of leaves.
func (t *Tree) Len() int {
	return len(t.Flatten())
}

// Map returns a deep copy of the nested representation, suitable for
// serialisation.
func (t *Tree) Map() map[string]any {
	return deepCopy(t.root)
}

// Overlay returns a new tree holding t with top merged over it. Neither input
// is modified.
func (t *Tree) Overlay(top *Tree) *Tree {
	out := deepCopy(t.root)
	mergeInto(out, deepCopy(top.root))
	return newTreeFromMap(out)
}

// Decode binds the tree into v, which must be a pointer to a struct or map,
// using the JSON field names of v.
func (t *Tree) Decode(v any) error {
	data, err := json.Marshal(t.root)
	if err != nil {
		return fmt.Errorf("error encoding config tree: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error decoding config tree: %w", err)
	}
	return nil
}

func (t *Tree) lookup(key KeyPath) (any, bool) {
	var node any = t.root
	for _, segment := range key.Segments() {
		obj, ok := node.(map[string]any)
		if !ok {
			return nil, false
		}
		node, ok = obj[keyIn(obj, segment)]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// keyIn returns the key of obj that matches segment. An exact match wins,
// then the first case-insensitive match in sorted order. When nothing
// matches, segment itself is returned.
func keyIn(obj map[string]any, segment string) string {
	if _, ok := obj[segment]; ok {
		return segment
	}
	found := ""
	for key := range obj {
		if strings.EqualFold(key, segment) && (found == "" || key < found) {
			found = key
		}
	}
	if found == "" {
		return segment
	}
	return found
}

// mergeInto folds src into dst. Keys are matched case-insensitively and keep
// the spelling already present in dst. Objects present on both sides merge
// recursively; anything else in src replaces what dst holds at that key.
func mergeInto(dst, src map[string]any) {
	keys := make([]string, 0, len(src))
	for key := range src {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		srcValue := src[key]
		name := keyIn(dst, key)
		srcObj, srcIsObject := srcValue.(map[string]any)
		dstObj, dstIsObject := dst[name].(map[string]any)
		if srcIsObject && dstIsObject {
			mergeInto(dstObj, srcObj)
			continue
		}
		if srcIsObject {
			// dst never aliases src
			dst[name] = deepCopy(srcObj)
			continue
		}
		dst[name] = srcValue
	}
}

func flatten(prefix KeyPath, node map[string]any, out map[KeyPath]string) {
	for key, value := range node {
		path := prefix.Child(key)
		if obj, ok := value.(map[string]any); ok {
			flatten(path, obj, out)
			continue
		}
		out[path] = leafString(value)
	}
}

func leafString(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case bool:
		if value {
			return "true"
		}
		return "false"
	default:
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprint(value)
		}
		return string(data)
	}
}

func deepCopy(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for key, value := range m {
		out[key] = deepCopyValue(value)
	}
	return out
}

func deepCopyValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return deepCopy(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = deepCopyValue(elem)
		}
		return out
	default:
		return v
	}
}
