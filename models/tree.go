// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"sort"
	"strconv"
)

// Tree is a nested configuration object. Keys are unique at every level and
// values are one of:
//   - a scalar: string, bool, int64, float64, nil or a [Configurable];
//   - an ordered sequence ([]any);
//   - a nested Tree.
//
// Trees produced by loaders are always passed through [Normalize], so code
// walking a Tree may rely on nested objects being Tree and integers int64.
type Tree map[string]any

// Configurable is the optional capability of a configuration section. When a
// top-level section holds a "configure" entry implementing Configurable, the
// entry is invoked once after the whole tree is merged, receiving the
// section it belongs to.
type Configurable interface {
	Configure(section Tree) error
}

// ConfigureFunc adapts a plain function to [Configurable].
type ConfigureFunc func(section Tree) error

// Configure implements [Configurable].
func (f ConfigureFunc) Configure(section Tree) error {
	return f(section)
}

// ConfigureKey is the section entry inspected by the post-load configurator.
const ConfigureKey = "configure"

// Get returns the value stored at path. The second result reports whether
// every segment of the path was present.
func (t Tree) Get(path Path) (any, bool) {
	var current any = t
	for _, segment := range path {
		switch node := current.(type) {
		case Tree:
			v, ok := node[segment]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, err := strconv.Atoi(segment)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			current = node[i]
		default:
			return nil, false
		}
	}

	return current, true
}

// Section returns the nested Tree stored under key, or nil when the key is
// missing or holds something other than a Tree.
func (t Tree) Section(key string) Tree {
	sub, _ := t[key].(Tree)
	return sub
}

// Keys returns the keys of t in lexical order.
func (t Tree) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of t. Sequences and nested trees are copied,
// scalars (including Configurable values) are shared.
func (t Tree) Clone() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for k, v := range t {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep-copies sequences and trees and returns scalars unchanged.
func CloneValue(v any) any {
	switch value := v.(type) {
	case Tree:
		return value.Clone()
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// IsFalsy reports whether v counts as "not set" for merging purposes:
// nil, false, numeric zero, NaN and the empty string. Empty sequences and
// empty trees are not falsy.
func IsFalsy(v any) bool {
	switch value := v.(type) {
	case nil:
		return true
	case bool:
		return !value
	case int64:
		return value == 0
	case int:
		return value == 0
	case float64:
		return value == 0 || math.IsNaN(value)
	case string:
		return value == ""
	case Tree:
		return value == nil
	default:
		return false
	}
}
