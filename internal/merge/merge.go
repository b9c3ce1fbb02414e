// Package merge implements the layered merge policy applied between
// configuration sources.
//
// Rules, for every key of the source tree:
//  1. both values are trees: merge recursively;
//  2. both values are sequences: concatenate, then drop value-equal
//     duplicates keeping the first occurrence;
//  3. the target value is missing or falsy: the source value wins;
//  4. the source value is falsy: the target value is kept;
//  5. otherwise the source value overwrites the target value.
//
// Rule 4 means a later, more generic file can never blank out a value set
// by an earlier file.
package merge

import (
	"reflect"

	"github.com/google/go-cmp/cmp"

	"github.com/MKhiriev/go-config-resolver/models"
)

// equalOpts lets cmp descend into unexported fields of hook values stored in
// sequences instead of panicking.
var equalOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Merge merges source into target and returns target. A nil target is
// replaced by a fresh tree. Sequences and trees taken from source are
// copied, so later merges into the result never alias source.
func Merge(target, source models.Tree) models.Tree {
	if target == nil {
		target = make(models.Tree, len(source))
	}

	for key, srcValue := range source {
		dstValue, exists := target[key]
		target[key] = mergeValue(dstValue, srcValue, exists)
	}

	return target
}

// All folds trees into a new tree from left to right.
func All(trees ...models.Tree) models.Tree {
	out := make(models.Tree)
	for _, t := range trees {
		Merge(out, t)
	}
	return out
}

func mergeValue(dst, src any, exists bool) any {
	dstTree, dstIsTree := dst.(models.Tree)
	srcTree, srcIsTree := src.(models.Tree)
	if dstIsTree && srcIsTree && dstTree != nil {
		return Merge(dstTree, srcTree)
	}

	dstSeq, dstIsSeq := dst.([]any)
	srcSeq, srcIsSeq := src.([]any)
	if dstIsSeq && srcIsSeq {
		joined := make([]any, 0, len(dstSeq)+len(srcSeq))
		joined = append(joined, dstSeq...)
		joined = append(joined, models.CloneValue(srcSeq).([]any)...)
		return Unique(joined)
	}

	if !exists || models.IsFalsy(dst) {
		return models.CloneValue(src)
	}

	if models.IsFalsy(src) {
		return dst
	}

	return models.CloneValue(src)
}

// Unique removes value-equal duplicates from items, keeping the first
// occurrence of each value. The returned slice reuses the backing array.
func Unique(items []any) []any {
	out := items[:0]
	for _, item := range items {
		if !containsEqual(out, item) {
			out = append(out, item)
		}
	}
	return out
}

func containsEqual(items []any, v any) bool {
	for _, item := range items {
		if cmp.Equal(item, v, equalOpts...) {
			return true
		}
	}
	return false
}
