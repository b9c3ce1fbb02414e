package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ParsePath ─────────────────────────────────────────────────────────────────

func TestParsePath_DotAndSliceAreEquivalent(t *testing.T) {
	fromDots, err := ParsePath("test.value")
	require.NoError(t, err)
	fromSlice, err := ParsePath([]string{"test", "value"})
	require.NoError(t, err)

	assert.Equal(t, fromDots, fromSlice)
}

func TestParsePath_DropsEmptySegments(t *testing.T) {
	p, err := ParsePath(".system..dirs.")
	require.NoError(t, err)
	assert.Equal(t, Path{"system", "dirs"}, p)
}

func TestParsePath_UnsupportedType(t *testing.T) {
	_, err := ParsePath(42)
	assert.ErrorIs(t, err, ErrInvalidPath)
}

// ── Tree.Get ──────────────────────────────────────────────────────────────────

func TestTreeGet(t *testing.T) {
	tree := Tree{
		"test": Tree{
			"value":  int64(1),
			"array":  []any{int64(1), "two"},
			"nested": Tree{"flag": false},
		},
	}

	tests := []struct {
		name   string
		path   Path
		want   any
		wantOK bool
	}{
		{"scalar", Path{"test", "value"}, int64(1), true},
		{"nested false value is present", Path{"test", "nested", "flag"}, false, true},
		{"array index", Path{"test", "array", "1"}, "two", true},
		{"array index out of range", Path{"test", "array", "5"}, nil, false},
		{"array non numeric index", Path{"test", "array", "x"}, nil, false},
		{"missing key", Path{"test", "value3"}, nil, false},
		{"through scalar", Path{"test", "value", "deeper"}, nil, false},
		{"empty path returns root", Path{}, tree, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tree.Get(tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTreeSection(t *testing.T) {
	tree := Tree{"a": Tree{"b": int64(1)}, "s": "str"}
	assert.Equal(t, Tree{"b": int64(1)}, tree.Section("a"))
	assert.Nil(t, tree.Section("s"))
	assert.Nil(t, tree.Section("missing"))
}

func TestTreeKeys_Sorted(t *testing.T) {
	tree := Tree{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, tree.Keys())
}

func TestTreeClone_IsDeep(t *testing.T) {
	orig := Tree{"a": Tree{"list": []any{int64(1)}}}
	cp := orig.Clone()

	cp.Section("a")["list"] = append(cp.Section("a")["list"].([]any), int64(2))
	cp.Section("a")["new"] = true

	assert.Equal(t, Tree{"a": Tree{"list": []any{int64(1)}}}, orig)
}

// ── IsFalsy ───────────────────────────────────────────────────────────────────

func TestIsFalsy(t *testing.T) {
	falsy := []any{nil, false, int64(0), 0, 0.0, math.NaN(), ""}
	for _, v := range falsy {
		assert.True(t, IsFalsy(v), "expected %#v to be falsy", v)
	}

	truthy := []any{true, int64(1), -1.5, "x", []any{}, Tree{}, ConfigureFunc(func(Tree) error { return nil })}
	for _, v := range truthy {
		assert.False(t, IsFalsy(v), "expected %#v to be truthy", v)
	}
}

// ── Normalize ─────────────────────────────────────────────────────────────────

func TestNormalize_ConvertsNestedValues(t *testing.T) {
	in := map[string]any{
		"int":   7,
		"float": 7.0,
		"frac":  1.5,
		"list":  []any{1, map[any]any{"k": uint8(2)}},
		"strs":  []string{"a"},
		"obj":   map[string]any{"nested": int32(3)},
	}

	got, err := NormalizeTree(in)
	require.NoError(t, err)

	assert.Equal(t, Tree{
		"int":   int64(7),
		"float": int64(7),
		"frac":  1.5,
		"list":  []any{int64(1), Tree{"k": int64(2)}},
		"strs":  []any{"a"},
		"obj":   Tree{"nested": int64(3)},
	}, got)
}

func TestNormalizeTree_RootMustBeObject(t *testing.T) {
	_, err := NormalizeTree([]any{1})
	assert.ErrorIs(t, err, ErrNotAnObject)
}

func TestNormalizeTree_NilIsNil(t *testing.T) {
	tree, err := NormalizeTree(nil)
	require.NoError(t, err)
	assert.Nil(t, tree)
}

func TestNormalize_Unsupported(t *testing.T) {
	_, err := Normalize(struct{}{})
	assert.ErrorIs(t, err, ErrUnsupportedValue)
}

// ── errors ────────────────────────────────────────────────────────────────────

func TestTypedErrors_Unwrap(t *testing.T) {
	cause := errors.New("boom")

	var parseErr *FileParseError
	err := error(&FileParseError{File: "/a.json", Err: cause})
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/a.json")

	err = &ModuleEvaluationError{File: "/b.hcl", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "/b.hcl")

	err = &ConfigureHookError{Section: "log", Err: cause}
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"log"`)
}

// ── AppVersion ────────────────────────────────────────────────────────────────

func TestAppVersionFrom(t *testing.T) {
	v, ok := AppVersionFrom(Tree{"system": Tree{"version": Tree{"major": int64(1), "minor": int64(4)}}})
	require.True(t, ok)
	assert.Equal(t, "1.4", v.String())

	_, ok = AppVersionFrom(Tree{"system": Tree{}})
	assert.False(t, ok)
}

func TestNewAppBuildInfo_FillsNA(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")
	assert.Contains(t, info.String(), "Build version: 1.0.0")
	assert.Contains(t, info.String(), "Build date: N/A")
	assert.Contains(t, info.String(), "Build commit: N/A")
}
