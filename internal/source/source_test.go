package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-config-resolver/internal/logger"
	"github.com/MKhiriev/go-config-resolver/models"
)

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// ── Pattern ──────────────────────────────────────────────────────────────────

func TestKindPatterns(t *testing.T) {
	kind := YAMLKind(NewOSFileSystem())

	base := kind.BasePattern()
	assert.True(t, base.Match("app.yaml"))
	assert.True(t, base.Match("app.yml"))
	assert.False(t, base.Match("app.dev.yaml"))
	assert.False(t, base.Match("app.prod.yml"))
	assert.False(t, base.Match("app.json"))

	dev := kind.OverlayPattern("dev")
	assert.True(t, dev.Match("app.dev.yaml"))
	assert.True(t, dev.Match("app.dev.yml"))
	assert.False(t, dev.Match("app.yaml"))
	assert.False(t, dev.Match("app.prod.yaml"))
}

func TestPatternString(t *testing.T) {
	p := JSONKind(NewOSFileSystem()).BasePattern()
	assert.Equal(t, "*.json !(*.dev.json|*.prod.json)", p.String())
}

// ── Decoders ─────────────────────────────────────────────────────────────────

func TestDecodeJSON(t *testing.T) {
	doc, err := decodeJSON([]byte(`{"a":1,"b":1.5,"c":[true,null,"x"],"d":{"e":-7}}`))
	require.NoError(t, err)

	assert.Equal(t, models.Tree{
		"a": int64(1),
		"b": 1.5,
		"c": []any{true, nil, "x"},
		"d": models.Tree{"e": int64(-7)},
	}, doc)
}

func TestDecodeJSON_Invalid(t *testing.T) {
	for _, input := range []string{`{"a":`, `{"a":1}}`, ``, `{a:1}`} {
		_, err := decodeJSON([]byte(input))
		assert.ErrorIs(t, err, ErrInvalidJSON, "input %q", input)
	}
}

func TestDecodeYAML(t *testing.T) {
	doc, err := decodeYAML([]byte("a: 1\nb:\n  - x\n  - y\nc:\n  d: true\n"))
	require.NoError(t, err)

	tree, err := models.NormalizeTree(doc)
	require.NoError(t, err)
	assert.Equal(t, models.Tree{
		"a": int64(1),
		"b": []any{"x", "y"},
		"c": models.Tree{"d": true},
	}, tree)
}

func TestDecodeYAML_Empty(t *testing.T) {
	doc, err := decodeYAML(nil)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestDataLoader_RootMustBeObject(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "list.json"), `[1,2]`)

	_, err := JSONKind(NewOSFileSystem()).Load(path)

	var parseErr *models.FileParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, path, parseErr.File)
	assert.ErrorIs(t, err, models.ErrNotAnObject)
}

// ── OSFileSystem ─────────────────────────────────────────────────────────────

func TestOSFileSystem_GlobIsRecursiveAndOrdered(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.json"), `{}`)
	writeFile(t, filepath.Join(dir, "a.json"), `{}`)
	writeFile(t, filepath.Join(dir, "nested", "c.json"), `{}`)
	writeFile(t, filepath.Join(dir, "notes.txt"), `x`)

	fsys := NewOSFileSystem()
	files, err := fsys.Glob(dir, Pattern{Include: []string{"*.json"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "nested", "c.json"),
	}, files)
	assert.True(t, fsys.Exists(dir))
	assert.False(t, fsys.Exists(filepath.Join(dir, "missing")))
}

func TestOSFileSystem_GlobSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{}`)
	writeFile(t, filepath.Join(dir, ".hidden.json"), `{}`)
	writeFile(t, filepath.Join(dir, ".git", "config.json"), `{}`)
	writeFile(t, filepath.Join(dir, "sub", ".local.json"), `{}`)
	writeFile(t, filepath.Join(dir, "sub", "b.json"), `{}`)

	files, err := NewOSFileSystem().Glob(dir, Pattern{Include: []string{"*.json"}})
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "sub", "b.json"),
	}, files)
}

func TestOSFileSystem_GlobSkipsUnreadableDirs(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permissions are not enforced for root")
	}

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), `{"a":1}`)
	locked := filepath.Join(dir, "locked")
	writeFile(t, filepath.Join(locked, "b.json"), `{"b":2}`)
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	files, err := NewOSFileSystem().Glob(dir, Pattern{Include: []string{"*.json"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.json")}, files)

	kind := JSONKind(NewOSFileSystem())
	tree, err := Load(NewOSFileSystem(), []string{dir}, kind.BasePattern(), kind.Load, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, models.Tree{"a": int64(1)}, tree)
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestLoad_LaterDirectoriesWin(t *testing.T) {
	low, high := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(low, "app.json"), `{"test":{"value":"low","list":[1,2,3],"onlyLow":true}}`)
	writeFile(t, filepath.Join(high, "app.json"), `{"test":{"value":"high","list":[3,4]}}`)

	kind := JSONKind(NewOSFileSystem())
	tree, err := Load(NewOSFileSystem(), []string{low, filepath.Join(low, "missing"), high}, kind.BasePattern(), kind.Load, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Tree{"test": models.Tree{
		"value":   "high",
		"list":    []any{int64(1), int64(2), int64(3), int64(4)},
		"onlyLow": true,
	}}, tree)
}

func TestLoad_MalformedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.json"), `{"test": `)
	writeFile(t, filepath.Join(dir, "good.json"), `{"test":{"value2":666}}`)

	kind := JSONKind(NewOSFileSystem())
	tree, err := Load(NewOSFileSystem(), []string{dir}, kind.BasePattern(), kind.Load, logger.Nop())
	require.NoError(t, err)

	v, ok := tree.Get(models.Path{"test", "value2"})
	require.True(t, ok)
	assert.Equal(t, int64(666), v)
}

func TestLoad_NoDirectories(t *testing.T) {
	kind := JSONKind(NewOSFileSystem())
	tree, err := Load(NewOSFileSystem(), nil, kind.BasePattern(), kind.Load, logger.Nop())
	require.NoError(t, err)
	assert.Empty(t, tree)
}

func TestDiscover_ReturnsAbsolutePaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "app.json"), `{}`)
	chdir(t, dir)

	files, err := Discover(NewOSFileSystem(), []string{"."}, Pattern{Include: []string{"*.json"}}, logger.Nop())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.True(t, filepath.IsAbs(files[0]))
	assert.Equal(t, "app.json", filepath.Base(files[0]))
}

// ── ResolveKind ──────────────────────────────────────────────────────────────

func overlayFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "test.json"), `{"test":{"value":1,"list":["base"]}}`)
	writeFile(t, filepath.Join(dir, "test.dev.json"), `{"test":{"development":true,"value":2,"list":["dev"]}}`)
	writeFile(t, filepath.Join(dir, "test.prod.json"), `{"test":{"production":true,"value":3}}`)
	return dir
}

func TestResolveKind_Production(t *testing.T) {
	dir := overlayFixture(t)
	fsys := NewOSFileSystem()

	tree, err := ResolveKind(fsys, JSONKind(fsys), []string{dir}, EnvProduction, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Tree{"test": models.Tree{
		"value":      int64(3),
		"list":       []any{"base"},
		"production": true,
	}}, tree)
}

func TestResolveKind_Development(t *testing.T) {
	dir := overlayFixture(t)
	fsys := NewOSFileSystem()

	tree, err := ResolveKind(fsys, JSONKind(fsys), []string{dir}, EnvDevelopment, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.Tree{"test": models.Tree{
		"value":       int64(2),
		"list":        []any{"base", "dev"},
		"development": true,
	}}, tree)
}

func TestResolveKind_UnknownEnvironmentUsesBaseOnly(t *testing.T) {
	dir := overlayFixture(t)
	fsys := NewOSFileSystem()

	for _, env := range []string{"", "staging"} {
		tree, err := ResolveKind(fsys, JSONKind(fsys), []string{dir}, env, logger.Nop())
		require.NoError(t, err)
		assert.Equal(t, models.Tree{"test": models.Tree{
			"value": int64(1),
			"list":  []any{"base"},
		}}, tree, "environment %q", env)
	}
}

// ── SearchDirs ───────────────────────────────────────────────────────────────

func TestSearchDirs_ListOrder(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkgs", "one", "config"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "pkgs", "two", "config"), 0o755))

	dirs, err := SearchDirs{
		Root:      root,
		Defaults:  DefaultDirs,
		Packages:  []string{"pkgs/*/config"},
		AppConfig: "/apps/testapp/config",
		Custom:    []string{"extra", ""},
	}.List()
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "build", "config"),
		filepath.Join(root, "dist", "config"),
		filepath.Join(root, "config"),
		filepath.Join(root, "pkgs", "one", "config"),
		filepath.Join(root, "pkgs", "two", "config"),
		"/apps/testapp/config",
		filepath.Join(root, "extra"),
	}, dirs)
}

func TestSearchDirs_BadPackagePattern(t *testing.T) {
	_, err := SearchDirs{Root: "/", Packages: []string{"["}}.List()
	assert.Error(t, err)
}

func TestFindRoot(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, RootMarker), "module x\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.Equal(t, root, FindRoot(NewOSFileSystem(), nested))
}

func TestFindRoot_NoMarkerFallsBackToStart(t *testing.T) {
	start := t.TempDir()
	fsys := mapFS{}

	assert.Equal(t, start, FindRoot(fsys, start))
}

// mapFS is a FileSystem where nothing exists.
type mapFS map[string][]byte

func (m mapFS) Exists(path string) bool {
	_, ok := m[path]
	return ok
}

func (m mapFS) ReadFile(path string) ([]byte, error) {
	data, ok := m[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func (m mapFS) Glob(string, Pattern) ([]string, error) { return nil, nil }

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir from newer Go releases.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(abs); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PWD", abs)
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
