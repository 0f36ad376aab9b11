package declfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/knowncmd/internal/cachemanager"
	"github.com/zjrosen/knowncmd/internal/signature"
	"github.com/zjrosen/knowncmd/internal/table"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"declarations/b/open.toml":    {Data: []byte(openTOML)},
		"declarations/a/search.yaml":  {Data: []byte("commands:\n  - id: search.action.openEditor\n    params:\n      - {name: args, type: unknown, doc: Search editor arguments}\n")},
		"declarations/a/empty.yml":    {Data: []byte("")},
		"declarations/README.md":      {Data: []byte("# not a declaration")},
		"other/ignored.yaml":          {Data: []byte("commands:\n  - id: never.loaded\n")},
		"declarations/c/broken.yaml":  {Data: []byte("commands: [\n")},
		"declarations/c/partial.yaml": {Data: []byte("commands:\n  - id: partial.ok\n  - doc: missing\n")},
	}
}

func TestLoadFS(t *testing.T) {
	files, err := LoadFS(testFS(), "declarations", "embedded", table.SourceBuiltIn)
	require.Error(t, err)
	require.Contains(t, err.Error(), "declarations/c/broken.yaml")
	require.ErrorIs(t, err, ErrMissingID)

	var names []string
	for _, f := range files {
		names = append(names, f.Source.Name)
		require.Equal(t, table.SourceBuiltIn, f.Source.Kind)
	}
	// Lexical walk order; the empty file and non-declaration files are skipped.
	require.Equal(t, []string{
		"embedded/declarations/a/search.yaml",
		"embedded/declarations/b/open.toml",
		"embedded/declarations/c/partial.yaml",
	}, names)
	require.Len(t, files[1].Signatures, 2)
	require.Len(t, files[2].Signatures, 1)
}

func TestLoadFS_MissingRoot(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "declarations", "", table.SourceBuiltIn)
	require.Error(t, err)
	require.Contains(t, err.Error(), "walk declarations")
}

func TestAddFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"one.yaml": {Data: []byte("commands:\n  - id: x.same\n    params:\n      - {name: a, type: number}\n")},
		"two.yaml": {Data: []byte("commands:\n  - id: x.same\n    params:\n      - {name: b, type: number}\n")},
	}
	files, err := LoadFS(fsys, ".", "", table.SourceUser)
	require.NoError(t, err)

	b := table.NewBuilder()
	require.NoError(t, AddFiles(b, files))
	tbl, err := b.Build()
	require.NoError(t, err)

	entry, ok := tbl.Lookup("x.same")
	require.True(t, ok)
	require.Equal(t, []table.Source{
		{Name: "one.yaml", Kind: table.SourceUser},
		{Name: "two.yaml", Kind: table.SourceUser},
	}, entry.Sources())
}

func TestAddFiles_Conflict(t *testing.T) {
	fsys := fstest.MapFS{
		"one.yaml": {Data: []byte("commands:\n  - id: x.same\n    returns: string\n")},
		"two.yaml": {Data: []byte("commands:\n  - id: x.same\n    returns: number\n")},
	}
	files, err := LoadFS(fsys, ".", "", table.SourceUser)
	require.NoError(t, err)

	err = AddFiles(table.NewBuilder(), files)
	require.ErrorIs(t, err, table.ErrSignatureConflict)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "cmds.yaml"),
		[]byte("commands:\n  - id: my.command\n    returns: boolean\n"), 0o600))

	files, err := LoadDir(dir, table.SourceUser)
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, filepath.ToSlash(filepath.Join(dir, "nested", "cmds.yaml")), files[0].Source.Name)
	require.Equal(t, "boolean", files[0].Signatures[0].Result().Name())
}

func TestLoadDir_Missing(t *testing.T) {
	files, err := LoadDir(filepath.Join(t.TempDir(), "nope"), table.SourceUser)
	require.NoError(t, err)
	require.Nil(t, files)

	files, err = LoadDir("", table.SourceUser)
	require.NoError(t, err)
	require.Nil(t, files)
}

func TestLoadDir_NotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	_, err := LoadDir(path, table.SourceUser)
	require.ErrorContains(t, err, "is not a directory")
}

func TestLoadUserDir_SkipsBrokenFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "good.yaml"),
		[]byte("commands:\n  - id: user.good\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"),
		[]byte("commands: {\n"), 0o600))

	files := LoadUserDir(dir)
	require.Len(t, files, 1)
	require.Equal(t, "user.good", files[0].Signatures[0].ID())
	require.Equal(t, table.SourceUser, files[0].Source.Kind)

	require.Nil(t, LoadUserDir(filepath.Join(dir, "missing")))
}

func TestUserDeclarationsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.Equal(t, filepath.Join(home, ".knowncmd", "declarations"), UserDeclarationsDir())
}

type countingCache struct {
	cachemanager.CacheManager[string, []*signature.Signature]
	sets int
}

func (c *countingCache) Set(ctx context.Context, key string, value []*signature.Signature, ttl time.Duration) {
	c.sets++
	c.CacheManager.Set(ctx, key, value, ttl)
}

func TestCachedParser(t *testing.T) {
	cache := &countingCache{
		CacheManager: cachemanager.NewInMemoryCacheManager[string, []*signature.Signature]("declarations", time.Minute, time.Minute),
	}
	parser := NewCachedParser(cache, 0)

	modTime := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	fsys := fstest.MapFS{
		"open.yaml":   {Data: []byte(openYAML), ModTime: modTime},
		"broken.yaml": {Data: []byte("commands: [\n"), ModTime: modTime},
	}

	first, err := LoadFS(fsys, ".", "", table.SourceUser, WithParser(parser))
	require.Error(t, err)
	require.Len(t, first, 1)
	require.Equal(t, 1, cache.sets, "only the well-formed file is cached")

	second, err := LoadFS(fsys, ".", "", table.SourceUser, WithParser(parser))
	require.Error(t, err)
	require.Len(t, second, 1)
	require.Equal(t, 1, cache.sets, "unchanged file is served from cache")
	require.Same(t, first[0].Signatures[0], second[0].Signatures[0])

	fsys["open.yaml"] = &fstest.MapFile{Data: []byte(openYAML), ModTime: modTime.Add(time.Second)}
	_, err = LoadFS(fsys, ".", "", table.SourceUser, WithParser(parser))
	require.Error(t, err)
	require.Equal(t, 2, cache.sets, "modified file is parsed again")
}

func TestCachedParser_MissingFile(t *testing.T) {
	parser := NewCachedParser(cachemanager.NewInMemoryCacheManager[string, []*signature.Signature]("declarations", time.Minute, time.Minute), time.Minute)
	_, err := parser.Parse(context.Background(), fstest.MapFS{}, "missing.yaml", "missing.yaml")
	require.ErrorContains(t, err, "stat missing.yaml")
}
