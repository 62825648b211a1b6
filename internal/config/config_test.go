package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	root := t.TempDir()

	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, root, cfg.Root)
	assert.Equal(t, "_posts", cfg.PostsDir)
	assert.Equal(t, "_books", cfg.BooksDir)
	assert.Equal(t, "_lecture-notes", cfg.LecturesDir)
	assert.Equal(t, "_data", cfg.DataDir)
	assert.False(t, cfg.StrictExit)
	assert.Empty(t, cfg.FileUsed)

	layout := cfg.Layout()
	assert.Equal(t, filepath.Join(root, "_books"), layout.BooksDir)
	assert.Equal(t, filepath.Join(root, "_data", "books.yml"), layout.BooksIndex)
	assert.Equal(t, filepath.Join(root, "_data", "lecture-notes.yml"), layout.LecturesIndex)
	assert.Equal(t, "/books", layout.BooksURL)
	assert.Equal(t, "/lecture-notes", layout.LecturesURL)
}

func TestLoad_SiteConfigOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	data := "posts_dir: content/posts\nbooks_url: /library/\nstrict_exit: true\n"
	require.NoError(t, os.WriteFile(FilePath(root), []byte(data), 0644))

	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, "content/posts", cfg.PostsDir)
	assert.True(t, cfg.StrictExit)
	assert.Equal(t, FilePath(root), cfg.FileUsed)

	layout := cfg.Layout()
	assert.Equal(t, filepath.Join(root, "content", "posts"), layout.PostsDir)
	assert.Equal(t, "/library", layout.BooksURL)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(root), []byte("books_dir: shelf\n"), 0644))
	t.Setenv("NEWITEM_BOOKS_DIR", "from-env")

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.BooksDir)
}

func TestLoad_ExplicitConfigMissing(t *testing.T) {
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(FilePath(root), []byte("posts_dir: [unclosed\n"), 0644))

	_, err := Load(root, "")
	require.Error(t, err)
}

func TestLayout_AbsolutePathsKept(t *testing.T) {
	abs := t.TempDir()
	cfg := Default(t.TempDir())
	cfg.DataDir = abs
	cfg.BooksIndex = filepath.Join(abs, "elsewhere.yml")

	layout := cfg.Layout()
	assert.Equal(t, filepath.Join(abs, "elsewhere.yml"), layout.BooksIndex)
	assert.Equal(t, filepath.Join(abs, "lecture-notes.yml"), layout.LecturesIndex)
}

func TestSetAndGet(t *testing.T) {
	root := t.TempDir()
	path := FilePath(root)

	require.NoError(t, Set(path, KeyPostsDir, "blog"))
	require.NoError(t, Set(path, KeyStrictExit, "yes"))

	cfg, err := Load(root, "")
	require.NoError(t, err)

	got, err := cfg.Get(KeyPostsDir)
	require.NoError(t, err)
	assert.Equal(t, "blog", got)

	got, err = cfg.Get(KeyStrictExit)
	require.NoError(t, err)
	assert.Equal(t, "true", got)

	// Untouched keys still come from defaults.
	got, err = cfg.Get(KeyBooksDir)
	require.NoError(t, err)
	assert.Equal(t, "_books", got)
}

func TestSet_RejectsUnknownKey(t *testing.T) {
	err := Set(FilePath(t.TempDir()), "colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown config key")
}

func TestSet_RejectsBadBool(t *testing.T) {
	err := Set(FilePath(t.TempDir()), KeyStrictExit, "maybe")
	require.Error(t, err)
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Default(".").Get("colour")
	require.Error(t, err)
}

func TestKeys_SortedAndComplete(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 10)
	assert.IsIncreasing(t, keys)
	for _, k := range keys {
		assert.True(t, IsKey(k))
	}
}

func TestEnvOverride(t *testing.T) {
	name, set := EnvOverride(KeyPostsDir)
	assert.Equal(t, "NEWITEM_POSTS_DIR", name)
	assert.False(t, set)

	t.Setenv("NEWITEM_POSTS_DIR", "blog")
	_, set = EnvOverride(KeyPostsDir)
	assert.True(t, set)
}
