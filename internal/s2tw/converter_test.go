package s2tw

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransformer maps a handful of simplified characters to traditional
// ones. Its output never contains an input key, so it is idempotent.
func fakeTransformer() Transformer {
	r := strings.NewReplacer("简", "簡", "体", "體", "发", "發", "软", "軟")
	return TransformFunc(func(s string) (string, error) {
		return r.Replace(s), nil
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func newTestConverter() *Converter {
	c := NewConverter(fakeTransformer())
	c.now = func() time.Time { return time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC) }
	return c
}

func TestConvertTree_ContentAndNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简", "体", "发.txt"), "软件")
	writeFile(t, filepath.Join(root, "readme.md"), "简体中文")

	results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, "軟件", readFile(t, filepath.Join(root, "簡", "體", "發.txt")))
	assert.Equal(t, "簡體中文", readFile(t, filepath.Join(root, "readme.md")))
	assert.NoDirExists(t, filepath.Join(root, "简"))

	assert.Equal(t, 2, stats.FilesContentModified)
	assert.Equal(t, 1, stats.FilesRenamed)
	assert.Equal(t, 2, stats.DirsRenamed)
	assert.Equal(t, 2, stats.FilesBackedUp)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 5, stats.Total())
	assert.Len(t, results, 4)
}

func TestConvertTree_BottomUpOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简", "体", "a.txt"), "发")

	results, _, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, results, 3)

	// The file is reported under its original directories, then the inner
	// directory, then the outer one.
	assert.Equal(t, filepath.Join(root, "简", "体", "a.txt"), results[0].Path)
	assert.True(t, results[0].ContentChanged)

	assert.Equal(t, filepath.Join(root, "简", "体"), results[1].Path)
	assert.Equal(t, filepath.Join(root, "简", "體"), results[1].NewPath)

	assert.Equal(t, filepath.Join(root, "简"), results[2].Path)
	assert.Equal(t, filepath.Join(root, "簡"), results[2].NewPath)
}

func TestConvertTree_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简", "体.md"), "软件 发布")
	writeFile(t, filepath.Join(root, "plain.txt"), "nothing to do")

	c := newTestConverter()
	_, first, err := c.ConvertTree(root, DefaultOptions())
	require.NoError(t, err)
	assert.Greater(t, first.Total(), 0)

	results, second, err := c.ConvertTree(root, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, second.Total())
	assert.Equal(t, 0, second.FilesBackedUp)
	assert.Equal(t, 0, second.Errors)
}

func TestConvertTree_FileRenameCollisionIsSilent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简.txt"), "old")
	writeFile(t, filepath.Join(root, "簡.txt"), "taken")

	results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Equal(t, 0, stats.Errors)
	assert.Equal(t, 0, stats.FilesRenamed)
	assert.Equal(t, "old", readFile(t, filepath.Join(root, "简.txt")))
	assert.Equal(t, "taken", readFile(t, filepath.Join(root, "簡.txt")))
}

func TestConvertTree_DirRenameCollisionIsError(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(root, "简"), 0755))
	require.NoError(t, os.Mkdir(filepath.Join(root, "簡"), 0755))

	results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Failed())
	assert.Equal(t, filepath.Join(root, "简"), results[0].Path)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 0, stats.DirsRenamed)
	assert.DirExists(t, filepath.Join(root, "简"))
	assert.DirExists(t, filepath.Join(root, "簡"))
}

func TestConvertTree_SiblingDirsConvergeOnOneName(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a1", "x.md"), "one")
	writeFile(t, filepath.Join(root, "a2", "x.md"), "two")

	merge := strings.NewReplacer("a1", "b", "a2", "b")
	c := NewConverter(TransformFunc(func(s string) (string, error) {
		return merge.Replace(s), nil
	}))

	results, stats, err := c.ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[0].NameChanged)
	assert.Equal(t, filepath.Join(root, "a1"), results[0].Path)
	assert.Equal(t, filepath.Join(root, "b"), results[0].NewPath)
	assert.True(t, results[1].Failed())
	assert.Equal(t, filepath.Join(root, "a2"), results[1].Path)

	assert.Equal(t, 1, stats.DirsRenamed)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, "one", readFile(t, filepath.Join(root, "b", "x.md")))
	assert.Equal(t, "two", readFile(t, filepath.Join(root, "a2", "x.md")))
}

func TestConvertTree_Backups(t *testing.T) {
	t.Run("next to original", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.txt"), "简")

		results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)

		backup := filepath.Join(root, "a.txt.backup")
		assert.Equal(t, backup, results[0].BackupPath)
		assert.Equal(t, "简", readFile(t, backup))
		assert.Equal(t, 1, stats.FilesBackedUp)
	})

	t.Run("timestamped when taken", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.txt"), "简")
		writeFile(t, filepath.Join(root, "a.txt.backup"), "earlier")

		results, _, err := newTestConverter().ConvertTree(root, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)

		want := filepath.Join(root, "a_20240305_140709.txt.backup")
		assert.Equal(t, want, results[0].BackupPath)
		assert.Equal(t, "简", readFile(t, want))
		assert.Equal(t, "earlier", readFile(t, filepath.Join(root, "a.txt.backup")))
	})

	t.Run("counter when timestamp taken", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.txt"), "简")
		writeFile(t, filepath.Join(root, "a.txt.backup"), "1")
		writeFile(t, filepath.Join(root, "a_20240305_140709.txt.backup"), "2")

		results, _, err := newTestConverter().ConvertTree(root, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, filepath.Join(root, "a_20240305_140709_1.txt.backup"), results[0].BackupPath)
	})

	t.Run("separate directory", func(t *testing.T) {
		root := t.TempDir()
		backups := filepath.Join(t.TempDir(), "bak")
		writeFile(t, filepath.Join(root, "a.txt"), "简")

		opts := DefaultOptions()
		opts.BackupDir = backups
		results, _, err := newTestConverter().ConvertTree(root, opts)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, filepath.Join(backups, "a.txt.backup"), results[0].BackupPath)
	})

	t.Run("disabled", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, filepath.Join(root, "a.txt"), "简")

		opts := DefaultOptions()
		opts.CreateBackups = false
		results, stats, err := newTestConverter().ConvertTree(root, opts)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Empty(t, results[0].BackupPath)
		assert.Equal(t, 0, stats.FilesBackedUp)
		assert.NoFileExists(t, filepath.Join(root, "a.txt.backup"))
	})
}

func TestConvertTree_UnchangedContentIsNotWritten(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "a.txt")
	writeFile(t, path, "ascii only")
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, old, old))

	results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Equal(t, 0, stats.Total())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(old))
	assert.NoFileExists(t, path+".backup")
}

func TestConvertTree_Filters(t *testing.T) {
	tests := []struct {
		name      string
		rel       string
		configure func(*Options)
		converted bool
	}{
		{name: "default text extension", rel: "a.txt", converted: true},
		{name: "extension is case-insensitive", rel: "A.TXT", converted: true},
		{name: "unknown extension", rel: "a.bin", converted: false},
		{name: "hidden file", rel: ".a.txt", converted: false},
		{name: "inside hidden dir", rel: filepath.Join(".git", "a.txt"), converted: false},
		{name: "inside ignored dir", rel: filepath.Join("node_modules", "a.txt"), converted: false},
		{
			name:      "hidden file included",
			rel:       ".a.txt",
			configure: func(o *Options) { o.IncludeHidden = true },
			converted: true,
		},
		{
			name:      "custom extension",
			rel:       "a.bin",
			configure: func(o *Options) { o.Extensions = []string{".bin"} },
			converted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			path := filepath.Join(root, tt.rel)
			writeFile(t, path, "简")

			opts := DefaultOptions()
			opts.IgnoreNames = []string{"node_modules"}
			if tt.configure != nil {
				tt.configure(&opts)
			}

			_, _, err := newTestConverter().ConvertTree(root, opts)
			require.NoError(t, err)

			want := "简"
			if tt.converted {
				want = "簡"
			}
			assert.Equal(t, want, readFile(t, path))
		})
	}
}

func TestConvertTree_InvalidUTF8(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "简.txt")
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, 0x00, 0x41}, 0644))

	results, stats, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].Failed())
	assert.False(t, results[0].NameChanged)
	assert.Equal(t, 1, stats.Errors)
	assert.FileExists(t, path)
}

func TestConvertTree_OnlyNames(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简.txt"), "体")

	opts := DefaultOptions()
	opts.ConvertContent = false
	results, stats, err := newTestConverter().ConvertTree(root, opts)
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].NameChanged)
	assert.False(t, results[0].ContentChanged)
	assert.Equal(t, "体", readFile(t, filepath.Join(root, "簡.txt")))
	assert.Equal(t, 0, stats.FilesBackedUp)
}

func TestConvertTree_OnlyContent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "简", "简.txt"), "体")

	opts := DefaultOptions()
	opts.ConvertNames = false
	_, stats, err := newTestConverter().ConvertTree(root, opts)
	require.NoError(t, err)

	assert.Equal(t, "體", readFile(t, filepath.Join(root, "简", "简.txt")))
	assert.Equal(t, 0, stats.FilesRenamed)
	assert.Equal(t, 0, stats.DirsRenamed)
}

func TestConvertTree_SingleFile(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "简.md")
	writeFile(t, path, "软件")

	results, stats, err := newTestConverter().ConvertTree(path, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, results, 1)
	assert.True(t, results[0].ContentChanged)
	assert.False(t, results[0].NameChanged)
	assert.Equal(t, "軟件", readFile(t, path))
	assert.Equal(t, 1, stats.FilesContentModified)
	assert.Equal(t, 0, stats.FilesRenamed)

	t.Run("unchanged file still reported", func(t *testing.T) {
		results, stats, err := newTestConverter().ConvertTree(path, DefaultOptions())
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].Changed())
		assert.Equal(t, 0, stats.Total())
	})

	t.Run("filtered extension", func(t *testing.T) {
		other := filepath.Join(root, "简.bin")
		writeFile(t, other, "软")
		results, _, err := newTestConverter().ConvertTree(other, DefaultOptions())
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestConvertTree_NoEngine(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "简.txt")
	writeFile(t, path, "体")

	_, _, err := NewConverter(nil).ConvertTree(root, DefaultOptions())
	require.ErrorIs(t, err, ErrEngineUnavailable)
	assert.Equal(t, "体", readFile(t, path))
}

func TestConvertTree_MissingRoot(t *testing.T) {
	_, _, err := newTestConverter().ConvertTree(filepath.Join(t.TempDir(), "missing"), DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestConvertTree_TransformerError(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "boom")
	writeFile(t, filepath.Join(root, "b.txt"), "简")

	failing := TransformFunc(func(s string) (string, error) {
		if s == "boom" {
			return "", errors.New("engine failure")
		}
		return strings.ReplaceAll(s, "简", "簡"), nil
	})

	results, stats, err := NewConverter(failing).ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.True(t, results[0].Failed())
	assert.Contains(t, results[0].Error, "engine failure")
	assert.True(t, results[1].ContentChanged)
	assert.Equal(t, 1, stats.Errors)
	assert.Equal(t, 1, stats.FilesContentModified)
}

func TestConvertTree_KeepsFileMode(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "run.sh")
	writeFile(t, path, "echo 简")
	require.NoError(t, os.Chmod(path, 0750))

	_, _, err := newTestConverter().ConvertTree(root, DefaultOptions())
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0750), info.Mode().Perm())
}

func TestConvertTree_EmptyExtensionsUseDefaults(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.md"), "简")

	opts := DefaultOptions()
	opts.Extensions = []string{}
	_, stats, err := newTestConverter().ConvertTree(root, opts)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.FilesContentModified)
	assert.Equal(t, "簡", readFile(t, filepath.Join(root, "a.md")))
}
