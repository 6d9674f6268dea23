package core

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oneconcern/txtrip/pkg/core/status"
	"github.com/oneconcern/txtrip/pkg/errors"
)

func TestEnsureBackupDir(t *testing.T) {
	fs, cfg := setupFs(t)

	var out bytes.Buffer
	created, err := EnsureBackupDir(fs, cfg, Output(&out))
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Pasta 'txt rip' criada em: /desk/txt rip\n", out.String())

	isDir, err := afero.IsDir(fs, cfg.BackupPath())
	require.NoError(t, err)
	assert.True(t, isDir)

	// second call reuses the folder silently
	out.Reset()
	created, err = EnsureBackupDir(fs, cfg, Output(&out))
	require.NoError(t, err)
	assert.False(t, created)
	assert.Empty(t, out.String())
}

func TestEnsureBackupDirOccupied(t *testing.T) {
	fs, cfg := setupFs(t)
	fakeFile(t, fs, cfg.BackupPath(), "not a folder", day(1))

	_, err := EnsureBackupDir(fs, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBackupNotDir))
}

func TestEnsureBackupDirReadOnly(t *testing.T) {
	base, cfg := setupFs(t)

	_, err := EnsureBackupDir(afero.NewReadOnlyFs(base), cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBackupDir))
}

func TestArchive(t *testing.T) {
	fs, cfg := setupFs(t)
	fakeFile(t, fs, filepath.Join(testDir, "a.txt"), "alpha", day(1))
	fakeFile(t, fs, filepath.Join(testDir, "b.txt"), "beta", day(2))
	fakeFile(t, fs, cfg.OutputPath(), "compiled", day(3))

	candidates := []Candidate{
		{Name: "a.txt", ModTime: day(1)},
		{Name: "b.txt", ModTime: day(2)},
		{Name: DefaultOutputName, ModTime: day(3)},
	}

	var out bytes.Buffer
	result, err := Archive(fs, cfg, candidates, Output(&out))
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, []string{"a.txt", "b.txt"}, result.Moved)
	assert.Empty(t, result.Failures)

	for _, name := range []string{"a.txt", "b.txt"} {
		exists, err := afero.Exists(fs, cfg.SourcePath(name))
		require.NoError(t, err)
		assert.Falsef(t, exists, "%s should have been moved", name)

		exists, err = afero.Exists(fs, cfg.ArchivePath(name))
		require.NoError(t, err)
		assert.Truef(t, exists, "%s should be in the backup folder", name)
	}

	exists, err := afero.Exists(fs, cfg.OutputPath())
	require.NoError(t, err)
	assert.True(t, exists, "the compilation output is never moved")

	assert.Equal(t,
		"Pasta 'txt rip' criada em: /desk/txt rip\nArquivo movido: a.txt\nArquivo movido: b.txt\n",
		out.String(),
	)
}

func TestArchiveOverwritesBackup(t *testing.T) {
	fs, cfg := setupFs(t)
	require.NoError(t, fs.MkdirAll(cfg.BackupPath(), 0777))
	fakeFile(t, fs, cfg.ArchivePath("a.txt"), "archived last time", day(1))
	fakeFile(t, fs, filepath.Join(testDir, "a.txt"), "fresh", day(2))

	result, err := Archive(fs, cfg, []Candidate{{Name: "a.txt", ModTime: day(2)}})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, []string{"a.txt"}, result.Moved)

	b, err := afero.ReadFile(fs, cfg.ArchivePath("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(b))
}

func TestArchiveContinuesOnFailure(t *testing.T) {
	base, cfg := setupFs(t)
	fakeFile(t, base, filepath.Join(testDir, "a.txt"), "alpha", day(1))
	fakeFile(t, base, filepath.Join(testDir, "locked.txt"), "locked", day(2))
	fakeFile(t, base, filepath.Join(testDir, "c.txt"), "gamma", day(4))
	fs := newFaultyFs(base)
	fs.failRename["locked.txt"] = os.ErrPermission

	candidates := []Candidate{
		{Name: "a.txt", ModTime: day(1)},
		{Name: "locked.txt", ModTime: day(2)},
		{Name: "vanished.txt", ModTime: day(3)},
		{Name: "c.txt", ModTime: day(4)},
	}

	var out bytes.Buffer
	result, err := Archive(fs, cfg, candidates, Output(&out))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "c.txt"}, result.Moved)
	require.Len(t, result.Failures, 2)
	assert.Equal(t, "locked.txt", result.Failures[0].Name)
	assert.Equal(t, "vanished.txt", result.Failures[1].Name)
	for _, f := range result.Failures {
		assert.True(t, errors.Is(f, status.ErrMoveFile))
	}
	assert.True(t, errors.Is(result.Failures[0], os.ErrPermission))

	// the unmovable file stays where it was
	exists, err := afero.Exists(fs, cfg.SourcePath("locked.txt"))
	require.NoError(t, err)
	assert.True(t, exists)

	assert.Contains(t, out.String(), "Erro ao mover o arquivo locked.txt: ")
	assert.Contains(t, out.String(), "Erro ao mover o arquivo vanished.txt: ")
	assert.Contains(t, out.String(), "Arquivo movido: c.txt\n")
}

func TestArchiveBackupUnusable(t *testing.T) {
	fs, cfg := setupFs(t)
	fakeFile(t, fs, cfg.BackupPath(), "occupied", day(1))
	fakeFile(t, fs, filepath.Join(testDir, "a.txt"), "alpha", day(1))

	_, err := Archive(fs, cfg, []Candidate{{Name: "a.txt", ModTime: day(1)}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrBackupNotDir))

	exists, err := afero.Exists(fs, cfg.SourcePath("a.txt"))
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestArchiveDestinationIsDirectory(t *testing.T) {
	dir, err := ioutil.TempDir("", "txtrip-archive-")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(dir) }()

	fs := afero.NewOsFs()
	cfg := DefaultConfig(dir)
	fakeFile(t, fs, cfg.SourcePath("a.txt"), "alpha", day(1))
	fakeFile(t, fs, cfg.SourcePath("b.txt"), "beta", day(2))
	// a folder squatting the destination of a.txt
	require.NoError(t, fs.MkdirAll(cfg.ArchivePath("a.txt"), 0777))

	result, err := Archive(fs, cfg, []Candidate{{Name: "a.txt"}, {Name: "b.txt"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"b.txt"}, result.Moved)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "a.txt", result.Failures[0].Name)

	b, err := afero.ReadFile(fs, cfg.SourcePath("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(b))
}

func TestCopyAndRemove(t *testing.T) {
	fs, cfg := setupFs(t)
	require.NoError(t, fs.MkdirAll(cfg.BackupPath(), 0777))
	fakeFile(t, fs, cfg.SourcePath("a.txt"), "alpha", day(1))

	require.NoError(t, copyAndRemove(fs, cfg.SourcePath("a.txt"), cfg.ArchivePath("a.txt")))

	exists, err := afero.Exists(fs, cfg.SourcePath("a.txt"))
	require.NoError(t, err)
	assert.False(t, exists)

	info, err := fs.Stat(cfg.ArchivePath("a.txt"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(day(1)), "modification time is preserved")
	b, err := afero.ReadFile(fs, cfg.ArchivePath("a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(b))

	require.Error(t, copyAndRemove(fs, cfg.SourcePath("missing.txt"), cfg.ArchivePath("missing.txt")))
	require.Error(t, copyAndRemove(fs, cfg.BackupPath(), filepath.Join(testDir, "elsewhere")))
}
