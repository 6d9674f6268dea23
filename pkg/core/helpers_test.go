package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const testDir = "/desk"

func init() {
	color.NoColor = true
}

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 10, 0, 0, 0, time.UTC)
}

func setupFs(t testing.TB) (afero.Fs, Config) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll(testDir, 0777))
	return fs, DefaultConfig(testDir)
}

func fakeFile(t testing.TB, fs afero.Fs, path, content string, modTime time.Time) {
	t.Helper()

	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0644))
	require.NoError(t, fs.Chtimes(path, modTime, modTime))
}

// faultyFs injects failures for some file names, as a racing process or
// restrictive permissions would.
type faultyFs struct {
	afero.Fs
	failOpen   map[string]error
	failRename map[string]error
}

func newFaultyFs(base afero.Fs) *faultyFs {
	return &faultyFs{
		Fs:         base,
		failOpen:   make(map[string]error),
		failRename: make(map[string]error),
	}
}

func (f *faultyFs) Open(name string) (afero.File, error) {
	if err, ok := f.failOpen[filepath.Base(name)]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}
	return f.Fs.Open(name)
}

func (f *faultyFs) Rename(oldname, newname string) error {
	if err, ok := f.failRename[filepath.Base(oldname)]; ok {
		return &os.LinkError{Op: "rename", Old: oldname, New: newname, Err: err}
	}
	return f.Fs.Rename(oldname, newname)
}

func names(candidates []Candidate) []string {
	res := make([]string, 0, len(candidates))
	for _, c := range candidates {
		res = append(res, c.Name)
	}
	return res
}

func fixedZone(hours int) *time.Location {
	return time.FixedZone("test", hours*3600)
}
