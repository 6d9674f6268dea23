package core

import (
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/txtrip/pkg/core/status"
)

// List returns the files found directly inside the target directory whose name ends with the configured suffix.
//
// Entries come in directory listing order, i.e. sorted by name. Sub-directories are never
// listed, nor descended into. The compilation output is excluded, so a previous run's output
// is never compiled into the next one.
//
// Failing to list the directory is fatal to a run.
func List(fs afero.Fs, cfg Config, opts ...Option) ([]Candidate, error) {
	settings := newSettings(opts)

	info, err := fs.Stat(cfg.Dir)
	if err != nil {
		return nil, status.ErrListDir.Wrap(err)
	}
	if !info.IsDir() {
		return nil, status.ErrNotDirectory.Wrapf("%q", cfg.Dir)
	}

	entries, err := afero.ReadDir(fs, cfg.Dir)
	if err != nil {
		return nil, status.ErrListDir.Wrap(err)
	}

	candidates := make([]Candidate, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, cfg.Suffix) {
			continue
		}
		if name == cfg.OutputName {
			settings.logger.Debug("skipping previous compilation output", zap.String("file", name))
			continue
		}

		info := resolveLink(fs, cfg.SourcePath(name), entry, settings)
		if info.IsDir() {
			continue
		}
		candidates = append(candidates, Candidate{
			Name:    name,
			ModTime: info.ModTime(),
			Size:    info.Size(),
		})
	}

	settings.logger.Debug("listed candidates",
		zap.String("dir", cfg.Dir),
		zap.Int("entries", len(entries)),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

// resolveLink returns the info of the file a symbolic link points to.
//
// A dangling link keeps its own info: it remains a candidate, and reading it reports the failure.
func resolveLink(fs afero.Fs, path string, entry os.FileInfo, settings Settings) os.FileInfo {
	if entry.Mode()&os.ModeSymlink == 0 {
		return entry
	}
	target, err := fs.Stat(path)
	if err != nil {
		settings.logger.Debug("dangling link", zap.String("file", entry.Name()), zap.Error(err))
		return entry
	}
	return target
}
