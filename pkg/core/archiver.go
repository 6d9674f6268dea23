package core

import (
	"os"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/txtrip/pkg/core/status"
)

// EnsureBackupDir creates the backup folder when it is missing. An existing folder is reused.
//
// It reports whether the folder was created by this call.
func EnsureBackupDir(fs afero.Fs, cfg Config, opts ...Option) (bool, error) {
	settings := newSettings(opts)
	backupPath := cfg.BackupPath()

	info, err := fs.Stat(backupPath)
	switch {
	case err == nil && info.IsDir():
		settings.logger.Debug("reusing backup folder", zap.String("backup", backupPath))
		return false, nil
	case err == nil:
		return false, status.ErrBackupNotDir.Wrapf("%q", backupPath)
	case !os.IsNotExist(err):
		return false, status.ErrBackupDir.Wrap(err)
	}

	if err = fs.Mkdir(backupPath, 0777); err != nil {
		if os.IsExist(err) {
			// created behind our back: fine as long as it is a folder
			if isDir, _ := afero.IsDir(fs, backupPath); isDir {
				return false, nil
			}
		}
		return false, status.ErrBackupDir.Wrap(err)
	}

	newConsole(settings.out).Printf("Pasta '%s' criada em: %s", cfg.BackupName, absPath(backupPath))
	settings.logger.Info("backup folder created", zap.String("backup", backupPath))
	return true, nil
}

// Archive moves the candidates into the backup folder, creating the folder if needed.
//
// The compilation output is never moved. Each move is attempted independently: a failure is
// reported and the file stays where it is, without preventing the remaining moves. Moves
// already done are not rolled back.
//
// An error is returned only when the backup folder cannot be used.
func Archive(fs afero.Fs, cfg Config, candidates []Candidate, opts ...Option) (ArchiveResult, error) {
	settings := newSettings(opts)
	con := newConsole(settings.out)

	result := ArchiveResult{
		BackupPath: absPath(cfg.BackupPath()),
	}

	created, err := EnsureBackupDir(fs, cfg, opts...)
	if err != nil {
		return result, err
	}
	result.Created = created

	for _, candidate := range candidates {
		if candidate.Name == cfg.OutputName {
			continue
		}

		if err := moveFile(fs, cfg.SourcePath(candidate.Name), cfg.ArchivePath(candidate.Name)); err != nil {
			con.Failf("Erro ao mover o arquivo %s: %v", candidate.Name, err)
			settings.logger.Warn("cannot move file",
				zap.String("file", candidate.Name),
				zap.Error(err),
			)
			result.Failures = append(result.Failures, FileError{Name: candidate.Name, Err: status.ErrMoveFile.Wrap(err)})
			continue
		}

		con.Printf("Arquivo movido: %s", candidate.Name)
		result.Moved = append(result.Moved, candidate.Name)
	}

	settings.logger.Info("files archived",
		zap.String("backup", result.BackupPath),
		zap.Int("moved", len(result.Moved)),
		zap.Int("failures", len(result.Failures)),
	)
	return result, nil
}
