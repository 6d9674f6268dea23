package core

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
)

// moveFile relocates src to dst, replacing any regular file already at dst.
//
// When the rename crosses a device boundary, the file is copied then removed.
func moveFile(fs afero.Fs, src, dst string) error {
	err := fs.Rename(src, dst)
	if err == nil || !isCrossDevice(err) {
		return err
	}
	return copyAndRemove(fs, src, dst)
}

func copyAndRemove(fs afero.Fs, src, dst string) error {
	info, err := fs.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", src)
	}

	if err = copyFile(fs, src, dst, info); err != nil {
		_ = fs.Remove(dst)
		return err
	}

	if err = fs.Remove(src); err != nil {
		// keep a single copy of the file, at its original location
		_ = fs.Remove(dst)
		return err
	}
	return nil
}

func copyFile(fs afero.Fs, src, dst string, info os.FileInfo) error {
	source, err := fs.Open(src)
	if err != nil {
		return err
	}
	defer source.Close()

	target, err := fs.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err = io.Copy(target, source); err != nil {
		_ = target.Close()
		return err
	}
	if err = target.Close(); err != nil {
		return err
	}
	return fs.Chtimes(dst, info.ModTime(), info.ModTime())
}
