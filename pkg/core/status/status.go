// Package status exports errors produced by the core package.
//
// NOTE: such constants are located in a separate package so that the CLI can
// test for them without importing the pipeline internals.
package status

import (
	"github.com/oneconcern/txtrip/pkg/errors"
)

var (
	// ErrInvalidConfig indicates that the pipeline configuration is incomplete or inconsistent
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrListDir indicates that the target directory could not be listed
	ErrListDir = errors.New("cannot list target directory")

	// ErrNotDirectory indicates that the target path exists but is not a directory
	ErrNotDirectory = errors.New("target is not a directory")

	// ErrCompile indicates that the compilation output could not be written
	ErrCompile = errors.New("cannot write compilation output")

	// ErrReadFile indicates that the content of a candidate file could not be read
	ErrReadFile = errors.New("cannot read file")

	// ErrInvalidEncoding indicates that the content of a candidate file is not valid UTF-8
	ErrInvalidEncoding = errors.New("invalid UTF-8 content")

	// ErrBackupNotDir indicates that the backup folder path is occupied by something that is not a directory
	ErrBackupNotDir = errors.New("backup path exists and is not a directory")

	// ErrBackupDir indicates that the backup folder could not be created
	ErrBackupDir = errors.New("cannot create backup folder")

	// ErrMoveFile indicates that a candidate file could not be relocated to the backup folder
	ErrMoveFile = errors.New("cannot move file")

	// ErrInterrupted signals that the run was cancelled between two stages
	ErrInterrupted = errors.New("processing interrupted")
)
