package core

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
	"go.uber.org/multierr"
)

// Candidate is a file of the target directory eligible for compilation and archival.
type Candidate struct {
	Name    string
	ModTime time.Time
	Size    int64
}

// FileError records a failure affecting a single file. Such failures never abort a run.
type FileError struct {
	Name string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Name, e.Err)
}

// Unwrap the underlying error
func (e FileError) Unwrap() error {
	return e.Err
}

// CompileResult describes the compilation output
type CompileResult struct {
	Path     string
	Size     int64
	Entries  int
	Failures []FileError
}

// ArchiveResult describes the relocation of candidates to the backup folder
type ArchiveResult struct {
	BackupPath string
	Created    bool
	Moved      []string
	Failures   []FileError
}

// Report is the outcome of a pipeline run
type Report struct {
	Candidates []Candidate
	DryRun     bool
	Compile    CompileResult
	Archive    ArchiveResult
}

// Err aggregates all per-file failures of the run, or returns nil.
func (r *Report) Err() error {
	if r == nil {
		return nil
	}
	var err error
	for _, f := range r.Compile.Failures {
		err = multierr.Append(err, f)
	}
	for _, f := range r.Archive.Failures {
		err = multierr.Append(err, f)
	}
	return err
}

// console prints progress lines for the user. Failures stand out in red on a terminal.
type console struct {
	out  io.Writer
	fail *color.Color
}

func newConsole(w io.Writer) console {
	return console{
		out:  w,
		fail: color.New(color.FgRed),
	}
}

func (c console) Printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(c.out, format+"\n", args...)
}

func (c console) Failf(format string, args ...interface{}) {
	_, _ = c.fail.Fprintf(c.out, format+"\n", args...)
}
