package core

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	units "github.com/docker/go-units"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/txtrip/pkg/core/status"
)

const headerLabel = "Última atualização"

// Header renders the line introducing a candidate in the compilation.
func Header(cfg Config, c Candidate, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return "\n" + cfg.Separator + " " + c.Name + " - " + headerLabel + ": " +
		c.ModTime.In(loc).Format(cfg.TimeLayout) + " " + cfg.Separator + "\n"
}

// ReadFailureNotice renders the inline notice replacing the content of a file which could not be read.
func ReadFailureNotice(name string, err error) string {
	return "\nErro ao ler o arquivo " + name + ": " + err.Error() + "\n"
}

// Compile creates or overwrites the compilation output in the target directory.
//
// Every candidate contributes, in the given order, a header followed by its verbatim content and a newline.
// A candidate which cannot be read is replaced by an inline notice and the compilation proceeds with the next one.
//
// An error is returned only when the output itself cannot be written.
func Compile(fs afero.Fs, cfg Config, candidates []Candidate, opts ...Option) (CompileResult, error) {
	settings := newSettings(opts)
	con := newConsole(settings.out)
	outputPath := cfg.OutputPath()

	result := CompileResult{
		Path: absPath(outputPath),
	}

	target, err := fs.OpenFile(outputPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		return result, status.ErrCompile.Wrap(err)
	}

	w := bufio.NewWriter(target)
	for _, candidate := range candidates {
		_, _ = io.WriteString(w, Header(cfg, candidate, settings.location))

		content, readErr := readContent(fs, cfg.SourcePath(candidate.Name))
		if readErr != nil {
			settings.logger.Warn("cannot read file, writing a notice instead",
				zap.String("file", candidate.Name),
				zap.Error(readErr),
			)
			result.Failures = append(result.Failures, FileError{Name: candidate.Name, Err: readErr})
			_, _ = io.WriteString(w, ReadFailureNotice(candidate.Name, readErr))
			continue
		}

		_, _ = w.Write(content)
		_ = w.WriteByte('\n')
		result.Entries++
		settings.logger.Debug("compiled file",
			zap.String("file", candidate.Name),
			zap.Int("bytes", len(content)),
		)
	}

	// bufio keeps the first write error and reports it on Flush
	if err = w.Flush(); err != nil {
		_ = target.Close()
		return result, status.ErrCompile.Wrap(err)
	}
	if err = target.Close(); err != nil {
		return result, status.ErrCompile.Wrap(err)
	}

	if info, statErr := fs.Stat(outputPath); statErr == nil {
		result.Size = info.Size()
	}

	con.Printf("Arquivo compilado criado com sucesso: %s", result.Path)
	settings.logger.Info("compilation written",
		zap.String("output", result.Path),
		zap.Int("entries", result.Entries),
		zap.Int("failures", len(result.Failures)),
		zap.String("size", units.HumanSize(float64(result.Size))),
	)
	return result, nil
}

func readContent(fs afero.Fs, path string) ([]byte, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, status.ErrReadFile.Wrap(err)
	}
	if !utf8.Valid(content) {
		return nil, status.ErrInvalidEncoding.Wrapf("invalid byte at offset %d", invalidUTF8Offset(content))
	}
	return content, nil
}

func invalidUTF8Offset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
