package core

import (
	"context"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/oneconcern/txtrip/pkg/core/status"
)

// Plan lists the candidates of the target directory, oldest first. It does not modify anything.
func Plan(fs afero.Fs, cfg Config, opts ...Option) ([]Candidate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	candidates, err := List(fs, cfg, opts...)
	if err != nil {
		return nil, err
	}
	return SortByModTime(candidates), nil
}

// Run compiles the candidates of the target directory, then moves them to the backup folder.
//
// Stages run once, in order: list, sort, compile, archive. Only failures to list the
// directory, to write the compilation or to create the backup folder are returned as errors.
// Per-file failures are collected in the report (see Report.Err).
//
// The originals are never moved when the compilation could not be written.
func Run(ctx context.Context, fs afero.Fs, cfg Config, opts ...Option) (*Report, error) {
	settings := newSettings(opts)
	report := &Report{DryRun: settings.dryRun}

	candidates, err := Plan(fs, cfg, opts...)
	if err != nil {
		return report, err
	}
	report.Candidates = candidates
	settings.logger.Info("candidates found",
		zap.String("dir", cfg.Dir),
		zap.Int("count", len(candidates)),
	)

	if settings.dryRun {
		settings.logger.Info("dry run: nothing compiled, nothing moved")
		return report, nil
	}

	if err = interrupted(ctx); err != nil {
		return report, err
	}
	report.Compile, err = Compile(fs, cfg, candidates, opts...)
	if err != nil {
		return report, err
	}

	if err = interrupted(ctx); err != nil {
		return report, err
	}
	report.Archive, err = Archive(fs, cfg, candidates, opts...)
	if err != nil {
		return report, err
	}

	newConsole(settings.out).Printf("Processo finalizado!")
	return report, nil
}

func interrupted(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return status.ErrInterrupted.Wrap(ctx.Err())
	default:
		return nil
	}
}
