// Package core implements the compilation of text files.
//
// A run lists the files of a target directory matching a suffix, sorts them by
// modification time, concatenates them into a single compilation file with a dated
// header per file, then moves the originals into a backup folder.
//
// All stages work on an afero.Fs, so they run unchanged on the OS filesystem or in memory.
//
// Example:
//
//	cfg := core.DefaultConfig("/home/me/Desktop")
//	report, err := core.Run(ctx, afero.NewOsFs(), cfg, core.Output(os.Stdout))
package core
