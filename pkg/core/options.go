package core

import (
	"io"
	"io/ioutil"
	"time"

	"go.uber.org/zap"
)

// Option sets options for the pipeline stages
type Option func(*Settings)

// Settings defines the ambient dependencies of the pipeline stages
type Settings struct {
	logger   *zap.Logger
	out      io.Writer
	location *time.Location
	dryRun   bool
}

func defaultSettings() Settings {
	return Settings{
		logger:   zap.NewNop(),
		out:      ioutil.Discard,
		location: time.Local,
	}
}

func newSettings(opts []Option) Settings {
	s := defaultSettings()
	for _, apply := range opts {
		apply(&s)
	}
	return s
}

// Logger sets a zap logger for structured logs. It defaults to a no-op logger.
func Logger(l *zap.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// Output sets the writer receiving the human-readable progress lines. It defaults to discarding them.
func Output(w io.Writer) Option {
	return func(s *Settings) {
		if w != nil {
			s.out = w
		}
	}
}

// Location sets the time zone used to render modification times in headers. It defaults to the local time zone.
func Location(loc *time.Location) Option {
	return func(s *Settings) {
		if loc != nil {
			s.location = loc
		}
	}
}

// DryRun lists and sorts candidates, but neither writes the compilation nor moves any file.
func DryRun(enabled bool) Option {
	return func(s *Settings) {
		s.dryRun = enabled
	}
}
