package lib

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
)

func ParseSLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	err := level.UnmarshalText([]byte(strings.TrimSpace(s)))
	return level, err
}

// NiceLogger returns a text logger that reports the short source file of each record.
func NiceLogger(w io.Writer, level slog.Level) *slog.Logger {
	// https://www.reddit.com/r/golang/comments/15nwnkl/achieve_lshortfile_with_slog/jy8emik/
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				source, _ := a.Value.Any().(*slog.Source)
				if source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			return a
		},
	}))
}

// LevelLogger parses level and builds a NiceLogger, falling back to info when the level
// can't be parsed. The parse error is logged through the returned logger.
func LevelLogger(w io.Writer, level string) *slog.Logger {
	parsed, err := ParseSLogLevel(level)
	if err != nil {
		logger := NiceLogger(w, slog.LevelInfo)
		logger.Warn("Unknown log level, using info", "level", level)
		return logger
	}
	return NiceLogger(w, parsed)
}

// Discard is a logger that drops everything, for tests and library defaults.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
