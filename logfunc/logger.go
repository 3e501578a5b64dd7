package logfunc

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const LogFileName = "textscrub.log"

// Log is the package logger. It discards everything until Init is called,
// since the terminal belongs to the editor.
var Log = zerolog.Nop()

var logFile *os.File

// New builds a timestamped logger on writer.
func New(writer io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// Init opens (appending) the log file at path and installs the logger.
// An empty path keeps logging disabled.
func Init(path string, level string) (zerolog.Logger, error) {
	if path == "" {
		Log = zerolog.Nop()
		return Log, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Log, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return Log, fmt.Errorf("error creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return Log, fmt.Errorf("error opening log file: %w", err)
	}
	Close()
	logFile = f
	Log = New(f, lvl)
	return Log, nil
}

// Component returns a child logger tagged with the component name.
func Component(name string) *zerolog.Logger {
	l := Log.With().Str("component", name).Logger()
	return &l
}

// Close closes the log file, if any.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}
