package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Type selects the slog handler backing a Logger.
type Type int

const (
	TypeText Type = iota
	TypeJSON
	TypeDiscard
)

type Options struct {
	Buffer io.Writer
	Level  Level
	Type   Type
}

var (
	DefaultLogger = New(Options{os.Stdout, DefaultLevel, TypeText})

	// Discard drops every record. Pure entry points such as stream.Scan use
	// it so they never write anywhere.
	Discard = New(Options{Type: TypeDiscard})
)

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	buffer := opts.Buffer
	if buffer == nil {
		buffer = os.Stdout
	}

	var handler slog.Handler
	switch opts.Type {
	case TypeDiscard:
		handler = slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			// nothing is ever enabled
			Level: slog.Level(127),
		})
	case TypeJSON:
		handler = slog.NewJSONHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// OrDiscard returns l, or Discard when l is nil.
func OrDiscard(l Logger) Logger {
	if l == nil {
		return Discard
	}
	return l
}
