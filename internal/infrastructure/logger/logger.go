// Package logger provides the storefront's structured logger, a thin layer over zerolog
// that knows the fields searches are tagged with and how to travel in a context.Context.
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum level: debug, info, warn or error. Unknown values mean info.
	Level string

	// Format is json or console
	Format string

	// Caller adds the file and line of each entry
	Caller bool

	// Service is stamped on every entry when set
	Service string

	// NoColor disables ANSI colors in console format
	NoColor bool
}

// DefaultConfig returns JSON logging at info level for the storefront service.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "json",
		Service: "storefront",
	}
}

// Logger wraps zerolog.Logger with additional context.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to out.
func NewWithOutput(cfg Config, out io.Writer) *Logger {
	zctx := zerolog.New(writerFor(cfg, out)).
		Level(levelOf(cfg.Level)).
		With().
		Timestamp()

	if cfg.Service != "" {
		zctx = zctx.Str("service", cfg.Service)
	}
	if cfg.Caller {
		zctx = zctx.Caller()
	}
	return &Logger{Logger: zctx.Logger()}
}

func levelOf(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return level
}

func writerFor(cfg Config, out io.Writer) io.Writer {
	if cfg.Format != "console" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.TimeOnly,
		NoColor:    cfg.NoColor,
	}
}

// WithField returns a child logger that adds key=value to every entry.
func (l *Logger) WithField(key, value string) *Logger {
	return &Logger{Logger: l.With().Str(key, value).Logger()}
}

// WithRequestID tags entries with the HTTP request they belong to.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return l.WithField("request_id", requestID)
}

// WithSource tags entries with an inventory source name.
func (l *Logger) WithSource(source string) *Logger {
	return l.WithField("source", source)
}

// WithVertical tags entries with a storefront vertical.
func (l *Logger) WithVertical(vertical string) *Logger {
	return l.WithField("vertical", vertical)
}

type contextKey struct{}

// IntoContext returns a copy of ctx carrying l.
func (l *Logger) IntoContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger carried by ctx, or nil if there is none.
func FromContext(ctx context.Context) *Logger {
	l, _ := ctx.Value(contextKey{}).(*Logger)
	return l
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}
