// Package logging provides the leveled console logger. Console lines are
// timestamped and colored per level; when a log file is configured every
// line is also written there as a structured JSON record.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/backmassage/solidname/internal/config"
	"github.com/backmassage/solidname/internal/term"
)

// Level tags as they appear on the console.
const (
	LevelInfo  = "INFO"
	LevelOK    = "OK"
	LevelWarn  = "WARN"
	LevelError = "ERROR"
	LevelDone  = "DONE"
	LevelDebug = "DEBUG"
)

// Logger provides leveled, optionally colored logging with an optional
// structured file sink.
type Logger struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	file   *zap.Logger
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := &Logger{out: os.Stdout, errOut: os.Stderr}
	if cfg.LogFile != "" {
		fl, err := newFileLogger(cfg.LogFile)
		if err != nil {
			return nil, err
		}
		l.file = fl
	}
	return l, nil
}

// newFileLogger builds a JSON zap logger appending to path.
func newFileLogger(path string) (*zap.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Encoding = "json"
	zc.OutputPaths = []string{path}
	zc.ErrorOutputPaths = []string{"stderr"}
	zc.EncoderConfig.TimeKey = "ts"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Sampling = nil
	zc.DisableStacktrace = true
	return zc.Build()
}

// SetOutput redirects console output; used by tests.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out, l.errOut = out, errOut
}

// With returns a logger whose file records carry the given key/value pair
// (e.g. the run id). Console output is unchanged.
func (l *Logger) With(key, value string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	nl := &Logger{out: l.out, errOut: l.errOut}
	if l.file != nil {
		nl.file = l.file.With(zap.String(key, value))
	}
	return nl
}

// Close flushes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Sync()
	l.file = nil
	return err
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == LevelError {
		out = l.errOut
	}
	_, _ = io.WriteString(out, ts+" "+c.Sprint("["+level+"]")+" "+text+"\n")
	if l.file != nil {
		l.fileRecord(level, text)
	}
}

func (l *Logger) fileRecord(level, text string) {
	tag := zap.String("tag", level)
	switch level {
	case LevelError:
		l.file.Error(text, tag)
	case LevelWarn:
		l.file.Warn(text, tag)
	case LevelDebug:
		l.file.Debug(text, tag)
	default:
		l.file.Info(text, tag)
	}
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.line(LevelInfo, term.Blue, fmt.Sprintf(format, args...))
}

// Success logs a completed action at OK level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.line(LevelOK, term.Green, fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line(LevelWarn, term.Yellow, fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red), to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line(LevelError, term.Red, fmt.Sprintf(format, args...))
}

// Done logs the end-of-run line at DONE level (magenta).
func (l *Logger) Done(format string, args ...interface{}) {
	l.line(LevelDone, term.Magenta, fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when verbose.
func (l *Logger) Debug(verbose bool, format string, args ...interface{}) {
	if !verbose {
		return
	}
	l.line(LevelDebug, term.Cyan, fmt.Sprintf(format, args...))
}
