// Package logger provides side-channel diagnostics for the spotcheck CLI.
// Verbose messages (Debug, Info, Warn, Section) are only emitted when verbose
// mode is enabled via the --verbose flag. Progress messages are always
// emitted. Everything is written to stderr so it never mixes with the report.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
	diag    *zap.SugaredLogger
	notice  *zap.SugaredLogger
)

func init() {
	build()
}

// build recreates the zap loggers for the current output (caller must hold lock).
func build() {
	sink := zapcore.Lock(zapcore.AddSync(output))

	diagEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      bracketLevel,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	})
	noticeEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})

	diag = zap.New(zapcore.NewCore(diagEncoder, sink, zapcore.DebugLevel)).Sugar()
	notice = zap.New(zapcore.NewCore(noticeEncoder, sink, zapcore.DebugLevel)).Sugar()
}

// bracketLevel renders levels as "[DEBUG]", "[INFO]", "[WARN]".
func bracketLevel(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + l.CapitalString() + "]")
}

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for diagnostics.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
	build()
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		diag.Debugf(format, args...)
	}
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		notice.Info(fmt.Sprintf("\n=== %s ===", name))
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		diag.Infof(format, args...)
	}
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		diag.Warnf(format, args...)
	}
}

// Progress prints a message regardless of verbose mode.
// Used for retry waits and per-chapter progress during a check run.
func Progress(format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	notice.Infof(format, args...)
}

// Sync flushes any buffered output.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = diag.Sync()
	_ = notice.Sync()
}
