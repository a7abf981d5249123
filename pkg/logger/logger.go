// Package logger provides the process-wide logger.
package logger

import (
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures Init.
type Options struct {
	File       string    // Log file path; empty disables file output
	Level      string    // debug, info, warn, error
	MaxSizeMB  int       // Rotate after this size
	MaxBackups int       // Rotated files to keep
	MaxAgeDays int       // Days to keep rotated files
	Compress   bool      // Gzip rotated files
	Console    io.Writer // Optional human-readable output
}

var (
	globalLogger atomic.Pointer[zap.Logger]
	logFile      *lumberjack.Logger
	mu           sync.Mutex
)

// Init initializes the global logger. Calling it again replaces the
// previous logger and closes its file.
func Init(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	level := zap.NewAtomicLevel()
	if opts.Level != "" {
		if err := level.UnmarshalText([]byte(opts.Level)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
	}

	closeFile()

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	var cores []zapcore.Core
	if opts.File != "" {
		logFile = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   opts.Compress,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(logFile), level))
	}
	if opts.Console != nil {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(opts.Console), level))
	}

	if len(cores) == 0 {
		globalLogger.Store(zap.NewNop())
		return nil
	}
	globalLogger.Store(zap.New(zapcore.NewTee(cores...)))
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if l := globalLogger.Load(); l != nil {
		_ = l.Sync()
	}
	closeFile()
	globalLogger.Store(nil)
}

func closeFile() {
	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
}

// L returns the global logger, or a no-op logger before Init.
func L() *zap.Logger {
	if l := globalLogger.Load(); l != nil {
		return l
	}
	return zap.NewNop()
}

// Replace swaps the global logger and returns a function restoring the
// previous one.
func Replace(l *zap.Logger) func() {
	prev := globalLogger.Swap(l)
	return func() { globalLogger.Store(prev) }
}

// Info logs an info message.
func Info(format string, v ...interface{}) {
	L().Sugar().Infof(format, v...)
}

// Debug logs a debug message.
func Debug(format string, v ...interface{}) {
	L().Sugar().Debugf(format, v...)
}

// Error logs an error message.
func Error(format string, v ...interface{}) {
	L().Sugar().Errorf(format, v...)
}

// Warn logs a warning message.
func Warn(format string, v ...interface{}) {
	L().Sugar().Warnf(format, v...)
}
