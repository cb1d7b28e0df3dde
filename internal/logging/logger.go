// Package logging builds the plancode logger: a rotating debug file plus
// console output on stderr.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/internal/config"
)

const timeLayout = "2006-01-02 15:04:05"

// Options selects log destinations and levels.
type Options struct {
	Config config.LoggingConfig
	// Console receives console output. Defaults to os.Stderr.
	Console io.Writer
	// Verbose lowers the console level to debug.
	Verbose bool
}

// New builds a logger tagged with a fresh run id. The returned close
// function flushes and closes the log file.
func New(opts Options) (*zap.Logger, func() error, error) {
	fileLevel, err := zapcore.ParseLevel(orDefault(opts.Config.Level, "debug"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	consoleLevel, err := zapcore.ParseLevel(orDefault(opts.Config.ConsoleLevel, "info"))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid console log level: %w", err)
	}
	if opts.Verbose {
		consoleLevel = zapcore.DebugLevel
	}

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoderConfig()),
			zapcore.AddSync(console),
			consoleLevel,
		),
	}

	var rotator *lumberjack.Logger
	if opts.Config.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.Config.File,
			MaxSize:    opts.Config.MaxSizeMB,
			MaxBackups: opts.Config.MaxBackups,
			MaxAge:     opts.Config.MaxAgeDays,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(fileEncoderConfig()),
			zapcore.AddSync(rotator),
			fileLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...)).
		Named("plancode").
		With(zap.String("run_id", uuid.NewString()))

	closeFn := func() error {
		_ = logger.Sync()
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}
	return logger, closeFn, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// fileEncoderConfig lays out file lines as "time level name: message fields".
func fileEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeName = func(name string, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(name + ":")
	}
	cfg.CallerKey = zapcore.OmitKey
	cfg.StacktraceKey = zapcore.OmitKey
	return cfg
}

// consoleEncoderConfig is the shorter console format: "time level message".
func consoleEncoderConfig() zapcore.EncoderConfig {
	cfg := fileEncoderConfig()
	cfg.NameKey = zapcore.OmitKey
	return cfg
}
