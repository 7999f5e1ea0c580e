// Package logger builds the zap loggers used by the CLI.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Name is attached to every entry as the logger name.
const Name = "resume_ats"

// Options selects the log format and verbosity
type Options struct {
	// JSON writes one JSON object per entry for log collectors.
	JSON bool
	// Debug lowers the level to debug and adds the caller to each entry.
	Debug bool
	// Interactive switches the console format to colored levels and short
	// timestamps for a person at a terminal. Ignored when JSON is set.
	Interactive bool
	// Output receives the entries; nil means stderr so that stdout carries
	// only the report.
	Output io.Writer
}

// New returns a logger configured by opts.
func New(opts Options) *zap.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(encoder(opts), zapcore.AddSync(out), level)

	var zopts []zap.Option
	if opts.Debug {
		zopts = append(zopts, zap.AddCaller())
	}
	return zap.New(core, zopts...).Named(Name)
}

func encoder(opts Options) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "logger",
		CallerKey:      "caller",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	switch {
	case opts.JSON:
		cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
		cfg.EncodeTime = zapcore.RFC3339TimeEncoder
		return zapcore.NewJSONEncoder(cfg)
	case opts.Interactive:
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		cfg.NameKey = zapcore.OmitKey
	default:
		cfg.EncodeLevel = zapcore.CapitalLevelEncoder
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	return zapcore.NewConsoleEncoder(cfg)
}
