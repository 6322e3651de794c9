// Package logging builds the zap loggers used by the command line tool.
package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options select the logger built by New.
type Options struct {
	Verbose bool // debug level instead of warn
	JSON    bool // structured output for machine consumption
}

// New returns a logger writing to w. Mock output goes to stdout, so
// callers pass stderr here.
func New(w io.Writer, opts Options) *zap.Logger {
	level := zap.WarnLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}

	var encoder zapcore.Encoder
	if opts.JSON {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = newConsoleEncoder()
	}

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), level))
}

// newConsoleEncoder is a calm human-readable encoder without timestamps
// or caller information.
func newConsoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	return zapcore.NewConsoleEncoder(cfg)
}
