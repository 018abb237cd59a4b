// Package logger builds the zap loggers used by the wrsolve command and
// defines the field names shared by every structured log line.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names for structured logging.
const (
	FieldRunID    = "run_id"
	FieldCommand  = "command"
	FieldScheme   = "scheme"
	FieldNBase    = "n_base"
	FieldNPoints  = "n_points"
	FieldStep     = "step"
	FieldCount    = "count"
	FieldError    = "error"
	FieldFile     = "file"
	FieldSingular = "singular"
	FieldCond     = "condition"
)

// Verbosity levels for the -v flag count.
const (
	VerbosityUser  = 0 // results and errors only
	VerbosityInfo  = 1 // -v: + progress
	VerbosityDebug = 2 // -vv: + per solve and per step details
)

// VerbosityToLevel maps a -v count to a zap level:
//
//	0 (none)  -> WarnLevel
//	1 (-v)    -> InfoLevel
//	2+ (-vv)  -> DebugLevel
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	}
	return zapcore.DebugLevel
}

// New returns a logger writing to stderr at the level selected by
// verbosity.
func New(verbosity int, jsonOutput bool) *zap.SugaredLogger {
	return NewWithWriter(os.Stderr, verbosity, jsonOutput)
}

// NewWithWriter is like New but writes to w.
func NewWithWriter(w io.Writer, verbosity int, jsonOutput bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	enc := zapcore.NewConsoleEncoder(cfg)
	if jsonOutput {
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	core := zapcore.NewCore(enc, zapcore.AddSync(w), VerbosityToLevel(verbosity))
	return zap.New(core).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger { return zap.NewNop().Sugar() }
