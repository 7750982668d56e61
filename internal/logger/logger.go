// Package logger builds the structured logger used while generating.
package logger

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Standard field names.
const (
	FieldLang       = "lang"
	FieldDigits     = "digits"
	FieldPath       = "path"
	FieldCount      = "count"
	FieldBytes      = "bytes"
	FieldDurationMS = "duration_ms"
	FieldLocale     = "locale"
)

// New returns a no-op logger unless verbose is set, in which case debug
// output goes to w in zap's development console format.
func New(verbose bool, w io.Writer) *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.DebugLevel,
	)
	return zap.New(core).Sugar()
}
