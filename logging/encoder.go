// Package logging builds zap loggers for command line tools. The pretty
// encoder is zap's console encoder with colored timestamps, levels and logger
// names.
package logging

import (
	"time"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rdeusser/intset/errsync"
)

const (
	// EncoderName is the name the pretty encoder is registered under.
	EncoderName = "pretty"

	timeFormat = "2006-01-02 15:04:05 MST"
)

var (
	registerOnce errsync.Once
	levelColor   = map[zapcore.Level]color.Attribute{
		zapcore.DebugLevel:  color.FgBlue,
		zapcore.InfoLevel:   color.FgGreen,
		zapcore.WarnLevel:   color.FgYellow,
		zapcore.ErrorLevel:  color.FgRed,
		zapcore.DPanicLevel: color.FgRed,
		zapcore.PanicLevel:  color.FgRed,
		zapcore.FatalLevel:  color.FgRed,
	}
)

// Register makes the pretty encoder available to zap.Config under
// EncoderName. It is safe to call more than once.
func Register() error {
	return registerOnce.Do(func() error {
		return zap.RegisterEncoder(EncoderName, func(cfg zapcore.EncoderConfig) (zapcore.Encoder, error) {
			return NewEncoder(cfg), nil
		})
	})
}

// NewEncoder returns a console encoder that colors the entry header. Keys in
// cfg decide which parts of the header are written.
func NewEncoder(cfg zapcore.EncoderConfig) zapcore.Encoder {
	cfg.EncodeTime = encodeTime
	cfg.EncodeLevel = encodeLevel
	cfg.EncodeName = encodeName

	if cfg.EncodeCaller == nil {
		cfg.EncodeCaller = zapcore.ShortCallerEncoder
	}

	if cfg.EncodeDuration == nil {
		cfg.EncodeDuration = zapcore.StringDurationEncoder
	}

	return zapcore.NewConsoleEncoder(cfg)
}

func encodeTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgWhite).Sprintf("[%s]", t.Format(timeFormat)))
}

func encodeLevel(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(levelColor[level]).Sprint(level.CapitalString()))
}

func encodeName(name string, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(color.New(color.FgHiBlack).Sprint(name))
}
