package logging

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Format string

const (
	FormatPretty Format = EncoderName
	FormatJSON   Format = "json"
)

var (
	ErrUnknownFormat = errors.New("unknown log format")
	ErrUnknownLevel  = errors.New("unknown log level")
)

// Options configures New. The zero value logs info and above to stderr with
// the pretty encoder.
type Options struct {
	Level       zapcore.Level
	Format      Format
	OutputPaths []string
	Name        string
}

// New builds a logger from opts.
func New(opts Options) (*zap.Logger, error) {
	switch opts.Format {
	case "":
		opts.Format = FormatPretty
	case FormatPretty, FormatJSON:
	default:
		return nil, fmt.Errorf("%q: %w", opts.Format, ErrUnknownFormat)
	}

	if len(opts.OutputPaths) == 0 {
		opts.OutputPaths = []string{"stderr"}
	}

	if err := Register(); err != nil {
		return nil, err
	}

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(opts.Level),
		Encoding:          string(opts.Format),
		EncoderConfig:     zap.NewProductionEncoderConfig(),
		OutputPaths:       opts.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
		DisableStacktrace: true,
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}

	if opts.Name != "" {
		logger = logger.Named(opts.Name)
	}

	return logger, nil
}

// ParseLevel converts a level name such as "debug" or "WARN".
func ParseLevel(s string) (zapcore.Level, error) {
	var level zapcore.Level

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("%q: %w", s, ErrUnknownLevel)
	}

	return level, nil
}
