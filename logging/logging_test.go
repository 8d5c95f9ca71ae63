package logging

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	gofuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var epoch = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestMain(m *testing.M) {
	color.NoColor = false
	goleak.VerifyTestMain(m)
}

func TestPrettyOutput(t *testing.T) {
	testcases := []struct {
		name  string
		entry zapcore.Entry
		want  string
	}{
		{
			name: "info with caller",
			entry: zapcore.Entry{
				Level:      zapcore.InfoLevel,
				Time:       epoch,
				LoggerName: "main",
				Message:    "hello world",
				Caller: zapcore.EntryCaller{
					Defined:  true,
					File:     "foo.go",
					Line:     42,
					Function: "foo.Bar",
				},
			},
			want: "\x1b[37m[1970-01-01 00:00:00 UTC]\x1b[0m\t\x1b[32mINFO\x1b[0m\t\x1b[90mmain\x1b[0m\tfoo.go:42\thello world\n",
		},
		{
			name: "warn without name",
			entry: zapcore.Entry{
				Level:   zapcore.WarnLevel,
				Time:    epoch,
				Message: "set is full",
			},
			want: "\x1b[37m[1970-01-01 00:00:00 UTC]\x1b[0m\t\x1b[33mWARN\x1b[0m\tset is full\n",
		},
	}

	for _, tc := range testcases {
		encoder := NewEncoder(zap.NewProductionEncoderConfig())

		t.Run(tc.name, func(t *testing.T) {
			out, err := encoder.EncodeEntry(tc.entry, nil)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, out.String(), "Unexpected output")
		})
	}
}

func TestPrettyOutputFields(t *testing.T) {
	encoder := NewEncoder(zap.NewProductionEncoderConfig())

	out, err := encoder.EncodeEntry(zapcore.Entry{
		Level:   zapcore.ErrorLevel,
		Time:    epoch,
		Message: "line 3",
	}, []zapcore.Field{zap.String("command", "union")})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.String(), "\x1b[37m[1970-01-01 00:00:00 UTC]\x1b[0m\t\x1b[31mERROR\x1b[0m\tline 3"))
	assert.Contains(t, out.String(), `"command"`)
	assert.Contains(t, out.String(), `"union"`)
}

func TestNewJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(Options{
		Level:       zapcore.InfoLevel,
		Format:      FormatJSON,
		OutputPaths: []string{path},
		Name:        "intset",
	})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("added", zap.Int("value", 7))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "intset", entry["logger"])
	assert.Equal(t, "added", entry["msg"])
	assert.Equal(t, float64(7), entry["value"])
}

func TestNewPretty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(Options{Level: zapcore.WarnLevel, OutputPaths: []string{path}})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "dropped")
	assert.Contains(t, string(data), "\x1b[33mWARN\x1b[0m")
	assert.Contains(t, string(data), "kept")
}

func TestNewUnknownFormat(t *testing.T) {
	_, err := New(Options{Format: "xml"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRegisterTwice(t *testing.T) {
	assert.NoError(t, Register())
	assert.NoError(t, Register())
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		testName string
		in       string
		want     zapcore.Level
	}{
		{"debug", "debug", zapcore.DebugLevel},
		{"upper case", "WARN", zapcore.WarnLevel},
		{"error", "error", zapcore.ErrorLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			got, err := ParseLevel(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestFuzzLog(t *testing.T) {
	defer goleak.VerifyNone(t)

	core := zapcore.NewCore(NewEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(io.Discard), zapcore.DebugLevel)
	logger := zap.New(core).Named("logging")
	defer logger.Sync()

	f := gofuzz.New()

	for i := 0; i < 1000; i++ {
		var (
			msg   string
			value int
		)

		f.Fuzz(&msg)
		f.Fuzz(&value)

		assert.NotPanics(t, func() {
			logger.Info(msg, zap.Int("value", value), zap.String("raw", msg))
		})
	}
}
