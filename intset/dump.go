package intset

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

const dumpSeparator = "  "

// Dump writes the values in stored order to w, separated by two spaces. An
// empty set writes nothing, and no newline is appended.
func (s *IntSet) Dump(w io.Writer) error {
	var b strings.Builder

	for i, v := range s.Values() {
		if i > 0 {
			b.WriteString(dumpSeparator)
		}
		b.WriteString(strconv.Itoa(v))
	}

	if b.Len() == 0 {
		return nil
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// String provides a string representation of the set.
func (s *IntSet) String() string {
	values := s.Values()
	items := make([]string, 0, len(values))

	for _, v := range values {
		items = append(items, strconv.Itoa(v))
	}

	return fmt.Sprintf("IntSet{%s}", strings.Join(items, ", "))
}

// MarshalLogArray implements zapcore.ArrayMarshaler so a set can be logged
// with zap.Array.
func (s *IntSet) MarshalLogArray(enc zapcore.ArrayEncoder) error {
	for _, v := range s.Values() {
		enc.AppendInt(v)
	}

	return nil
}
