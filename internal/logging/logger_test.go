package logging

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestFieldHelpers(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	cases := []struct {
		name  string
		field Field
		key   string
		value any
	}{
		{"String", String("op", "add"), "op", "add"},
		{"Int", Int("limbs", 42), "limbs", 42},
		{"Uint64", Uint64("word", 12345678901234567890), "word", uint64(12345678901234567890)},
		{"Float64", Float64("seconds", 3.14159), "seconds", 3.14159},
		{"Err", Err(boom), "error", boom},
		{"Err nil", Err(nil), "error", nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.field.Key != tc.key {
				t.Errorf("Key = %q, want %q", tc.field.Key, tc.key)
			}
			if tc.field.Value != tc.value {
				t.Errorf("Value = %v, want %v", tc.field.Value, tc.value)
			}
		})
	}
}

func TestNewLogger_TagsComponent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")
	logger.Info("multiplication complete", Int("limbs", 128))

	out := buf.String()
	for _, want := range []string{"engine", "multiplication complete", "128", "info"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapter_Error(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "engine")
	logger.Error("division failed", errors.New("division by zero"), String("op", "divmod"))

	out := buf.String()
	for _, want := range []string{"division failed", "division by zero", "divmod", "error"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
}

func TestZerologAdapter_DebugRespectsLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.DebugLevel))
	logger.Debug("witness drawn", Uint64("witness", 37))
	if !strings.Contains(buf.String(), "witness drawn") {
		t.Errorf("debug output missing message: %s", buf.String())
	}

	buf.Reset()
	quiet := NewZerologAdapter(zerolog.New(&buf).Level(zerolog.InfoLevel))
	quiet.Debug("suppressed")
	if buf.Len() != 0 {
		t.Errorf("debug above threshold should emit nothing, got: %s", buf.String())
	}
}

func TestZerologAdapter_FieldTypes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		field    Field
		contains string
	}{
		{"string", Field{Key: "s", Value: "hello"}, "hello"},
		{"int", Field{Key: "n", Value: 42}, "42"},
		{"int64", Field{Key: "n64", Value: int64(9223372036854775807)}, "9223372036854775807"},
		{"uint64", Field{Key: "u64", Value: uint64(18446744073709551615)}, "18446744073709551615"},
		{"float64", Field{Key: "f", Value: 2.5}, "2.5"},
		{"bool", Field{Key: "b", Value: true}, "true"},
		{"error", Field{Key: "e", Value: errors.New("oops")}, "oops"},
		{"fallback", Field{Key: "any", Value: struct{ X int }{X: 7}}, "7"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			NewLogger(&buf, "test").Info("fields", tc.field)
			if !strings.Contains(buf.String(), tc.contains) {
				t.Errorf("output missing %q: %s", tc.contains, buf.String())
			}
		})
	}
}

func TestZerologAdapter_PrintfPrintln(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, "test")

	logger.Printf("computed in %d ms", 12)
	if !strings.Contains(buf.String(), "computed in 12 ms") {
		t.Errorf("Printf output: %s", buf.String())
	}

	buf.Reset()
	logger.Println("a", "b")
	if !strings.Contains(buf.String(), "a b") {
		t.Errorf("Println output: %s", buf.String())
	}
}

func TestStdLoggerAdapter(t *testing.T) {
	t.Parallel()

	newAdapter := func(buf *bytes.Buffer) *StdLoggerAdapter {
		return NewStdLoggerAdapter(log.New(buf, "", 0))
	}

	t.Run("info with fields", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newAdapter(&buf).Info("parsed operand", String("radix", "16"))
		for _, want := range []string{"[INFO]", "parsed operand", "radix", "16"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output missing %q: %s", want, buf.String())
			}
		}
	})

	t.Run("error carries cause", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newAdapter(&buf).Error("operation failed", errors.New("not invertible"), Int("exit", 1))
		for _, want := range []string{"[ERROR]", "operation failed", "not invertible", "exit"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output missing %q: %s", want, buf.String())
			}
		}
	})

	t.Run("debug prefix", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		newAdapter(&buf).Debug("trace", Int("line", 9))
		for _, want := range []string{"[DEBUG]", "trace", "line", "9"} {
			if !strings.Contains(buf.String(), want) {
				t.Errorf("output missing %q: %s", want, buf.String())
			}
		}
	})

	t.Run("printf and println", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		a := newAdapter(&buf)
		a.Printf("value is %d", 123)
		a.Println("x", "y")
		if !strings.Contains(buf.String(), "value is 123") {
			t.Errorf("Printf output: %s", buf.String())
		}
		if !strings.Contains(buf.String(), "x y") {
			t.Errorf("Println output: %s", buf.String())
		}
	})
}

func TestLoggerInterface(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	var _ Logger = NewLogger(&buf, "test")
	var _ Logger = NewStdLoggerAdapter(log.New(&buf, "", 0))
}
