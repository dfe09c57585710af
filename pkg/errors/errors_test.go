package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindFormat, "format"},
		{KindConfig, "config"},
		{KindIO, "io"},
		{ErrorKind(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "argb.Parse",
		Kind: KindFormat,
		Err:  &FormatError{Input: "#zz"},
	}
	got := err.Error()
	if !strings.Contains(got, "argb.Parse") {
		t.Errorf("error string %q should contain the op", got)
	}
	if !strings.Contains(got, "[format]") {
		t.Errorf("error string %q should contain the kind", got)
	}
}

func TestErrorUnwrap(t *testing.T) {
	inner := &FormatError{Input: "NotAColor"}
	err := &Error{Op: "argb.Parse", Kind: KindFormat, Err: inner}

	var ferr *FormatError
	if !stderrors.As(err, &ferr) {
		t.Fatal("errors.As failed to find FormatError")
	}
	if ferr.Input != "NotAColor" {
		t.Errorf("FormatError.Input = %q, want %q", ferr.Input, "NotAColor")
	}
}

func TestFormatErrorString(t *testing.T) {
	err := &FormatError{Input: "#12345"}
	want := `invalid color format: "#12345"`
	if got := err.Error(); got != want {
		t.Errorf("FormatError.Error() = %q, want %q", got, want)
	}
}

func TestConfigErrorString(t *testing.T) {
	inner := &FormatError{Input: "bogus"}

	err := &ConfigError{Path: "theme.yaml", Err: inner}
	if got := err.Error(); !strings.Contains(got, "theme.yaml") {
		t.Errorf("error string %q should contain the path", got)
	}

	err = &ConfigError{Path: "theme.yaml", Entry: "accent", Err: inner}
	if got := err.Error(); !strings.Contains(got, `"accent"`) {
		t.Errorf("error string %q should contain the entry", got)
	}

	if !stderrors.Is(err, inner) {
		t.Error("ConfigError should unwrap to the inner error")
	}
}
