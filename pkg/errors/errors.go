// Package errors provides structured error handling for the tint library.
package errors

import "fmt"

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindFormat indicates a malformed textual color.
	KindFormat
	// KindConfig indicates a palette configuration error.
	KindConfig
	// KindIO indicates a file read failure.
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindConfig:
		return "config"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// Error represents a structured error in the tint library.
type Error struct {
	// Op is the operation that failed (e.g., "argb.Parse").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// FormatError reports a textual color that could not be parsed: a
// hex literal with the wrong length or invalid digits, or a name
// missing from the named-color table.
type FormatError struct {
	// Input is the offending string, kept for diagnostics.
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid color format: %q", e.Input)
}

// ConfigError reports a palette file that could not be loaded.
type ConfigError struct {
	// Path is the file that failed to load.
	Path string
	// Entry is the palette entry that failed, if known.
	Entry string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Entry != "" {
		return fmt.Sprintf("palette %s: entry %q: %v", e.Path, e.Entry, e.Err)
	}
	return fmt.Sprintf("palette %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
