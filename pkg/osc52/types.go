package osc52

import (
	"fmt"
	"strings"
)

// Clipboard is the buffer an OSC52 sequence addresses (the Pc parameter).
type Clipboard byte

const (
	// SystemClipboard is the system clipboard buffer.
	SystemClipboard Clipboard = 'c'
	// PrimaryClipboard is the X11 primary selection.
	PrimaryClipboard Clipboard = 'p'
)

// String returns the name used in configuration files.
func (c Clipboard) String() string {
	switch c {
	case SystemClipboard:
		return "system"
	case PrimaryClipboard:
		return "primary"
	default:
		return fmt.Sprintf("Clipboard(%q)", byte(c))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Clipboard) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Clipboard) UnmarshalText(text []byte) error {
	parsed, err := ParseClipboard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClipboard accepts "system", "primary" or the raw Pc codes "c" and "p".
// An empty name selects the system clipboard.
func ParseClipboard(name string) (Clipboard, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "system", "c":
		return SystemClipboard, nil
	case "primary", "p":
		return PrimaryClipboard, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownClipboard, name)
	}
}

// Mode selects the multiplexer escaping wrapped around the sequence.
type Mode uint

const (
	// DefaultMode emits a bare OSC52 sequence.
	DefaultMode Mode = iota
	// ScreenMode wraps the sequence in DCS strings for GNU screen.
	ScreenMode
	// TmuxMode wraps the sequence in a tmux DCS passthrough.
	TmuxMode
)

var modeNames = map[Mode]string{
	DefaultMode: "default",
	ScreenMode:  "screen",
	TmuxMode:    "tmux",
}

// String returns the lowercase mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", uint(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// ParseMode accepts "default", "screen" or "tmux". An empty name selects
// DefaultMode.
func ParseMode(name string) (Mode, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return DefaultMode, nil
	}
	for m, s := range modeNames {
		if s == n {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Operation is what the sequence asks the terminal to do.
type Operation uint

const (
	// SetOperation copies the payload into the clipboard.
	SetOperation Operation = iota
	// QueryOperation asks the terminal to report the clipboard contents.
	QueryOperation
	// ClearOperation empties the clipboard.
	ClearOperation
)

var operationNames = map[Operation]string{
	SetOperation:   "set",
	QueryOperation: "query",
	ClearOperation: "clear",
}

// String returns the lowercase operation name.
func (o Operation) String() string {
	if name, ok := operationNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Operation(%d)", uint(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOperation accepts "set", "query" or "clear". An empty name selects
// SetOperation.
func ParseOperation(name string) (Operation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return SetOperation, nil
	}
	for o, s := range operationNames {
		if s == n {
			return o, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOperation, name)
}
