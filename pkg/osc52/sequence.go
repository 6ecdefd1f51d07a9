package osc52

import (
	"encoding/base64"
	"io"
	"strings"
	"unicode/utf8"
)

// ScreenChunkSize is the maximum number of base64 characters GNU screen
// accepts in a single DCS string.
const ScreenChunkSize = 76

const (
	esc = "\x1b"
	bel = "\x07"
	st  = esc + "\\"

	tmuxStart   = esc + "Ptmux;" + esc
	screenStart = esc + "P"

	// screenChunkSeparator ends the current DCS string and opens the next.
	screenChunkSeparator = st + screenStart

	queryBody = "?"
	// Any data that is neither base64 nor "?" clears the clipboard.
	clearBody = "!"
)

var _ io.WriterTo = Sequence{}

// Sequence describes an OSC52 clipboard operation. The zero value is a set
// operation on the system clipboard with an empty payload.
//
// Sequence is immutable: every method returns a modified copy and leaves the
// receiver untouched.
type Sequence struct {
	str       string
	limit     int
	op        Operation
	mode      Mode
	clipboard Clipboard
}

// New returns a set sequence for the given strings joined by a single space.
func New(strs ...string) Sequence {
	return Sequence{
		str:       strings.Join(strs, " "),
		op:        SetOperation,
		mode:      DefaultMode,
		clipboard: SystemClipboard,
	}
}

// Query returns a sequence that asks the terminal for the clipboard contents.
//
// This is syntactic sugar for New().Query().
func Query() Sequence {
	return New().Query()
}

// Clear returns a sequence that clears the clipboard.
//
// This is syntactic sugar for New().Clear().
func Clear() Sequence {
	return New().Clear()
}

// Mode returns a copy of s using escape mode m.
func (s Sequence) Mode(m Mode) Sequence {
	s.mode = m
	return s
}

// Tmux returns a copy of s escaped for tmux passthrough. tmux must run with
// `allow-passthrough on`.
func (s Sequence) Tmux() Sequence {
	return s.Mode(TmuxMode)
}

// Screen returns a copy of s escaped for GNU screen.
func (s Sequence) Screen() Sequence {
	return s.Mode(ScreenMode)
}

// Clipboard returns a copy of s addressing clipboard c.
func (s Sequence) Clipboard(c Clipboard) Sequence {
	s.clipboard = c
	return s
}

// Primary returns a copy of s addressing the X11 primary selection.
func (s Sequence) Primary() Sequence {
	return s.Clipboard(PrimaryClipboard)
}

// Limit returns a copy of s with a maximum payload length of l characters.
// Zero or a negative value disables the limit.
func (s Sequence) Limit(l int) Sequence {
	s.limit = max(l, 0)
	return s
}

// Operation returns a copy of s performing operation o.
func (s Sequence) Operation(o Operation) Sequence {
	s.op = o
	return s
}

// Query returns a copy of s that queries the clipboard.
func (s Sequence) Query() Sequence {
	return s.Operation(QueryOperation)
}

// Clear returns a copy of s that clears the clipboard.
func (s Sequence) Clear() Sequence {
	return s.Operation(ClearOperation)
}

// SetString returns a copy of s whose payload is strs joined by a single space.
func (s Sequence) SetString(strs ...string) Sequence {
	s.str = strings.Join(strs, " ")
	return s
}

// String renders the escape sequence. It returns the empty string when a set
// operation's payload is longer than a positive limit.
func (s Sequence) String() string {
	var body string
	switch s.op {
	case SetOperation:
		if s.limit > 0 && utf8.RuneCountInString(s.str) > s.limit {
			return ""
		}
		body = base64.StdEncoding.EncodeToString([]byte(s.str))
		if s.mode == ScreenMode {
			body = strings.Join(chunks(body, ScreenChunkSize), screenChunkSeparator)
		}
	case QueryOperation:
		body = queryBody
	case ClearOperation:
		body = clearBody
	}

	c := s.clipboard
	if c == 0 {
		c = SystemClipboard
	}

	var b strings.Builder
	b.WriteString(s.seqStart())
	b.WriteString(esc + "]52;")
	b.WriteByte(byte(c))
	b.WriteByte(';')
	b.WriteString(body)
	b.WriteString(bel)
	b.WriteString(s.seqEnd())
	return b.String()
}

// WriteTo writes the rendered sequence to w in a single Write call and
// returns the number of bytes written. Errors from w are returned as is.
func (s Sequence) WriteTo(w io.Writer) (int64, error) {
	if w == nil {
		return 0, ErrInvalidWriter
	}
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s Sequence) seqStart() string {
	switch s.mode {
	case TmuxMode:
		// The inner ESC is doubled so tmux re-emits a literal ESC.
		return tmuxStart
	case ScreenMode:
		return screenStart
	default:
		return ""
	}
}

func (s Sequence) seqEnd() string {
	switch s.mode {
	case TmuxMode, ScreenMode:
		return st
	default:
		return ""
	}
}

// chunks splits str into consecutive pieces of at most size bytes. The input
// is base64, so byte and character boundaries coincide.
func chunks(str string, size int) []string {
	if str == "" {
		return nil
	}
	out := make([]string, 0, (len(str)+size-1)/size)
	for len(str) > size {
		out = append(out, str[:size])
		str = str[size:]
	}
	return append(out, str)
}
