package osc52

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequence_Copy(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		clipboard Clipboard
		mode      Mode
		limit     int
		expected  string
	}{
		{
			name:      "hello world",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      DefaultMode,
			expected:  "\x1b]52;c;aGVsbG8gd29ybGQ=\x07",
		},
		{
			name:      "empty string",
			str:       "",
			clipboard: SystemClipboard,
			mode:      DefaultMode,
			expected:  "\x1b]52;c;\x07",
		},
		{
			name:      "hello world primary",
			str:       "hello world",
			clipboard: PrimaryClipboard,
			mode:      DefaultMode,
			expected:  "\x1b]52;p;aGVsbG8gd29ybGQ=\x07",
		},
		{
			name:      "hello world tmux mode",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      TmuxMode,
			expected:  "\x1bPtmux;\x1b\x1b]52;c;aGVsbG8gd29ybGQ=\x07\x1b\\",
		},
		{
			name:      "hello world screen mode",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      ScreenMode,
			expected:  "\x1bP\x1b]52;c;aGVsbG8gd29ybGQ=\x07\x1b\\",
		},
		{
			name:      "screen mode longer than one chunk",
			str:       "hello world hello world hello world hello world hello world hello world hello world hello world",
			clipboard: SystemClipboard,
			mode:      ScreenMode,
			expected: "\x1bP\x1b]52;c;aGVsbG8gd29ybGQgaGVsbG8gd29ybGQgaGVsbG8gd29ybGQgaGVsbG8gd29ybGQgaGVsbG8gd29y" +
				"\x1b\\\x1bP" +
				"bGQgaGVsbG8gd29ybGQgaGVsbG8gd29ybGQgaGVsbG8gd29ybGQ=\x07\x1b\\",
		},
		{
			name:      "limit equal to length",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      DefaultMode,
			limit:     11,
			expected:  "\x1b]52;c;aGVsbG8gd29ybGQ=\x07",
		},
		{
			name:      "limit exceeded",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      DefaultMode,
			limit:     10,
			expected:  "",
		},
		{
			name:      "limit exceeded discards tmux wrapping",
			str:       "hello world",
			clipboard: SystemClipboard,
			mode:      TmuxMode,
			limit:     10,
			expected:  "",
		},
		{
			name:      "limit counts characters not bytes",
			str:       "héllo",
			clipboard: SystemClipboard,
			mode:      DefaultMode,
			limit:     5,
			expected:  "\x1b]52;c;aMOpbGxv\x07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.str).Clipboard(tt.clipboard).Mode(tt.mode).Limit(tt.limit)
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestSequence_Query(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		clipboard Clipboard
		expected  string
	}{
		{"system clipboard", DefaultMode, SystemClipboard, "\x1b]52;c;?\x07"},
		{"primary clipboard", DefaultMode, PrimaryClipboard, "\x1b]52;p;?\x07"},
		{"system clipboard tmux mode", TmuxMode, SystemClipboard, "\x1bPtmux;\x1b\x1b]52;c;?\x07\x1b\\"},
		{"system clipboard screen mode", ScreenMode, SystemClipboard, "\x1bP\x1b]52;c;?\x07\x1b\\"},
		{"primary clipboard tmux mode", TmuxMode, PrimaryClipboard, "\x1bPtmux;\x1b\x1b]52;p;?\x07\x1b\\"},
		{"primary clipboard screen mode", ScreenMode, PrimaryClipboard, "\x1bP\x1b]52;p;?\x07\x1b\\"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Query().Clipboard(tt.clipboard).Mode(tt.mode)
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestSequence_Clear(t *testing.T) {
	tests := []struct {
		name      string
		mode      Mode
		clipboard Clipboard
		expected  string
	}{
		{"system clipboard", DefaultMode, SystemClipboard, "\x1b]52;c;!\x07"},
		{"system clipboard tmux mode", TmuxMode, SystemClipboard, "\x1bPtmux;\x1b\x1b]52;c;!\x07\x1b\\"},
		{"system clipboard screen mode", ScreenMode, SystemClipboard, "\x1bP\x1b]52;c;!\x07\x1b\\"},
		{"primary clipboard", DefaultMode, PrimaryClipboard, "\x1b]52;p;!\x07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Clear().Clipboard(tt.clipboard).Mode(tt.mode)
			assert.Equal(t, tt.expected, s.String())
		})
	}
}

func TestSequence_LimitIgnoredForQueryAndClear(t *testing.T) {
	long := strings.Repeat("x", 100)

	assert.Equal(t, "\x1b]52;c;?\x07", New(long).Limit(1).Query().String())
	assert.Equal(t, "\x1b]52;c;!\x07", New(long).Limit(1).Clear().String())
}

func TestSequence_MatchesAnsiEncoding(t *testing.T) {
	for _, text := range []string{"", "hello world", "multi\nline\ttext", "日本語 ✓"} {
		assert.Equal(t, ansi.SetClipboard(ansi.SystemClipboard, text), New(text).String())
		assert.Equal(t, ansi.SetClipboard(ansi.PrimaryClipboard, text), New(text).Primary().String())
		assert.Equal(t, ansi.TmuxPassthrough(ansi.SetClipboard(ansi.SystemClipboard, text)), New(text).Tmux().String())
	}

	assert.Equal(t, ansi.RequestClipboard(ansi.SystemClipboard), Query().String())
	assert.Equal(t, ansi.TmuxPassthrough(ansi.RequestClipboard(ansi.PrimaryClipboard)), Query().Primary().Tmux().String())
}

func TestSequence_Immutable(t *testing.T) {
	base := New("hello world")
	want := base.String()

	_ = base.Tmux()
	_ = base.Screen()
	_ = base.Primary()
	_ = base.Limit(1)
	_ = base.Clear()
	_ = base.Query()
	_ = base.SetString("other")

	assert.Equal(t, want, base.String())
}

func TestSequence_Shorthands(t *testing.T) {
	s := New("x")

	assert.Equal(t, s.Mode(TmuxMode), s.Tmux())
	assert.Equal(t, s.Mode(ScreenMode), s.Screen())
	assert.Equal(t, s.Clipboard(PrimaryClipboard), s.Primary())
	assert.Equal(t, s.Operation(QueryOperation), s.Query())
	assert.Equal(t, s.Operation(ClearOperation), s.Clear())
	assert.Equal(t, New().Query(), Query())
	assert.Equal(t, New().Clear(), Clear())
}

func TestSequence_ZeroValue(t *testing.T) {
	var s Sequence

	assert.Equal(t, New().String(), s.String())
	assert.Equal(t, New("hi").Tmux().String(), s.SetString("hi").Tmux().String())
}

func TestSequence_SetString(t *testing.T) {
	s := New("old").Tmux().Primary()

	got := s.SetString("new", "text")

	assert.Equal(t, New("new text").Tmux().Primary(), got)
	assert.Equal(t, New("old").Tmux().Primary(), s)
}

func TestNew_JoinsWithSpace(t *testing.T) {
	assert.Equal(t, New("a b c"), New("a", "b", "c"))
	assert.Equal(t, New(""), New())
	assert.Equal(t, "\x1b]52;c;IA==\x07", New("", "").String())
}

func TestSequence_LimitNegativeClamps(t *testing.T) {
	assert.Equal(t, New("hello").Limit(0), New("hello").Limit(-5))
}

func TestSequence_WriteTo(t *testing.T) {
	tests := []struct {
		name     string
		seq      Sequence
		expected string
	}{
		{"hello world", New("hello world"), "\x1b]52;c;aGVsbG8gd29ybGQ=\x07"},
		{"empty string", New(""), "\x1b]52;c;\x07"},
		{"non-ascii counts bytes", New("é"), "\x1b]52;c;w6k=\x07"},
		{"oversized writes nothing", New("hello world").Limit(3), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			n, err := tt.seq.WriteTo(&buf)

			require.NoError(t, err)
			assert.Equal(t, int64(len(tt.expected)), n)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

// recordingWriter counts Write calls and optionally fails them.
type recordingWriter struct {
	calls int
	data  []byte
	err   error
}

func (w *recordingWriter) Write(p []byte) (int, error) {
	w.calls++
	if w.err != nil {
		return 0, w.err
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

func TestSequence_WriteTo_SingleWrite(t *testing.T) {
	w := &recordingWriter{}

	_, err := New(strings.Repeat("long payload ", 50)).Screen().WriteTo(w)

	require.NoError(t, err)
	assert.Equal(t, 1, w.calls)

	w = &recordingWriter{}
	_, err = New("too long").Limit(2).WriteTo(w)
	require.NoError(t, err)
	assert.Equal(t, 1, w.calls)
	assert.Empty(t, w.data)
}

func TestSequence_WriteTo_PropagatesWriterError(t *testing.T) {
	writeErr := errors.New("broken pipe")
	w := &recordingWriter{err: writeErr}

	n, err := New("hello").WriteTo(w)

	require.ErrorIs(t, err, writeErr)
	assert.Equal(t, writeErr, err)
	assert.Equal(t, int64(0), n)
	assert.Equal(t, 1, w.calls)
}

func TestSequence_WriteTo_NilWriter(t *testing.T) {
	n, err := New("hello").WriteTo(nil)

	require.ErrorIs(t, err, ErrInvalidWriter)
	assert.Equal(t, int64(0), n)
}

func TestChunks(t *testing.T) {
	assert.Nil(t, chunks("", 76))
	assert.Equal(t, []string{"abc"}, chunks("abc", 76))
	assert.Equal(t, []string{"ab", "cd", "e"}, chunks("abcde", 2))
	assert.Equal(t, []string{"ab", "cd"}, chunks("abcd", 2))
}
