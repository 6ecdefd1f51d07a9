// Package clipboard copies text to the terminal's clipboard by writing OSC52
// escape sequences to the controlling terminal.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/SubtleTools/go-osc52/internal/log"
	"github.com/SubtleTools/go-osc52/pkg/osc52"
)

// ErrPayloadTooLarge is returned by Copy when the text is longer than the
// configured limit. Nothing is written in that case.
var ErrPayloadTooLarge = errors.New("payload exceeds clipboard limit")

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
	Clear() error
	Query() error
}

// Options describes the sequences a Terminal emits.
type Options struct {
	Mode osc52.Mode
	// AutoDetect ignores Mode and picks one from the environment on every call.
	AutoDetect bool
	Target     osc52.Clipboard
	Limit      int
}

// Opener returns the destination for one sequence. The Terminal closes it
// after writing.
type Opener func() (io.WriteCloser, error)

// FileOpener opens path for writing, typically /dev/tty so that stdout
// redirection and alt-screen renderers are bypassed.
func FileOpener(path string) Opener {
	return func() (io.WriteCloser, error) {
		f, err := os.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", path, err)
		}
		return f, nil
	}
}

// WriterOpener adapts an already open writer. Close is a no-op.
func WriterOpener(w io.Writer) Opener {
	return func() (io.WriteCloser, error) {
		return nopCloser{w}, nil
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// Terminal implements Clipboard with OSC52 escape sequences.
type Terminal struct {
	opts   Options
	open   Opener
	getenv func(string) string
}

var _ Clipboard = (*Terminal)(nil)

// TerminalOption is a functional option for configuring a Terminal.
type TerminalOption func(*Terminal)

// WithOpener sets where sequences are written. Defaults to /dev/tty.
func WithOpener(open Opener) TerminalOption {
	return func(t *Terminal) {
		t.open = open
	}
}

// WithGetenv replaces os.Getenv for mode detection.
func WithGetenv(getenv func(string) string) TerminalOption {
	return func(t *Terminal) {
		t.getenv = getenv
	}
}

// NewTerminal creates a Terminal clipboard.
func NewTerminal(opts Options, options ...TerminalOption) *Terminal {
	t := &Terminal{
		opts:   opts,
		open:   FileOpener("/dev/tty"),
		getenv: os.Getenv,
	}
	for _, o := range options {
		o(t)
	}
	return t
}

// DetectMode picks the escape mode for the multiplexer the process runs in:
// tmux when TMUX is set, GNU screen when STY is set, otherwise none.
func DetectMode(getenv func(string) string) osc52.Mode {
	switch {
	case getenv("TMUX") != "":
		return osc52.TmuxMode
	case getenv("STY") != "":
		return osc52.ScreenMode
	default:
		return osc52.DefaultMode
	}
}

// Mode returns the escape mode sequences are written with.
func (t *Terminal) Mode() osc52.Mode {
	if t.opts.AutoDetect {
		return DetectMode(t.getenv)
	}
	return t.opts.Mode
}

// Sequence returns the base sequence for this terminal's options, with the
// escape mode resolved.
func (t *Terminal) Sequence() osc52.Sequence {
	target := t.opts.Target
	if target == 0 {
		target = osc52.SystemClipboard
	}

	return osc52.New().Mode(t.Mode()).Clipboard(target).Limit(t.opts.Limit)
}

// Copy copies text to the clipboard.
func (t *Terminal) Copy(text string) error {
	seq := t.Sequence().SetString(text)
	if seq.String() == "" {
		log.Warn(log.CatClipboard, "Payload exceeds limit, not copying", "limit", t.opts.Limit)
		return ErrPayloadTooLarge
	}
	return t.write(seq)
}

// Clear clears the clipboard.
func (t *Terminal) Clear() error {
	return t.write(t.Sequence().Clear())
}

// Query asks the terminal to report the clipboard contents. The reply, if
// the terminal sends one, arrives on its input stream.
func (t *Terminal) Query() error {
	return t.write(t.Sequence().Query())
}

func (t *Terminal) write(seq osc52.Sequence) (err error) {
	w, err := t.open()
	if err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to open output", err)
		return err
	}
	defer func() {
		if closeErr := w.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	n, err := seq.WriteTo(w)
	if err != nil {
		log.ErrorErr(log.CatClipboard, "Failed to write sequence", err, "bytes", n)
		return fmt.Errorf("writing osc52 sequence: %w", err)
	}
	log.Debug(log.CatClipboard, "Wrote sequence", "bytes", n)
	return nil
}
