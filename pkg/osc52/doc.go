// Package osc52 builds OSC52 terminal escape sequences that ask the terminal
// emulator to set, query, or clear a clipboard buffer.
//
// A [Sequence] is an immutable value. Every method returns an updated copy,
// so sequences can be shared between goroutines and derived from one another
// freely:
//
//	base := osc52.New("hello world")
//	fmt.Print(base)                  // system clipboard, no escaping
//	fmt.Print(base.Primary().Tmux()) // X11 primary selection through tmux
//
// # Wire Format
//
// The rendered sequence is
//
//	ESC ] 52 ; <clipboard> ; <data> BEL
//
// where <clipboard> is "c" for the system clipboard or "p" for the primary
// selection, and <data> is the base64 of the payload ([SetOperation]), "?"
// ([QueryOperation]) or "!" ([ClearOperation]).
//
// # Terminal Multiplexers
//
// tmux and GNU screen do not forward OSC52 on their own. [TmuxMode] wraps the
// sequence in a tmux DCS passthrough (requires `allow-passthrough on`; not
// needed when tmux runs with `set-clipboard on`). [ScreenMode] wraps it in a
// plain DCS and splits the base64 payload into chunks of [ScreenChunkSize]
// characters, because screen caps the length of a single DCS string.
//
// # Limits
//
// Terminals cap how much data they accept in one sequence. [Sequence.Limit]
// sets a maximum payload length in characters; a set sequence whose payload
// is longer renders as the empty string, so nothing partial ever reaches the
// terminal.
//
// # Delivery
//
// [Sequence.WriteTo] writes the rendered bytes to any [io.Writer] with a
// single Write call:
//
//	if _, err := osc52.New("copied!").WriteTo(os.Stderr); err != nil {
//	    return err
//	}
//
// Replies to [Query] sequences arrive on the terminal's input and are not
// decoded by this package.
package osc52
