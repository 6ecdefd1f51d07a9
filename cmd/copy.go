package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SubtleTools/go-osc52/internal/clipboard"
	"github.com/SubtleTools/go-osc52/internal/log"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [text...]",
		Short: "Copy text to the clipboard",
		Long: `Copy the arguments, joined by single spaces, to the clipboard.
With no arguments the text is read from stdin.`,
		Example: `  osc52 copy hello world
  git rev-parse HEAD | osc52 copy
  osc52 --mode tmux --primary copy "selected text"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readPayload(cmd, args)
			if err != nil {
				return err
			}

			log.Debug(log.CatCLI, "Copying", "length", len(text))
			if err := a.terminal(cmd).Copy(text); err != nil {
				if errors.Is(err, clipboard.ErrPayloadTooLarge) {
					return fmt.Errorf("%w (limit %d)", err, a.cfg.Limit)
				}
				return err
			}
			return nil
		},
	}
}

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query",
		Short: "Ask the terminal to report the clipboard contents",
		Long: `Send an OSC52 query. Terminals that allow clipboard reads answer on their
input stream; osc52 does not read or decode the reply.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.terminal(cmd).Query()
		},
	}
}

func newClearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the clipboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.terminal(cmd).Clear()
		},
	}
}
