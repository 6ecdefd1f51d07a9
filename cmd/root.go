// Package cmd implements the osc52 command line interface.
package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/SubtleTools/go-osc52/internal/clipboard"
	"github.com/SubtleTools/go-osc52/internal/config"
	"github.com/SubtleTools/go-osc52/internal/log"
	"github.com/SubtleTools/go-osc52/pkg/osc52"
)

// app carries state shared by all commands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	opener clipboard.Opener
	getenv func(string) string

	cfgFile string
	primary bool
}

// Execute runs the root command with os.Args.
func Execute() error {
	return newRootCmd(&app{getenv: os.Getenv}).Execute()
}

func newRootCmd(a *app) *cobra.Command {
	if a.v == nil {
		a.v = viper.New()
	}
	if a.getenv == nil {
		a.getenv = os.Getenv
	}

	rootCmd := &cobra.Command{
		Use:   "osc52",
		Short: "Copy to the terminal clipboard with OSC52 escape sequences",
		Long: `osc52 writes OSC52 escape sequences that ask the terminal emulator to set,
query or clear its clipboard. It works over SSH and inside tmux or GNU screen
without any native clipboard tool.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return log.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/osc52/config.yaml)")
	flags.String("mode", "", "escape mode: default, screen, tmux or auto")
	flags.String("clipboard", "", "clipboard buffer: system or primary")
	flags.BoolVarP(&a.primary, "primary", "p", false, "use the X11 primary selection")
	flags.Int("limit", 0, "maximum payload length in characters (0 = no limit)")
	flags.StringP("output", "o", "", `where to write sequences ("-" for stdout)`)
	flags.Bool("debug", false, "enable debug logging")
	flags.String("log-file", "", "log file path")

	for key, name := range map[string]string{
		"mode":      "mode",
		"clipboard": "clipboard",
		"limit":     "limit",
		"output":    "output",
		"debug":     "debug",
		"log_file":  "log-file",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(name))
	}

	rootCmd.AddCommand(
		newCopyCmd(a),
		newQueryCmd(a),
		newClearCmd(a),
		newInspectCmd(a),
		newInitConfigCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	if a.primary {
		cfg.Clipboard = osc52.PrimaryClipboard.String()
	}
	a.cfg = cfg

	logFile := cfg.LogFile
	if cfg.Debug && logFile == "" {
		logFile = filepath.Join(os.TempDir(), "osc52.log")
	}
	if err := log.Init(logFile, cfg.Debug); err != nil {
		return err
	}
	log.Debug(log.CatConfig, "Loaded config",
		"mode", cfg.Mode, "clipboard", cfg.Clipboard, "limit", cfg.Limit, "output", cfg.Output)
	return nil
}

// options converts the loaded config into clipboard options. The config has
// already been validated, so parse errors cannot occur here.
func (a *app) options() clipboard.Options {
	opts := clipboard.Options{Limit: a.cfg.Limit}
	if strings.EqualFold(strings.TrimSpace(a.cfg.Mode), config.ModeAuto) {
		opts.AutoDetect = true
	} else {
		opts.Mode, _ = osc52.ParseMode(a.cfg.Mode)
	}
	opts.Target, _ = osc52.ParseClipboard(a.cfg.Clipboard)
	return opts
}

func (a *app) terminal(cmd *cobra.Command) *clipboard.Terminal {
	open := a.opener
	if open == nil {
		if a.cfg.Output == "-" {
			open = clipboard.WriterOpener(cmd.OutOrStdout())
		} else {
			open = clipboard.FileOpener(a.cfg.Output)
		}
	}
	return clipboard.NewTerminal(a.options(), clipboard.WithOpener(open), clipboard.WithGetenv(a.getenv))
}

// readPayload returns args joined by a space, or all of stdin when no
// arguments are given.
func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
