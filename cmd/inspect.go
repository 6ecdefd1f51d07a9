package cmd

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SubtleTools/go-osc52/pkg/osc52"
)

// report is what inspect prints for one sequence.
type report struct {
	Operation osc52.Operation `yaml:"operation"`
	Mode      osc52.Mode      `yaml:"mode"`
	Clipboard osc52.Clipboard `yaml:"clipboard"`
	Limit     int             `yaml:"limit"`
	Payload   string          `yaml:"payload,omitempty"`
	Length    int             `yaml:"length"`
	Sequence  string          `yaml:"sequence"`
	Bytes     int             `yaml:"bytes"`
	Discarded bool            `yaml:"discarded,omitempty"`
}

// visible replaces the control bytes used by OSC52 with printable escapes.
var visible = strings.NewReplacer("\x1b", `\e`, "\x07", `\a`)

func newInspectCmd(a *app) *cobra.Command {
	var opName, format string

	cmd := &cobra.Command{
		Use:   "inspect [text...]",
		Short: "Print the escape sequence instead of sending it",
		Long: `Show the sequence osc52 would write for the current settings, with ESC
printed as \e and BEL as \a. Nothing is sent to the terminal.`,
		Example: `  osc52 inspect hello world
  osc52 --mode screen inspect --format yaml "$(cat notes.txt)"
  osc52 --mode tmux -p inspect --op query`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := osc52.ParseOperation(opName)
			if err != nil {
				return err
			}

			var text string
			if op == osc52.SetOperation {
				if text, err = readPayload(cmd, args); err != nil {
					return err
				}
			}

			term := a.terminal(cmd)
			seq := term.Sequence().SetString(text).Operation(op)
			rendered := seq.String()

			r := report{
				Operation: op,
				Mode:      term.Mode(),
				Clipboard: a.options().Target,
				Limit:     max(a.cfg.Limit, 0),
				Payload:   text,
				Length:    utf8.RuneCountInString(text),
				Sequence:  visible.Replace(rendered),
				Bytes:     len(rendered),
				Discarded: rendered == "",
			}

			switch format {
			case "yaml":
				return writeYAML(cmd.OutOrStdout(), r)
			case "text", "":
				return writeText(cmd.OutOrStdout(), r)
			default:
				return fmt.Errorf("unknown format %q (want text or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&opName, "op", "set", "operation: set, query or clear")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or yaml")
	return cmd
}

func writeYAML(w io.Writer, r report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return enc.Close()
}

func writeText(w io.Writer, r report) error {
	renderer := lipgloss.NewRenderer(w)
	keyStyle := renderer.NewStyle().Bold(true).Width(11)
	valueStyle := renderer.NewStyle().Foreground(lipgloss.Color("#54A0FF"))
	warnStyle := renderer.NewStyle().Foreground(lipgloss.Color("#FF8787"))

	line := func(key, value string) string {
		return keyStyle.Render(key) + valueStyle.Render(value)
	}

	lines := []string{
		line("operation", r.Operation.String()),
		line("mode", r.Mode.String()),
		line("clipboard", r.Clipboard.String()),
		line("limit", fmt.Sprint(r.Limit)),
	}
	if r.Operation == osc52.SetOperation {
		lines = append(lines, line("length", fmt.Sprint(r.Length)))
	}
	if r.Discarded {
		lines = append(lines, keyStyle.Render("sequence")+warnStyle.Render("(empty: payload exceeds limit)"))
	} else {
		lines = append(lines, line("sequence", r.Sequence))
	}
	lines = append(lines, line("bytes", fmt.Sprint(r.Bytes)))

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
