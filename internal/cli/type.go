package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/eiannone/keyboard"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/internal/common"
	"github.com/gg582/hanjamo/internal/config"
	"github.com/gg582/hanjamo/internal/ime"
	"github.com/gg582/hanjamo/internal/logging"
	"github.com/gg582/hanjamo/internal/server"
	"github.com/gg582/hanjamo/pkg/jamo"
)

func newTypeCommand(a *app) *cobra.Command {
	var (
		keys   string
		layout string
		form   string
	)

	cmd := &cobra.Command{
		Use:   "type",
		Short: "Turn keystrokes of a Korean keyboard layout into Hangul",
		Long: `Replay Latin keystrokes through a Korean input method. With --keys the
keys are taken from the flag; on a terminal jamo type reads keys live until
Esc or Ctrl+C; otherwise every line of standard input is one key sequence.

--form chooses how the result is written: syllables, positional jamo or
compatibility jamo.`,
		Example: `  jamo type --keys dkssudgktpdy
  jamo type --keys gksrmf --form hcj`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			if !flags.Changed("layout") {
				layout = a.cfg.Layout
			}
			if !flags.Changed("form") {
				form = a.cfg.Form
			}
			if !lo.Contains([]string{config.FormSyllable, config.FormJamo, config.FormHCJ}, form) {
				return fmt.Errorf("unknown form %q (want syllable, jamo or hcj)", form)
			}
			l, err := ime.LayoutByName(layout)
			if err != nil {
				return err
			}
			logger := logging.FromContext(cmd.Context()).With(logging.FieldLayout, l.Name())

			return a.withOutput(cmd.OutOrStdout(), func(out io.Writer) error {
				switch {
				case flags.Changed("keys"):
					return a.typeLine(out, l, form, keys)
				case isTerminal(cmd.InOrStdin()):
					logger.Debug("interactive typing")
					if err := keyboard.Open(); err != nil {
						return fmt.Errorf("open keyboard: %w", err)
					}
					defer keyboard.Close()
					st := newStyles(isColorEnabled(a.color, cmd.OutOrStdout()))
					return runInteractive(terminalKeys{}, ime.NewEditor(l), out, form, st)
				default:
					return a.lines(cmd, nil, func(line string) error {
						return a.typeLine(out, l, form, line)
					})
				}
			})
		},
	}
	cmd.Flags().StringVar(&keys, "keys", "", "key sequence to type")
	cmd.Flags().StringVar(&layout, "layout", "",
		"keyboard layout: "+strings.Join(common.AvailableLayouts(), ", ")+" (default from config)")
	cmd.Flags().StringVar(&form, "form", "", "output form: syllable, jamo or hcj (default from config)")
	return cmd
}

func (a *app) typeLine(out io.Writer, l ime.Layout, form, keys string) error {
	typed, err := a.transcode(server.OpType+":"+l.Name(), keys)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, render(typed, form))
	return err
}

// render writes typed text in the requested output form.
func render(text, form string) string {
	switch form {
	case config.FormJamo:
		return jamo.H2J(text)
	case config.FormHCJ:
		return jamo.J2HCJ(text)
	default:
		return text
	}
}

type keySource interface {
	GetKey() (rune, keyboard.Key, error)
}

type terminalKeys struct{}

func (terminalKeys) GetKey() (rune, keyboard.Key, error) {
	return keyboard.GetKey()
}

// runInteractive echoes the line being typed and writes each finished
// line on Enter. Esc, Ctrl+C and Ctrl+D end the session.
func runInteractive(keys keySource, editor *ime.Editor, out io.Writer, form string, st styles) error {
	w := bufio.NewWriter(out)
	defer w.Flush()

	redraw := func() error {
		if _, err := fmt.Fprintf(w, "\r\x1b[K%s", st.Preedit.Render(render(editor.Text(), form))); err != nil {
			return err
		}
		return w.Flush()
	}

	for {
		char, key, err := keys.GetKey()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		switch key {
		case keyboard.KeyEsc, keyboard.KeyCtrlC, keyboard.KeyCtrlD:
			return finishLine(w, editor, form)
		case keyboard.KeyEnter:
			if _, err := fmt.Fprintf(w, "\r\x1b[K%s\r\n", render(editor.Enter(), form)); err != nil {
				return err
			}
		case keyboard.KeyBackspace, keyboard.KeyBackspace2:
			editor.Backspace()
		case keyboard.KeySpace:
			editor.AppendLiteral(' ')
		default:
			if char == 0 {
				continue
			}
			editor.TypeKey(char)
		}
		if err := redraw(); err != nil {
			return err
		}
	}
	return finishLine(w, editor, form)
}

func finishLine(w io.Writer, editor *ime.Editor, form string) error {
	line := editor.Enter()
	if line == "" {
		_, err := fmt.Fprint(w, "\r\x1b[K")
		return err
	}
	_, err := fmt.Fprintf(w, "\r\x1b[K%s\r\n", render(line, form))
	return err
}
