package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/pkg/jamo"
)

var inspectHeaders = []string{"CHAR", "CODEPOINT", "CLASS", "NAME", "PARTS", "HCJ"}

func newInspectCommand(a *app) *cobra.Command {
	var skipOther bool

	cmd := &cobra.Command{
		Use:   "inspect [TEXT...]",
		Short: "Show the codepoint, class and parts of every character",
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows [][]string
			err := a.lines(cmd, args, func(line string) error {
				for _, r := range line {
					row, ok := inspectRow(r)
					if !ok && skipOther {
						continue
					}
					rows = append(rows, row)
				}
				return nil
			})
			if err != nil {
				return err
			}

			st := newStyles(isColorEnabled(a.color, cmd.OutOrStdout()))
			return a.withOutput(cmd.OutOrStdout(), func(out io.Writer) error {
				_, err := fmt.Fprintln(out, renderInspect(rows, st))
				return err
			})
		},
	}
	cmd.Flags().BoolVar(&skipOther, "hangul-only", false, "leave out characters that are not Hangul")
	return cmd
}

// inspectRow describes r. ok is false for characters outside the Hangul
// blocks.
func inspectRow(r rune) (row []string, ok bool) {
	class := jamo.ClassOf(r).String()
	parts := jamo.DecomposeJamo(r)
	switch {
	case jamo.IsHangulChar(r):
		class = "syllable"
		s, _ := jamo.Decompose(r)
		parts = s.Runes()
	case jamo.ClassOf(r) == jamo.ClassNone && !jamo.IsHCJ(r):
		ok = false
		return []string{string(r), codepoint(r), "-", jamo.Name(r), "", ""}, ok
	}

	partText := ""
	if len(parts) > 1 || parts[0] != r {
		partText = strings.Join(lo.Map(parts, func(p rune, _ int) string {
			return fmt.Sprintf("%c %s", p, codepoint(p))
		}), " + ")
	}
	return []string{string(r), codepoint(r), class, jamo.Name(r), partText, jamo.J2HCJ(string(r))}, true
}

func codepoint(r rune) string {
	return fmt.Sprintf("U+%04X", r)
}

func renderInspect(rows [][]string, st styles) string {
	t := table.New().
		Headers(inspectHeaders...).
		Rows(rows...).
		BorderStyle(st.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			switch {
			case row == table.HeaderRow:
				return base.Inherit(st.Header)
			case col == 0:
				return base.Inherit(st.Char)
			case col == 2 && row >= 0 && row < len(rows):
				return base.Inherit(st.class(rows[row][2]))
			case col == 1 || col == 4:
				return base.Inherit(st.Dim)
			}
			return base
		})
	return t.Render()
}
