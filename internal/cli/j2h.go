package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/pkg/jamo"
)

func newJ2HCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "j2h LEAD VOWEL [TAIL]",
		Short: "Synthesize one syllable from its jamo",
		Long: `Synthesize one syllable. Each part is a positional or compatibility jamo,
or its codepoint written as U+XXXX, 0xXXXX or a decimal number. A tail of
0 means no tail.`,
		Example: `  jamo j2h ㅎ ㅏ ㄴ
  jamo j2h U+1112 0x1161 4523`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts := []jamo.Part{jamo.NoTail, jamo.NoTail, jamo.NoTail}
			for i, arg := range args {
				part, err := parsePart(arg)
				if err != nil {
					return err
				}
				parts[i] = part
			}
			syllable, err := jamo.J2H(parts[0], parts[1], parts[2])
			if err != nil {
				return err
			}
			return a.withOutput(cmd.OutOrStdout(), func(out io.Writer) error {
				_, err := fmt.Fprintln(out, string(syllable))
				return err
			})
		},
	}
}

// parsePart reads one synthesis argument. A lone character is a Char;
// anything else must be a codepoint.
func parsePart(arg string) (jamo.Part, error) {
	if utf8.RuneCountInString(arg) == 1 && (arg[0] < '0' || arg[0] > '9') {
		r, _ := utf8.DecodeRuneInString(arg)
		return jamo.Char(r), nil
	}

	var (
		digits = arg
		base   = 10
	)
	switch upper := strings.ToUpper(arg); {
	case strings.HasPrefix(upper, "U+"), strings.HasPrefix(upper, "0X"):
		digits, base = arg[2:], 16
	}
	cp, err := strconv.ParseInt(digits, base, 32)
	if err != nil {
		return jamo.Part{}, fmt.Errorf("cannot read %q as a jamo or codepoint", arg)
	}
	return jamo.Codepoint(int(cp)), nil
}
