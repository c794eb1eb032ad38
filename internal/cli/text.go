package cli

import (
	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/internal/server"
	"github.com/gg582/hanjamo/pkg/jamo"
)

func newH2JCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "h2j [TEXT...]",
		Aliases: []string{"decompose"},
		Short:   "Split Hangul syllables into positional jamo",
		Example: `  jamo h2j 한국어
  echo 한글 | jamo h2j`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOp(cmd, args, server.OpH2J)
		},
	}
}

func newJ2HCJCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "j2hcj [TEXT...]",
		Short: "Rewrite syllables and positional jamo as compatibility jamo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOp(cmd, args, server.OpJ2HCJ)
		},
	}
}

func newHangulifyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "hangulify [TEXT...]",
		Aliases: []string{"compose"},
		Short:   "Collapse runs of jamo or compatibility jamo into syllables",
		Long: `Collapse runs of lead, vowel and optional tail into precomposed syllables.
Positional jamo and compatibility jamo may be mixed. A consonant that can
both close a syllable and open the next one opens the next one when a
vowel follows it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runOp(cmd, args, server.OpHangulify)
		},
	}
}

func newHCJ2JCommand(a *app) *cobra.Command {
	var role string

	cmd := &cobra.Command{
		Use:   "hcj2j [TEXT...]",
		Short: "Resolve compatibility jamo to positional jamo of one role",
		Long: `Resolve every compatibility jamo to the positional jamo it stands for.
Consonants need --role lead or --role tail; vowels resolve without a role.
The first letter that has no form in the requested role is an error.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("role") {
				role = a.cfg.Role
			}
			class, err := jamo.ParseClass(role)
			if err != nil {
				return err
			}
			op := server.OpHCJ2J
			if class != jamo.ClassNone {
				op += ":" + class.String()
			}
			return a.runOp(cmd, args, op)
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "role of consonants: lead or tail")
	return cmd
}
