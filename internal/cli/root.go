// Package cli provides the Cobra command structure for jamo.
package cli

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/gg582/hanjamo/internal/config"
	"github.com/gg582/hanjamo/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

var colorModes = []string{"auto", "always", "never"}

// NewRootCommand creates the root jamo command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "jamo",
		Short: "Convert between Hangul syllables, jamo and compatibility jamo",
		Long: `jamo converts Korean text between precomposed Hangul syllables,
positional conjoining jamo (U+1100 block) and Hangul Compatibility Jamo
(U+3130 block).

Text commands read their arguments, or standard input line by line when
no arguments are given. With --remote they ask a running "jamo serve"
instead and fall back to local conversion when it cannot be reached.`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.teardown()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&a.debug, "debug", false, "enable debug logging")
	flags.StringVar(&a.configPath, "config", config.DefaultPath(), "path to config file")
	flags.StringVar(&a.encoding, "encoding", config.EncodingUTF8, "text encoding of stdin and stdout: utf-8, euc-kr")
	flags.StringVar(&a.color, "color", "auto", "colorize output: auto, always, never")
	flags.BoolVar(&a.remote, "remote", false, "convert through a running jamo server")
	flags.StringVar(&a.socket, "socket", "", "unix socket of the jamo server (default from config)")

	rootCmd.AddCommand(newH2JCommand(a))
	rootCmd.AddCommand(newJ2HCJCommand(a))
	rootCmd.AddCommand(newHCJ2JCommand(a))
	rootCmd.AddCommand(newHangulifyCommand(a))
	rootCmd.AddCommand(newJ2HCommand(a))
	rootCmd.AddCommand(newInspectCommand(a))
	rootCmd.AddCommand(newTypeCommand(a))
	rootCmd.AddCommand(newServeCommand(a))
	rootCmd.AddCommand(newConfigCommand(a))
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	flags := cmd.Flags()
	if !flags.Changed("encoding") {
		a.encoding = cfg.Encoding
	}
	if !flags.Changed("socket") || a.socket == "" {
		a.socket = cfg.Socket
	}

	a.logger = logging.NewWriter(cmd.ErrOrStderr(), cfg.LogLevel)
	logging.SetDefault(a.logger)
	if a.debug {
		logging.SetLevel("debug")
	}
	cmd.SetContext(logging.WithLogger(cmd.Context(), a.logger))

	if !lo.Contains([]string{config.EncodingUTF8, config.EncodingEUCKR}, a.encoding) {
		return fmt.Errorf("unknown encoding %q (want utf-8 or euc-kr)", a.encoding)
	}
	if !lo.Contains(colorModes, a.color) {
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", a.color)
	}
	a.logger.Debug("configured",
		logging.FieldPath, a.configPath,
		logging.FieldEncoding, a.encoding,
		logging.FieldRemote, a.remote,
		logging.FieldSocket, a.socket,
	)
	return nil
}
