package cli

import (
	"github.com/spf13/cobra"
)

// Options are the flags shared by every subcommand.
type Options struct {
	Sink    string
	NoColor bool
	Verbose bool
}

// RootCmd returns the playground command with all subcommands attached.
func RootCmd() *cobra.Command {
	opts := &Options{}

	rootCmd := &cobra.Command{
		Use:   "playground",
		Short: "Walk through pure functions and purified logging",
		Long: `playground demonstrates how a logging side effect can be turned into data:
producers return a value together with a description of the logging they want,
Bind composes them, and only the interpreter performs the logging.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			installLogger(cmd.ErrOrStderr(), opts.Verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.Sink, "sink", SinkConsole,
		"where interpreted instructions go: console, plain, zap or handler")
	rootCmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored tags for the console sink")
	rootCmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(TourCmd(opts))
	rootCmd.AddCommand(EvalCmd(opts))

	return rootCmd
}
