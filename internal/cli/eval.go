package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/on-the-ground/purify_go/effects"
	"github.com/on-the-ground/purify_go/internal/playground"
)

// EvalCmd returns the eval command
func EvalCmd(opts *Options) *cobra.Command {
	var negate bool

	cmd := &cobra.Command{
		Use:   "eval X Y",
		Short: "Sum two integers, optionally negate, then interpret the description",
		Long: `Build Sum(X, Y), optionally Bind it to Neg, print the resulting description,
then run the interpreter over it and print the bare result.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid X %q: %w", args[0], err)
			}
			y, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid Y %q: %w", args[1], err)
			}

			program := playground.Sum(x, y)
			if negate {
				program = effects.Bind(program, playground.Neg)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "description: %s\n", effects.Describe(program.Log))

			ctx, sink, closeSink, err := openSink(cmd.Context(), out, opts)
			if err != nil {
				return err
			}
			defer closeSink()

			result, err := effects.Run(ctx, sink, program)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "result: %d\n", result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&negate, "neg", "n", false, "Bind the sum to Neg")

	return cmd
}
