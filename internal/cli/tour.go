package cli

import (
	"github.com/spf13/cobra"

	"github.com/on-the-ground/purify_go/internal/playground"
)

// TourCmd returns the tour command
func TourCmd(opts *Options) *cobra.Command {
	return &cobra.Command{
		Use:   "tour",
		Short: "Run every step of the tutorial in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx, sink, closeSink, err := openSink(cmd.Context(), out, opts)
			if err != nil {
				return err
			}
			defer closeSink()

			return playground.Tour(ctx, out, sink)
		},
	}
}
