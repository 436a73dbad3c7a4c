package root

import (
	"context"

	"github.com/spf13/cobra"

	"mindprint/internal/tui"
)

func newQuizCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Take an adaptive quiz in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunQuiz(ctx, svc, cmd.OutOrStdout(), userFlag, count)
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 36, "number of questions (20-60)")
	return cmd
}
