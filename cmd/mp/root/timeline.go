package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindprint/internal/ui"
)

func newTimelineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show trend diagnostics and weekly coaching advice",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			analysis, advice, err := svc.Trend(ctx, userFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Mindprint Timeline"))
			fmt.Fprintln(out, ui.Muted.Render(analysis.Summary))
			fmt.Fprintln(out, "")

			if len(analysis.Insights) > 0 {
				fmt.Fprintln(out, ui.H2.Render("📐 趋势指标"))
				for _, insight := range analysis.Insights {
					fmt.Fprintf(out, "- %s %.4f (%s) %s\n",
						ui.Key.Render(insight.Label), insight.Value, ui.LevelText(string(insight.Level)), insight.Summary)
				}
				fmt.Fprintln(out, "")
			}

			if primary := analysis.PrimaryWeakness; primary != nil {
				fmt.Fprintln(out, ui.H2.Render("🎯 核心弱点"))
				fmt.Fprintf(out, "- [%s] %s\n", primary.Dimension, ui.Warn.Render(primary.WeaknessTitle))
				fmt.Fprintf(out, "  %s\n", ui.Muted.Render(primary.WeaknessDetail))
				fmt.Fprintln(out, "")
			}

			fmt.Fprintln(out, ui.H2.Render("🧭 行动建议"))
			for _, action := range advice.ActionSuggestions {
				fmt.Fprintf(out, "- %s\n", action)
			}
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.LabelValue("反思问题", advice.ReflectionQuestion))
			fmt.Fprintln(out, "")
			fmt.Fprintln(out, ui.H2.Render("📅 七日微计划"))
			for _, day := range advice.MicroPlan {
				fmt.Fprintf(out, "- %s\n", day)
			}

			return nil
		},
	}

	return cmd
}
