package root

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"mindprint/internal/engine"
	"mindprint/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show your latest result and persona model",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			sess, err := svc.SessionRepo().Latest(ctx, userFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconMind, "Mindprint Status"))
			if sess == nil {
				fmt.Fprintln(out, ui.Muted.Render("还没有测验记录，先运行 mp quiz。"))
				return nil
			}

			total, err := svc.SessionRepo().CountByUser(ctx, userFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.LabelValue("类型", ui.Gold.Render(sess.MBTI)))
			fmt.Fprintln(out, ui.LabelValue("测验时间", sess.CreatedAt.Format("2006-01-02 15:04")))
			fmt.Fprintln(out, ui.LabelValue("累计测验", total))
			fmt.Fprintln(out, "")

			var scores engine.DimensionScores
			if sess.Scores != nil && json.Unmarshal(sess.Scores, &scores) == nil {
				fmt.Fprintln(out, ui.H2.Render("📊 维度得分"))
				for _, dim := range engine.Dimensions {
					positive, negative := dim.Poles()
					fmt.Fprintf(out, "- %s %s %s %.2f\n", negative, ui.ScoreBar(scores[dim], 10), positive, scores[dim])
				}
				fmt.Fprintln(out, "")
			}

			var behavior engine.BehaviorStats
			if sess.Behavior != nil && json.Unmarshal(sess.Behavior, &behavior) == nil {
				fmt.Fprintln(out, ui.H2.Render("🧪 行为画像"))
				fmt.Fprintf(out, "- 极端度 %.2f · 一致性 %.2f · 中立率 %.2f · 反向敏感 %.2f\n",
					behavior.Extremity, behavior.Consistency, behavior.Neutrality, behavior.ReverseSensitivity)
				if behavior.CompletionPace != nil {
					fmt.Fprintf(out, "- 作答节奏 %.2f\n", *behavior.CompletionPace)
				}
				fmt.Fprintln(out, "")
			}

			persona, err := svc.Persona(ctx, userFlag)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.H2.Render("🎭 人格画像"))
			fmt.Fprintln(out, ui.LabelValue("原型", persona.Archetype))
			fmt.Fprintf(out, "- 稳定维度 %s · 脆弱维度 %s · 成长维度 %s\n",
				persona.StableDimension, persona.VulnerableDimension, persona.GrowthDimension)
			fmt.Fprintf(out, "- 矛盾指数 %.2f · 反思深度 %.2f · 置信度 %.2f\n",
				persona.ContradictionIndex, persona.ReflectionDepth, persona.Confidence)
			for _, driver := range persona.CoreDrivers {
				fmt.Fprintf(out, "- %s\n", ui.Muted.Render(driver))
			}

			return nil
		},
	}

	return cmd
}
