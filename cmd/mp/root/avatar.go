package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindprint/internal/avatar"
	"mindprint/internal/ui"
)

func newAvatarCmd() *cobra.Command {
	var (
		outPath    string
		regenerate bool
	)

	cmd := &cobra.Command{
		Use:   "avatar",
		Short: "Show or export your line-art avatar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			var record *avatar.Record
			if regenerate {
				record, err = svc.RegenerateAvatar(ctx, userFlag, avatar.RegenerateUserRequested)
			} else {
				record, err = svc.LatestAvatar(ctx, userFlag)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconAvatar, "Avatar"))
			fmt.Fprintln(out, ui.LabelValue("类型", record.Config.MBTI))
			fmt.Fprintln(out, ui.LabelValue("风格", string(record.Config.StyleProfileID)))
			fmt.Fprintln(out, ui.LabelValue("姿势", string(record.Config.PoseID)))
			fmt.Fprintln(out, ui.LabelValue("配饰", fmt.Sprintf("%v", record.Config.Accessories)))
			fmt.Fprintln(out, ui.LabelValue("背景符号", record.Config.BackgroundGlyph))
			fmt.Fprintln(out, ui.LabelValue("配色", fmt.Sprintf("%s / %s", record.Config.Palette.Stroke, record.Config.Palette.Accent)))
			fmt.Fprintln(out, ui.LabelValue("变体", record.Config.Variant))

			if outPath != "" {
				if err := os.WriteFile(outPath, []byte(record.SVG), 0o644); err != nil {
					return fmt.Errorf("write svg: %w", err)
				}
				fmt.Fprintln(out, ui.Good.Render("已导出 "+outPath))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the SVG to a file")
	cmd.Flags().BoolVar(&regenerate, "regenerate", false, "reroll style/pose/accessories into the next variant")
	return cmd
}
