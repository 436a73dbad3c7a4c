package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"mindprint/internal/ui"
)

func newPetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pet",
		Short: "Show the companion pet derived from your latest session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			pet, err := svc.LatestPet(ctx, userFlag)
			if err != nil {
				return err
			}

			fmt.Fprintln(out, ui.Heading(ui.IconPet, "Companion Pet"))
			fmt.Fprintln(out, ui.LabelValue("物种", string(pet.Species)))
			fmt.Fprintln(out, ui.LabelValue("情绪", string(pet.Mood)))
			fmt.Fprintln(out, ui.LabelValue("特质", pet.FeatureTag))
			fmt.Fprintln(out, ui.LabelValue("眼睛", fmt.Sprintf("%s ×%.2f", pet.EyeStyle, pet.EyeScale)))
			fmt.Fprintln(out, ui.LabelValue("比例", fmt.Sprintf("头 %.2f / 身 %.2f / 肢 %.2f", pet.HeadScale, pet.BodyScale, pet.LimbScale)))
			if pet.Accessory != "none" {
				fmt.Fprintln(out, ui.LabelValue("配饰", pet.Accessory))
			}
			fmt.Fprintln(out, ui.LabelValue("光环", pet.AuraStyle))
			fmt.Fprintln(out, ui.LabelValue("配色", fmt.Sprintf("%s / %s / %s", pet.Palette.Body, pet.Palette.Accent, pet.Palette.Aura)))
			fmt.Fprintln(out, ui.Dim.Render("seed "+pet.Seed))
			return nil
		},
	}
}
