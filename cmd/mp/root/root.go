package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mindprint/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "mp",
	Short:         "Mindprint: adaptive personality quiz with a generative identity",
	Long:          "Mindprint is a local-first CLI/TUI personality lab: adaptive Likert quizzes, trend coaching, and a deterministic avatar and pet derived from your answers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "", "path to the sqlite database (default ~/.mindprint.db)")
	rootCmd.PersistentFlags().StringVarP(&userFlag, "user", "u", "main_user", "user id to act as")

	rootCmd.AddCommand(
		newQuizCmd(),
		newStatusCmd(),
		newTimelineCmd(),
		newAvatarCmd(),
		newPetCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
