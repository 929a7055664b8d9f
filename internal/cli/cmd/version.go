package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bmb/internal/cli/styles"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			fmt.Fprintln(cmd.OutOrStdout(), buildInfo.Short())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(styles.NewTheme()).Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "print only the version")
}
