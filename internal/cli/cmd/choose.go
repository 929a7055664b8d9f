package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/cli/model"
)

var chooseURL string

var chooseCmd = &cobra.Command{
	Use:   "choose",
	Short: "Pick a profile in the terminal, then open the browser",
	Long: `Show the profile list in the terminal instead of the GTK chooser.

Profiles already open in another window cannot be picked. Quitting the
list (esc or q) exits without opening a window.`,
	Args: cobra.NoArgs,
	RunE: runChoose,
}

func init() {
	rootCmd.AddCommand(chooseCmd)
	chooseCmd.Flags().StringVar(&chooseURL, "url", "", "address to open instead of the home page")
}

func runChoose(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()

	infos, err := app.ProfilesUC.List(ctx, app.Config.Profiles.Root, app.Identities)
	if err != nil {
		return err
	}

	name, ok, err := model.RunChooser(ctx, app.Theme, app.Config.Window.Title, profileChoices(infos), tea.WithOutput(os.Stderr))
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return launchGUI(cmd.Context(), GUIOptions{Profile: name, URL: chooseURL})
}

func profileChoices(infos []usecase.ProfileInfo) []model.ProfileChoice {
	choices := make([]model.ProfileChoice, len(infos))
	for i, info := range infos {
		choices[i] = model.ProfileChoice{
			Name:      info.Identity.Name,
			Ephemeral: info.Identity.Ephemeral,
			Locked:    info.Locked,
		}
	}
	return choices
}
