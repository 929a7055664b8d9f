package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/cli/styles"
	"github.com/bnema/bmb/internal/domain/profile"
)

var purgeYes bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List profiles and their storage",
	Long: `List every configured profile with its kind, storage directory,
size on disk and whether a browser window currently holds it.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

var profilesPurgeCmd = &cobra.Command{
	Use:   "purge NAME",
	Short: "Delete the stored data of a persistent profile",
	Long: `Delete the storage directory of a persistent profile: cookies, cache,
local storage and history.

A profile that is open in a browser window cannot be purged.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfilesPurge,
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesPurgeCmd)
	profilesPurgeCmd.Flags().BoolVarP(&purgeYes, "yes", "y", false, "confirm the deletion")
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	infos, err := app.ProfilesUC.List(app.Ctx(), app.Config.Profiles.Root, app.Identities)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderProfiles(app.Theme, infos))
	return nil
}

func runProfilesPurge(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	t := app.Theme

	id, err := app.Identities.Lookup(args[0])
	if err != nil {
		return err
	}
	if !purgeYes {
		return fmt.Errorf("refusing to delete %s without --yes", id.Name)
	}

	err = app.ProfilesUC.Purge(app.Ctx(), app.Config.Profiles.Root, id)
	switch {
	case errors.Is(err, profile.ErrProfileInUse):
		return fmt.Errorf("%s is open in a browser window, close it first", id.Name)
	case errors.Is(err, usecase.ErrEphemeralProfile):
		fmt.Fprintln(cmd.OutOrStdout(), t.Subtle.Render(id.Name + " is ephemeral and keeps nothing on disk"))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), t.SuccessStyle.Render("Purged " + id.Name))
	return nil
}
