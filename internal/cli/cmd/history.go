package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/bmb/internal/cli"
	"github.com/bnema/bmb/internal/cli/styles"
)

var (
	historyLimit int
	historyClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history PROFILE",
	Short: "Show or clear the browsing history of a profile",
	Long: `List the most recently visited addresses of a persistent profile.

The ephemeral profile keeps no history.`,
	Example: `  bmb history user1
  bmb history user1 --limit 50
  bmb history user1 --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "number of entries (default from history.list_limit)")
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "delete all history of the profile")
}

func runHistory(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	t := app.Theme
	name := args[0]

	store, err := app.OpenHistory(ctx, name)
	if errors.Is(err, cli.ErrNoHistory) {
		fmt.Fprintln(cmd.OutOrStdout(), t.Subtle.Render("No history recorded for " + name))
		return nil
	}
	if err != nil {
		return err
	}
	defer store.Close()

	if historyClear {
		if err := store.Clear(ctx); err != nil {
			return fmt.Errorf("clear history: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.SuccessStyle.Render("Cleared history of " + name))
		return nil
	}

	limit := historyLimit
	if limit <= 0 {
		limit = app.Config.History.ListLimit
	}
	entries, err := store.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("list history: %w", err)
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), t.Subtle.Render("No history recorded for " + name))
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.RenderHistory(t, entries))
	if stats, err := store.Stats(ctx); err == nil {
		fmt.Fprintln(out, styles.RenderHistoryStats(t, stats))
	}
	return nil
}
