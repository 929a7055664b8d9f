// Package cmd provides the Cobra command tree of bmb.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/bmb/internal/cli"
	"github.com/bnema/bmb/internal/domain/build"
)

// GUIOptions is what the default command hands to the GUI.
type GUIOptions struct {
	// Profile skips the chooser when set.
	Profile string
	// URL replaces the home page in the first tab.
	URL string
}

// GUIRunner starts the graphical browser and returns its exit code.
type GUIRunner func(ctx context.Context, app *cli.App, opts GUIOptions) int

// ExitError carries a non-zero exit code without an extra message.
type ExitError struct {
	Code int
}

func (e ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

var (
	app       *cli.App
	buildInfo build.Info
	guiRunner GUIRunner

	rootProfile string
	rootURL     string

	rootCmd = &cobra.Command{
		Use:   "bmb",
		Short: "A minimal browser with isolated profiles",
		Long: `bmb - a minimal WebKitGTK browser shell.

Each profile keeps its own cookies, cache, storage and history in a separate
directory. The ephemeral profile keeps everything in memory.

Run without arguments to pick a profile and open a browser window, or
explore the subcommands to inspect profiles and history.`,
		Example: `  bmb                            # choose a profile, then browse
  bmb -p user2                   # open user2 directly
  bmb -p indigo --url example.com`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp()
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return launchGUI(cmd.Context(), GUIOptions{Profile: rootProfile, URL: rootURL})
		},
	}
)

func init() {
	rootCmd.Flags().StringVarP(&rootProfile, "profile", "p", "", "open this profile without the chooser")
	rootCmd.Flags().StringVar(&rootURL, "url", "", "address to open instead of the home page")
}

// launchGUI validates opts and hands over to the GUI runner.
func launchGUI(ctx context.Context, opts GUIOptions) error {
	if guiRunner == nil {
		return errors.New("no graphical front-end in this build")
	}
	if opts.Profile != "" {
		if _, err := app.Identities.Lookup(opts.Profile); err != nil {
			return err
		}
	}
	if code := guiRunner(ctx, app, opts); code != 0 {
		return ExitError{Code: code}
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	var exitErr ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	return 1
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
	rootCmd.SetVersionTemplate(info.Short() + "\n")
}

// SetGUIRunner installs the function the default command starts the browser with.
func SetGUIRunner(r GUIRunner) {
	guiRunner = r
}
