package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/bootstrap"
	"github.com/bnema/bmb/internal/cli"
	"github.com/bnema/bmb/internal/cli/cmd"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/build"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
	"github.com/bnema/bmb/internal/ui"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func init() {
	// GTK must be driven from the thread that started it.
	runtime.LockOSThread()
}

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.SetGUIRunner(runGUI)

	os.Exit(cmd.Execute(context.Background()))
}

func runGUI(ctx context.Context, app *cli.App, opts cmd.GUIOptions) int {
	timer := bootstrap.NewStartupTimer()
	cfg := app.Config

	ctx, logCleanup := bootstrap.NewContext(ctx, cfg.Logging, "bmb.log")
	defer logCleanup()
	ctx = logging.WithRun(ctx, logging.GenerateRunID())
	log := logging.FromContext(ctx)
	timer.Mark("logger")
	logResourceLimits(ctx)

	var identity *profile.Identity
	if opts.Profile != "" {
		id, err := app.Identities.Lookup(opts.Profile)
		if err != nil {
			log.Error().Err(err).Msg("invalid profile")
			return 1
		}
		identity = &id
	}

	pagesDir, err := config.GetPagesDir()
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve pages directory")
		return 1
	}

	openUC := app.OpenProfileUseCase()
	result, err := bootstrap.RunParallelInit(ctx, bootstrap.StartupInput{
		Config:   cfg,
		PagesDir: pagesDir,
		Identity: identity,
		OpenUC:   openUC,
	}, timer)
	if err != nil {
		reportStartupError(ctx, err)
		return 1
	}

	uiApp, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: app.ConfigManager,
		Identities:    app.Identities,
		Profile:       result.Profile,
		InitialURL:    opts.URL,
		Pages:         result.Pages,
		OpenProfileUC: openUC,
		FileSystem:    app.FileSystem,
	})
	if err != nil {
		_ = result.Profile.Close()
		log.Error().Err(err).Msg("failed to create application")
		return 1
	}
	timer.Mark("ui_deps")
	timer.Log(ctx, zerolog.DebugLevel)

	setupSignalHandler(ctx, uiApp)

	// GTK parses its own arguments; cobra already consumed ours.
	return uiApp.Run(os.Args[:1])
}

func reportStartupError(ctx context.Context, err error) {
	logging.FromContext(ctx).Error().Err(err).Msg("startup failed")
	if errors.Is(err, profile.ErrProfileInUse) {
		fmt.Fprintln(os.Stderr, "This profile is already open in another bmb window.")
	}
}

func setupSignalHandler(ctx context.Context, app *ui.App) {
	log := logging.FromContext(ctx)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		signal.Stop(sigCh)
		log.Info().Str("signal", sig.String()).Msg("received interrupt, quitting")
		app.Quit()
	}()
}
