package ui

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/infrastructure/webkit"
	"github.com/bnema/bmb/internal/logging"
	"github.com/bnema/bmb/internal/ui/chooser"
	"github.com/bnema/bmb/internal/ui/coordinator"
	"github.com/bnema/bmb/internal/ui/input"
	"github.com/bnema/bmb/internal/ui/mainloop"
	"github.com/bnema/bmb/internal/ui/window"
)

const (
	// AppID is the application identifier for GTK.
	AppID = "io.github.bnema.bmb"

	configReloadKey = "config-reload"
)

// App wraps the GTK Application: it shows the chooser when needed, then
// one browser window bound to the chosen profile.
type App struct {
	deps   *Dependencies
	gtkApp *gtk.Application

	chooser    *chooser.Chooser
	profile    *usecase.OpenedProfile
	session    *webkit.Session
	mainWindow *window.MainWindow
	coord      *coordinator.BrowserCoordinator
	keyboard   *input.KeyboardHandler
	reloads    *mainloop.Coalescer

	exitCode int
	cancel   context.CancelCauseFunc
	ctx      context.Context
}

// New creates a new App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancelCause(deps.Ctx)
	return &App{
		deps:    deps,
		profile: deps.Profile,
		reloads: mainloop.NewCoalescer(mainloop.IdlePost),
		cancel:  cancel,
		ctx:     ctx,
	}, nil
}

func gtkApplicationFlags() gio.ApplicationFlags {
	// One process per window: each holds its own profile lock.
	return gio.ApplicationNonUnique
}

// Run starts the GTK application and blocks until it exits.
// Returns the exit code.
func (a *App) Run(args []string) int {
	ctx := a.ctx
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating GTK application")

	a.gtkApp = gtk.NewApplication(AppID, gtkApplicationFlags())
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	log.Info().Msg("starting GTK main loop")
	if code := a.gtkApp.Run(args); code != 0 {
		return code
	}
	return a.exitCode
}

// onActivate is called when the GTK application is activated.
func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	if a.profile != nil {
		a.openBrowser(ctx, a.profile)
		return
	}

	log.Debug().Msg("no profile given, showing chooser")
	a.chooser = chooser.New(ctx, a.gtkApp, a.deps.Config.Window.Title, a.deps.Identities.All(), func(id profile.Identity) {
		a.onProfileChosen(ctx, id)
	})
	a.chooser.Show()
}

func (a *App) onProfileChosen(ctx context.Context, id profile.Identity) {
	opened, err := a.deps.OpenProfileUC.Execute(ctx, usecase.OpenProfileInput{
		Root:           a.deps.Config.Profiles.Root,
		Identity:       id,
		HistoryEnabled: a.deps.Config.History.Enabled,
	})
	if err != nil {
		a.fail(ctx, err, "failed to open profile")
		return
	}
	a.profile = opened
	a.openBrowser(ctx, opened)
}

// openBrowser builds the window, its coordinator and the engine session.
func (a *App) openBrowser(ctx context.Context, opened *usecase.OpenedProfile) {
	cfg := a.deps.Config
	id := opened.Storage.Identity
	ctx = logging.WithProfile(ctx, id.Name)
	log := logging.FromContext(ctx)

	session, err := webkit.NewSession(ctx, opened.Storage, cfg.Engine)
	if err != nil {
		a.fail(ctx, err, "failed to create engine session")
		return
	}
	a.session = session

	mw, err := window.New(ctx, a.gtkApp, windowOptions(cfg, id))
	if err != nil {
		a.fail(ctx, err, "failed to create main window")
		return
	}
	a.mainWindow = mw

	a.coord = coordinator.NewBrowserCoordinator(ctx, browserConfig(a.deps, opened, session.Factory(), mw))
	mw.Bind(ctx, a.coord)
	session.HandleDownloads(ctx, a.coord, a.coord)

	a.keyboard = input.NewKeyboardHandler(ctx, cfg.Keys, a.coord.HandleAction)
	a.keyboard.AttachTo(mw.Window())

	mw.Window().ConnectCloseRequest(func() bool {
		a.coord.Close(ctx)
		return false
	})

	if err := a.coord.Start(ctx, a.deps.InitialURL); err != nil {
		a.fail(ctx, err, "failed to open first tab")
		mw.Close()
		return
	}

	mw.Show()
	log.Info().Bool("ephemeral", id.Ephemeral).Msg("browser window displayed")

	a.initConfigWatcher(ctx, id)
}

func windowOptions(cfg *config.Config, id profile.Identity) window.Options {
	return window.Options{
		Title:  profile.WindowTitle(cfg.Window.Title, id),
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
	}
}

func browserConfig(
	deps *Dependencies,
	opened *usecase.OpenedProfile,
	surfaces *webkit.SurfaceFactory,
	mw *window.MainWindow,
) coordinator.BrowserConfig {
	var historyUC *usecase.RecordVisitUseCase
	if opened.History != nil {
		historyUC = usecase.NewRecordVisitUseCase(opened.History)
	}
	return coordinator.BrowserConfig{
		Identity:    opened.Storage.Identity,
		HomeURI:     deps.Pages.HomeURI,
		MiniGameURI: deps.Pages.MiniGameURI,
		DownloadDir: deps.Config.Downloads.Dir,
		Surfaces:    surfaces,
		Tabs:        mw.Strip(),
		Address:     mw,
		Window:      mw,
		SaveDialog:  mw.SaveDialog(),
		ResolveUC:   usecase.NewResolveAddressUseCase(deps.FileSystem),
		DownloadUC:  usecase.NewPrepareDownloadUseCase(deps.FileSystem),
		HistoryUC:   historyUC,
	}
}

// initConfigWatcher applies key bindings and the window title on config changes.
func (a *App) initConfigWatcher(ctx context.Context, id profile.Identity) {
	log := logging.FromContext(ctx)

	if a.deps.ConfigManager == nil {
		log.Debug().Msg("no config manager available, skipping watcher")
		return
	}
	a.deps.ConfigManager.SetLogger(*log)
	if err := a.deps.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("failed to start config watcher")
		return
	}

	// Runs on the fsnotify goroutine; editors often write several events per save.
	a.deps.ConfigManager.OnConfigChange(func(newCfg *config.Config) {
		a.reloads.Post(configReloadKey, func() {
			a.applyConfig(ctx, newCfg, id)
		})
	})
	log.Debug().Msg("config watcher initialized")
}

func (a *App) applyConfig(ctx context.Context, cfg *config.Config, id profile.Identity) {
	if a.mainWindow == nil {
		return
	}
	a.keyboard.Rebind(cfg.Keys)
	a.mainWindow.SetTitle(profile.WindowTitle(cfg.Window.Title, id))
	a.mainWindow.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)
	logging.FromContext(ctx).Info().Msg("configuration reloaded")
}

// fail records a startup error; the application exits once no window is left.
func (a *App) fail(ctx context.Context, err error, msg string) {
	logging.FromContext(ctx).Error().Err(err).Msg(msg)
	a.exitCode = exitCodeFor(err)
}

func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// onShutdown is called when the GTK application is shutting down.
func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("GTK application shutting down")

	a.reloads.Destroy()
	a.cancel(errors.New("application shutdown"))

	if a.coord != nil {
		a.coord.Close(ctx)
	}
	if err := a.profile.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to release profile")
	}

	log.Info().Msg("application shutdown complete")
}

// ExitCode returns the code Run will report when GTK itself succeeded.
func (a *App) ExitCode() int {
	return a.exitCode
}

// Quit asks the application to exit. Safe to call from any goroutine.
func (a *App) Quit() {
	mainloop.IdlePost(func() {
		if a.gtkApp != nil {
			a.gtkApp.Quit()
		}
	})
}
