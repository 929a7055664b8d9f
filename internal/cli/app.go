// Package cli provides the command-line side of bmb: profile and history
// management plus the terminal profile chooser.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/bootstrap"
	"github.com/bnema/bmb/internal/cli/styles"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/build"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/infrastructure/filesystem"
	"github.com/bnema/bmb/internal/infrastructure/lock"
	"github.com/bnema/bmb/internal/infrastructure/persistence/sqlite"
)

// ErrNoHistory is returned when a profile keeps no history database.
var ErrNoHistory = errors.New("no history for this profile")

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info
	Identities    *profile.Set

	FileSystem port.FileSystem
	Locker     port.ProfileLocker
	ProfilesUC *usecase.ManageProfilesUseCase

	ctx        context.Context
	logCleanup func()
}

// NewApp loads the configuration and builds the CLI dependencies.
func NewApp() (*App, error) {
	manager, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("config manager: %w", err)
	}
	return NewAppWithManager(manager)
}

// NewAppWithManager builds the CLI dependencies from an existing manager.
func NewAppWithManager(manager *config.Manager) (*App, error) {
	if err := manager.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := manager.Get()

	identities, err := profile.NewSet(cfg.Profiles.Names, cfg.Profiles.Ephemeral)
	if err != nil {
		return nil, err
	}

	// CLI output goes to stdout; keep stderr quiet unless asked for.
	logCfg := cfg.Logging
	if os.Getenv("BMB_LOGGING_LEVEL") == "" {
		logCfg.Level = "warn"
	}
	ctx, cleanup := bootstrap.NewContext(context.Background(), logCfg, "bmb-cli.log")

	fs := filesystem.New()
	locker := lock.NewFileLocker()

	return &App{
		Config:        cfg,
		ConfigManager: manager,
		Theme:         styles.NewTheme(),
		Identities:    identities,
		FileSystem:    fs,
		Locker:        locker,
		ProfilesUC:    usecase.NewManageProfilesUseCase(fs, locker),
		ctx:           ctx,
		logCleanup:    cleanup,
	}, nil
}

// Ctx returns the context carrying the CLI logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// OpenProfileUseCase returns the use case the GUI opens profiles with.
func (a *App) OpenProfileUseCase() *usecase.OpenProfileUseCase {
	return usecase.NewOpenProfileUseCase(a.FileSystem, a.Locker, sqlite.Opener{BusyTimeout: sqlite.InteractiveBusyTimeout})
}

// OpenHistory opens the history database of a persistent profile.
// It never creates one.
func (a *App) OpenHistory(ctx context.Context, name string) (port.HistoryStore, error) {
	id, err := a.Identities.Lookup(name)
	if err != nil {
		return nil, err
	}
	storage, err := profile.Resolve(a.Config.Profiles.Root, id)
	if err != nil {
		return nil, err
	}
	if storage.Ephemeral() {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHistory)
	}

	exists, err := a.FileSystem.Exists(ctx, storage.HistoryPath())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%s: %w", name, ErrNoHistory)
	}
	return sqlite.Opener{}.OpenHistory(ctx, storage.HistoryPath())
}

// Close releases the log file.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}
