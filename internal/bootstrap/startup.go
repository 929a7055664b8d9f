// Package bootstrap prepares everything the browser needs before GTK starts.
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/bmb/assets"
	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/domain/url"
	"github.com/bnema/bmb/internal/logging"
)

// Pages holds the addresses of the built-in pages.
type Pages struct {
	HomeURI     string
	MiniGameURI string
}

// StartupInput holds the input of the parallel startup phase.
type StartupInput struct {
	Config   *config.Config
	PagesDir string
	// Identity is opened up front when already known. Nil defers it to the chooser.
	Identity *profile.Identity
	OpenUC   *usecase.OpenProfileUseCase
}

// StartupResult holds the results of the parallel startup phase.
type StartupResult struct {
	Pages Pages
	// Profile is nil when no identity was given.
	Profile *usecase.OpenedProfile
}

// RunParallelInit writes the bundled pages and opens the profile concurrently.
// On failure nothing stays open.
func RunParallelInit(ctx context.Context, input StartupInput, timer *StartupTimer) (*StartupResult, error) {
	var (
		pages  Pages
		opened *usecase.OpenedProfile
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		p, err := PreparePages(input.PagesDir, input.Config.Pages)
		if err != nil {
			return err
		}
		pages = p
		timer.MarkDuration("pages", time.Since(start))
		return nil
	})

	if input.Identity != nil {
		g.Go(func() error {
			start := time.Now()
			p, err := input.OpenUC.Execute(gctx, usecase.OpenProfileInput{
				Root:           input.Config.Profiles.Root,
				Identity:       *input.Identity,
				HistoryEnabled: input.Config.History.Enabled,
			})
			if err != nil {
				return err
			}
			opened = p
			timer.MarkDuration("profile", time.Since(start))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if closeErr := opened.Close(); closeErr != nil {
			logging.FromContext(ctx).Warn().Err(closeErr).Msg("failed to release profile after startup error")
		}
		return nil, err
	}

	return &StartupResult{Pages: pages, Profile: opened}, nil
}

// PreparePages materialises the bundled pages into dir and applies the
// configured overrides.
func PreparePages(dir string, overrides config.PagesConfig) (Pages, error) {
	paths, err := assets.MaterializePages(dir)
	if err != nil {
		return Pages{}, fmt.Errorf("prepare bundled pages: %w", err)
	}

	home, err := pageURI(overrides.Home, paths[assets.HomePage])
	if err != nil {
		return Pages{}, fmt.Errorf("home page: %w", err)
	}
	game, err := pageURI(overrides.MiniGame, paths[assets.MiniGamePage])
	if err != nil {
		return Pages{}, fmt.Errorf("mini-game page: %w", err)
	}
	return Pages{HomeURI: home, MiniGameURI: game}, nil
}

// pageURI returns override as an address when set, the bundled file otherwise.
func pageURI(override, bundled string) (string, error) {
	if override == "" {
		return url.FromLocalFile(bundled)
	}
	if url.HasScheme(override) {
		return override, nil
	}
	if _, err := os.Stat(override); err != nil {
		return "", err
	}
	return url.FromLocalFile(override)
}
