// Package coordinator holds the browser window behaviour, independent of GTK.
// All methods run on the UI thread.
package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/application/usecase"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/entity"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

const logURLMaxLen = 80

// BrowserConfig holds the dependencies of a BrowserCoordinator.
type BrowserConfig struct {
	Identity    profile.Identity
	HomeURI     string
	MiniGameURI string
	DownloadDir string

	Surfaces   port.SurfaceFactory
	Tabs       port.TabStrip
	Address    port.AddressBar
	Window     port.WindowState
	SaveDialog port.SaveDialog

	ResolveUC  *usecase.ResolveAddressUseCase
	DownloadUC *usecase.PrepareDownloadUseCase
	// HistoryUC is nil when the profile keeps no history.
	HistoryUC *usecase.RecordVisitUseCase
}

// BrowserCoordinator routes toolbar, URL bar and tab strip actions to the
// active tab and keeps the URL bar in sync with it.
type BrowserCoordinator struct {
	identity    profile.Identity
	homeURI     string
	miniGameURI string
	downloadDir string

	factory    port.SurfaceFactory
	strip      port.TabStrip
	address    port.AddressBar
	window     port.WindowState
	saveDialog port.SaveDialog

	resolveUC  *usecase.ResolveAddressUseCase
	downloadUC *usecase.PrepareDownloadUseCase
	historyUC  *usecase.RecordVisitUseCase

	tabs     *entity.TabList
	surfaces map[entity.TabID]port.Surface
	tabSeq   int
}

// NewBrowserCoordinator creates a new BrowserCoordinator. Call Start to open the first tab.
func NewBrowserCoordinator(ctx context.Context, cfg BrowserConfig) *BrowserCoordinator {
	logging.FromContext(ctx).Debug().Str("profile", cfg.Identity.Name).Msg("creating browser coordinator")

	resolveUC := cfg.ResolveUC
	if resolveUC == nil {
		resolveUC = usecase.NewResolveAddressUseCase(nil)
	}
	downloadUC := cfg.DownloadUC
	if downloadUC == nil {
		downloadUC = usecase.NewPrepareDownloadUseCase(nil)
	}

	return &BrowserCoordinator{
		identity:    cfg.Identity,
		homeURI:     cfg.HomeURI,
		miniGameURI: cfg.MiniGameURI,
		downloadDir: cfg.DownloadDir,
		factory:     cfg.Surfaces,
		strip:       cfg.Tabs,
		address:     cfg.Address,
		window:      cfg.Window,
		saveDialog:  cfg.SaveDialog,
		resolveUC:   resolveUC,
		downloadUC:  downloadUC,
		historyUC:   cfg.HistoryUC,
		tabs:        entity.NewTabList(),
		surfaces:    make(map[entity.TabID]port.Surface),
	}
}

// Start opens the first tab on initialInput, or on the home page when it is empty.
func (c *BrowserCoordinator) Start(ctx context.Context, initialInput string) error {
	uri := c.homeURI
	if initialInput != "" {
		if resolved, ok := c.resolveUC.Execute(ctx, initialInput); ok {
			uri = resolved
		}
	}
	if _, err := c.openTab(ctx, entity.TabKindPage, uri); err != nil {
		return fmt.Errorf("open first tab: %w", err)
	}
	return nil
}

// TabCount returns the number of open tabs.
func (c *BrowserCoordinator) TabCount() int {
	return c.tabs.Count()
}

// ActiveTab returns the active tab, nil before Start.
func (c *BrowserCoordinator) ActiveTab() *entity.Tab {
	return c.tabs.ActiveTab()
}

// Identity returns the profile identity of the window.
func (c *BrowserCoordinator) Identity() profile.Identity {
	return c.identity
}

// NewTab opens a tab on the home page and activates it.
func (c *BrowserCoordinator) NewTab(ctx context.Context) error {
	_, err := c.openTab(ctx, entity.TabKindPage, c.homeURI)
	return err
}

// OpenMiniGame opens a tab on the mini-game page and activates it.
func (c *BrowserCoordinator) OpenMiniGame(ctx context.Context) error {
	_, err := c.openTab(ctx, entity.TabKindMiniGame, c.miniGameURI)
	return err
}

func (c *BrowserCoordinator) openTab(ctx context.Context, kind entity.TabKind, uri string) (*entity.Tab, error) {
	log := logging.FromContext(ctx)
	if c.factory == nil {
		return nil, errors.New("no surface factory")
	}

	c.tabSeq++
	tab := entity.NewTab(entity.TabID(fmt.Sprintf("tab-%d", c.tabSeq)), kind)
	id := tab.ID
	tabCtx := logging.WithTabID(ctx, string(id))

	surface, err := c.factory.NewSurface(tabCtx, port.SurfaceEvents{
		OnURIChanged:   func(uri string) { c.OnURIChanged(tabCtx, id, uri) },
		OnTitleChanged: func(title string) { c.OnTitleChanged(tabCtx, id, title) },
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to create surface")
		return nil, fmt.Errorf("create surface: %w", err)
	}

	// The strip may report a switch to the new page before it is known; such
	// switches are ignored and activate() below settles the state.
	if err := c.strip.AppendTab(id, tab.DisplayLabel(), surface); err != nil {
		surface.Destroy()
		log.Error().Err(err).Msg("failed to add tab to strip")
		return nil, fmt.Errorf("append tab: %w", err)
	}

	c.tabs.Add(tab)
	c.surfaces[id] = surface
	c.activate(ctx, id)

	if uri != "" {
		surface.LoadURI(uri)
	}

	log.Debug().
		Str("tab", string(id)).
		Str("label", tab.Label).
		Int("count", c.tabs.Count()).
		Msg("tab opened")
	return tab, nil
}

// CloseTab closes a tab. The last tab is never closed.
func (c *BrowserCoordinator) CloseTab(ctx context.Context, id entity.TabID) bool {
	log := logging.FromContext(ctx)

	if c.tabs.Count() <= 1 {
		log.Debug().Str("tab", string(id)).Msg("keeping last tab open")
		return false
	}
	if !c.tabs.Remove(id) {
		return false
	}

	surface := c.surfaces[id]
	delete(c.surfaces, id)
	c.strip.RemoveTab(id)
	if surface != nil {
		surface.Destroy()
	}

	c.activate(ctx, c.tabs.ActiveTabID)

	log.Debug().Str("tab", string(id)).Int("count", c.tabs.Count()).Msg("tab closed")
	return true
}

// CloseTabAt closes the tab at a strip position.
func (c *BrowserCoordinator) CloseTabAt(ctx context.Context, index int) bool {
	tab := c.tabs.At(index)
	if tab == nil {
		return false
	}
	return c.CloseTab(ctx, tab.ID)
}

// CloseActiveTab closes the active tab.
func (c *BrowserCoordinator) CloseActiveTab(ctx context.Context) bool {
	return c.CloseTab(ctx, c.tabs.ActiveTabID)
}

// ActivateTab handles a user switch in the tab strip.
func (c *BrowserCoordinator) ActivateTab(ctx context.Context, id entity.TabID) {
	if c.tabs.Find(id) == nil {
		return
	}
	if c.tabs.IsActive(id) {
		// Still resync: the strip may have switched back after a close.
		c.syncAddressBar()
		return
	}
	c.activate(ctx, id)
}

func (c *BrowserCoordinator) activate(ctx context.Context, id entity.TabID) {
	if !c.tabs.SetActive(id) {
		return
	}
	c.strip.SelectTab(id)
	c.syncAddressBar()

	logging.FromContext(ctx).Trace().Str("tab", string(id)).Msg("tab activated")
}

// syncAddressBar shows the active surface's current address.
func (c *BrowserCoordinator) syncAddressBar() {
	surface := c.activeSurface()
	if surface == nil || c.address == nil {
		return
	}
	uri := surface.URI()
	if tab := c.tabs.ActiveTab(); tab != nil && uri != "" {
		tab.Address = uri
	}
	c.address.SetText(uri)
}

func (c *BrowserCoordinator) activeSurface() port.Surface {
	return c.surfaces[c.tabs.ActiveTabID]
}

// OnURIChanged records a committed address. Only the active tab touches the URL bar.
func (c *BrowserCoordinator) OnURIChanged(ctx context.Context, id entity.TabID, uri string) {
	tab := c.tabs.Find(id)
	if tab == nil {
		return
	}
	tab.Address = uri

	if c.tabs.IsActive(id) && c.address != nil {
		c.address.SetText(uri)
	}

	if err := c.historyUC.Execute(ctx, uri, tab.Title); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to record history")
	}
}

// OnTitleChanged relabels the tab after its page title.
func (c *BrowserCoordinator) OnTitleChanged(ctx context.Context, id entity.TabID, title string) {
	tab := c.tabs.Find(id)
	if tab == nil {
		return
	}
	tab.Title = title
	c.strip.SetTabLabel(id, tab.DisplayLabel())

	if err := c.historyUC.UpdateTitle(ctx, tab.Address, title); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("failed to update history title")
	}
}

// SubmitAddress loads the URL bar's text into the active tab.
func (c *BrowserCoordinator) SubmitAddress(ctx context.Context) bool {
	if c.address == nil {
		return false
	}
	return c.Navigate(ctx, c.address.Text())
}

// Navigate resolves input and loads it into the active tab.
// Empty input is ignored.
func (c *BrowserCoordinator) Navigate(ctx context.Context, input string) bool {
	uri, ok := c.resolveUC.Execute(ctx, input)
	if !ok {
		return false
	}
	surface := c.activeSurface()
	if surface == nil {
		return false
	}

	logging.FromContext(ctx).Debug().
		Str("tab", string(c.tabs.ActiveTabID)).
		Str("uri", logging.TruncateURL(uri, logURLMaxLen)).
		Msg("navigating")
	surface.LoadURI(uri)
	return true
}

// GoBack navigates the active tab back.
func (c *BrowserCoordinator) GoBack(_ context.Context) {
	if s := c.activeSurface(); s != nil {
		s.GoBack()
	}
}

// GoForward navigates the active tab forward.
func (c *BrowserCoordinator) GoForward(_ context.Context) {
	if s := c.activeSurface(); s != nil {
		s.GoForward()
	}
}

// Reload reloads the active tab.
func (c *BrowserCoordinator) Reload(_ context.Context) {
	if s := c.activeSurface(); s != nil {
		s.Reload()
	}
}

// GoHome loads the home page in the active tab.
func (c *BrowserCoordinator) GoHome(_ context.Context) {
	if s := c.activeSurface(); s != nil && c.homeURI != "" {
		s.LoadURI(c.homeURI)
	}
}

// FocusAddress moves keyboard focus to the URL bar.
func (c *BrowserCoordinator) FocusAddress(_ context.Context) {
	if c.address != nil {
		c.address.Focus()
	}
}

// ToggleFullscreen switches the window between fullscreen and normal state.
func (c *BrowserCoordinator) ToggleFullscreen(ctx context.Context) {
	if c.window == nil {
		return
	}
	if c.window.IsFullscreen() {
		c.window.Unfullscreen()
	} else {
		c.window.Fullscreen()
	}
	logging.FromContext(ctx).Debug().Msg("fullscreen toggled")
}

// HandleAction runs a key binding action. It returns false for unknown actions.
func (c *BrowserCoordinator) HandleAction(ctx context.Context, action string) bool {
	switch action {
	case config.ActionBack:
		c.GoBack(ctx)
	case config.ActionForward:
		c.GoForward(ctx)
	case config.ActionReload:
		c.Reload(ctx)
	case config.ActionHome:
		c.GoHome(ctx)
	case config.ActionNewTab:
		if err := c.NewTab(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("new tab failed")
		}
	case config.ActionCloseTab:
		c.CloseActiveTab(ctx)
	case config.ActionFocusAddress:
		c.FocusAddress(ctx)
	case config.ActionFullscreen:
		c.ToggleFullscreen(ctx)
	default:
		return false
	}
	return true
}

// OnDownloadRequested asks where to save a download, then starts or cancels it.
func (c *BrowserCoordinator) OnDownloadRequested(ctx context.Context, d port.Download) {
	log := logging.FromContext(ctx)

	if c.saveDialog == nil {
		log.Warn().Msg("no save dialog, download cancelled")
		d.Cancel()
		return
	}

	out := c.downloadUC.Execute(ctx, usecase.PrepareDownloadInput{
		SuggestedFilename: d.SuggestedFilename(),
		URI:               d.URI(),
		MIMEType:          d.MIMEType(),
		DownloadDir:       c.downloadDir,
	})

	c.saveDialog.AskSavePath(ctx, out.Filename, c.downloadDir, func(path string, ok bool) {
		if !ok || path == "" {
			log.Info().Str("filename", out.Filename).Msg("download cancelled by user")
			d.Cancel()
			return
		}
		log.Info().Str("destination", path).Msg("download accepted")
		d.SetDestination(path)
	})
}

// OnDownloadEvent logs download progress.
func (c *BrowserCoordinator) OnDownloadEvent(ctx context.Context, event port.DownloadEvent) {
	log := logging.FromContext(ctx)
	switch event.Type {
	case port.DownloadEventFailed:
		log.Warn().Err(event.Error).Str("filename", event.Filename).Msg("download failed")
	default:
		log.Info().
			Str("event", event.Type.String()).
			Str("filename", event.Filename).
			Str("destination", event.Destination).
			Msg("download " + event.Type.String())
	}
}

// Close destroys every surface. Used when the window goes away.
func (c *BrowserCoordinator) Close(ctx context.Context) {
	for id, surface := range c.surfaces {
		surface.Destroy()
		delete(c.surfaces, id)
	}
	logging.FromContext(ctx).Debug().Str("profile", c.identity.Name).Msg("browser coordinator closed")
}

var (
	_ port.DownloadRequestHandler = (*BrowserCoordinator)(nil)
	_ port.DownloadEventHandler   = (*BrowserCoordinator)(nil)
)
