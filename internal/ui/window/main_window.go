// Package window provides the GTK browser window and its adapters.
package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/domain/entity"
	"github.com/bnema/bmb/internal/logging"
)

const maxTitleLen = 255

// Options configures a MainWindow.
type Options struct {
	Title  string
	Width  int
	Height int
}

// Controller receives the window's user actions.
type Controller interface {
	GoBack(ctx context.Context)
	GoForward(ctx context.Context)
	Reload(ctx context.Context)
	GoHome(ctx context.Context)
	SubmitAddress(ctx context.Context) bool
	NewTab(ctx context.Context) error
	OpenMiniGame(ctx context.Context) error
	CloseTab(ctx context.Context, id entity.TabID) bool
	ActivateTab(ctx context.Context, id entity.TabID)
}

// MainWindow represents the browser window: a toolbar with the URL bar
// above a notebook holding one page per tab.
type MainWindow struct {
	window  *gtk.ApplicationWindow
	rootBox *gtk.Box
	toolbar *gtk.Box
	entry   *gtk.Entry

	backButton     *gtk.Button
	forwardButton  *gtk.Button
	reloadButton   *gtk.Button
	homeButton     *gtk.Button
	goButton       *gtk.Button
	newTabButton   *gtk.Button
	miniGameButton *gtk.Button

	strip  *TabStrip
	dialog *SaveDialog

	logger zerolog.Logger
}

// New creates a new browser window. Call Bind before Show.
func New(ctx context.Context, app *gtk.Application, opts Options) (*MainWindow, error) {
	log := logging.FromContext(ctx)

	mw := &MainWindow{
		logger: log.With().Str("component", "main-window").Logger(),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.SetTitle(opts.Title)
	mw.window.SetDefaultSize(opts.Width, opts.Height)

	mw.rootBox = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.rootBox.SetHExpand(true)
	mw.rootBox.SetVExpand(true)

	mw.buildToolbar()

	mw.strip = newTabStrip(mw.logger)
	if mw.strip == nil {
		return nil, ErrWidgetCreationFailed("notebook")
	}
	mw.dialog = &SaveDialog{parent: &mw.window.Window, logger: mw.logger}

	mw.rootBox.Append(mw.toolbar)
	mw.rootBox.Append(mw.strip.notebook)
	mw.window.SetChild(mw.rootBox)

	mw.logger.Debug().
		Str("title", opts.Title).
		Int("width", opts.Width).
		Int("height", opts.Height).
		Msg("window created")
	return mw, nil
}

func (mw *MainWindow) buildToolbar() {
	mw.toolbar = gtk.NewBox(gtk.OrientationHorizontal, 4)
	mw.toolbar.AddCSSClass("toolbar")
	mw.toolbar.SetMarginTop(4)
	mw.toolbar.SetMarginBottom(4)
	mw.toolbar.SetMarginStart(4)
	mw.toolbar.SetMarginEnd(4)

	mw.backButton = toolButton("⬅", "Back")
	mw.forwardButton = toolButton("➡", "Forward")
	mw.reloadButton = toolButton("🔄", "Reload")
	mw.homeButton = toolButton("🏠", "Home")

	mw.entry = gtk.NewEntry()
	mw.entry.SetHExpand(true)
	mw.entry.SetPlaceholderText("Enter address")
	mw.entry.SetInputPurpose(gtk.InputPurposeURL)

	mw.goButton = toolButton("GO", "Load address")
	mw.newTabButton = toolButton("+ Tab", "New tab")
	mw.miniGameButton = toolButton("🐍 Snake", "Play Snake")

	for _, w := range []gtk.Widgetter{
		mw.backButton, mw.forwardButton, mw.reloadButton, mw.homeButton,
		mw.entry,
		mw.goButton, mw.newTabButton, mw.miniGameButton,
	} {
		mw.toolbar.Append(w)
	}
}

func toolButton(label, tooltip string) *gtk.Button {
	b := gtk.NewButtonWithLabel(label)
	b.SetTooltipText(tooltip)
	b.SetFocusOnClick(false)
	return b
}

// Bind forwards toolbar, URL bar and tab strip signals to c.
func (mw *MainWindow) Bind(ctx context.Context, c Controller) {
	mw.backButton.ConnectClicked(func() { c.GoBack(ctx) })
	mw.forwardButton.ConnectClicked(func() { c.GoForward(ctx) })
	mw.reloadButton.ConnectClicked(func() { c.Reload(ctx) })
	mw.homeButton.ConnectClicked(func() { c.GoHome(ctx) })

	submit := func() { c.SubmitAddress(ctx) }
	mw.entry.ConnectActivate(submit)
	mw.goButton.ConnectClicked(submit)

	mw.newTabButton.ConnectClicked(func() {
		if err := c.NewTab(ctx); err != nil {
			mw.logger.Error().Err(err).Msg("new tab failed")
		}
	})
	mw.miniGameButton.ConnectClicked(func() {
		if err := c.OpenMiniGame(ctx); err != nil {
			mw.logger.Error().Err(err).Msg("mini-game tab failed")
		}
	})

	mw.strip.onSwitch = func(id entity.TabID) { c.ActivateTab(ctx, id) }
	mw.strip.onClose = func(id entity.TabID) { c.CloseTab(ctx, id) }
}

// Show makes the window visible.
func (mw *MainWindow) Show() {
	mw.window.Present()
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// Strip returns the tab strip adapter.
func (mw *MainWindow) Strip() *TabStrip {
	return mw.strip
}

// SaveDialog returns the save dialog adapter.
func (mw *MainWindow) SaveDialog() *SaveDialog {
	return mw.dialog
}

// SetTitle updates the window title, capped at 255 characters.
func (mw *MainWindow) SetTitle(title string) {
	if mw.window == nil {
		return
	}
	if r := []rune(title); len(r) > maxTitleLen {
		title = string(r[:maxTitleLen-3]) + "..."
	}
	mw.window.SetTitle(title)
}

// SetDefaultSize changes the size used for the next unmaximized state.
func (mw *MainWindow) SetDefaultSize(width, height int) {
	mw.window.SetDefaultSize(width, height)
}

// Text implements port.AddressBar.
func (mw *MainWindow) Text() string {
	return mw.entry.Text()
}

// SetText implements port.AddressBar.
func (mw *MainWindow) SetText(text string) {
	mw.entry.SetText(text)
}

// Focus implements port.AddressBar. The whole address gets selected.
func (mw *MainWindow) Focus() {
	mw.entry.GrabFocus()
	mw.entry.SelectRegion(0, -1)
}

// IsFullscreen implements port.WindowState.
func (mw *MainWindow) IsFullscreen() bool {
	return mw.window.IsFullscreen()
}

// Fullscreen implements port.WindowState.
func (mw *MainWindow) Fullscreen() {
	mw.window.Fullscreen()
}

// Unfullscreen implements port.WindowState.
func (mw *MainWindow) Unfullscreen() {
	mw.window.Unfullscreen()
}

// WindowError represents a window-related error.
type WindowError struct {
	Message string
}

func (e WindowError) Error() string {
	return e.Message
}

// Error constants.
var (
	ErrWindowCreationFailed = WindowError{Message: "failed to create application window"}
)

// ErrWidgetCreationFailed creates an error for widget creation failure.
func ErrWidgetCreationFailed(name string) error {
	return WindowError{Message: "failed to create widget: " + name}
}

var (
	_ port.AddressBar  = (*MainWindow)(nil)
	_ port.WindowState = (*MainWindow)(nil)
)
