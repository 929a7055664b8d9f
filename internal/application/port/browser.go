package port

import (
	"context"

	"github.com/bnema/bmb/internal/domain/entity"
)

//go:generate mockgen -source=browser.go -destination=mocks/mock_browser.go -package=mocks

// Surface is one rendering surface owned by a tab.
// Navigation calls are no-ops when the engine has nothing to do.
type Surface interface {
	LoadURI(uri string)
	GoBack()
	GoForward()
	Reload()
	// URI returns the last committed address, empty before the first load.
	URI() string
	Destroy()
}

// SurfaceEvents receives engine notifications for a single surface.
type SurfaceEvents struct {
	OnURIChanged   func(uri string)
	OnTitleChanged func(title string)
}

// SurfaceFactory creates surfaces bound to the window's storage session.
type SurfaceFactory interface {
	NewSurface(ctx context.Context, events SurfaceEvents) (Surface, error)
}

// TabStrip shows one page per tab and reports user switches and close requests.
type TabStrip interface {
	AppendTab(id entity.TabID, label string, surface Surface) error
	RemoveTab(id entity.TabID)
	SelectTab(id entity.TabID)
	SetTabLabel(id entity.TabID, label string)
}

// AddressBar is the single-line URL input.
type AddressBar interface {
	Text() string
	SetText(text string)
	Focus()
}

// WindowState controls the top-level window.
type WindowState interface {
	IsFullscreen() bool
	Fullscreen()
	Unfullscreen()
}

// SaveDialog asks the user where to store a file.
// done runs on the UI thread with ok=false when the user cancelled.
type SaveDialog interface {
	AskSavePath(ctx context.Context, suggestedName, initialDir string, done func(path string, ok bool))
}
