// Package chooser shows the profile selection window.
package chooser

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

const (
	windowWidth  = 300
	windowHeight = 300
)

// selection records the first choice only; later clicks are ignored.
type selection struct {
	chosen *profile.Identity
}

func (s *selection) choose(id profile.Identity) bool {
	if s.chosen != nil {
		return false
	}
	s.chosen = &id
	return true
}

// Chooser is a small window with one button per identity.
type Chooser struct {
	window *gtk.ApplicationWindow
	sel    selection
}

// New builds the chooser. onChosen runs once, before the chooser closes;
// closing the window without a choice never calls it.
func New(ctx context.Context, app *gtk.Application, appTitle string, identities []profile.Identity, onChosen func(profile.Identity)) *Chooser {
	log := logging.FromContext(ctx).With().Str("component", "chooser").Logger()

	c := &Chooser{window: gtk.NewApplicationWindow(app)}
	c.window.SetTitle(profile.ChooserTitle(appTitle))
	c.window.SetDefaultSize(windowWidth, windowHeight)

	box := gtk.NewBox(gtk.OrientationVertical, 8)
	box.SetMarginTop(16)
	box.SetMarginBottom(16)
	box.SetMarginStart(16)
	box.SetMarginEnd(16)
	box.SetVAlign(gtk.AlignCenter)

	box.Append(gtk.NewLabel("Select profile"))

	for _, id := range identities {
		button := gtk.NewButtonWithLabel(id.Name)
		if id.Ephemeral {
			button.SetTooltipText("Nothing is kept after the window closes")
		}
		button.ConnectClicked(func() {
			if !c.sel.choose(id) {
				return
			}
			log.Info().Str("profile", id.Name).Msg("profile chosen")
			onChosen(id)
			c.window.Destroy()
		})
		box.Append(button)
	}

	c.window.ConnectCloseRequest(func() bool {
		if c.sel.chosen == nil {
			log.Info().Msg("chooser closed without a profile")
		}
		return false
	})

	c.window.SetChild(box)
	return c
}

// Show presents the chooser.
func (c *Chooser) Show() {
	c.window.Present()
}
