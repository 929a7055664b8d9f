package window

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/application/port"
)

// SaveDialog asks for a download destination with gtk.FileDialog.
type SaveDialog struct {
	parent *gtk.Window
	logger zerolog.Logger
}

// AskSavePath implements port.SaveDialog.
func (d *SaveDialog) AskSavePath(ctx context.Context, suggestedName, initialDir string, done func(path string, ok bool)) {
	dialog := gtk.NewFileDialog()
	dialog.SetTitle("Save File")
	dialog.SetModal(true)
	dialog.SetInitialName(suggestedName)
	if initialDir != "" {
		dialog.SetInitialFolder(gio.NewFileForPath(initialDir))
	}

	dialog.Save(ctx, d.parent, func(res gio.AsyncResulter) {
		file, err := dialog.SaveFinish(res)
		if err != nil {
			// Dismissing the dialog reports an error as well.
			d.logger.Debug().Err(err).Msg("save dialog closed without a file")
			done("", false)
			return
		}
		path := file.Path()
		done(path, path != "")
	})
}

var _ port.SaveDialog = (*SaveDialog)(nil)
