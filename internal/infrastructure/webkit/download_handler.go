package webkit

import (
	"context"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/logging"
)

// DownloadHandler turns WebKit download signals into port calls.
type DownloadHandler struct {
	requests port.DownloadRequestHandler
	events   port.DownloadEventHandler
}

// NewDownloadHandler creates a new download handler.
func NewDownloadHandler(requests port.DownloadRequestHandler, events port.DownloadEventHandler) *DownloadHandler {
	return &DownloadHandler{requests: requests, events: events}
}

// HandleDownload sets up signal handlers for a new download.
func (h *DownloadHandler) HandleDownload(ctx context.Context, d *webkit.Download) {
	log := logging.FromContext(ctx)

	// Track failure so finished is not reported twice.
	var failed bool

	d.ConnectDecideDestination(func(suggestedFilename string) bool {
		req := &pendingDownload{download: d, suggested: suggestedFilename}
		log.Debug().
			Str("suggested", suggestedFilename).
			Str("uri", logging.TruncateURL(req.URI(), 80)).
			Msg("download requested")

		if h.requests == nil {
			d.Cancel()
			return true
		}
		h.requests.OnDownloadRequested(ctx, req)
		// true: the destination is set later, once the save dialog returns.
		return true
	})

	d.ConnectCreatedDestination(func(destination string) {
		h.notify(ctx, port.DownloadEvent{
			Type:        port.DownloadEventStarted,
			Filename:    filepath.Base(destination),
			Destination: destination,
		})
	})

	d.ConnectFailed(func(err error) {
		failed = true
		dest := d.Destination()

		if isCancelledDownload(err) {
			log.Debug().Str("destination", dest).Msg("download cancelled")
			return
		}

		h.notify(ctx, port.DownloadEvent{
			Type:        port.DownloadEventFailed,
			Filename:    filepath.Base(dest),
			Destination: dest,
			Error:       err,
		})
	})

	d.ConnectFinished(func() {
		if failed {
			return
		}
		dest := d.Destination()
		h.notify(ctx, port.DownloadEvent{
			Type:        port.DownloadEventFinished,
			Filename:    filepath.Base(dest),
			Destination: dest,
		})
	})
}

func (h *DownloadHandler) notify(ctx context.Context, event port.DownloadEvent) {
	if h.events != nil {
		h.events.OnDownloadEvent(ctx, event)
	}
}

// pendingDownload implements port.Download while WebKit waits for a destination.
type pendingDownload struct {
	download  *webkit.Download
	suggested string
}

func (p *pendingDownload) SuggestedFilename() string {
	return p.suggested
}

func (p *pendingDownload) URI() string {
	if req := p.download.Request(); req != nil {
		return req.URI()
	}
	return ""
}

func (p *pendingDownload) MIMEType() string {
	if resp := p.download.Response(); resp != nil {
		return resp.MIMEType()
	}
	return ""
}

// SetDestination accepts the download into path, replacing an existing file
// the user already confirmed in the save dialog.
func (p *pendingDownload) SetDestination(path string) {
	p.download.SetAllowOverwrite(true)
	p.download.SetDestination(path)
}

func (p *pendingDownload) Cancel() {
	p.download.Cancel()
}

var _ port.Download = (*pendingDownload)(nil)
