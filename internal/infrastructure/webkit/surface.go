package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	coreglib "github.com/diamondburned/gotk4/pkg/core/glib"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/logging"
)

// SurfaceFactory creates web views bound to one network session.
type SurfaceFactory struct {
	session *Session
}

// NewSurface implements port.SurfaceFactory.
func (f *SurfaceFactory) NewSurface(ctx context.Context, events port.SurfaceEvents) (port.Surface, error) {
	// In WebKitGTK 6 the session can only be chosen at construction time.
	obj := coreglib.NewObjectWithProperties(webkit.GTypeWebView, map[string]any{
		"network-session": coreglib.InternObject(f.session.session),
	})
	view, ok := obj.Cast().(*webkit.WebView)
	if !ok || view == nil {
		return nil, ErrSessionUnavailable
	}

	view.SetHExpand(true)
	view.SetVExpand(true)
	applySettings(ctx, view.Settings(), f.session.engine)

	s := &Surface{view: view}
	s.connect(ctx, events)

	logging.FromContext(ctx).Debug().Msg("surface created")
	return s, nil
}

// Surface is a WebKit WebView implementing port.Surface.
type Surface struct {
	view      *webkit.WebView
	handles   []coreglib.SignalHandle
	destroyed bool
}

func (s *Surface) connect(ctx context.Context, events port.SurfaceEvents) {
	if events.OnURIChanged != nil {
		s.handles = append(s.handles, s.view.Connect("notify::uri", func() {
			events.OnURIChanged(s.view.URI())
		}))
	}
	if events.OnTitleChanged != nil {
		s.handles = append(s.handles, s.view.Connect("notify::title", func() {
			events.OnTitleChanged(s.view.Title())
		}))
	}
	s.handles = append(s.handles, s.view.ConnectWebProcessTerminated(func(reason webkit.WebProcessTerminationReason) {
		logging.FromContext(ctx).Warn().
			Str("reason", reason.String()).
			Str("uri", logging.TruncateURL(s.view.URI(), 80)).
			Msg("web process terminated")
	}))
}

func (s *Surface) LoadURI(uri string) {
	if s.destroyed {
		return
	}
	s.view.LoadURI(uri)
}

func (s *Surface) GoBack() {
	if s.destroyed || !s.view.CanGoBack() {
		return
	}
	s.view.GoBack()
}

func (s *Surface) GoForward() {
	if s.destroyed || !s.view.CanGoForward() {
		return
	}
	s.view.GoForward()
}

func (s *Surface) Reload() {
	if s.destroyed {
		return
	}
	s.view.Reload()
}

func (s *Surface) URI() string {
	if s.destroyed {
		return ""
	}
	return s.view.URI()
}

// Destroy disconnects the signals and stops any page activity.
func (s *Surface) Destroy() {
	if s.destroyed {
		return
	}
	for _, h := range s.handles {
		s.view.HandlerDisconnect(h)
	}
	s.handles = nil
	s.view.StopLoading()
	s.destroyed = true
}

// Widget returns the GTK widget of a surface created by SurfaceFactory.
func Widget(surface port.Surface) (gtk.Widgetter, error) {
	s, ok := surface.(*Surface)
	if !ok {
		return nil, ErrNotWebKitSurface
	}
	if s.destroyed {
		return nil, ErrSurfaceDestroyed
	}
	return s.view, nil
}

var (
	_ port.Surface        = (*Surface)(nil)
	_ port.SurfaceFactory = (*SurfaceFactory)(nil)
)
