package webkit

import (
	"errors"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/diamondburned/gotk4/pkg/core/gerror"
)

var (
	// ErrSurfaceDestroyed is returned when a destroyed surface is used.
	ErrSurfaceDestroyed = errors.New("webkit: surface destroyed")
	// ErrNotWebKitSurface is returned for port.Surface values not created here.
	ErrNotWebKitSurface = errors.New("webkit: not a webkit surface")
	// ErrSessionUnavailable is returned when the engine refuses to create a session.
	ErrSessionUnavailable = errors.New("webkit: network session unavailable")
)

// isCancelledDownload reports whether a download failure was a user cancel.
func isCancelledDownload(err error) bool {
	if err == nil {
		return false
	}
	var gErr *gerror.GError
	if errors.As(err, &gErr) {
		return gErr.ErrorCode() == int(webkit.DownloadErrorCancelledByUser)
	}
	return false
}
