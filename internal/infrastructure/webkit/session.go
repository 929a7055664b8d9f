package webkit

import (
	"context"
	"path/filepath"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"
	"github.com/rs/zerolog"

	"github.com/bnema/bmb/internal/application/port"
	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/domain/profile"
	"github.com/bnema/bmb/internal/logging"
)

const cookieDBName = "cookies.db"

// Session is the engine network session of one browser window.
// Every surface created by its factory shares cookies, cache and storage.
type Session struct {
	session  *webkit.NetworkSession
	storage  profile.Storage
	engine   config.EngineConfig
	logger   zerolog.Logger
	handlers *DownloadHandler
}

// NewSession creates the network session for storage.
// Ephemeral storage gets an in-memory session.
// Must be called on the GTK main thread.
func NewSession(ctx context.Context, storage profile.Storage, engine config.EngineConfig) (*Session, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "webkit-session").
		Str("profile", storage.Identity.Name).
		Logger()

	var session *webkit.NetworkSession
	if storage.Ephemeral() {
		session = webkit.NewNetworkSessionEphemeral()
	} else {
		session = webkit.NewNetworkSession(storage.DataDir, storage.CacheDir)
	}
	if session == nil {
		return nil, ErrSessionUnavailable
	}

	if !storage.Ephemeral() {
		// Without this the cookie manager keeps cookies in memory only.
		if cookies := session.CookieManager(); cookies != nil {
			cookiePath := filepath.Join(storage.DataDir, cookieDBName)
			cookies.SetPersistentStorage(cookiePath, webkit.CookiePersistentStorageSqlite)
			cookies.SetAcceptPolicy(webkit.CookiePolicyAcceptNoThirdParty)
		}
		session.SetPersistentCredentialStorageEnabled(true)
	}

	log.Info().
		Bool("ephemeral", session.IsEphemeral()).
		Str("data_dir", storage.DataDir).
		Str("cache_dir", storage.CacheDir).
		Msg("network session created")

	return &Session{
		session: session,
		storage: storage,
		engine:  engine,
		logger:  log,
	}, nil
}

// HandleDownloads routes every download of the session to handler.
// events may be nil.
func (s *Session) HandleDownloads(ctx context.Context, handler port.DownloadRequestHandler, events port.DownloadEventHandler) {
	s.handlers = NewDownloadHandler(handler, events)
	s.session.ConnectDownloadStarted(func(download *webkit.Download) {
		s.handlers.HandleDownload(ctx, download)
	})
}

// Ephemeral reports whether the session keeps nothing on disk.
func (s *Session) Ephemeral() bool {
	return s.session.IsEphemeral()
}

// Factory returns a SurfaceFactory creating web views in this session.
func (s *Session) Factory() *SurfaceFactory {
	return &SurfaceFactory{session: s}
}
