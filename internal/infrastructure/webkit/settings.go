package webkit

import (
	"context"

	webkit "github.com/diamondburned/gotk4-webkitgtk/pkg/webkit/v6"

	"github.com/bnema/bmb/internal/config"
	"github.com/bnema/bmb/internal/logging"
)

// applySettings copies the engine section of the config onto a WebView's settings.
func applySettings(ctx context.Context, settings *webkit.Settings, cfg config.EngineConfig) {
	if settings == nil {
		return
	}
	log := logging.FromContext(ctx)

	settings.SetEnableJavascript(cfg.EnableJavaScript)
	settings.SetEnableDeveloperExtras(cfg.EnableDeveloperExtras)

	if cfg.UserAgent != "" {
		settings.SetUserAgent(cfg.UserAgent)
	}

	switch cfg.HardwareAcceleration {
	case "always":
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyAlways)
	case "never":
		settings.SetHardwareAccelerationPolicy(webkit.HardwareAccelerationPolicyNever)
	default:
		// engine default
	}

	log.Trace().
		Bool("javascript", cfg.EnableJavaScript).
		Bool("devtools", cfg.EnableDeveloperExtras).
		Str("hw_accel", cfg.HardwareAcceleration).
		Msg("webview settings applied")
}
