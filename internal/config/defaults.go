package config

// Default values
const (
	DefaultWindowTitle  = "BMB PRO 3.1"
	defaultWindowWidth  = 1200
	defaultWindowHeight = 800
	defaultHistoryLimit = 50

	defaultLogMaxSizeMB  = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 7
)

// Key binding action names.
const (
	ActionBack         = "back"
	ActionForward      = "forward"
	ActionReload       = "reload"
	ActionHome         = "home"
	ActionNewTab       = "new_tab"
	ActionCloseTab     = "close_tab"
	ActionFocusAddress = "focus_address"
	ActionFullscreen   = "fullscreen"
)

// KnownActions lists every action accepted in the keys section.
var KnownActions = []string{
	ActionBack,
	ActionForward,
	ActionReload,
	ActionHome,
	ActionNewTab,
	ActionCloseTab,
	ActionFocusAddress,
	ActionFullscreen,
}

// DefaultIdentities is the ordered identity list offered by the chooser.
func DefaultIdentities() []string {
	return []string{"user1", "user2", "user3", "user4", "indigo"}
}

// DefaultKeys returns the default accelerator per action, in GTK accelerator syntax.
func DefaultKeys() map[string]string {
	return map[string]string{
		ActionBack:         "<Alt>Left",
		ActionForward:      "<Alt>Right",
		ActionReload:       "F5",
		ActionHome:         "<Alt>Home",
		ActionNewTab:       "<Control>t",
		ActionCloseTab:     "<Control>w",
		ActionFocusAddress: "<Control>l",
		ActionFullscreen:   "F11",
	}
}

// DefaultConfig returns the default configuration values for bmb.
// Directory fields are left empty and resolved at load time.
func DefaultConfig() *Config {
	return &Config{
		Profiles: ProfilesConfig{
			Names:     DefaultIdentities(),
			Ephemeral: []string{"indigo"},
		},
		Window: WindowConfig{
			Title:  DefaultWindowTitle,
			Width:  defaultWindowWidth,
			Height: defaultWindowHeight,
		},
		Keys: DefaultKeys(),
		History: HistoryConfig{
			Enabled:   true,
			ListLimit: defaultHistoryLimit,
		},
		Engine: EngineConfig{
			EnableJavaScript:     true,
			HardwareAcceleration: "auto",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSize:    defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
			MaxAge:     defaultLogMaxAgeDays,
			Compress:   true,
		},
	}
}
