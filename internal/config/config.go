// Package config provides configuration management for bmb with Viper integration.
package config

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm  = 0o755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0o644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for bmb.
type Config struct {
	Profiles  ProfilesConfig    `mapstructure:"profiles" toml:"profiles" json:"profiles"`
	Pages     PagesConfig       `mapstructure:"pages" toml:"pages" json:"pages"`
	Window    WindowConfig      `mapstructure:"window" toml:"window" json:"window"`
	Keys      map[string]string `mapstructure:"keys" toml:"keys" json:"keys" jsonschema:"description=GTK accelerators per action (back, forward, reload, home, new_tab, close_tab, focus_address, fullscreen)"`
	Downloads DownloadsConfig   `mapstructure:"downloads" toml:"downloads" json:"downloads"`
	History   HistoryConfig     `mapstructure:"history" toml:"history" json:"history"`
	Engine    EngineConfig      `mapstructure:"engine" toml:"engine" json:"engine"`
	Logging   LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ProfilesConfig lists the identities offered by the profile chooser.
type ProfilesConfig struct {
	// Root is the directory holding one sub-directory per persistent identity.
	Root string `mapstructure:"root" toml:"root" json:"root" jsonschema:"description=Directory holding one storage directory per identity (empty = XDG data dir)"`
	// Names is the ordered list shown by the chooser.
	Names []string `mapstructure:"names" toml:"names" json:"names" jsonschema:"minItems=1"`
	// Ephemeral lists the names that never touch the disk.
	Ephemeral []string `mapstructure:"ephemeral" toml:"ephemeral" json:"ephemeral"`
}

// PagesConfig points to the local pages loaded by the home and mini-game buttons.
// Empty values use the bundled pages.
type PagesConfig struct {
	Home     string `mapstructure:"home" toml:"home" json:"home"`
	MiniGame string `mapstructure:"mini_game" toml:"mini_game" json:"mini_game"`
}

// WindowConfig holds browser window preferences.
type WindowConfig struct {
	Title  string `mapstructure:"title" toml:"title" json:"title"`
	Width  int    `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=200"`
	Height int    `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=200"`
}

// DownloadsConfig holds download preferences.
type DownloadsConfig struct {
	// Dir is the folder the save dialog opens in.
	Dir string `mapstructure:"dir" toml:"dir" json:"dir"`
}

// HistoryConfig holds history-related configuration.
type HistoryConfig struct {
	Enabled   bool `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	ListLimit int  `mapstructure:"list_limit" toml:"list_limit" json:"list_limit" jsonschema:"minimum=0"`
}

// EngineConfig is applied to every WebView settings object.
type EngineConfig struct {
	EnableJavaScript      bool   `mapstructure:"enable_javascript" toml:"enable_javascript" json:"enable_javascript"`
	EnableDeveloperExtras bool   `mapstructure:"enable_developer_extras" toml:"enable_developer_extras" json:"enable_developer_extras"`
	UserAgent             string `mapstructure:"user_agent" toml:"user_agent" json:"user_agent"`
	// HardwareAcceleration accepts "always", "never" or "auto".
	HardwareAcceleration string `mapstructure:"hardware_acceleration" toml:"hardware_acceleration" json:"hardware_acceleration" jsonschema:"enum=auto,enum=always,enum=never"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=off"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`

	// File output configuration
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir"`
	MaxSize       int    `mapstructure:"max_size" toml:"max_size" json:"max_size"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups"`
	MaxAge        int    `mapstructure:"max_age" toml:"max_age" json:"max_age"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}

// IsEphemeral reports whether name is configured as an ephemeral identity.
func (c *Config) IsEphemeral(name string) bool {
	return slices.Contains(c.Profiles.Ephemeral, name)
}

// Clone returns a deep copy so callers cannot mutate the manager's state.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := *c
	out.Profiles.Names = slices.Clone(c.Profiles.Names)
	out.Profiles.Ephemeral = slices.Clone(c.Profiles.Ephemeral)
	out.Keys = maps.Clone(c.Keys)
	return &out
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	configDir string
	log       zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewManagerWithDir(configDir), nil
}

// NewManagerWithDir creates a manager that reads config.* from configDir.
func NewManagerWithDir(configDir string) *Manager {
	v := viper.New()

	// Configure Viper - supports toml, yaml, json automatically
	v.SetConfigName("config")
	v.AddConfigPath(configDir)

	// BMB_WINDOW_WIDTH=1600 overrides window.width
	v.SetEnvPrefix("BMB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		configDir: configDir,
		log:       zerolog.Nop(),
	}
}

// SetLogger sets the logger reload failures are reported on.
func (m *Manager) SetLogger(logger zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = logger
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	// Read config file if it exists
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if err := m.createDefaultConfig(); err != nil {
			return fmt.Errorf("failed to create default config: %w", err)
		}
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// decode unmarshals, fills derived paths and validates.
func (m *Manager) decode() (*Config, error) {
	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := fillPaths(cfg); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fillPaths resolves empty directory settings to their XDG locations.
func fillPaths(cfg *Config) error {
	if cfg.Profiles.Root == "" {
		root, err := GetProfilesDir()
		if err != nil {
			return fmt.Errorf("failed to get profiles directory: %w", err)
		}
		cfg.Profiles.Root = root
	}
	if cfg.Downloads.Dir == "" {
		cfg.Downloads.Dir = GetDownloadDir()
	}
	if cfg.Logging.LogDir == "" {
		if logDir, err := GetLogDir(); err == nil {
			cfg.Logging.LogDir = logDir
		}
	}
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	return m.config.Clone()
}

// Watch starts watching the config file for changes and reloads automatically.
// Callbacks run on the fsnotify goroutine.
func (m *Manager) Watch() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil // Already watching
	}
	if m.viper.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file to watch")
	}

	m.viper.OnConfigChange(func(_ fsnotify.Event) { m.fileChanged() })
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// fileChanged reloads the file and notifies callbacks. A file that fails to
// load is logged and the previous configuration stays in effect.
func (m *Manager) fileChanged() {
	if err := m.reload(); err != nil {
		m.mu.RLock()
		log, file := m.log, m.viper.ConfigFileUsed()
		m.mu.RUnlock()
		log.Warn().Err(err).Str("file", file).Msg("failed to reload config")
		return
	}

	m.mu.RLock()
	config := m.config.Clone()
	callbacks := slices.Clone(m.callbacks)
	m.mu.RUnlock()

	for _, callback := range callbacks {
		callback(config)
	}
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// reload re-reads the file; an invalid file keeps the previous configuration.
func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}

	cfg, err := m.decode()
	if err != nil {
		return err
	}

	m.config = cfg
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("profiles.root", defaults.Profiles.Root)
	m.viper.SetDefault("profiles.names", defaults.Profiles.Names)
	m.viper.SetDefault("profiles.ephemeral", defaults.Profiles.Ephemeral)

	m.viper.SetDefault("pages.home", defaults.Pages.Home)
	m.viper.SetDefault("pages.mini_game", defaults.Pages.MiniGame)

	m.viper.SetDefault("window.title", defaults.Window.Title)
	m.viper.SetDefault("window.width", defaults.Window.Width)
	m.viper.SetDefault("window.height", defaults.Window.Height)

	m.viper.SetDefault("keys", defaults.Keys)

	m.viper.SetDefault("downloads.dir", defaults.Downloads.Dir)

	m.viper.SetDefault("history.enabled", defaults.History.Enabled)
	m.viper.SetDefault("history.list_limit", defaults.History.ListLimit)

	m.viper.SetDefault("engine.enable_javascript", defaults.Engine.EnableJavaScript)
	m.viper.SetDefault("engine.enable_developer_extras", defaults.Engine.EnableDeveloperExtras)
	m.viper.SetDefault("engine.user_agent", defaults.Engine.UserAgent)
	m.viper.SetDefault("engine.hardware_acceleration", defaults.Engine.HardwareAcceleration)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// createDefaultConfig writes the defaults as config.toml next to the search path.
func (m *Manager) createDefaultConfig() error {
	configFile := filepath.Join(m.configDir, "config.toml")
	if err := WriteConfig(DefaultConfig(), configFile); err != nil {
		return err
	}

	m.viper.SetConfigFile(configFile)
	return m.viper.ReadInConfig()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}
