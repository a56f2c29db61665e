package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"themesmith/internal/domain"
	"themesmith/internal/logging"
	"themesmith/internal/theme"
)

const (
	BackendSQLite = "sqlite"
	BackendFiles  = "files"

	CompilerDartSass = "dart-sass"
	CompilerCommand  = "command"

	envPrefix = "THEMESMITH"
)

type Config struct {
	Store    StoreConfig    `mapstructure:"store"`
	Shell    ShellConfig    `mapstructure:"shell"`
	GTK      GTKConfig      `mapstructure:"gtk"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Compiler CompilerConfig `mapstructure:"compiler"`
	Log      LogConfig      `mapstructure:"log"`
	UI       UIConfig       `mapstructure:"ui"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

// ShellConfig locates the shell template tree and the theme output
// directories. An empty Source selects the embedded tree and an empty
// WorkDir the OS temp directory.
type ShellConfig struct {
	Source    string `mapstructure:"source"`
	WorkDir   string `mapstructure:"work_dir"`
	ThemesDir string `mapstructure:"themes_dir"`
}

type GTKConfig struct {
	GTK3Path string `mapstructure:"gtk3_path"`
	GTK4Path string `mapstructure:"gtk4_path"`
}

type DefaultsConfig struct {
	Mode   string `mapstructure:"mode"`
	Accent string `mapstructure:"accent"`
}

type CompilerConfig struct {
	Kind   string `mapstructure:"kind"`
	Binary string `mapstructure:"binary"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// UIConfig picks the built-in terminal theme. An empty Theme follows the
// default mode.
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

var (
	configDir  string
	configFile string
)

func init() {
	homeDir, err := homedir.Dir()
	if err != nil {
		panic(fmt.Sprintf("failed to get home directory: %v", err))
	}

	configDir = filepath.Join(homeDir, ".config", "themesmith")
	configFile = filepath.Join(configDir, "config.yaml")
}

func GetConfigDir() string {
	return configDir
}

func GetConfigFile() string {
	return configFile
}

// SetConfigFile points LoadConfig and SaveConfig at another file, as the
// --config flag does.
func SetConfigFile(path string) {
	configFile = path
}

func ConfigExists() bool {
	_, err := os.Stat(configFile)
	return err == nil
}

func EnsureConfigDir() error {
	return os.MkdirAll(filepath.Dir(configFile), 0755)
}

// GetDefaultConfig returns the built-in settings. An empty store path is
// resolved against the backend by LoadConfig.
func GetDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Backend: BackendSQLite,
		},
		Shell: ShellConfig{
			ThemesDir: "~/.themes",
		},
		Defaults: DefaultsConfig{
			Mode:   domain.ModeLight.String(),
			Accent: domain.AccentBlue.String(),
		},
		Compiler: CompilerConfig{
			Kind: CompilerDartSass,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setAll(GetDefaultConfig(), v.SetDefault)
	return v
}

func setAll(cfg *Config, set func(key string, value any)) {
	set("store.backend", cfg.Store.Backend)
	set("store.path", cfg.Store.Path)
	set("shell.source", cfg.Shell.Source)
	set("shell.work_dir", cfg.Shell.WorkDir)
	set("shell.themes_dir", cfg.Shell.ThemesDir)
	set("gtk.gtk3_path", cfg.GTK.GTK3Path)
	set("gtk.gtk4_path", cfg.GTK.GTK4Path)
	set("defaults.mode", cfg.Defaults.Mode)
	set("defaults.accent", cfg.Defaults.Accent)
	set("compiler.kind", cfg.Compiler.Kind)
	set("compiler.binary", cfg.Compiler.Binary)
	set("log.level", cfg.Log.Level)
	set("log.format", cfg.Log.Format)
	set("ui.theme", cfg.UI.Theme)
}

// LoadConfig reads the config file when present and applies THEMESMITH_*
// environment overrides on top of the defaults.
func LoadConfig() (*Config, error) {
	v := newViper()

	if ConfigExists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Store.Path == "" {
		cfg.Store.Path = defaultStorePath(cfg.Store.Backend)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SaveConfig writes cfg to the config file.
func SaveConfig(cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()
	setAll(cfg, v.Set)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func defaultStorePath(backend string) string {
	if backend == BackendFiles {
		return filepath.Join(configDir, "presets")
	}
	return filepath.Join(configDir, "presets.db")
}

func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendFiles:
	default:
		return fmt.Errorf("invalid store.backend %q (must be %s or %s)", c.Store.Backend, BackendSQLite, BackendFiles)
	}

	switch c.Compiler.Kind {
	case CompilerDartSass, CompilerCommand:
	default:
		return fmt.Errorf("invalid compiler.kind %q (must be %s or %s)", c.Compiler.Kind, CompilerDartSass, CompilerCommand)
	}

	if _, err := domain.ParseMode(c.Defaults.Mode); err != nil {
		return fmt.Errorf("defaults.mode: %w", err)
	}
	if _, err := domain.ParseAccent(c.Defaults.Accent); err != nil {
		return fmt.Errorf("defaults.accent: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.UI.Theme != "" && !theme.ThemeExists(c.UI.Theme) {
		return fmt.Errorf("ui.theme: %w: %s (available: %s)", theme.ErrThemeNotFound, c.UI.Theme, strings.Join(theme.ListThemes(), ", "))
	}

	return nil
}

// Mode returns the parsed default mode. Validate guarantees it parses.
func (c *Config) Mode() domain.Mode {
	m, _ := domain.ParseMode(c.Defaults.Mode)
	return m
}

func (c *Config) Accent() domain.Accent {
	a, _ := domain.ParseAccent(c.Defaults.Accent)
	return a
}

// Logging converts the log section for logging.New.
func (c *Config) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	if level, err := logging.ParseLevel(c.Log.Level); err == nil {
		cfg.Level = level
	}
	if c.Log.Format != "" {
		cfg.Format = c.Log.Format
	}
	return cfg
}

// ExpandPath resolves a leading ~ in path.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", fmt.Errorf("failed to expand %s: %w", path, err)
	}
	return expanded, nil
}
