package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/harrison/hsutools/internal/i18n"
	"github.com/harrison/hsutools/internal/imaging"
)

// DirName is the per-project and per-user configuration directory name.
const DirName = ".hsutools"

// FileName is the configuration file inside DirName.
const FileName = "config.yaml"

// ResizeConfig holds defaults for the resize command
type ResizeConfig struct {
	// Width is the default target width (0 = unset)
	Width int `yaml:"width"`

	Height    int     `yaml:"height"`
	MaxWidth  int     `yaml:"max_width"`
	MaxHeight int     `yaml:"max_height"`
	Scale     float64 `yaml:"scale"`

	// KeepAspect preserves the aspect ratio when both sizes are given
	KeepAspect   bool `yaml:"keep_aspect"`
	AllowUpscale bool `yaml:"allow_upscale"`

	// Quality is the JPEG quality (1-100)
	Quality int `yaml:"quality"`

	// Format forces an output format (empty keeps the source format)
	Format string `yaml:"format"`

	Suffix    string `yaml:"suffix"`
	Recursive bool   `yaml:"recursive"`
}

// S2TWConfig holds defaults for the s2tw command
type S2TWConfig struct {
	// Profile is the OpenCC conversion profile
	Profile string `yaml:"profile"`

	// Extensions limits content conversion (empty = built-in text extensions)
	Extensions []string `yaml:"extensions"`

	CreateBackups bool   `yaml:"create_backups"`
	BackupDir     string `yaml:"backup_dir"`
	BackupSuffix  string `yaml:"backup_suffix"`
}

// TopdfConfig holds defaults for the topdf command
type TopdfConfig struct {
	// SofficePath is the LibreOffice binary (empty = search PATH)
	SofficePath string `yaml:"soffice_path"`

	// Timeout bounds a single document conversion
	Timeout time.Duration `yaml:"-"`
}

// Config represents hsutools configuration options
type Config struct {
	// Lang is the interface language (en, zh)
	Lang string `yaml:"lang"`

	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// IgnoreNames are skipped by every command when no -i flag is given
	IgnoreNames []string `yaml:"ignore_names"`

	Resize ResizeConfig `yaml:"resize"`
	S2TW   S2TWConfig   `yaml:"s2tw"`
	Topdf  TopdfConfig  `yaml:"topdf"`
}

// DefaultIgnoreNames are directory and file names no command descends into.
var DefaultIgnoreNames = []string{
	".git", ".svn", ".hg", ".idea", ".vscode",
	"node_modules", "__pycache__", ".venv", "venv",
	".DS_Store", "Thumbs.db",
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		Lang:        "",
		LogLevel:    "info",
		IgnoreNames: append([]string(nil), DefaultIgnoreNames...),
		Resize: ResizeConfig{
			Width:      1920,
			KeepAspect: true,
			Quality:    imaging.DefaultQuality,
		},
		S2TW: S2TWConfig{
			Profile:       "s2twp",
			CreateBackups: true,
			BackupSuffix:  ".backup",
		},
		Topdf: TopdfConfig{
			Timeout: 2 * time.Minute,
		},
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Keys absent from the file keep their default values.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Durations are written as strings ("90s", "5m")
	var durations struct {
		Topdf struct {
			Timeout string `yaml:"timeout"`
		} `yaml:"topdf"`
	}
	if err := yaml.Unmarshal(data, &durations); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if durations.Topdf.Timeout != "" {
		timeout, err := time.ParseDuration(durations.Topdf.Timeout)
		if err != nil {
			return nil, fmt.Errorf("invalid topdf.timeout format %q: %w", durations.Topdf.Timeout, err)
		}
		cfg.Topdf.Timeout = timeout
	}

	// "extensions: []" means the built-in list, same as leaving the key out.
	if len(cfg.S2TW.Extensions) == 0 {
		cfg.S2TW.Extensions = nil
	}

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .hsutools/config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, DirName, FileName))
}

// Discover finds and loads the configuration for a run.
// Priority order:
//  1. explicit path (must exist)
//  2. .hsutools/config.yaml in dir
//  3. config.yaml in the hsutools home directory
//  4. defaults
//
// The returned path is empty when defaults are used.
func Discover(dir, explicit string) (*Config, string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return nil, "", fmt.Errorf("config file %s: %w", explicit, err)
		}
		cfg, err := LoadConfig(explicit)
		return cfg, explicit, err
	}

	candidates := []string{filepath.Join(dir, DirName, FileName)}
	if home, err := Home(); err == nil {
		candidates = append(candidates, filepath.Join(home, FileName))
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			cfg, err := LoadConfig(path)
			return cfg, path, err
		}
	}

	return DefaultConfig(), "", nil
}

// MergeWithFlags merges global CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(lang *string, logLevel *string) {
	if lang != nil {
		c.Lang = *lang
	}
	if logLevel != nil {
		c.LogLevel = *logLevel
	}
}

// Language returns the configured interface language.
func (c *Config) Language() i18n.Lang {
	return i18n.Normalize(c.Lang)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if lang := strings.ToLower(c.Lang); lang != "" && !strings.HasPrefix(lang, "en") && !strings.HasPrefix(lang, "zh") {
		return fmt.Errorf("invalid lang %q, must be one of: en, zh", c.Lang)
	}

	r := c.Resize
	if r.Width < 0 || r.Height < 0 || r.MaxWidth < 0 || r.MaxHeight < 0 {
		return fmt.Errorf("resize sizes must be >= 0")
	}
	if r.Scale < 0 {
		return fmt.Errorf("resize.scale must be >= 0, got %g", r.Scale)
	}
	if r.Quality < 1 || r.Quality > 100 {
		return fmt.Errorf("resize.quality must be between 1 and 100, got %d", r.Quality)
	}
	if _, err := imaging.NormalizeFormat(r.Format); err != nil {
		return fmt.Errorf("resize.format: %w", err)
	}

	if c.S2TW.Profile == "" {
		return fmt.Errorf("s2tw.profile cannot be empty")
	}
	if c.S2TW.BackupSuffix == "" {
		return fmt.Errorf("s2tw.backup_suffix cannot be empty")
	}

	if c.Topdf.Timeout < 0 {
		return fmt.Errorf("topdf.timeout must be >= 0, got %v", c.Topdf.Timeout)
	}

	return nil
}
