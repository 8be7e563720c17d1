package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/ytget/m4a-report/internal/download"
	"github.com/ytget/m4a-report/internal/logging"
	"github.com/ytget/m4a-report/internal/platform"
)

// AppName is used for the config directory and file name
const AppName = "m4a-report"

// Config is the root of the command line configuration file.
type Config struct {
	Run   RunConfig   `toml:"run"`
	Drive DriveConfig `toml:"drive"`
	Log   LogConfig   `toml:"log"`
}

// RunConfig holds defaults for a report run; flags override them.
type RunConfig struct {
	Workbook      string   `toml:"workbook"`
	DownloadDir   string   `toml:"download_dir"`
	Sheets        []string `toml:"sheets"`
	SkipProcessed bool     `toml:"skip_processed"`
	OpenOnSuccess bool     `toml:"open_on_success"`
}

// DriveConfig configures the file provider endpoint.
type DriveConfig struct {
	BaseURL   string `toml:"base_url"`
	UserAgent string `toml:"user_agent"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			DownloadDir:   platform.DefaultDownloadDir(),
			SkipProcessed: DefaultSkipProcessed,
			OpenOnSuccess: DefaultOpenOnComplete,
		},
		Drive: DriveConfig{
			BaseURL:   download.DefaultBaseURL,
			UserAgent: download.DefaultUserAgent,
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./config.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, AppName, "config.toml")
}

// Load reads the file at path on top of the defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	cfg := Default()
	meta, err := toml.Decode(content, cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cerr := &ConfigError{Path: path, Missing: missing}
	for _, key := range meta.Undecoded() {
		cerr.Errors = append(cerr.Errors, fmt.Sprintf("%s: unknown key", key.String()))
	}
	if verr := cfg.Validate(); verr != nil {
		cerr.Errors = append(cerr.Errors, verr.Errors...)
	}
	if cerr.HasErrors() {
		return nil, cerr
	}
	return cfg, nil
}

// Resolve loads the explicit path if given. Otherwise it loads the default
// path when that file exists and falls back to Default. The returned path is
// empty when no file was read.
func Resolve(explicit string) (*Config, string, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, explicit, err
	}

	path := DefaultPath()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	return cfg, path, err
}

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validLogFormats = map[string]bool{
	logging.FormatText: true, logging.FormatJSON: true, "": true,
}

// Validate checks the configuration and returns nil when it is usable.
func (c *Config) Validate() *ConfigError {
	var errs []string

	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}
	if !validLogFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("log.format: must be text or json; got %q", c.Log.Format))
	}

	if c.Drive.BaseURL != "" {
		u, err := url.Parse(c.Drive.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Sprintf("drive.base_url: must be an absolute http(s) URL; got %q", c.Drive.BaseURL))
		}
	}

	for i, sheet := range c.Run.Sheets {
		if sheet == "" {
			errs = append(errs, fmt.Sprintf("run.sheets[%d]: empty sheet name", i))
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return &ConfigError{Errors: errs}
}

// Write serializes the config to TOML and writes it to the specified path.
// Creates parent directories if needed.
func (c *Config) Write(path string) (err error) {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(path)); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	return toml.NewEncoder(f).Encode(c)
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
// and reports the names that were not set.
func substituteEnvVars(content string) (string, []string) {
	seen := make(map[string]bool)
	out := envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		seen[varName] = true
		return match
	})

	missing := make([]string, 0, len(seen))
	for name := range seen {
		missing = append(missing, name)
	}
	sort.Strings(missing)
	if len(missing) == 0 {
		return out, nil
	}
	return out, missing
}
