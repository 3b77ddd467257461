package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds tunables shared by every step of the setup flow.
type Config struct {
	// ManifestURLs is the ordered list of version manifest mirrors.
	// The resolver tries them in order and keeps the first success.
	ManifestURLs []string `yaml:"manifest_urls"`
	// FetchTimeout bounds manifest and version metadata requests.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`
	// DownloadTimeout bounds the server artifact download.
	DownloadTimeout time.Duration `yaml:"download_timeout"`
	// JarName is the filename the server artifact is stored under.
	JarName string `yaml:"jar_name"`
}

const (
	// DefaultConfigFilename is the default filename for setup settings.
	DefaultConfigFilename = "mc-server-setup.yaml"

	// DefaultJarName is the filename used for the downloaded server artifact.
	DefaultJarName = "server.jar"

	// DefaultFetchTimeout bounds manifest and metadata fetches.
	DefaultFetchTimeout = 30 * time.Second

	// DefaultDownloadTimeout bounds the artifact download.
	DefaultDownloadTimeout = 60 * time.Second

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNoManifestURLs is returned when the mirror list is explicitly empty.
	errNoManifestURLs = errors.New("at least one manifest URL must be provided")
	// errJarNameIsPath is returned when the jar name contains path separators.
	errJarNameIsPath = errors.New("jar name must be a bare filename")
)

// DefaultManifestURLs returns the ordered Mojang manifest mirrors.
// The v2 manifest is preferred; the v1 endpoint is kept as a fallback.
func DefaultManifestURLs() []string {
	return []string{
		"https://launchermeta.mojang.com/mc/game/version_manifest_v2.json",
		"https://launchermeta.mojang.com/mc/game/version_manifest.json",
	}
}

// Default returns a configuration with every field set to its default.
func Default() *Config {
	return &Config{
		ManifestURLs:    DefaultManifestURLs(),
		FetchTimeout:    DefaultFetchTimeout,
		DownloadTimeout: DefaultDownloadTimeout,
		JarName:         DefaultJarName,
	}
}

// Load reads configuration from the provided path and validates essential fields.
// A missing file yields the defaults: the settings file is optional.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the provided settings and fills defaults for omitted fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.ManifestURLs == nil {
		cfg.ManifestURLs = DefaultManifestURLs()
	}

	if len(cfg.ManifestURLs) == 0 {
		return errNoManifestURLs
	}

	for _, mirror := range cfg.ManifestURLs {
		if _, err := url.ParseRequestURI(mirror); err != nil {
			return fmt.Errorf("invalid manifest URL %q: %w", mirror, err)
		}
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = DefaultFetchTimeout
	}

	if cfg.DownloadTimeout <= 0 {
		cfg.DownloadTimeout = DefaultDownloadTimeout
	}

	if cfg.JarName == "" {
		cfg.JarName = DefaultJarName
	}

	if strings.ContainsAny(cfg.JarName, `/\`) {
		return fmt.Errorf("%w: %s", errJarNameIsPath, cfg.JarName)
	}

	return nil
}
