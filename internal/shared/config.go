package shared

import (
	_ "embed"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Server      ServerConfig      `toml:"server"`
	Credentials CredentialsConfig `toml:"credentials"`
	Input       InputConfig       `toml:"input"`
	Session     SessionConfig     `toml:"session"`
	Journal     JournalConfig     `toml:"journal"`
}

// ServerConfig describes where the playlist service lives.
type ServerConfig struct {
	Scheme    string `toml:"scheme"`
	Host      string `toml:"host"`
	APIPrefix string `toml:"api_prefix"`
	UserAgent string `toml:"user_agent"`
}

// CredentialsConfig contains the login used for the seeding session.
type CredentialsConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

// InputConfig names the identifier files.
type InputConfig struct {
	Tracks    string `toml:"tracks"`
	Playlists string `toml:"playlists"`
}

// SessionConfig holds the extra cookie pairs attached next to the jwt cookie.
type SessionConfig struct {
	RefreshToken string `toml:"refresh_token"`
	Session      string `toml:"session"`
}

// JournalConfig contains run journal database settings.
type JournalConfig struct {
	Path string `toml:"path"`
}

// BaseURL joins scheme, host and API prefix, e.g. http://localhost:10000/v1
func (c *Config) BaseURL() string {
	u := url.URL{
		Scheme: c.Server.Scheme,
		Host:   c.Server.Host,
		Path:   "/" + strings.Trim(c.Server.APIPrefix, "/"),
	}
	return strings.TrimSuffix(u.String(), "/")
}

// Validate reports missing values that would make a seeding run impossible.
func (c *Config) Validate() error {
	switch {
	case c.Server.Host == "":
		return fmt.Errorf("%w: server.host is empty", ErrInvalidConfig)
	case c.Server.Scheme != "http" && c.Server.Scheme != "https":
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidConfig, c.Server.Scheme)
	case c.Credentials.Email == "":
		return fmt.Errorf("%w: credentials.email is empty", ErrInvalidConfig)
	case c.Input.Tracks == "" || c.Input.Playlists == "":
		return fmt.Errorf("%w: input files are not set", ErrInvalidConfig)
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
