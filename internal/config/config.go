package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Transport modes for the MCP server.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config represents the application configuration.
type Config struct {
	Coolify   CoolifyConfig   `toml:"coolify" yaml:"coolify"`
	Server    ServerConfig    `toml:"server" yaml:"server"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
	Telemetry TelemetryConfig `toml:"telemetry" yaml:"telemetry"`
}

// CoolifyConfig holds the backend connection settings.
type CoolifyConfig struct {
	BaseURL string `toml:"base_url" yaml:"base_url"`
	Token   string `toml:"token" yaml:"token"`
}

// ServerConfig contains MCP server settings.
type ServerConfig struct {
	Name      string `toml:"name" yaml:"name"`
	Transport string `toml:"transport" yaml:"transport"` // "stdio" or "http"
	Host      string `toml:"host" yaml:"host"`
	Port      int    `toml:"port" yaml:"port"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level      string   `toml:"level" yaml:"level"`
	Outputs    []string `toml:"outputs" yaml:"outputs"`
	FilePath   string   `toml:"file_path" yaml:"file_path"`
	MaxSizeMB  int      `toml:"max_size_mb" yaml:"max_size_mb"`
	MaxBackups int      `toml:"max_backups" yaml:"max_backups"`
}

// TelemetryConfig contains OpenTelemetry settings. Exporter endpoints come
// from the standard OTEL_EXPORTER_OTLP_* variables.
type TelemetryConfig struct {
	Enabled     bool   `toml:"enabled" yaml:"enabled"`
	ServiceName string `toml:"service_name" yaml:"service_name"`
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files. Files ending in .yaml or .yml are
// parsed as YAML, everything else as TOML.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := unmarshal(path, data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)
	config.Coolify.BaseURL = strings.TrimRight(config.Coolify.BaseURL, "/")

	return config, nil
}

func unmarshal(path string, data []byte, config *Config) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), config)
	default:
		return toml.Unmarshal(data, config)
	}
}

// applyEnvOverrides applies COOLIFY_* environment variable overrides to config.
func applyEnvOverrides(config *Config) {
	if baseURL := os.Getenv("COOLIFY_BASE_URL"); baseURL != "" {
		config.Coolify.BaseURL = baseURL
	}
	if token := os.Getenv("COOLIFY_TOKEN"); token != "" {
		config.Coolify.Token = token
	}
	if transport := os.Getenv("COOLIFY_MCP_TRANSPORT"); transport != "" {
		config.Server.Transport = transport
	}
	if host := os.Getenv("COOLIFY_MCP_HOST"); host != "" {
		config.Server.Host = host
	}
	if port := os.Getenv("COOLIFY_MCP_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if level := os.Getenv("COOLIFY_MCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if telemetry := os.Getenv("COOLIFY_MCP_TELEMETRY"); telemetry != "" {
		config.Telemetry.Enabled = strings.EqualFold(telemetry, "true") || telemetry == "1"
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, transport, host string, port int) {
	if transport != "" {
		config.Server.Transport = transport
	}
	if host != "" {
		config.Server.Host = host
	}
	if port > 0 {
		config.Server.Port = port
	}
}

// Validate reports the first configuration problem that would prevent the
// server from starting. An empty token is allowed.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Coolify.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid coolify base_url %q: %w", c.Coolify.BaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid coolify base_url %q: scheme must be http or https", c.Coolify.BaseURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid coolify base_url %q: missing host", c.Coolify.BaseURL)
	}

	switch c.Server.Transport {
	case TransportStdio:
	case TransportHTTP:
		if c.Server.Port < 1 || c.Server.Port > 65535 {
			return fmt.Errorf("invalid server port %d", c.Server.Port)
		}
	default:
		return fmt.Errorf("unsupported transport %q (want %q or %q)", c.Server.Transport, TransportStdio, TransportHTTP)
	}

	return nil
}

// Addr returns the host:port the HTTP transport listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}
