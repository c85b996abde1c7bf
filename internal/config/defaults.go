package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Coolify: CoolifyConfig{
			BaseURL: "http://localhost:3000",
			Token:   "",
		},
		Server: ServerConfig{
			Name:      "coolify-mcp",
			Transport: TransportStdio,
			Host:      "localhost",
			Port:      4250,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Outputs:    []string{"console"},
			FilePath:   "logs/coolify-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
		Telemetry: TelemetryConfig{
			Enabled:     false,
			ServiceName: "coolify-mcp",
		},
	}
}
