package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete referee service configuration
type Config struct {
	Server ServerSettings `hcl:"server,block"`
	Limits LimitSettings  `hcl:"limits,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
}

// LimitSettings bounds what a single connection may do
type LimitSettings struct {
	MaxMessageBytes int `hcl:"max_message_bytes,optional"`
	PongWaitSeconds int `hcl:"pong_wait_seconds,optional"`
}

// DefaultConfig returns the default service configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8090,
			LogLevel: "info",
		},
		Limits: LimitSettings{
			MaxMessageBytes: 65536,
			PongWaitSeconds: 60,
		},
	}
}

// LoadConfig loads the configuration from an HCL file, falling back
// to defaults when the file does not exist
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Limits.MaxMessageBytes == 0 {
		config.Limits.MaxMessageBytes = defaults.Limits.MaxMessageBytes
	}
	if config.Limits.PongWaitSeconds == 0 {
		config.Limits.PongWaitSeconds = defaults.Limits.PongWaitSeconds
	}

	return &config, nil
}

// Validate validates the service configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}
	if c.Limits.MaxMessageBytes < 1024 {
		return fmt.Errorf("max_message_bytes must be at least 1024, got %d", c.Limits.MaxMessageBytes)
	}
	if c.Limits.PongWaitSeconds <= 0 {
		return fmt.Errorf("pong_wait_seconds must be positive, got %d", c.Limits.PongWaitSeconds)
	}
	return nil
}

// ListenAddress returns the full listen address
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}
