package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/holdem-referee/cmd/referee/shared"
	"github.com/lox/holdem-referee/internal/server"
)

// ServeCmd runs the WebSocket verification service
type ServeCmd struct {
	Config  string `kong:"default='referee.hcl',help='Path to the HCL configuration file'"`
	Addr    string `kong:"help='Listen address, overrides the configuration file'"`
	Port    int    `kong:"help='Listen port, overrides the configuration file'"`
	Debug   bool   `kong:"help='Enable debug logging'"`
	LogJSON bool   `kong:"name='log-json',help='Emit structured JSON logs instead of console output'"`
}

func (c *ServeCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)
	if c.LogJSON {
		logger = shared.SetupStructuredLogger(c.Debug)
	}

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.Addr != "" {
		cfg.Server.Address = c.Addr
	}
	if c.Port != 0 {
		cfg.Server.Port = c.Port
	}
	if c.Debug {
		cfg.Server.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logWriter := os.Stderr
	if cfg.Server.LogFile != "" {
		f, err := os.OpenFile(cfg.Server.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return err
		}
		defer f.Close()
		logWriter = f
	}

	logger.Info().
		Str("address", cfg.ListenAddress()).
		Str("log_level", cfg.Server.LogLevel).
		Msg("Starting referee service")

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	serviceLogger := shared.SetupServiceLogger(logWriter, cfg.Server.LogLevel)
	s := server.NewServer(cfg, serviceLogger, quartz.NewReal())
	return s.Start(ctx)
}
