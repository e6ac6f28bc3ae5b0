// Command playwright-mcp is an MCP server exposing a Playwright-driven
// browser to tool-calling clients over stdio.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
	"github.com/morimorihoge/playwright-mcp/pkg/config"
	"github.com/morimorihoge/playwright-mcp/pkg/logging"
	"github.com/morimorihoge/playwright-mcp/pkg/tools"
)

const (
	serverName        = "playwright-mcp"
	version           = "0.1.0"
	defaultConfigPath = "playwright-mcp.yaml"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", defaultConfigPath, "path to YAML config file")
		headless    = flag.Bool("headless", true, "run the browser without a visible window")
		logLevel    = flag.String("log-level", "", "log level: trace, debug, info, warn, error")
		skipInstall = flag.Bool("skip-install", false, "skip the Playwright driver/browser installation step")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("%s %s\n", serverName, version)
		return nil
	}

	explicit := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicit = true
		}
	})

	cfg, err := config.Load(*configPath, explicit)
	if err != nil {
		return err
	}

	// Flags passed on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "headless":
			cfg.Browser.Headless = *headless
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "skip-install":
			cfg.Browser.SkipInstall = *skipInstall
		}
	})

	logger := logging.Setup(cfg.Logging.Level)
	logger.Info().Str("version", version).Msg("starting server")

	origins, err := config.NewOriginMatcher(cfg.Security.AllowedOrigins, cfg.Security.DeniedOrigins)
	if err != nil {
		return err
	}

	manager := browser.NewManager(browser.Options{
		Headless:       cfg.Browser.Headless,
		ViewportWidth:  cfg.Browser.ViewportWidth,
		ViewportHeight: cfg.Browser.ViewportHeight,
		Timeout:        float64(cfg.Browser.TimeoutMs),
		SkipInstall:    cfg.Browser.SkipInstall,
	}, logging.Component(logger, "browser"))

	if err := manager.Initialize(); err != nil {
		return err
	}
	defer func() {
		if err := manager.Shutdown(); err != nil {
			logger.Error().Err(err).Msg("browser shutdown failed")
		}
	}()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: version,
	}, nil)
	tools.RegisterAll(server, tools.NewHandlers(manager, origins, logging.Component(logger, "tools")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().Msg("serving MCP over stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info().Msg("server stopped")
	return nil
}
