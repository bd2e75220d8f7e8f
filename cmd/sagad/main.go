package main

// @title Saga Coordinator API
// @version 1.0
// @description Orchestrates multi-service marketplace workflows with compensating rollbacks
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/StoriqaTeam

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http https

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/events"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/handlers"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/middleware"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/metrics"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/telemetry/tracing"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/version"
)

var (
	configPath  = flag.String("config", "", "Path to configuration file")
	versionFlag = flag.Bool("version", false, "Print version information")
	helpFlag    = flag.Bool("help", false, "Print help information")

	// CLI overrides
	appName    = flag.String("app-name", "", "Override app name")
	serverPort = flag.Int("port", 0, "Override server port")
	logLevel   = flag.String("log-level", "", "Override log level")
	debugMode  = flag.Bool("debug", false, "Enable debug mode")
)

func main() {
	flag.Parse()

	// Print help
	if *helpFlag {
		printHelp()
		os.Exit(0)
	}

	// Print version
	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	// Build CLI overrides map
	overrides := buildOverrides()

	// Load configuration
	cfg, err := config.Load(*configPath, overrides)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration:\n%s\n", err)
		os.Exit(1)
	}

	// Initialize logger with configuration
	logCfg := &logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	}
	if cfg.App.Debug || *debugMode {
		logCfg.Level = logger.DebugLevel
	}
	log := logger.New(logCfg)
	logger.SetGlobal(log)

	log.Info("Starting saga coordinator",
		"version", version.Version,
		"buildTime", version.BuildTime,
		"gitCommit", version.GitCommit,
		"app", cfg.App.Name,
		"environment", cfg.App.Environment,
	)

	// Create root context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Initialize tracing
	shutdownTracing, err := tracing.Init(ctx, cfg.Tracing, cfg.App.Name, version.Version)
	if err != nil {
		log.Error("Failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	if cfg.Tracing.Enabled {
		log.Info("Initialized tracing", "endpoint", cfg.Tracing.Endpoint, "sample_rate", cfg.Tracing.SampleRate)
	}

	// Initialize metrics manager
	metricsCfg := metrics.DefaultConfig()
	metricsCfg.Enabled = cfg.Metrics.Enabled
	metricsManager := metrics.NewManager(metricsCfg)

	// Assemble the outbound stack shared by all handlers
	downstream := handlers.NewDownstream(
		httpx.NewRestyClient(),
		cfg.Services,
		cfg.Budget.Default,
		handlers.WithRecorder(metricsManager),
	)

	// Saga events fan out to websocket subscribers
	broadcaster := events.NewBroadcaster()

	eventsHandler := handlers.NewWebSocketHandler(log, broadcaster, handlers.WebSocketConfig{
		AllowedOrigins: cfg.Server.CORS.AllowedOrigins,
		PingInterval:   cfg.Events.PingInterval,
		EventBuffer:    cfg.Events.BufferSize,
	})

	apiHandlers := &api.Handlers{
		Saga:       handlers.NewSagaHandler(downstream, log, broadcaster, metricsManager),
		Users:      handlers.NewUsersHandler(downstream, log),
		Moderation: handlers.NewModerationHandler(downstream, log),
		Orders:     handlers.NewOrdersHandler(downstream, log),
		Health:     handlers.NewHealthHandler(downstream),
		Events:     eventsHandler,
	}
	if metricsManager.Enabled() {
		apiHandlers.Metrics = metricsManager
		apiHandlers.MetricsHandler = metricsManager.Handler()
		log.Info("Initialized metrics", "path", cfg.Metrics.Path)
	}
	if cfg.RateLimit.Enabled {
		apiHandlers.RateLimit = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
		log.Info("Initialized rate limiting", "rps", cfg.RateLimit.RPS, "burst", cfg.RateLimit.Burst)
	}

	// Watch the config file and hot-swap what can change at runtime
	var watcher *config.Watcher
	if *configPath != "" {
		watcher, err = config.NewWatcher(*configPath, config.NewLoader())
		if err != nil {
			log.Error("Failed to create config watcher", "error", err)
			os.Exit(1)
		}
		watcher.OnChange(func(next *config.Config) {
			hot := config.ExtractHotReloadable(next)
			downstream.Apply(hot)
			logger.SetLevel(logger.ParseLevel(hot.LogLevel))
			if next.Server.Host != cfg.Server.Host || next.Server.Port != cfg.Server.Port {
				log.Warn("Server bind address changed; restart required to apply",
					"current", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
					"new", fmt.Sprintf("%s:%d", next.Server.Host, next.Server.Port),
				)
			}
			log.Info("Configuration reloaded",
				"log_level", hot.LogLevel,
				"budget", hot.Budget,
			)
		})
		go func() {
			if err := watcher.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("Config watcher stopped", "error", err)
			}
		}()
		log.Info("Watching configuration file", "path", *configPath)
	}

	httpServer := api.NewHTTPServer(cfg, log, apiHandlers)

	// Start HTTP server in a separate goroutine
	serverErrChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port))
		if err := httpServer.Start(); err != nil {
			serverErrChan <- err
		}
	}()

	log.Info("Saga coordinator is running", "http_port", cfg.Server.Port)
	log.Info("Press Ctrl+C to stop")

	// Wait for shutdown signal or server error
	select {
	case sig := <-sigChan:
		log.Info("Received shutdown signal", "signal", sig)
	case err := <-serverErrChan:
		log.Error("HTTP server error", "error", err)
	case <-ctx.Done():
		log.Info("Context cancelled")
	}

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first so no new sagas start
	log.Info("Shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down HTTP server", "error", err)
	}

	if watcher != nil {
		if err := watcher.Stop(); err != nil {
			log.Error("Error stopping config watcher", "error", err)
		}
	}

	// Drop websocket subscribers before closing the event stream
	log.Info("Closing event stream")
	eventsHandler.Close()
	broadcaster.Close()

	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Error shutting down tracing", "error", err)
	}

	log.Info("Saga coordinator stopped gracefully")
}

func buildOverrides() map[string]interface{} {
	overrides := make(map[string]interface{})

	if *appName != "" {
		overrides["app.name"] = *appName
	}
	if *serverPort != 0 {
		overrides["server.port"] = *serverPort
	}
	if *logLevel != "" {
		overrides["log.level"] = *logLevel
	}
	if *debugMode {
		overrides["app.debug"] = true
	}

	return overrides
}

func printVersion() {
	fmt.Printf("Saga Coordinator - Marketplace Workflow Orchestrator\n")
	fmt.Printf("Version:    %s\n", version.Version)
	fmt.Printf("Build Time: %s\n", version.BuildTime)
	fmt.Printf("Git Commit: %s\n", version.GitCommit)
	fmt.Printf("Go Version: %s\n", version.GoVersion)
}

func printHelp() {
	fmt.Printf("Saga Coordinator - Orchestrates multi-service marketplace workflows\n\n")
	fmt.Printf("Usage: sagad [options]\n\n")
	fmt.Printf("Options:\n")
	flag.PrintDefaults()
	fmt.Printf("\nExamples:\n")
	fmt.Printf("  sagad                                     # Run with default config\n")
	fmt.Printf("  sagad -config config.yaml                 # Use specific config file\n")
	fmt.Printf("  sagad -port 9000 -log-level debug         # Override specific options\n")
	fmt.Printf("  sagad -version                            # Print version info\n")
}
