// cmd/simulate/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"syscall"
	"time"

	"github.com/opd-ai/shipcore/pkg/config"
	"github.com/opd-ai/shipcore/pkg/health"
	"github.com/opd-ai/shipcore/pkg/logging"
	"github.com/opd-ai/shipcore/pkg/simulation"
)

func main() {
	logger := logging.NewLogger()
	ctx := context.Background()

	configPath := parseCommandLineFlags(logger, ctx)
	simConfig := loadSimConfiguration(logger, ctx, configPath)
	sim := initializeSimulation(logger, ctx, simConfig)
	healthServer := setupHealthMonitoring(logger, ctx, sim)

	runCtx, cancelRun := context.WithCancel(ctx)
	go runTickLoop(logger, runCtx, sim)

	handleGracefulShutdown(logger, ctx, cancelRun, healthServer, sim)
}

// parseCommandLineFlags parses command line arguments and handles default config creation if requested.
func parseCommandLineFlags(logger *logging.Logger, ctx context.Context) string {
	configPath := flag.String("config", "config.json", "Path to simulation configuration file")
	createDefault := flag.Bool("default", false, "Create default configuration file")
	flag.Parse()

	if *createDefault {
		logger.Info(ctx, "Creating default configuration file")
		if err := config.SaveConfig(config.DefaultConfig(), *configPath); err != nil {
			logger.Error(ctx, "Failed to create default configuration", err)
			os.Exit(1)
		}
		logger.Info(ctx, "Default configuration created", "path", *configPath)
		os.Exit(0)
	}

	return *configPath
}

// loadSimConfiguration loads the simulation configuration from file or uses defaults.
func loadSimConfiguration(logger *logging.Logger, ctx context.Context, configPath string) *config.SimConfig {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Info(ctx, "Configuration file not found, using default configuration",
			"config_path", configPath,
		)
		return config.DefaultConfig()
	}

	simConfig, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error(ctx, "Failed to load configuration", err,
			"config_path", configPath,
		)
		os.Exit(1)
	}
	return simConfig
}

// initializeSimulation builds the Simulation and starts its resource manager.
func initializeSimulation(logger *logging.Logger, ctx context.Context, simConfig *config.SimConfig) *simulation.Simulation {
	sim := simulation.New(simConfig)
	sim.Log = logger

	if err := sim.InitializeResourceManager(); err != nil {
		logger.Warn(ctx, "Failed to initialize resource manager", "error", err)
	}

	return sim
}

// setupHealthMonitoring configures and starts the health check HTTP server.
func setupHealthMonitoring(logger *logging.Logger, ctx context.Context, sim *simulation.Simulation) *http.Server {
	healthChecker := health.NewHealthChecker()

	healthChecker.AddCheck(health.NewSimulationTickCheck(sim))

	healthChecker.AddCheck(health.NewMemoryHealthCheck(1024, func() int64 {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)
		return int64(m.Alloc / 1024 / 1024)
	}))

	if sim.Resources != nil {
		healthChecker.AddCheck(resourceHealthCheck{sim})
	}

	healthPort := determineHealthPort()
	healthServer := createHealthServer(healthPort, healthChecker)

	go func() {
		logger.Info(ctx, "Starting health check server", "port", healthPort)
		if err := healthServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error(ctx, "Health check server failed", err)
		}
	}()

	return healthServer
}

// resourceHealthCheck adapts a Simulation's ResourceManager to health.HealthCheck
// without pkg/health importing pkg/resource or pkg/simulation directly.
type resourceHealthCheck struct {
	sim *simulation.Simulation
}

func (r resourceHealthCheck) Name() string { return "resource" }

func (r resourceHealthCheck) Check(ctx context.Context) error {
	stats := r.sim.Resources.GetResourceStats()
	if stats.MemoryUsageMB > stats.MaxMemoryMB {
		return fmt.Errorf("memory usage %dMB exceeds limit %dMB", stats.MemoryUsageMB, stats.MaxMemoryMB)
	}
	return nil
}

// determineHealthPort gets the health check port from environment or uses default.
func determineHealthPort() string {
	healthPort := "8080"
	if envPort := os.Getenv("SHIPCORE_HEALTH_PORT"); envPort != "" {
		if _, err := strconv.Atoi(envPort); err == nil {
			healthPort = envPort
		}
	}
	return healthPort
}

// createHealthServer creates and configures the HTTP server for health checks.
func createHealthServer(healthPort string, healthChecker *health.HealthChecker) *http.Server {
	healthMux := http.NewServeMux()
	healthMux.HandleFunc("/health", healthChecker.LivenessHandler)
	healthMux.HandleFunc("/ready", healthChecker.ReadinessHandler)

	return &http.Server{
		Addr:         ":" + healthPort,
		Handler:      healthMux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
}

// runTickLoop drives the simulation at its configured tick rate until ctx is
// cancelled. Spawn errors accumulated during the tick are logged and drained
// so the queue never grows unbounded across a long run.
func runTickLoop(logger *logging.Logger, ctx context.Context, sim *simulation.Simulation) {
	tickLen := time.Duration(float64(time.Second) * sim.Config.TickLength)
	if tickLen <= 0 {
		tickLen = time.Second / 60
	}
	ticker := time.NewTicker(tickLen)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			sim.Step()
			for _, spawnErr := range sim.DrainErrors() {
				logger.Warn(ctx, "spawn error", "handle", spawnErr.Handle.String(), "error", spawnErr.Err.Error())
			}
		}
	}
}

// handleGracefulShutdown waits for shutdown signals and gracefully stops all services.
func handleGracefulShutdown(logger *logging.Logger, ctx context.Context, cancelRun context.CancelFunc, healthServer *http.Server, sim *simulation.Simulation) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	<-sigChan
	logger.Info(ctx, "Shutting down simulation")

	cancelRun()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := healthServer.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "Health check server shutdown failed", err)
	}

	if sim.Resources != nil {
		if err := sim.Resources.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Resource manager shutdown failed", err)
		}
	}
}
