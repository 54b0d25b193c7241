package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"chainwatch-go/internal/config"
	"chainwatch-go/pkg/history"
	"chainwatch-go/pkg/logger"
	"chainwatch-go/pkg/monitor"
)

// getEnvOrDefault returns environment variable value or default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvIntOrDefault returns environment variable as int or default
func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvBoolOrDefault returns environment variable as bool or default
func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func main() {
	defaults := config.Default()

	// Environment variable defaults, overridable by flags
	defaultHistoryPath := getEnvOrDefault("HISTORY_PATH", "")
	defaultInterval := getEnvIntOrDefault("POLL_INTERVAL_SECONDS", defaults.Monitor.PollIntervalSeconds)
	defaultBatchSize := getEnvIntOrDefault("BATCH_THRESHOLD", defaults.Monitor.BatchThreshold)
	defaultFetchLimit := getEnvIntOrDefault("FETCH_LIMIT", defaults.Monitor.FetchLimit)
	defaultDebug := getEnvBoolOrDefault("DEBUG", false)

	var (
		configPath  = flag.String("config", "", "Optional YAML config file (env: CHAINWATCH_*)")
		historyPath = flag.String("history-path", defaultHistoryPath, "Chrome history database path (env: HISTORY_PATH)")
		interval    = flag.Int("interval", defaultInterval, "Poll interval in seconds (env: POLL_INTERVAL_SECONDS)")
		batchSize   = flag.Int("batch-size", defaultBatchSize, "Distinct links per batch flush (env: BATCH_THRESHOLD)")
		fetchLimit  = flag.Int("fetch-limit", defaultFetchLimit, "History entries fetched per poll (env: FETCH_LIMIT)")
		debug       = flag.Bool("debug", defaultDebug, "Enable debug logging (env: DEBUG)")
		help        = flag.Bool("help", false, "Show help message")
	)

	flag.Parse()

	if *help {
		printUsage()
		return
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.NewManager().Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: failed to load config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Explicit flags and env vars win over config file values
	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { setFlags[f.Name] = true })

	if setFlags["history-path"] || defaultHistoryPath != "" {
		cfg.History.Path = *historyPath
	}
	if setFlags["interval"] || os.Getenv("POLL_INTERVAL_SECONDS") != "" {
		cfg.Monitor.PollIntervalSeconds = *interval
	}
	if setFlags["batch-size"] || os.Getenv("BATCH_THRESHOLD") != "" {
		cfg.Monitor.BatchThreshold = *batchSize
	}
	if setFlags["fetch-limit"] || os.Getenv("FETCH_LIMIT") != "" {
		cfg.Monitor.FetchLimit = *fetchLimit
	}

	if *debug {
		cfg.Logger.Level = "debug"
	}
	appLogger := logger.New(logger.Config{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		Output:     cfg.Logger.Output,
		TimeFormat: cfg.Logger.TimeFormat,
	})
	logger.SetLogger(appLogger)
	logger.SetGlobalLogger(appLogger)

	log := logger.WithField("component", "main")

	var source *history.ChromeSource
	var err error
	if cfg.History.Path != "" {
		source = history.NewChromeSourceWithPath(cfg.History.Path)
	} else {
		source, err = history.NewChromeSource()
		if err != nil {
			log.WithError(err).Fatal("Failed to locate Chrome history database")
		}
	}

	log.WithFields(map[string]interface{}{
		"history_path":    source.Path(),
		"poll_interval":   cfg.Monitor.PollIntervalSeconds,
		"batch_threshold": cfg.Monitor.BatchThreshold,
		"fetch_limit":     cfg.Monitor.FetchLimit,
	}).Info("Starting browser history keyword monitor")

	historyMonitor := monitor.NewHistoryMonitor(source, monitor.Config{
		PollInterval:    time.Duration(cfg.Monitor.PollIntervalSeconds) * time.Second,
		BatchThreshold:  cfg.Monitor.BatchThreshold,
		FetchLimit:      cfg.Monitor.FetchLimit,
		FetchRetries:    cfg.Monitor.FetchRetries,
		FetchRetryDelay: time.Duration(cfg.Monitor.FetchRetryDelayMs) * time.Millisecond,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutdown signal received...")
		cancel()
	}()

	if err := historyMonitor.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		// A history source that stays unreadable past the retry budget is
		// fatal: there is nothing to monitor without it.
		log.WithError(err).Fatal("Monitoring failed")
	}

	fmt.Println("Monitor stopped")
}

func printUsage() {
	fmt.Println("chainwatch-go - Browser History Keyword Monitor")
	fmt.Println("")
	fmt.Println("Periodically reads the local Chrome history, counts keywords from newly")
	fmt.Println("visited URLs (blockchain network names always qualify) and emits a")
	fmt.Println("sha256/base64 fingerprint of each batch's most frequent keyword.")
	fmt.Println("")
	fmt.Println("USAGE:")
	fmt.Println("    ./chainwatch-go [OPTIONS]")
	fmt.Println("")
	fmt.Println("OPTIONS:")
	fmt.Println("    -config string        Optional YAML config file")
	fmt.Println("    -history-path string  Chrome history database path (env: HISTORY_PATH)")
	fmt.Println("    -interval int         Poll interval in seconds (default: 60, env: POLL_INTERVAL_SECONDS)")
	fmt.Println("    -batch-size int       Distinct links per batch flush (default: 5, env: BATCH_THRESHOLD)")
	fmt.Println("    -fetch-limit int      History entries fetched per poll (default: 5, env: FETCH_LIMIT)")
	fmt.Println("    -debug                Enable debug logging (env: DEBUG)")
	fmt.Println("    -help                 Show this help message")
	fmt.Println("")
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("    HISTORY_PATH            Chrome history database path")
	fmt.Println("    POLL_INTERVAL_SECONDS   Poll interval in seconds (60)")
	fmt.Println("    BATCH_THRESHOLD         Distinct links per batch flush (5)")
	fmt.Println("    FETCH_LIMIT             History entries fetched per poll (5)")
	fmt.Println("    DEBUG                   Enable debug logging (false)")
	fmt.Println("    CHAINWATCH_*            Overrides for config file keys, e.g. CHAINWATCH_MONITOR_FETCH_LIMIT")
	fmt.Println("")
	fmt.Println("EXAMPLES:")
	fmt.Println("    ./chainwatch-go")
	fmt.Println("    ./chainwatch-go -interval 30 -debug")
	fmt.Println("    ./chainwatch-go -history-path /tmp/History -batch-size 10")
}
