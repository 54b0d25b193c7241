package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type manager struct {
	mu     sync.RWMutex
	config *Config
	viper  *viper.Viper
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setupViper(configPath)

	if err := m.viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := m.unmarshalAndValidate()
	if err != nil {
		return nil, err
	}

	m.config = config
	return config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.config == nil {
		return fmt.Errorf("config not loaded")
	}

	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config, err := m.unmarshalAndValidate()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) {
	m.viper.SetConfigFile(configPath)

	m.viper.SetEnvPrefix("CHAINWATCH")
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	// File values override these, env vars override the file
	defaults := Default()
	m.viper.SetDefault("monitor.poll_interval_seconds", defaults.Monitor.PollIntervalSeconds)
	m.viper.SetDefault("monitor.batch_threshold", defaults.Monitor.BatchThreshold)
	m.viper.SetDefault("monitor.fetch_limit", defaults.Monitor.FetchLimit)
	m.viper.SetDefault("monitor.fetch_retries", defaults.Monitor.FetchRetries)
	m.viper.SetDefault("monitor.fetch_retry_delay_ms", defaults.Monitor.FetchRetryDelayMs)
	m.viper.SetDefault("logger.level", defaults.Logger.Level)
	m.viper.SetDefault("logger.format", defaults.Logger.Format)
	m.viper.SetDefault("logger.output", defaults.Logger.Output)
}

func (m *manager) unmarshalAndValidate() (*Config, error) {
	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Monitor.PollIntervalSeconds <= 0 {
		return fmt.Errorf("poll_interval_seconds must be positive")
	}

	if config.Monitor.BatchThreshold <= 0 {
		return fmt.Errorf("batch_threshold must be positive")
	}

	if config.Monitor.FetchLimit <= 0 {
		return fmt.Errorf("fetch_limit must be positive")
	}

	if config.Monitor.FetchRetries < 0 {
		return fmt.Errorf("fetch_retries cannot be negative")
	}

	return nil
}
