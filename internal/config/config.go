package config

// Config is the full configuration tree. Every tunable has a compiled-in
// default; a config file only overrides.
type Config struct {
	Monitor MonitorConfig `mapstructure:"monitor"`
	History HistoryConfig `mapstructure:"history"`
	Logger  LoggerConfig  `mapstructure:"logger"`
}

type MonitorConfig struct {
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds"`
	BatchThreshold      int `mapstructure:"batch_threshold"`
	FetchLimit          int `mapstructure:"fetch_limit"`
	FetchRetries        int `mapstructure:"fetch_retries"`
	FetchRetryDelayMs   int `mapstructure:"fetch_retry_delay_ms"`
}

type HistoryConfig struct {
	// Path overrides the OS-specific Chrome history location.
	Path string `mapstructure:"path"`
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"time_format"`
}

// Default returns the compiled-in configuration: poll every 60 seconds,
// flush batches of 5, fetch the 5 most recent history entries.
func Default() *Config {
	return &Config{
		Monitor: MonitorConfig{
			PollIntervalSeconds: 60,
			BatchThreshold:      5,
			FetchLimit:          5,
			FetchRetries:        3,
			FetchRetryDelayMs:   2000,
		},
		Logger: LoggerConfig{
			Level:  "warn",
			Format: "json",
			Output: "stdout",
		},
	}
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}
