package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	Provider    string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string
	NHL         NHLConfig
	Ntfy        NtfyConfig
	Polling     PollingConfig
	Store       StoreConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		Provider:    envOrDefault(envProvider, defaultProvider),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		LogLevel:    envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:   envOrDefault(envLogFormat, defaultLogFormat),
		NHL:         loadNHL(),
		Ntfy:        loadNtfy(),
		Polling:     loadPolling(),
		Store:       loadStore(),
		Metrics:     loadMetrics(),
	}
}
