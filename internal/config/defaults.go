package config

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "prod",
		Server: ServerConfig{
			Port: 4243,
			Host: "localhost",
		},
		Market: MarketConfig{
			BaseURL: "https://api.dexscreener.com/latest/dex",
			Chain:   "solana",
		},
		Analysis: AnalysisConfig{
			Model:           "gemini-3-pro-preview",
			ThinkingBudget:  32768,
			SearchGrounding: true,
		},
		Session: SessionConfig{
			TTL:        "1h",
			MaxEntries: 1000,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Outputs:    []string{"console"},
			FilePath:   "logs/meme-scanner.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
