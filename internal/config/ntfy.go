package config

// NtfyConfig points at the push server.
type NtfyConfig struct {
	BaseURL string
	Token   string
}

func loadNtfy() NtfyConfig {
	return NtfyConfig{
		BaseURL: envOrDefault(envNtfyBaseURL, defaultNtfyBaseURL),
		Token:   envOrDefault(envNtfyToken, ""),
	}
}
