package config

// NHLConfig controls how we talk to the NHL web API.
type NHLConfig struct {
	BaseURL           string
	Timezone          string
	UserAgent         string
	RequestsPerSecond float64
	LogoBaseURL       string
}

func loadNHL() NHLConfig {
	return NHLConfig{
		BaseURL:           envOrDefault(envNHLBaseURL, defaultNHLBaseURL),
		Timezone:          envOrDefault(envNHLTimezone, defaultNHLTimezone),
		UserAgent:         envOrDefault(envNHLAgent, defaultNHLAgent),
		RequestsPerSecond: floatEnvOrDefault(envNHLRate, defaultNHLRate),
		LogoBaseURL:       envOrDefault(envLogoBaseURL, defaultLogoBaseURL),
	}
}
