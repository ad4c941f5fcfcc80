package config

import "strings"

// StoreConfig selects where subscriptions are persisted.
type StoreConfig struct {
	Backend       string
	DataFile      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisKey      string
}

func loadStore() StoreConfig {
	return StoreConfig{
		Backend:       strings.ToLower(envOrDefault(envStoreBackend, defaultStoreBackend)),
		DataFile:      envOrDefault(envDataFile, defaultDataFile),
		RedisAddr:     envOrDefault(envRedisAddr, defaultRedisAddr),
		RedisPassword: envOrDefault(envRedisPassword, ""),
		RedisDB:       nonNegativeIntEnvOrDefault(envRedisDB, 0),
		RedisKey:      envOrDefault(envRedisKey, defaultRedisKey),
	}
}
