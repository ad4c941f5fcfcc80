package config

import "time"

const (
	envPort        = "PORT"
	envProvider    = "PROVIDER"
	envCORSOrigins = "CORS_ALLOW_ORIGINS"
	envLogLevel    = "LOG_LEVEL"
	envLogFormat   = "LOG_FORMAT"

	envNHLBaseURL  = "NHL_API_BASE_URL"
	envNHLTimezone = "NHL_TIMEZONE"
	envNHLAgent    = "NHL_USER_AGENT"
	envNHLRate     = "NHL_REQUESTS_PER_SECOND"

	envNtfyBaseURL = "NTFY_BASE_URL"
	envNtfyToken   = "NTFY_TOKEN"
	envLogoBaseURL = "LOGO_BASE_URL"

	envPollLive          = "POLL_LIVE_GAME"
	envPollIntermission  = "POLL_INTERMISSION"
	envPollPreGame       = "POLL_PRE_GAME"
	envPollScheduleCheck = "POLL_SCHEDULE_CHECK"
	envCatchUpDelay      = "CATCH_UP_DELAY"
	envScheduleFanout    = "SCHEDULE_CONCURRENCY"

	envStoreBackend  = "STORE_BACKEND"
	envDataFile      = "DATA_FILE"
	envRedisAddr     = "REDIS_ADDR"
	envRedisPassword = "REDIS_PASSWORD"
	envRedisDB       = "REDIS_DB"
	envRedisKey      = "REDIS_KEY"

	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort      = "3000"
	defaultProvider  = "nhlweb"
	defaultLogLevel  = "info"
	defaultLogFormat = "text"

	defaultNHLBaseURL  = "https://api-web.nhle.com/v1"
	defaultNHLTimezone = "America/New_York"
	defaultNHLAgent    = "NHLGoalNotifier/2.0"
	defaultNHLRate     = 5.0

	defaultNtfyBaseURL = "https://ntfy.sh"
	defaultLogoBaseURL = "https://assets.nhle.com/logos/nhl/svg"

	defaultPollLive          = 15 * Duration(time.Second)
	defaultPollIntermission  = 30 * Duration(time.Second)
	defaultPollPreGame       = 3 * Duration(time.Minute)
	defaultPollScheduleCheck = 10 * Duration(time.Minute)
	defaultCatchUpDelay      = 1 * Duration(time.Second)
	defaultScheduleFanout    = 4

	StoreBackendFile  = "file"
	StoreBackendRedis = "redis"

	defaultStoreBackend = StoreBackendFile
	defaultDataFile     = "data/subscriptions.json"
	defaultRedisAddr    = "localhost:6379"
	defaultRedisKey     = "goal-notifier:subscriptions"

	defaultMetricsPort = "9090"
	defaultServiceName = "nhl-goal-notifier"
)

var defaultCORSOrigins = []string{"*"}
