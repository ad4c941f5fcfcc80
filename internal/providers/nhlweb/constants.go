package nhlweb

import "time"

const (
	providerName       = "nhlweb"
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 10 * time.Second
	defaultTimezone    = "America/New_York"
	defaultUserAgent   = "NHLGoalNotifier/2.0"
	maxErrorBody       = 512

	playTypeGoal = "goal"
	periodTypeOT = "OT"
)
