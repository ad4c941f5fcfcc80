package config

// PollingConfig holds the adaptive cadence used by the poller.
type PollingConfig struct {
	LiveGame            Duration
	Intermission        Duration
	PreGame             Duration
	ScheduleCheck       Duration
	CatchUpDelay        Duration
	ScheduleConcurrency int
}

func loadPolling() PollingConfig {
	return PollingConfig{
		LiveGame:            durationEnvOrDefault(envPollLive, defaultPollLive),
		Intermission:        durationEnvOrDefault(envPollIntermission, defaultPollIntermission),
		PreGame:             durationEnvOrDefault(envPollPreGame, defaultPollPreGame),
		ScheduleCheck:       durationEnvOrDefault(envPollScheduleCheck, defaultPollScheduleCheck),
		CatchUpDelay:        durationEnvOrDefault(envCatchUpDelay, defaultCatchUpDelay),
		ScheduleConcurrency: intEnvOrDefault(envScheduleFanout, defaultScheduleFanout),
	}
}
