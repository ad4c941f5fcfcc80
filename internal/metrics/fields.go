package metrics

// Metric attribute keys.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrTeam     = "team"
	AttrOutcome  = "outcome"
)

// Notification outcomes reported under AttrOutcome.
const (
	OutcomeSent   = "sent"
	OutcomeFailed = "failed"
)
