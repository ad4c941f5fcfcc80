package subscriptions

import (
	"regexp"
	"strings"
	"time"
)

const (
	// MinTopicLength is the shortest topic accepted after sanitising.
	MinTopicLength = 3
	// MaxTopicLength matches ntfy's topic limit.
	MaxTopicLength = 64
)

var unsafeTopicChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Subscription links an ntfy topic to a team.
type Subscription struct {
	ID         string    `json:"id"`
	Topic      string    `json:"ntfyTopic"`
	TeamAbbrev string    `json:"teamAbbrev"`
	CreatedAt  time.Time `json:"createdAt"`
}

// SanitizeTopic trims the topic and strips every character outside [a-zA-Z0-9_-].
func SanitizeTopic(raw string) string {
	return unsafeTopicChars.ReplaceAllString(strings.TrimSpace(raw), "")
}

// SameTarget reports whether two subscriptions point the same topic at the same team.
func (s Subscription) SameTarget(other Subscription) bool {
	return s.Topic == other.Topic && s.TeamAbbrev == other.TeamAbbrev
}
