package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
)

type namedSource interface {
	Name() string
}

// normalizeProviderName returns a lower-cased provider name for logs and
// metrics, deriving it from the source when none is configured.
func normalizeProviderName(raw string, src providers.GameSource) string {
	if raw = strings.TrimSpace(raw); raw != "" {
		return strings.ToLower(raw)
	}
	if named, ok := src.(namedSource); ok {
		return strings.ToLower(named.Name())
	}
	if src != nil {
		return strings.ToLower(fmt.Sprintf("%T", src))
	}
	return "provider"
}
