package notify

import "context"

// Priority levels understood by ntfy (1 = min, 5 = max).
const (
	PriorityDefault = 3
	PriorityMax     = 5
)

// Notification is one push message.
type Notification struct {
	Title    string
	Message  string
	ImageURL string
	IconURL  string
	Priority int
	Tags     []string
}

// Sender delivers a notification to a single topic.
type Sender interface {
	Send(ctx context.Context, topic string, n Notification) error
}
