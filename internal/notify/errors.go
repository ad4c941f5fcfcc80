package notify

import "fmt"

// DeliveryError reports a push the server did not accept.
type DeliveryError struct {
	Topic      string
	StatusCode int
	Body       string
	Err        error
}

func (e *DeliveryError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("ntfy delivery to %q failed: %v", e.Topic, e.Err)
	case e.Body != "":
		return fmt.Sprintf("ntfy delivery to %q failed: status %d: %s", e.Topic, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("ntfy delivery to %q failed: status %d", e.Topic, e.StatusCode)
	}
}

func (e *DeliveryError) Unwrap() error { return e.Err }
