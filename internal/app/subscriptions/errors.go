package subscriptions

import "github.com/cockroachdb/errors"

var (
	// ErrAlreadySubscribed is returned when the topic already follows the team.
	ErrAlreadySubscribed = errors.New("You are already subscribed to this team")
	// ErrNotFound is returned when unsubscribing an unknown id.
	ErrNotFound = errors.New("Not found")
)

// ValidationError describes a rejected request. Message is safe to show to clients.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
