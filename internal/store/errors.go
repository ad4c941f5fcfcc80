package store

import "github.com/cockroachdb/errors"

var (
	// ErrDuplicate is returned when the topic already follows the team.
	ErrDuplicate = errors.New("subscription already exists")
	// ErrNotFound is returned when no subscription has the requested id.
	ErrNotFound = errors.New("subscription not found")
)
