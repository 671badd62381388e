package models

import "errors"

// Sentinel errors shared between repository, service and handler
// layers. Handlers map these to 404 / 409; anything else is a 500.
var (
	ErrIncidentNotFound      = errors.New("incident not found")
	ErrDuplicateIncidentCode = errors.New("incident code already exists")
)

// ValidationError marks a request rejected before any database round
// trip because a required field is missing.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return "missing required field: " + e.Field
}
