package availability

import "fmt"

// ValidationError means the request itself was malformed. It is fatal: no
// upstream call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AuthorizationError means the caller may not view this club's availability.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	return "access denied: " + e.Reason
}
