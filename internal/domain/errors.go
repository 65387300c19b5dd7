package domain

import (
	"fmt"
	"strings"
)

// NotFoundError reports that a repository (or project) lookup came back
// empty on the remote side.
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Resource, e.Name)
}

// RefNotFoundError reports that a ref required to exist does not.
type RefNotFoundError struct {
	RefName string
}

func (e *RefNotFoundError) Error() string {
	return fmt.Sprintf("ref %q not found", e.RefName)
}

// AmbiguousRefError reports that a filtered ref listing produced more than
// one exact match for the requested name, so no single tip can be trusted.
type AmbiguousRefError struct {
	RefName string
	Matches []string
}

func (e *AmbiguousRefError) Error() string {
	return fmt.Sprintf("ref %q matched %d refs (%s)", e.RefName, len(e.Matches), strings.Join(e.Matches, ", "))
}

// ConcurrencyConflictError reports that a ref update or push was rejected
// because the expected prior object id no longer matched the server's
// current tip. Another writer moved the ref between read and write.
type ConcurrencyConflictError struct {
	RefName          string
	ExpectedObjectID string
	Reason           string
}

func (e *ConcurrencyConflictError) Error() string {
	msg := fmt.Sprintf("ref %q moved since it was read (expected tip %s)", e.RefName, e.ExpectedObjectID)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}
