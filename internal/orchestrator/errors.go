package orchestrator

import "fmt"

// StepError reports which workflow step failed and wraps the cause
// unchanged. PushID is non-zero when a push had already been applied before
// the failure: ref updates and pushes are never rolled back (the remote API
// offers no transaction), so the id stays visible for diagnosis.
type StepError struct {
	Step       string
	RunID      string
	Repository string
	PushID     int
	Err        error
}

func (e *StepError) Error() string {
	if e.PushID != 0 {
		return fmt.Sprintf("%s failed (run %s, push %d already applied): %v", e.Step, e.RunID, e.PushID, e.Err)
	}
	return fmt.Sprintf("%s failed (run %s): %v", e.Step, e.RunID, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
