package domain

import (
	"errors"
	"sort"
	"time"
)

// Outcome summarizes a bulk operation.
type Outcome string

const (
	OutcomeEmpty        Outcome = "empty"
	OutcomeAllSucceeded Outcome = "all_succeeded"
	OutcomePartial      Outcome = "partial"
	OutcomeAllFailed    Outcome = "all_failed"
)

// BulkResult maps a resource name to the error its operation returned (nil on success).
type BulkResult map[string]error

// Succeeded returns the sorted names whose operation returned no error.
func (r BulkResult) Succeeded() []string {
	return r.collect(func(err error) bool { return err == nil })
}

// Failed returns the sorted names whose operation returned an error.
func (r BulkResult) Failed() []string {
	return r.collect(func(err error) bool { return err != nil })
}

// AllOK reports whether no entry failed. An empty result is OK.
func (r BulkResult) AllOK() bool {
	for _, err := range r {
		if err != nil {
			return false
		}
	}
	return true
}

// Outcome classifies the result as empty, all succeeded, partial or all failed.
func (r BulkResult) Outcome() Outcome {
	if len(r) == 0 {
		return OutcomeEmpty
	}
	failed := len(r.Failed())
	switch {
	case failed == 0:
		return OutcomeAllSucceeded
	case failed == len(r):
		return OutcomeAllFailed
	default:
		return OutcomePartial
	}
}

// Err joins the failures in name order, or returns nil.
func (r BulkResult) Err() error {
	var errs []error
	for _, name := range r.Failed() {
		errs = append(errs, r[name])
	}
	return errors.Join(errs...)
}

func (r BulkResult) collect(keep func(error) bool) []string {
	names := make([]string, 0, len(r))
	for name, err := range r {
		if keep(err) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// WorkflowStep is one named step of an orchestrator workflow.
type WorkflowStep struct {
	Name   string
	Result BulkResult
}

// Report describes one run of an orchestrator workflow.
type Report struct {
	RunID      string
	Workflow   string
	Steps      []WorkflowStep
	StartedAt  time.Time
	FinishedAt time.Time
}

// Step returns the result of the named step, or nil if the step did not run.
func (r Report) Step(name string) BulkResult {
	for _, s := range r.Steps {
		if s.Name == name {
			return s.Result
		}
	}
	return nil
}

// Failed reports whether any step had a failure.
func (r Report) Failed() bool {
	for _, s := range r.Steps {
		if !s.Result.AllOK() {
			return true
		}
	}
	return false
}

// Err joins the failures of every step.
func (r Report) Err() error {
	var errs []error
	for _, s := range r.Steps {
		if err := s.Result.Err(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Duration returns how long the workflow ran.
func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
