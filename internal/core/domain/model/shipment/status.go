package shipment

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
// It implements a state machine with defined transitions to ensure
// shipments follow the correct fulfillment workflow.
//
// State transitions:
//
//	Created ──┬──> Completed   (processed before the due date)
//	          │
//	          └──> Failed      (processed after the due date)
//
// Completed and Failed are terminal: no transition leaves them.
// InProgress is reserved for future use; no code path currently sets it,
// but the value round-trips through persistence and parsing.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when a shipment record is persisted.
	// Shipments in this status are waiting to be processed by a worker.
	StatusCreated

	// StatusInProgress is reserved for a future processing stage.
	// Nothing transitions into it today.
	StatusInProgress

	// StatusCompleted indicates the shipment was processed before its due date.
	// This is a final state with no further transitions allowed.
	StatusCompleted

	// StatusFailed indicates the shipment was processed after its due date.
	// This is a final state with no further transitions allowed.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusCreated:    "Created",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusFailed:     "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:    "Created",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusFailed:     "Failed",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Created, InProgress, Completed, and Failed.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any value,
// including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status is a final state.
// Terminal shipments are never transitioned again; reprocessing them is a
// no-op re-assertion.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Created -> Completed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Complete() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return StatusCompleted, nil
}

// Fail transitions the status to Failed.
//
// Valid transitions:
//   - Created -> Failed
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Fail() (Status, error) {
	if s != StatusCreated {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fail", s.String()),
		)
	}

	return StatusFailed, nil
}
