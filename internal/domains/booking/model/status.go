package model

import (
	"errors"
	"slices"
	"strings"

	"hotel/shared/validator"
)

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "Pending"
	StatusConfirmed Status = "Confirmed"
	StatusCancelled Status = "Cancelled"
	StatusCompleted Status = "Completed"
)

// Statuses lists every lifecycle state.
var Statuses = []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted}

// ActiveStatuses hold inventory.
var ActiveStatuses = []Status{StatusPending, StatusConfirmed}

var transitions = map[Status][]Status{
	StatusPending:   {StatusPending, StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusConfirmed, StatusCompleted, StatusCancelled},
}

func ParseStatus(value string) (Status, error) {
	status := Status(value)
	if !slices.Contains(Statuses, status) {
		return "", ErrInvalidStatus
	}

	return status, nil
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	_, ok := transitions[s]

	return !ok
}

// CanTransitionTo reports whether next is reachable from s. Non-terminal
// states may be re-applied as a no-op.
func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// StatusValidationTag restricts a field to a known booking status.
const StatusValidationTag = "bookingstatus"

func init() {
	names := make([]string, len(Statuses))
	for i, status := range Statuses {
		names[i] = string(status)
	}

	validator.RegisterAlias(
		StatusValidationTag,
		"oneof="+strings.Join(names, " "),
		"{field} must be one of: "+strings.Join(names, ", "),
	)
}
