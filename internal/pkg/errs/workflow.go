package errs

import (
	"errors"
	"fmt"
)

var (
	ErrCapabilityDenied = errors.New("capability denied")
	ErrGuardFailed      = errors.New("transition not allowed")
	ErrSelfDelete       = errors.New("cannot delete own account")
	ErrHasDependents    = errors.New("object has dependents")
)

// CapabilityError reports an actor whose role lacks the capability an operation requires,
// or whose account may not act at all.
type CapabilityError struct {
	Actor      string
	Capability string
	Reason     string
}

func NewCapabilityError(actor, capability string) *CapabilityError {
	return &CapabilityError{Actor: actor, Capability: capability}
}

func NewCapabilityErrorWithReason(actor, capability, reason string) *CapabilityError {
	return &CapabilityError{Actor: actor, Capability: capability, Reason: reason}
}

func (e *CapabilityError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s for %s (%s)", ErrCapabilityDenied, e.Capability, sanitize(e.Actor), e.Reason)
	}
	return fmt.Sprintf("%s: %s for %s", ErrCapabilityDenied, e.Capability, sanitize(e.Actor))
}

func (e *CapabilityError) Unwrap() error {
	return ErrCapabilityDenied
}

// GuardFailedError reports a transition refused because of the entity's current status.
type GuardFailedError struct {
	Entity    string
	Status    string
	Operation string
}

func NewGuardFailedError(entity, status, operation string) *GuardFailedError {
	return &GuardFailedError{Entity: entity, Status: status, Operation: operation}
}

func (e *GuardFailedError) Error() string {
	return fmt.Sprintf("%s: %s in status %s cannot %s", ErrGuardFailed, e.Entity, e.Status, e.Operation)
}

func (e *GuardFailedError) Unwrap() error {
	return ErrGuardFailed
}

// SelfDeleteError reports an actor trying to delete their own account.
type SelfDeleteError struct {
	ID string
}

func NewSelfDeleteError(id string) *SelfDeleteError {
	return &SelfDeleteError{ID: id}
}

func (e *SelfDeleteError) Error() string {
	return fmt.Sprintf("%s: %s", ErrSelfDelete, sanitize(e.ID))
}

func (e *SelfDeleteError) Unwrap() error {
	return ErrSelfDelete
}

// HasDependentsError reports a delete blocked by rows that still reference the object.
type HasDependentsError struct {
	Entity string
	ID     string
}

func NewHasDependentsError(entity, id string) *HasDependentsError {
	return &HasDependentsError{Entity: entity, ID: id}
}

func (e *HasDependentsError) Error() string {
	return fmt.Sprintf("%s: %s %s is still referenced", ErrHasDependents, e.Entity, sanitize(e.ID))
}

func (e *HasDependentsError) Unwrap() error {
	return ErrHasDependents
}
