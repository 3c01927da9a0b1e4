package purchaseorder

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

const entityName = "purchase order"

// Status is the lifecycle state of a purchase order.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Draft is the initial status of every new purchase order.
	Draft

	// PendingValidation waits for a validator. It behaves like Draft.
	PendingValidation

	// Validated orders may receive a cost estimate.
	Validated

	// PendingCEBOQ is reserved.
	PendingCEBOQ

	// CEBOQCreated orders have a cost estimate attached.
	CEBOQCreated

	// CEBOQApproved is reserved.
	CEBOQApproved

	// InProgress orders may be completed. No transition produces it.
	InProgress

	// Completed is terminal.
	Completed

	// Cancelled is terminal and reserved.
	Cancelled
)

type statusInfo struct {
	code        string
	displayName string
}

func getStatusInfo() map[Status]statusInfo {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]statusInfo{
		Draft:             {"draft", "Draft"},
		PendingValidation: {"pending_validation", "Pending Validation"},
		Validated:         {"validated", "Validated"},
		PendingCEBOQ:      {"pending_ce_boq", "Pending CE/BOQ"},
		CEBOQCreated:      {"ce_boq_created", "CE/BOQ Created"},
		CEBOQApproved:     {"ce_boq_approved", "CE/BOQ Approved"},
		InProgress:        {"in_progress", "In Progress"},
		Completed:         {"completed", "Completed"},
		Cancelled:         {"cancelled", "Cancelled"},
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{
		Draft, PendingValidation, Validated, PendingCEBOQ, CEBOQCreated,
		CEBOQApproved, InProgress, Completed, Cancelled,
	}
}

// StatusFromCode parses the persisted code, e.g. "ce_boq_created".
func StatusFromCode(code string) (Status, error) {
	for status, info := range getStatusInfo() {
		if info.code == code {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

// Validate checks that s is one of the nine known statuses.
func (s Status) Validate() error {
	if _, ok := getStatusInfo()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the persisted code of the status.
func (s Status) String() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.code
	}
	return "unknown"
}

// DisplayName returns the human-readable label, e.g. "Pending CE/BOQ".
func (s Status) DisplayName() string {
	if info, ok := getStatusInfo()[s]; ok {
		return info.displayName
	}
	return "Unknown"
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsReserved reports whether s is never produced by a transition.
func (s Status) IsReserved() bool {
	return s == PendingCEBOQ || s == CEBOQApproved || s == InProgress || s == Cancelled
}

// CanBeValidated reports whether s is Draft or PendingValidation.
func (s Status) CanBeValidated() bool {
	return s == Draft || s == PendingValidation
}

// CanHaveCostEstimate reports whether a cost estimate may be created for an order in s.
func (s Status) CanHaveCostEstimate() bool {
	return s == Validated
}

// CanBeCompleted reports whether s is InProgress.
func (s Status) CanBeCompleted() bool {
	return s == InProgress
}

// CanBeDeleted reports whether an order in s may be deleted with its cost estimates.
func (s Status) CanBeDeleted() bool {
	return s == Draft || s == PendingValidation
}

// CanBeRevised reports whether the details of an order in s may still change.
func (s Status) CanBeRevised() bool {
	return s == Draft || s == PendingValidation
}

// HasPassedValidation reports whether an order in s must carry validation markers.
// Cancelled is excluded because an order may be cancelled before or after validation.
func (s Status) HasPassedValidation() bool {
	switch s {
	case Validated, PendingCEBOQ, CEBOQCreated, CEBOQApproved, InProgress, Completed:
		return true
	default:
		return false
	}
}

// MarkValidated transitions Draft or PendingValidation to Validated.
func (s Status) MarkValidated() (Status, error) {
	if !s.CanBeValidated() {
		return Unknown, s.guardFailed("be validated")
	}
	return Validated, nil
}

// AttachCostEstimate transitions Validated to CEBOQCreated.
func (s Status) AttachCostEstimate() (Status, error) {
	if !s.CanHaveCostEstimate() {
		return Unknown, s.guardFailed("receive a cost estimate")
	}
	return CEBOQCreated, nil
}

// DetachCostEstimate reverts CEBOQCreated to Validated. Any other status is returned
// unchanged and reverted is false.
func (s Status) DetachCostEstimate() (next Status, reverted bool) {
	if s != CEBOQCreated {
		return s, false
	}
	return Validated, true
}

// Complete transitions InProgress to Completed.
func (s Status) Complete() (Status, error) {
	if !s.CanBeCompleted() {
		return Unknown, s.guardFailed("be completed")
	}
	return Completed, nil
}

// ValidateAuditMarkers checks that the presence of validation and completion
// markers agrees with the status.
func (s Status) ValidateAuditMarkers(validated, completed bool) error {
	if s.HasPassedValidation() && !validated {
		return errs.NewValueIsInvalidErrorWithCause(
			"validated_by",
			fmt.Errorf("%s requires validation markers", s),
		)
	}
	if s.CanBeValidated() && validated {
		return errs.NewValueIsInvalidErrorWithCause(
			"validated_by",
			fmt.Errorf("%s cannot carry validation markers", s),
		)
	}
	if completed != (s == Completed) {
		return errs.NewValueIsInvalidErrorWithCause(
			"completed_by",
			fmt.Errorf("completion markers must be present exactly when completed, status is %s", s),
		)
	}
	return nil
}

func (s Status) guardFailed(operation string) error {
	return errs.NewGuardFailedError(entityName, s.String(), operation)
}
