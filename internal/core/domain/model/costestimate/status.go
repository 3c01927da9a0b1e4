package costestimate

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

const entityName = "cost estimate"

// Status is the approval state of a cost estimate.
type Status int

const (
	Unknown Status = iota
	Draft
	PendingApproval
	Approved
	Rejected
)

type label struct {
	code        string
	displayName string
}

func getStatusLabels() map[Status]label {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]label{
		Draft:           {"draft", "Draft"},
		PendingApproval: {"pending_approval", "Pending Approval"},
		Approved:        {"approved", "Approved"},
		Rejected:        {"rejected", "Rejected"},
	}
}

// Statuses returns every valid status.
func Statuses() []Status {
	return []Status{Draft, PendingApproval, Approved, Rejected}
}

// StatusFromCode parses the persisted code, e.g. "pending_approval".
func StatusFromCode(code string) (Status, error) {
	for s, l := range getStatusLabels() {
		if l.code == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", code))
}

func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if l, ok := getStatusLabels()[s]; ok {
		return l.code
	}
	return "unknown"
}

func (s Status) DisplayName() string {
	if l, ok := getStatusLabels()[s]; ok {
		return l.displayName
	}
	return "Unknown"
}

// CanBeApproved reports whether s is Draft or PendingApproval.
func (s Status) CanBeApproved() bool {
	return s == Draft || s == PendingApproval
}

// CanBeRejected accepts the same statuses as CanBeApproved.
func (s Status) CanBeRejected() bool {
	return s.CanBeApproved()
}

// CanBeRevised reports whether s is Draft.
func (s Status) CanBeRevised() bool {
	return s == Draft
}

// CanBeDeleted reports whether s is Draft.
func (s Status) CanBeDeleted() bool {
	return s == Draft
}

// Approve transitions Draft or PendingApproval to Approved.
func (s Status) Approve() (Status, error) {
	if !s.CanBeApproved() {
		return Unknown, s.guardFailed("be approved")
	}
	return Approved, nil
}

// Reject transitions Draft or PendingApproval to Rejected.
func (s Status) Reject() (Status, error) {
	if !s.CanBeRejected() {
		return Unknown, s.guardFailed("be rejected")
	}
	return Rejected, nil
}

// ValidateApprovalMarkers checks that approved_by/at are present exactly when approved.
func (s Status) ValidateApprovalMarkers(approved bool) error {
	if approved != (s == Approved) {
		return errs.NewValueIsInvalidErrorWithCause(
			"approved_by",
			fmt.Errorf("approval markers must be present exactly when approved, status is %s", s),
		)
	}
	return nil
}

func (s Status) guardFailed(operation string) error {
	return errs.NewGuardFailedError(entityName, s.String(), operation)
}
