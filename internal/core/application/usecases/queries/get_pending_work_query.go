package queries

import (
	"errors"

	"procurement/internal/pkg/guard"
)

var ErrGetPendingWorkQueryIsNotConstructed = errors.New(
	"GetPendingWorkQuery must be created via NewGetPendingWorkQuery constructor",
)

// GetPendingWorkQuery counts the documents waiting for a decision.
type GetPendingWorkQuery struct {
	guard guard.ConstructorGuard
}

func NewGetPendingWorkQuery() GetPendingWorkQuery {
	return GetPendingWorkQuery{guard: guard.NewConstructorGuard()}
}

func (q GetPendingWorkQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingWorkQueryIsNotConstructed)
}

// PendingWork holds the counts of GetPendingWorkQuery.
type PendingWork struct {
	// AwaitingValidation counts purchase orders a validator may still validate.
	AwaitingValidation int64 `json:"awaiting_validation"`
	// AwaitingApproval counts cost estimates an approver may still approve or reject.
	AwaitingApproval int64 `json:"awaiting_approval"`
}

// IsEmpty reports whether nothing is waiting.
func (w PendingWork) IsEmpty() bool {
	return w.AwaitingValidation == 0 && w.AwaitingApproval == 0
}
