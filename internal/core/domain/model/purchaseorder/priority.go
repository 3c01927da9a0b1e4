package purchaseorder

import (
	"fmt"

	"procurement/internal/pkg/errs"
)

// Priority orders purchase orders by urgency.
type Priority int

const (
	UnknownPriority Priority = iota
	Low
	Medium
	High
	Urgent
)

// DefaultPriority is applied when a new order does not choose one.
const DefaultPriority = Medium

func getPriorityInfo() map[Priority]statusInfo {
	//nolint:exhaustive // UnknownPriority is intentionally excluded as it's invalid
	return map[Priority]statusInfo{
		Low:    {"low", "Low"},
		Medium: {"medium", "Medium"},
		High:   {"high", "High"},
		Urgent: {"urgent", "Urgent"},
	}
}

// Priorities returns every valid priority from lowest to highest.
func Priorities() []Priority {
	return []Priority{Low, Medium, High, Urgent}
}

// PriorityFromCode parses the persisted code, e.g. "urgent".
func PriorityFromCode(code string) (Priority, error) {
	for p, info := range getPriorityInfo() {
		if info.code == code {
			return p, nil
		}
	}
	return UnknownPriority, errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%q is not a valid priority", code))
}

func (p Priority) Validate() error {
	if _, ok := getPriorityInfo()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority", fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

func (p Priority) String() string {
	if info, ok := getPriorityInfo()[p]; ok {
		return info.code
	}
	return "unknown"
}

func (p Priority) DisplayName() string {
	if info, ok := getPriorityInfo()[p]; ok {
		return info.displayName
	}
	return "Unknown"
}
