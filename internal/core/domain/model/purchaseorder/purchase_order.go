package purchaseorder

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

const maxTitleLength = 255

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder was not created
	// through NewPurchaseOrder or RestorePurchaseOrder.
	ErrPurchaseOrderIsNotConstructed = errors.New("PurchaseOrder must be created via NewPurchaseOrder constructor")
)

// Details are the attributes a requester fills in. They may be revised until the
// order is validated.
type Details struct {
	Title          string
	Description    string
	EstimatedValue *kernel.Money
	Priority       Priority
	// RequiredBy is a calendar date; only its year, month and day are kept.
	RequiredBy *time.Time
}

// PurchaseOrder is the aggregate root of the procurement workflow.
//
// Invariants:
//   - the number is a valid "PO-<year>-<seq>" document number
//   - the title is present and at most 255 characters long
//   - validation markers are set exactly when the status has passed validation
//   - completion markers are set exactly when the status is Completed
type PurchaseOrder struct {
	id      kernel.UUID
	number  kernel.DocumentNumber
	details Details
	status  Status

	createdBy       kernel.UUID
	validatedBy     *kernel.UUID
	validatedAt     *time.Time
	validationNotes string
	completedBy     *kernel.UUID
	completedAt     *time.Time
	completionNotes string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewPurchaseOrder creates a Draft order. A missing priority defaults to Medium and
// RequiredBy, when given, must fall after the date of now.
func NewPurchaseOrder(
	id kernel.UUID,
	number kernel.DocumentNumber,
	details Details,
	createdBy kernel.UUID,
	now time.Time,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	if details.Priority == UnknownPriority {
		details.Priority = DefaultPriority
	}

	if err := errors.Join(
		po.setID(id),
		po.setNumber(number),
		po.setCreatedBy(createdBy),
		po.setDetails(details),
		checkRequiredBy(details.RequiredBy, now),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// RestoreParams carries a persisted order back into the domain.
type RestoreParams struct {
	ID              kernel.UUID
	Number          kernel.DocumentNumber
	Details         Details
	Status          Status
	CreatedBy       kernel.UUID
	ValidatedBy     *kernel.UUID
	ValidatedAt     *time.Time
	ValidationNotes string
	CompletedBy     *kernel.UUID
	CompletedAt     *time.Time
	CompletionNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestorePurchaseOrder rebuilds an order in any status, including the reserved ones.
// It checks that the audit markers agree with the status.
func RestorePurchaseOrder(p RestoreParams) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		validationNotes: p.ValidationNotes,
		completionNotes: p.CompletionNotes,
		createdAt:       p.CreatedAt,
		updatedAt:       p.UpdatedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		po.setID(p.ID),
		po.setNumber(p.Number),
		po.setCreatedBy(p.CreatedBy),
		po.setDetails(p.Details),
		po.setStatus(p.Status, p.ValidatedBy, p.ValidatedAt, p.CompletedBy, p.CompletedAt),
	); err != nil {
		return nil, err
	}

	return po, nil
}

// Validate ensures the order was built by one of its constructors.
func (po *PurchaseOrder) Validate() error {
	if po == nil || !po.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (po *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && po.id.IsEqual(other.id)
}

func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

func (po *PurchaseOrder) Number() kernel.DocumentNumber {
	return po.number
}

func (po *PurchaseOrder) Title() string {
	return po.details.Title
}

func (po *PurchaseOrder) Description() string {
	return po.details.Description
}

// EstimatedValue is nil when the requester gave no estimate.
func (po *PurchaseOrder) EstimatedValue() *kernel.Money {
	return po.details.EstimatedValue
}

func (po *PurchaseOrder) Priority() Priority {
	return po.details.Priority
}

func (po *PurchaseOrder) RequiredBy() *time.Time {
	return po.details.RequiredBy
}

// Details returns a copy of the editable attributes.
func (po *PurchaseOrder) Details() Details {
	return po.details
}

func (po *PurchaseOrder) Status() Status {
	return po.status
}

func (po *PurchaseOrder) CreatedBy() kernel.UUID {
	return po.createdBy
}

func (po *PurchaseOrder) ValidatedBy() *kernel.UUID {
	return po.validatedBy
}

func (po *PurchaseOrder) ValidatedAt() *time.Time {
	return po.validatedAt
}

func (po *PurchaseOrder) ValidationNotes() string {
	return po.validationNotes
}

func (po *PurchaseOrder) CompletedBy() *kernel.UUID {
	return po.completedBy
}

func (po *PurchaseOrder) CompletedAt() *time.Time {
	return po.completedAt
}

func (po *PurchaseOrder) CompletionNotes() string {
	return po.completionNotes
}

func (po *PurchaseOrder) CreatedAt() time.Time {
	return po.createdAt
}

func (po *PurchaseOrder) UpdatedAt() time.Time {
	return po.updatedAt
}

// References lists every user the order points at, creator first.
func (po *PurchaseOrder) References() []kernel.UUID {
	refs := []kernel.UUID{po.createdBy}
	if po.validatedBy != nil {
		refs = append(refs, *po.validatedBy)
	}
	if po.completedBy != nil {
		refs = append(refs, *po.completedBy)
	}
	return refs
}

// MarkValidated records the validator and moves the order to Validated.
func (po *PurchaseOrder) MarkValidated(by kernel.UUID, notes string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	next, err := po.status.MarkValidated()
	if err != nil {
		return err
	}

	po.status = next
	po.validatedBy = &by
	po.validatedAt = &now
	po.validationNotes = strings.TrimSpace(notes)
	po.updatedAt = now
	return nil
}

// EnsureCanHaveCostEstimate fails with a GuardFailedError unless the order is Validated.
func (po *PurchaseOrder) EnsureCanHaveCostEstimate() error {
	_, err := po.status.AttachCostEstimate()
	return err
}

// AttachCostEstimate moves a Validated order to CEBOQCreated.
func (po *PurchaseOrder) AttachCostEstimate(now time.Time) error {
	next, err := po.status.AttachCostEstimate()
	if err != nil {
		return err
	}
	po.status = next
	po.updatedAt = now
	return nil
}

// DetachCostEstimate reverts a CEBOQCreated order to Validated after its cost estimate
// was deleted. Orders in any other status are left alone and false is returned.
func (po *PurchaseOrder) DetachCostEstimate(now time.Time) bool {
	next, reverted := po.status.DetachCostEstimate()
	if reverted {
		po.status = next
		po.updatedAt = now
	}
	return reverted
}

// Complete records the completer and moves an InProgress order to Completed.
func (po *PurchaseOrder) Complete(by kernel.UUID, notes string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	next, err := po.status.Complete()
	if err != nil {
		return err
	}

	po.status = next
	po.completedBy = &by
	po.completedAt = &now
	po.completionNotes = strings.TrimSpace(notes)
	po.updatedAt = now
	return nil
}

// EnsureDeletable fails with a GuardFailedError unless the order is Draft or
// PendingValidation.
func (po *PurchaseOrder) EnsureDeletable() error {
	if !po.status.CanBeDeleted() {
		return po.status.guardFailed("be deleted")
	}
	return nil
}

// Revise replaces the details of an order that has not been validated yet.
func (po *PurchaseOrder) Revise(details Details, now time.Time) error {
	if !po.status.CanBeRevised() {
		return po.status.guardFailed("be updated")
	}
	if details.Priority == UnknownPriority {
		details.Priority = po.details.Priority
	}

	revised := *po
	if err := errors.Join(
		revised.setDetails(details),
		checkRequiredBy(details.RequiredBy, now),
	); err != nil {
		return err
	}

	po.details = revised.details
	po.updatedAt = now
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setNumber(number kernel.DocumentNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	if number.Prefix() != kernel.PurchaseOrderPrefix {
		return errs.NewValueIsInvalidErrorWithCause(
			"po_number",
			fmt.Errorf("%s is not a purchase order number", number),
		)
	}
	po.number = number
	return nil
}

func (po *PurchaseOrder) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created_by", err)
	}
	po.createdBy = createdBy
	return nil
}

func (po *PurchaseOrder) setDetails(d Details) error {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	if d.RequiredBy != nil {
		date := dateOf(*d.RequiredBy)
		d.RequiredBy = &date
	}

	var problems []error
	switch length := utf8.RuneCountInString(d.Title); {
	case length == 0:
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	case length > maxTitleLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("title", length, 1, maxTitleLength))
	}
	if err := d.Priority.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	po.details = d
	return nil
}

func (po *PurchaseOrder) setStatus(
	status Status,
	validatedBy *kernel.UUID,
	validatedAt *time.Time,
	completedBy *kernel.UUID,
	completedAt *time.Time,
) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (validatedBy == nil) != (validatedAt == nil) {
		return errs.NewValueIsInvalidErrorWithCause("validated_at", errors.New("validated_by and validated_at must be set together"))
	}
	if (completedBy == nil) != (completedAt == nil) {
		return errs.NewValueIsInvalidErrorWithCause("completed_at", errors.New("completed_by and completed_at must be set together"))
	}
	if err := status.ValidateAuditMarkers(validatedBy != nil, completedBy != nil); err != nil {
		return err
	}

	po.status = status
	po.validatedBy = validatedBy
	po.validatedAt = validatedAt
	po.completedBy = completedBy
	po.completedAt = completedAt
	return nil
}

func checkRequiredBy(requiredBy *time.Time, now time.Time) error {
	if requiredBy == nil {
		return nil
	}
	if !dateOf(*requiredBy).After(dateOf(now)) {
		return errs.NewValueIsInvalidErrorWithCause(
			"required_by",
			fmt.Errorf("%s is not after %s", requiredBy.Format(time.DateOnly), now.Format(time.DateOnly)),
		)
	}
	return nil
}

// dateOf drops the clock part, keeping the calendar date of t in its own location.
func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
