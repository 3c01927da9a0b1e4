package costestimate

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

const maxTitleLength = 255

var (
	// ErrCostEstimateIsNotConstructed is returned when a CostEstimate was not created
	// through NewCostEstimate or RestoreCostEstimate.
	ErrCostEstimateIsNotConstructed = errors.New("CostEstimate must be created via NewCostEstimate constructor")
)

// Content holds the descriptive attributes of an estimate.
type Content struct {
	Title       string
	Description string
	Type        Type
}

// CostEstimate is a priced breakdown of one purchase order.
//
// Invariants:
//   - it belongs to exactly one purchase order and is numbered "CE-<year>-<seq>"
//   - a new or revised estimate has at least one item
//   - TotalAmount equals the sum of the items' total prices
//   - approval markers are set exactly when the status is Approved
type CostEstimate struct {
	id              kernel.UUID
	purchaseOrderID kernel.UUID
	number          kernel.DocumentNumber
	content         Content
	items           []*Item
	totalAmount     kernel.Money
	status          Status

	createdBy      kernel.UUID
	approvedBy     *kernel.UUID
	approvedAt     *time.Time
	approvalNotes  string
	rejectionNotes string

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewCostEstimate creates a Draft estimate with one item per spec, in order.
func NewCostEstimate(
	id kernel.UUID,
	purchaseOrderID kernel.UUID,
	number kernel.DocumentNumber,
	content Content,
	items []ItemSpec,
	createdBy kernel.UUID,
	now time.Time,
) (*CostEstimate, error) {
	ce := &CostEstimate{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		ce.setID(id),
		ce.setPurchaseOrderID(purchaseOrderID),
		ce.setNumber(number),
		ce.setCreatedBy(createdBy),
		ce.setContent(content),
		ce.replaceItems(items),
	); err != nil {
		return nil, err
	}

	return ce, nil
}

// RestoreParams carries a persisted estimate back into the domain. Any stored total
// is ignored; the total is recomputed from Items.
type RestoreParams struct {
	ID              kernel.UUID
	PurchaseOrderID kernel.UUID
	Number          kernel.DocumentNumber
	Content         Content
	Items           []*Item
	Status          Status
	CreatedBy       kernel.UUID
	ApprovedBy      *kernel.UUID
	ApprovedAt      *time.Time
	ApprovalNotes   string
	RejectionNotes  string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreCostEstimate rebuilds an estimate in any status.
func RestoreCostEstimate(p RestoreParams) (*CostEstimate, error) {
	ce := &CostEstimate{
		approvalNotes:  p.ApprovalNotes,
		rejectionNotes: p.RejectionNotes,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		ce.setID(p.ID),
		ce.setPurchaseOrderID(p.PurchaseOrderID),
		ce.setNumber(p.Number),
		ce.setCreatedBy(p.CreatedBy),
		ce.setContent(p.Content),
		ce.setStatus(p.Status, p.ApprovedBy, p.ApprovedAt),
	); err != nil {
		return nil, err
	}

	ce.items = sortedItems(p.Items)
	if err := ce.recalculateTotal(); err != nil {
		return nil, err
	}
	return ce, nil
}

// Validate ensures the estimate was built by one of its constructors.
func (ce *CostEstimate) Validate() error {
	if ce == nil || !ce.isConstructed {
		return ErrCostEstimateIsNotConstructed
	}
	return nil
}

// IsEqual compares estimates by identifier.
func (ce *CostEstimate) IsEqual(other *CostEstimate) bool {
	return other != nil && ce.id.IsEqual(other.id)
}

func (ce *CostEstimate) ID() kernel.UUID {
	return ce.id
}

func (ce *CostEstimate) PurchaseOrderID() kernel.UUID {
	return ce.purchaseOrderID
}

func (ce *CostEstimate) Number() kernel.DocumentNumber {
	return ce.number
}

func (ce *CostEstimate) Title() string {
	return ce.content.Title
}

func (ce *CostEstimate) Description() string {
	return ce.content.Description
}

func (ce *CostEstimate) Type() Type {
	return ce.content.Type
}

// Items returns the line items ordered by sort order. The slice is a copy.
func (ce *CostEstimate) Items() []*Item {
	return append([]*Item(nil), ce.items...)
}

// TotalAmount is the sum of the items' total prices.
func (ce *CostEstimate) TotalAmount() kernel.Money {
	return ce.totalAmount
}

func (ce *CostEstimate) Status() Status {
	return ce.status
}

func (ce *CostEstimate) CreatedBy() kernel.UUID {
	return ce.createdBy
}

func (ce *CostEstimate) ApprovedBy() *kernel.UUID {
	return ce.approvedBy
}

func (ce *CostEstimate) ApprovedAt() *time.Time {
	return ce.approvedAt
}

func (ce *CostEstimate) ApprovalNotes() string {
	return ce.approvalNotes
}

func (ce *CostEstimate) RejectionNotes() string {
	return ce.rejectionNotes
}

func (ce *CostEstimate) CreatedAt() time.Time {
	return ce.createdAt
}

func (ce *CostEstimate) UpdatedAt() time.Time {
	return ce.updatedAt
}

// References lists every user the estimate points at, creator first.
func (ce *CostEstimate) References() []kernel.UUID {
	refs := []kernel.UUID{ce.createdBy}
	if ce.approvedBy != nil {
		refs = append(refs, *ce.approvedBy)
	}
	return refs
}

// Revise replaces the content and the whole item set of a Draft estimate. Items get
// fresh identifiers and their position in the slice becomes their sort order.
func (ce *CostEstimate) Revise(content Content, items []ItemSpec, now time.Time) error {
	if !ce.status.CanBeRevised() {
		return ce.status.guardFailed("be updated")
	}

	revised := &CostEstimate{}
	if err := errors.Join(
		revised.setContent(content),
		revised.replaceItems(items),
	); err != nil {
		return err
	}

	ce.content = revised.content
	ce.items = revised.items
	ce.totalAmount = revised.totalAmount
	ce.updatedAt = now
	return nil
}

// Approve records the approver and moves the estimate to Approved.
func (ce *CostEstimate) Approve(by kernel.UUID, notes string, now time.Time) error {
	if err := by.Validate(); err != nil {
		return err
	}
	next, err := ce.status.Approve()
	if err != nil {
		return err
	}

	ce.status = next
	ce.approvedBy = &by
	ce.approvedAt = &now
	ce.approvalNotes = strings.TrimSpace(notes)
	ce.updatedAt = now
	return nil
}

// Reject moves the estimate to Rejected, keeping the reason.
func (ce *CostEstimate) Reject(notes string, now time.Time) error {
	next, err := ce.status.Reject()
	if err != nil {
		return err
	}

	ce.status = next
	ce.rejectionNotes = strings.TrimSpace(notes)
	ce.updatedAt = now
	return nil
}

// EnsureDeletable fails with a GuardFailedError unless the estimate is Draft.
func (ce *CostEstimate) EnsureDeletable() error {
	if !ce.status.CanBeDeleted() {
		return ce.status.guardFailed("be deleted")
	}
	return nil
}

// recalculateTotal is the explicit aggregation step run after every item change.
// The sum must fit the stored total_amount column.
func (ce *CostEstimate) recalculateTotal() error {
	total := kernel.ZeroMoney()
	for _, item := range ce.items {
		total = total.Add(item.TotalPrice())
	}
	if total.Exceeds(kernel.MaxAmount) {
		return errs.NewValueIsOutOfRangeError("total_amount",
			total.String(), "0.00", kernel.MaxAmount.StringFixed(kernel.MoneyScale))
	}
	ce.totalAmount = total
	return nil
}

func (ce *CostEstimate) replaceItems(specs []ItemSpec) error {
	if len(specs) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("items", errors.New("at least one item is required"))
	}

	items := make([]*Item, 0, len(specs))
	var problems []error
	for i, spec := range specs {
		item, err := NewItem(kernel.NewUUID(), spec, i)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	ce.items = items
	return ce.recalculateTotal()
}

func (ce *CostEstimate) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	ce.id = id
	return nil
}

func (ce *CostEstimate) setPurchaseOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("purchase_order_id", err)
	}
	ce.purchaseOrderID = id
	return nil
}

func (ce *CostEstimate) setNumber(number kernel.DocumentNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	if number.Prefix() != kernel.CostEstimatePrefix {
		return errs.NewValueIsInvalidErrorWithCause(
			"ce_number",
			fmt.Errorf("%s is not a cost estimate number", number),
		)
	}
	ce.number = number
	return nil
}

func (ce *CostEstimate) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("created_by", err)
	}
	ce.createdBy = createdBy
	return nil
}

func (ce *CostEstimate) setContent(c Content) error {
	c.Title = strings.TrimSpace(c.Title)
	c.Description = strings.TrimSpace(c.Description)

	var problems []error
	switch length := utf8.RuneCountInString(c.Title); {
	case length == 0:
		problems = append(problems, errs.NewValueIsRequiredError("title"))
	case length > maxTitleLength:
		problems = append(problems, errs.NewValueIsOutOfRangeError("title", length, 1, maxTitleLength))
	}
	if err := c.Type.Validate(); err != nil {
		problems = append(problems, err)
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	ce.content = c
	return nil
}

func (ce *CostEstimate) setStatus(status Status, approvedBy *kernel.UUID, approvedAt *time.Time) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if (approvedBy == nil) != (approvedAt == nil) {
		return errs.NewValueIsInvalidErrorWithCause("approved_at", errors.New("approved_by and approved_at must be set together"))
	}
	if err := status.ValidateApprovalMarkers(approvedBy != nil); err != nil {
		return err
	}

	ce.status = status
	ce.approvedBy = approvedBy
	ce.approvedAt = approvedAt
	return nil
}

func sortedItems(items []*Item) []*Item {
	sorted := make([]*Item, 0, len(items))
	for _, item := range items {
		if item != nil {
			sorted = append(sorted, item)
		}
	}
	slices.SortStableFunc(sorted, func(a, b *Item) int {
		return cmp.Compare(a.sortOrder, b.sortOrder)
	})
	return sorted
}
