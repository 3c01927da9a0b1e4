package queries

import (
	"time"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// UserRef identifies a user next to the record it created, validated or approved.
type UserRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Label pairs a persisted code with its display name.
type Label struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PurchaseOrderView is the read model of a purchase order.
type PurchaseOrderView struct {
	ID              string                `json:"id"`
	Number          string                `json:"po_number"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	EstimatedValue  *string               `json:"estimated_value"`
	Priority        Label                 `json:"priority"`
	RequiredBy      *string               `json:"required_by"`
	Status          Label                 `json:"status"`
	CreatedBy       UserRef               `json:"created_by"`
	ValidatedBy     *UserRef              `json:"validated_by"`
	ValidatedAt     *time.Time            `json:"validated_at"`
	ValidationNotes string                `json:"validation_notes"`
	CompletedBy     *UserRef              `json:"completed_by"`
	CompletedAt     *time.Time            `json:"completed_at"`
	CompletionNotes string                `json:"completion_notes"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	CostEstimates   []CostEstimateSummary `json:"cost_estimates,omitempty"`
}

// CostEstimateSummary is an estimate as listed under its purchase order.
type CostEstimateSummary struct {
	ID          string    `json:"id"`
	Number      string    `json:"ce_number"`
	Title       string    `json:"title"`
	Type        Label     `json:"type"`
	Status      Label     `json:"status"`
	TotalAmount string    `json:"total_amount"`
	CreatedAt   time.Time `json:"created_at"`
}

// PurchaseOrderRef identifies the order an estimate belongs to.
type PurchaseOrderRef struct {
	ID     string `json:"id"`
	Number string `json:"po_number"`
	Title  string `json:"title"`
	Status Label  `json:"status"`
}

// CostEstimateView is the read model of a cost estimate.
type CostEstimateView struct {
	ID             string                 `json:"id"`
	Number         string                 `json:"ce_number"`
	PurchaseOrder  PurchaseOrderRef       `json:"purchase_order"`
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Type           Label                  `json:"type"`
	TotalAmount    string                 `json:"total_amount"`
	Status         Label                  `json:"status"`
	CreatedBy      UserRef                `json:"created_by"`
	ApprovedBy     *UserRef               `json:"approved_by"`
	ApprovedAt     *time.Time             `json:"approved_at"`
	ApprovalNotes  string                 `json:"approval_notes"`
	RejectionNotes string                 `json:"rejection_notes"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
	Items          []CostEstimateItemView `json:"items,omitempty"`
}

// CostEstimateItemView is one priced line of an estimate.
type CostEstimateItemView struct {
	ID          string `json:"id"`
	ItemCode    string `json:"item_code"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	Quantity    string `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
	Notes       string `json:"notes"`
	SortOrder   int    `json:"sort_order"`
}

// UserView is the read model of a user. The password hash never leaves the store.
type UserView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Role        Label      `json:"role"`
	Active      bool       `json:"is_active"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
}

func poStatusLabel(code string) Label {
	status, err := purchaseorder.StatusFromCode(code)
	if err != nil {
		return Label{Code: code, Name: code}
	}
	return Label{Code: code, Name: status.DisplayName()}
}

func priorityLabel(code string) Label {
	priority, err := purchaseorder.PriorityFromCode(code)
	if err != nil {
		return Label{Code: code, Name: code}
	}
	return Label{Code: code, Name: priority.DisplayName()}
}

func ceStatusLabel(code string) Label {
	status, err := costestimate.StatusFromCode(code)
	if err != nil {
		return Label{Code: code, Name: code}
	}
	return Label{Code: code, Name: status.DisplayName()}
}

func ceTypeLabel(code string) Label {
	t, err := costestimate.TypeFromCode(code)
	if err != nil {
		return Label{Code: code, Name: code}
	}
	return Label{Code: code, Name: t.DisplayName()}
}

func roleLabel(code string) Label {
	role, err := identity.RoleFromCode(code)
	if err != nil {
		return Label{Code: code, Name: code}
	}
	return Label{Code: code, Name: role.DisplayName()}
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := money(d.Decimal)
	return &s
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func optionalRef(id *uuid.UUID, name *string) *UserRef {
	if id == nil {
		return nil
	}
	ref := UserRef{ID: id.String()}
	if name != nil {
		ref.Name = *name
	}
	return &ref
}
