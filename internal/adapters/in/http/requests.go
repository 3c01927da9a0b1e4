package http

import (
	"errors"
	"fmt"
	"strings"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type PurchaseOrderRequest struct {
	Title          string              `json:"title" validate:"required,max=255"`
	Description    string              `json:"description"`
	EstimatedValue *string             `json:"estimated_value"`
	Priority       string              `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
	RequiredBy     *openapi_types.Date `json:"required_by"`
}

// details converts the request. A missing priority means the default one.
func (r PurchaseOrderRequest) details() (purchaseorder.Details, error) {
	details := purchaseorder.Details{
		Title:       r.Title,
		Description: r.Description,
		Priority:    purchaseorder.DefaultPriority,
	}

	var problems []error
	if r.Priority != "" {
		priority, err := purchaseorder.PriorityFromCode(r.Priority)
		problems = append(problems, err)
		details.Priority = priority
	}
	if r.EstimatedValue != nil && strings.TrimSpace(*r.EstimatedValue) != "" {
		value, err := kernel.MoneyFromString(strings.TrimSpace(*r.EstimatedValue))
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause("estimated_value", err))
		} else {
			details.EstimatedValue = &value
		}
	}
	if r.RequiredBy != nil {
		requiredBy := r.RequiredBy.Time
		details.RequiredBy = &requiredBy
	}

	return details, errors.Join(problems...)
}

type NotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

type CostEstimateItemRequest struct {
	ItemCode    string `json:"item_code" validate:"max=50"`
	Description string `json:"description" validate:"required,max=255"`
	Unit        string `json:"unit" validate:"required,max=50"`
	Quantity    string `json:"quantity" validate:"required"`
	UnitPrice   string `json:"unit_price" validate:"required"`
	Notes       string `json:"notes"`
}

type CostEstimateRequest struct {
	Title       string                    `json:"title" validate:"required,max=255"`
	Description string                    `json:"description"`
	Type        string                    `json:"type" validate:"required,oneof=cost_estimate bill_of_quantities"`
	Items       []CostEstimateItemRequest `json:"items" validate:"required,min=1,dive"`
}

type CreateCostEstimateRequest struct {
	PurchaseOrderID openapi_types.UUID        `json:"purchase_order_id"`
	Title           string                    `json:"title" validate:"required,max=255"`
	Description     string                    `json:"description"`
	Type            string                    `json:"type" validate:"required,oneof=cost_estimate bill_of_quantities"`
	Items           []CostEstimateItemRequest `json:"items" validate:"required,min=1,dive"`
}

func (r CreateCostEstimateRequest) estimate() CostEstimateRequest {
	return CostEstimateRequest{
		Title:       r.Title,
		Description: r.Description,
		Type:        r.Type,
		Items:       r.Items,
	}
}

func (r CostEstimateRequest) content() (costestimate.Content, []costestimate.ItemSpec, error) {
	estimateType, err := costestimate.TypeFromCode(r.Type)
	problems := []error{err}

	specs := make([]costestimate.ItemSpec, 0, len(r.Items))
	for i, item := range r.Items {
		spec, specErr := item.spec(fmt.Sprintf("items[%d]", i))
		problems = append(problems, specErr)
		specs = append(specs, spec)
	}

	content := costestimate.Content{
		Title:       r.Title,
		Description: r.Description,
		Type:        estimateType,
	}
	return content, specs, errors.Join(problems...)
}

func (r CostEstimateItemRequest) spec(path string) (costestimate.ItemSpec, error) {
	quantity, quantityErr := kernel.QuantityFromString(strings.TrimSpace(r.Quantity))
	if quantityErr != nil {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(path+".quantity", quantityErr)
	}
	unitPrice, priceErr := kernel.MoneyFromString(strings.TrimSpace(r.UnitPrice))
	if priceErr != nil {
		priceErr = errs.NewValueIsInvalidErrorWithCause(path+".unit_price", priceErr)
	}

	return costestimate.ItemSpec{
		ItemCode:    r.ItemCode,
		Description: r.Description,
		Unit:        r.Unit,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Notes:       r.Notes,
	}, errors.Join(quantityErr, priceErr)
}

type UserRequest struct {
	Name     string `json:"name" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Role     string `json:"role" validate:"required,oneof=superadmin admin unit_kerja bsp kkf dau"`
	IsActive *bool  `json:"is_active"`
	Password string `json:"password"`
}

// profile converts the request. Users are active unless is_active says otherwise.
func (r UserRequest) profile() (identity.Profile, error) {
	role, err := identity.RoleFromCode(r.Role)
	if err != nil {
		return identity.Profile{}, err
	}

	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return identity.Profile{
		Name:   r.Name,
		Email:  r.Email,
		Role:   role,
		Active: active,
	}, nil
}
