package http

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/purchaseorder"
	"procurement/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseOrderRequest_Details(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		details, err := PurchaseOrderRequest{Title: "Laptops"}.details()

		require.NoError(t, err)
		assert.Equal(t, purchaseorder.DefaultPriority, details.Priority)
		assert.Nil(t, details.EstimatedValue)
		assert.Nil(t, details.RequiredBy)
	})

	t.Run("all fields", func(t *testing.T) {
		value := "1500000.5"
		date := openapi_types.Date{Time: time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)}

		details, err := PurchaseOrderRequest{
			Title:          "Laptops",
			EstimatedValue: &value,
			Priority:       "urgent",
			RequiredBy:     &date,
		}.details()

		require.NoError(t, err)
		assert.Equal(t, purchaseorder.Urgent, details.Priority)
		assert.Equal(t, "1500000.50", details.EstimatedValue.String())
		assert.Equal(t, date.Time, *details.RequiredBy)
	})

	t.Run("blank estimated value is absent", func(t *testing.T) {
		blank := "  "
		details, err := PurchaseOrderRequest{Title: "Laptops", EstimatedValue: &blank}.details()

		require.NoError(t, err)
		assert.Nil(t, details.EstimatedValue)
	})

	t.Run("invalid values are joined", func(t *testing.T) {
		value := "a lot"
		_, err := PurchaseOrderRequest{Title: "Laptops", EstimatedValue: &value, Priority: "asap"}.details()

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		assert.ElementsMatch(t, []string{"priority", "estimated_value"}, fieldNames(domainFields(err)))
	})
}

func TestCostEstimateRequest_Content(t *testing.T) {
	req := CostEstimateRequest{
		Title: "Network upgrade",
		Type:  "bill_of_quantities",
		Items: []CostEstimateItemRequest{
			{Description: "Switch", Unit: "pcs", Quantity: "2", UnitPrice: "450.5"},
			{Description: "Cable", Unit: "m", Quantity: " 100 ", UnitPrice: "1.25"},
		},
	}

	content, items, err := req.content()

	require.NoError(t, err)
	assert.Equal(t, costestimate.TypeBillOfQuantities, content.Type)
	require.Len(t, items, 2)
	assert.Equal(t, "2.00", items[0].Quantity.String())
	assert.Equal(t, "450.50", items[0].UnitPrice.String())
	assert.Equal(t, "100.00", items[1].Quantity.String())
}

func TestCostEstimateRequest_ContentReportsItemPaths(t *testing.T) {
	req := CostEstimateRequest{
		Title: "Network upgrade",
		Type:  "cost_estimate",
		Items: []CostEstimateItemRequest{
			{Description: "Switch", Unit: "pcs", Quantity: "2", UnitPrice: "450"},
			{Description: "Cable", Unit: "m", Quantity: "0", UnitPrice: "-1"},
		},
	}

	_, _, err := req.content()

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"items[1].quantity", "items[1].unit_price"}, fieldNames(domainFields(err)))
}

func TestUserRequest_Profile(t *testing.T) {
	inactive := false

	profile, err := UserRequest{Name: "Budi", Email: "budi@example.com", Role: "bsp"}.profile()
	require.NoError(t, err)
	assert.Equal(t, identity.BSP, profile.Role)
	assert.True(t, profile.Active)

	profile, err = UserRequest{Name: "Budi", Email: "budi@example.com", Role: "dau", IsActive: &inactive}.profile()
	require.NoError(t, err)
	assert.False(t, profile.Active)

	_, err = UserRequest{Name: "Budi", Email: "budi@example.com", Role: "root"}.profile()
	assert.True(t, errs.IsValidation(err))
}

func fieldNames(fields []FieldError) []string {
	names := make([]string, 0, len(fields))
	for _, f := range fields {
		names = append(names, f.Field)
	}
	return names
}
