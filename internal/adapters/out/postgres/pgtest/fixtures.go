package pgtest

import (
	"testing"
	"time"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/identity"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/purchaseorder"

	"github.com/stretchr/testify/require"
)

// Now is the creation time of every fixture. Postgres keeps microseconds, so it has none.
var Now = time.Date(2026, time.March, 9, 10, 30, 0, 0, time.UTC)

// NewUser returns an active user with the password hash "hashed:secret-password".
func NewUser(t *testing.T, role identity.Role, email string) *identity.User {
	t.Helper()
	user, err := identity.NewUser(kernel.NewUUID(), identity.Profile{
		Name:   "User " + role.String(),
		Email:  email,
		Role:   role,
		Active: true,
	}, "hashed:secret-password", Now)
	require.NoError(t, err)
	return user
}

// Number builds a document number of the fixture year.
func Number(t *testing.T, prefix kernel.DocumentPrefix, sequence int) kernel.DocumentNumber {
	t.Helper()
	number, err := kernel.NewDocumentNumber(prefix, Now.Year(), sequence)
	require.NoError(t, err)
	return number
}

// NewPurchaseOrder returns a Draft order numbered PO-2026-<sequence>.
func NewPurchaseOrder(t *testing.T, createdBy kernel.UUID, sequence int, title string) *purchaseorder.PurchaseOrder {
	t.Helper()
	po, err := purchaseorder.NewPurchaseOrder(
		kernel.NewUUID(),
		Number(t, kernel.PurchaseOrderPrefix, sequence),
		purchaseorder.Details{Title: title},
		createdBy,
		Now,
	)
	require.NoError(t, err)
	return po
}

// ItemSpec builds a line item measured in pieces.
func ItemSpec(t *testing.T, description, quantity, unitPrice string) costestimate.ItemSpec {
	t.Helper()
	q, err := kernel.QuantityFromString(quantity)
	require.NoError(t, err)
	price, err := kernel.MoneyFromString(unitPrice)
	require.NoError(t, err)
	return costestimate.ItemSpec{
		Description: description,
		Unit:        "pcs",
		Quantity:    q,
		UnitPrice:   price,
	}
}

// NewCostEstimate returns a Draft estimate numbered CE-2026-<sequence>.
func NewCostEstimate(
	t *testing.T,
	purchaseOrderID kernel.UUID,
	createdBy kernel.UUID,
	sequence int,
	items ...costestimate.ItemSpec,
) *costestimate.CostEstimate {
	t.Helper()
	ce, err := costestimate.NewCostEstimate(
		kernel.NewUUID(),
		purchaseOrderID,
		Number(t, kernel.CostEstimatePrefix, sequence),
		costestimate.Content{Title: "Estimate", Type: costestimate.TypeCostEstimate},
		items,
		createdBy,
		Now,
	)
	require.NoError(t, err)
	return ce
}
