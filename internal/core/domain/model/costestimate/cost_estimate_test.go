package costestimate_test

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.June, 1, 10, 0, 0, 0, time.UTC)

func ceNumber(t *testing.T, seq int) kernel.DocumentNumber {
	t.Helper()
	n, err := kernel.NewDocumentNumber(kernel.CostEstimatePrefix, 2026, seq)
	require.NoError(t, err)
	return n
}

func content() costestimate.Content {
	return costestimate.Content{Title: "Warehouse fit-out", Type: costestimate.TypeBillOfQuantities}
}

func newDraft(t *testing.T, items ...costestimate.ItemSpec) *costestimate.CostEstimate {
	t.Helper()
	ce, err := costestimate.NewCostEstimate(kernel.NewUUID(), kernel.NewUUID(), ceNumber(t, 1), content(), items, kernel.NewUUID(), now)
	require.NoError(t, err)
	return ce
}

func TestNewCostEstimate(t *testing.T) {
	t.Run("sums items", func(t *testing.T) {
		ce := newDraft(t, spec(t, "10", "100"), spec(t, "5", "50"))

		require.NoError(t, ce.Validate())
		assert.Equal(t, costestimate.Draft, ce.Status())
		assert.Equal(t, "CE-2026-0001", ce.Number().String())
		assert.Equal(t, "1250.00", ce.TotalAmount().String())
		require.Len(t, ce.Items(), 2)
		assert.Equal(t, 0, ce.Items()[0].SortOrder())
		assert.Equal(t, 1, ce.Items()[1].SortOrder())
		assert.Nil(t, ce.ApprovedBy())
	})

	t.Run("requires at least one item", func(t *testing.T) {
		_, err := costestimate.NewCostEstimate(kernel.NewUUID(), kernel.NewUUID(), ceNumber(t, 1), content(), nil, kernel.NewUUID(), now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects purchase order numbers and bad content", func(t *testing.T) {
		po, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, 2026, 1)
		require.NoError(t, err)

		_, err = costestimate.NewCostEstimate(kernel.NewUUID(), kernel.UUID{}, po,
			costestimate.Content{}, []costestimate.ItemSpec{spec(t, "1", "1")}, kernel.NewUUID(), now)

		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
		var invalid *errs.ValueIsInvalidError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("reports every invalid item", func(t *testing.T) {
		_, err := costestimate.NewCostEstimate(kernel.NewUUID(), kernel.NewUUID(), ceNumber(t, 1), content(),
			[]costestimate.ItemSpec{spec(t, "1", "1"), {Unit: "m"}, {Description: "x"}}, kernel.NewUUID(), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "items[1].description")
		assert.Contains(t, err.Error(), "items[2].unit")
		assert.NotContains(t, err.Error(), "items[0]")
	})

	t.Run("rejects a total above the storable range", func(t *testing.T) {
		big := spec(t, "99999999.99", "99999.99")

		_, err := costestimate.NewCostEstimate(kernel.NewUUID(), kernel.NewUUID(), ceNumber(t, 1), content(),
			[]costestimate.ItemSpec{big, big}, kernel.NewUUID(), now)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "total_amount", outOfRange.ParamName)
	})
}

func TestCostEstimate_TotalsProperty(t *testing.T) {
	rng := rand.New(rand.NewPCG(2026, 6))

	for round := range 200 {
		count := 1 + rng.IntN(12)
		specs := make([]costestimate.ItemSpec, count)
		for i := range specs {
			specs[i] = costestimate.ItemSpec{
				Description: fmt.Sprintf("item %d", i),
				Unit:        "pcs",
				Quantity:    mustQuantity(t, decimal.New(int64(1+rng.IntN(100000)), -2)),
				UnitPrice:   kernel.MustMoney(decimal.New(int64(rng.IntN(10000000)), -2).String()),
			}
		}

		ce := newDraft(t, specs...)
		assertTotals(t, ce, round)

		revised := specs[:1+rng.IntN(count)]
		require.NoError(t, ce.Revise(content(), revised, now))
		assertTotals(t, ce, round)
		assert.Len(t, ce.Items(), len(revised))
	}
}

func assertTotals(t *testing.T, ce *costestimate.CostEstimate, round int) {
	t.Helper()
	sum := decimal.Zero
	for _, item := range ce.Items() {
		expected := item.Quantity().Decimal().Mul(item.UnitPrice().Decimal()).Round(2)
		require.True(t, expected.Equal(item.TotalPrice().Decimal()), "round %d: item total", round)
		sum = sum.Add(item.TotalPrice().Decimal())
	}
	require.True(t, sum.Equal(ce.TotalAmount().Decimal()), "round %d: %s != %s", round, sum, ce.TotalAmount())
}

func mustQuantity(t *testing.T, d decimal.Decimal) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(d)
	require.NoError(t, err)
	return q
}

func TestCostEstimate_Revise(t *testing.T) {
	t.Run("replaces the whole item set", func(t *testing.T) {
		ce := newDraft(t, spec(t, "10", "100"), spec(t, "5", "50"))
		oldIDs := []kernel.UUID{ce.Items()[0].ID(), ce.Items()[1].ID()}
		later := now.Add(time.Hour)

		err := ce.Revise(costestimate.Content{Title: "Revised", Type: costestimate.TypeCostEstimate},
			[]costestimate.ItemSpec{spec(t, "3", "7.5")}, later)

		require.NoError(t, err)
		assert.Equal(t, "Revised", ce.Title())
		assert.Equal(t, costestimate.TypeCostEstimate, ce.Type())
		require.Len(t, ce.Items(), 1)
		assert.False(t, ce.Items()[0].ID().IsEqual(oldIDs[0]))
		assert.False(t, ce.Items()[0].ID().IsEqual(oldIDs[1]))
		assert.Equal(t, "22.50", ce.TotalAmount().String())
		assert.Equal(t, later, ce.UpdatedAt())
	})

	t.Run("invalid revision keeps previous state", func(t *testing.T) {
		ce := newDraft(t, spec(t, "10", "100"))

		err := ce.Revise(content(), nil, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Len(t, ce.Items(), 1)
		assert.Equal(t, "1000.00", ce.TotalAmount().String())
	})

	t.Run("overflowing revision keeps previous state", func(t *testing.T) {
		ce := newDraft(t, spec(t, "10", "100"))
		big := spec(t, "99999999.99", "99999.99")

		err := ce.Revise(content(), []costestimate.ItemSpec{big, big}, now.Add(time.Hour))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Len(t, ce.Items(), 1)
		assert.Equal(t, "1000.00", ce.TotalAmount().String())
		assert.Equal(t, now, ce.UpdatedAt())
	})

	t.Run("only drafts can be revised", func(t *testing.T) {
		ce := newDraft(t, spec(t, "1", "1"))
		require.NoError(t, ce.Reject("too expensive", now))

		require.ErrorIs(t, ce.Revise(content(), []costestimate.ItemSpec{spec(t, "1", "1")}, now), errs.ErrGuardFailed)
	})

	t.Run("items slice is a copy", func(t *testing.T) {
		ce := newDraft(t, spec(t, "1", "1"))
		items := ce.Items()
		items[0] = nil

		assert.NotNil(t, ce.Items()[0])
	})
}

func TestCostEstimate_Approve(t *testing.T) {
	ce := newDraft(t, spec(t, "1", "10"))
	approver := kernel.NewUUID()

	require.NoError(t, ce.Approve(approver, " fine ", now))

	assert.Equal(t, costestimate.Approved, ce.Status())
	assert.True(t, approver.IsEqual(*ce.ApprovedBy()))
	assert.Equal(t, now, *ce.ApprovedAt())
	assert.Equal(t, "fine", ce.ApprovalNotes())
	assert.Len(t, ce.References(), 2)

	require.ErrorIs(t, ce.Approve(approver, "", now), errs.ErrGuardFailed)
	require.ErrorIs(t, ce.Reject("", now), errs.ErrGuardFailed)
	require.ErrorIs(t, ce.EnsureDeletable(), errs.ErrGuardFailed)
}

func TestCostEstimate_Reject(t *testing.T) {
	ce := newDraft(t, spec(t, "1", "10"))

	require.NoError(t, ce.Reject("over budget", now))

	assert.Equal(t, costestimate.Rejected, ce.Status())
	assert.Equal(t, "over budget", ce.RejectionNotes())
	assert.Nil(t, ce.ApprovedBy())
	require.ErrorIs(t, ce.Approve(kernel.NewUUID(), "", now), errs.ErrGuardFailed)
}

func TestCostEstimate_EnsureDeletable(t *testing.T) {
	require.NoError(t, newDraft(t, spec(t, "1", "1")).EnsureDeletable())
}

func TestRestoreCostEstimate(t *testing.T) {
	first, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "2", "10"), 0)
	require.NoError(t, err)
	second, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "1", "5"), 1)
	require.NoError(t, err)
	approver := kernel.NewUUID()

	t.Run("recomputes total and orders items", func(t *testing.T) {
		ce, err := costestimate.RestoreCostEstimate(costestimate.RestoreParams{
			ID:              kernel.NewUUID(),
			PurchaseOrderID: kernel.NewUUID(),
			Number:          ceNumber(t, 12),
			Content:         content(),
			Items:           []*costestimate.Item{second, first},
			Status:          costestimate.Approved,
			CreatedBy:       kernel.NewUUID(),
			ApprovedBy:      &approver,
			ApprovedAt:      &now,
			CreatedAt:       now,
			UpdatedAt:       now,
		})

		require.NoError(t, err)
		assert.Equal(t, "25.00", ce.TotalAmount().String())
		assert.Equal(t, first.ID(), ce.Items()[0].ID())
		assert.Equal(t, costestimate.Approved, ce.Status())
	})

	t.Run("rejects approval markers outside approved", func(t *testing.T) {
		_, err := costestimate.RestoreCostEstimate(costestimate.RestoreParams{
			ID:              kernel.NewUUID(),
			PurchaseOrderID: kernel.NewUUID(),
			Number:          ceNumber(t, 12),
			Content:         content(),
			Items:           []*costestimate.Item{first},
			Status:          costestimate.Draft,
			CreatedBy:       kernel.NewUUID(),
			ApprovedBy:      &approver,
			ApprovedAt:      &now,
		})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestCostEstimate_Validate(t *testing.T) {
	var ce *costestimate.CostEstimate
	require.ErrorIs(t, ce.Validate(), costestimate.ErrCostEstimateIsNotConstructed)
}
