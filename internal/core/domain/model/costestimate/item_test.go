package costestimate_test

import (
	"strings"
	"testing"

	"procurement/internal/core/domain/model/costestimate"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(t *testing.T, s string) kernel.Quantity {
	t.Helper()
	q, err := kernel.QuantityFromString(s)
	require.NoError(t, err)
	return q
}

func spec(t *testing.T, quantity, price string) costestimate.ItemSpec {
	t.Helper()
	return costestimate.ItemSpec{
		Description: "Cement 50kg",
		Unit:        "bag",
		Quantity:    qty(t, quantity),
		UnitPrice:   kernel.MustMoney(price),
	}
}

func TestNewItem(t *testing.T) {
	t.Run("computes total price", func(t *testing.T) {
		s := spec(t, "10", "100")
		s.ItemCode = " CEM-01 "

		item, err := costestimate.NewItem(kernel.NewUUID(), s, 3)

		require.NoError(t, err)
		assert.Equal(t, "1000.00", item.TotalPrice().String())
		assert.Equal(t, "CEM-01", item.ItemCode())
		assert.Equal(t, 3, item.SortOrder())
		assert.Equal(t, "bag", item.Unit())
	})

	t.Run("rounds fractional products", func(t *testing.T) {
		item, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "2.5", "33.33"), 0)

		require.NoError(t, err)
		assert.Equal(t, "83.33", item.TotalPrice().String())
	})

	t.Run("free items are allowed", func(t *testing.T) {
		item, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "1", "0"), 0)

		require.NoError(t, err)
		assert.True(t, item.TotalPrice().IsZero())
	})

	t.Run("reports prefixed field errors", func(t *testing.T) {
		_, err := costestimate.NewItem(kernel.NewUUID(), costestimate.ItemSpec{
			ItemCode: strings.Repeat("c", 51),
			Unit:     strings.Repeat("u", 51),
		}, 2)

		require.Error(t, err)
		var required *errs.ValueIsRequiredError
		require.ErrorAs(t, err, &required)
		assert.Contains(t, []string{"items[2].description", "items[2].quantity"}, required.ParamName)
		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Contains(t, []string{"items[2].item_code", "items[2].unit"}, outOfRange.ParamName)
	})
	t.Run("rejects unit prices above the storable range", func(t *testing.T) {
		_, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "1", "10000000000.00"), 1)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "items[1].unit_price", outOfRange.ParamName)
	})

	t.Run("rejects totals above the storable range", func(t *testing.T) {
		_, err := costestimate.NewItem(kernel.NewUUID(), spec(t, "99999999.99", "9999999999.99"), 0)

		var outOfRange *errs.ValueIsOutOfRangeError
		require.ErrorAs(t, err, &outOfRange)
		assert.Equal(t, "items[0].total_price", outOfRange.ParamName)
	})
}
