package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocumentNumber(t *testing.T) {
	t.Run("renders zero padded sequence", func(t *testing.T) {
		n, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, 2026, 1)

		require.NoError(t, err)
		assert.Equal(t, "PO-2026-0001", n.String())
		assert.Equal(t, kernel.PurchaseOrderPrefix, n.Prefix())
		assert.Equal(t, 2026, n.Year())
		assert.Equal(t, 1, n.Sequence())
	})

	tests := []struct {
		name     string
		prefix   kernel.DocumentPrefix
		year     int
		sequence int
		target   error
	}{
		{"unknown prefix", "XX", 2026, 1, errs.ErrValueIsInvalid},
		{"zero sequence", kernel.CostEstimatePrefix, 2026, 0, errs.ErrValueIsOutOfRange},
		{"sequence overflow", kernel.CostEstimatePrefix, 2026, 10000, kernel.ErrSequenceExhausted},
		{"year out of range", kernel.CostEstimatePrefix, 10000, 1, errs.ErrValueIsOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := kernel.NewDocumentNumber(tt.prefix, tt.year, tt.sequence)

			require.ErrorIs(t, err, tt.target)
		})
	}
}

func TestParseDocumentNumber(t *testing.T) {
	t.Run("round trips", func(t *testing.T) {
		n, err := kernel.ParseDocumentNumber("CE-2025-0420")

		require.NoError(t, err)
		assert.Equal(t, kernel.CostEstimatePrefix, n.Prefix())
		assert.Equal(t, 420, n.Sequence())
		assert.Equal(t, "CE-2025-0420", n.String())
	})

	for _, input := range []string{"", "PO-2026-1", "PO-26-0001", "PO-2026-00a1", "PO_2026_0001", "PO-2026-0001-1"} {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := kernel.ParseDocumentNumber(input)

			require.Error(t, err)
			assert.True(t, errs.IsValidation(err))
		})
	}
}

func TestDocumentNumber_Next(t *testing.T) {
	t.Run("increments within the partition", func(t *testing.T) {
		n, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, 2026, 9)
		require.NoError(t, err)

		next, err := n.Next()

		require.NoError(t, err)
		assert.Equal(t, "PO-2026-0010", next.String())
	})

	t.Run("fails closed after 9999", func(t *testing.T) {
		n, err := kernel.NewDocumentNumber(kernel.PurchaseOrderPrefix, 2026, kernel.MaxSequence)
		require.NoError(t, err)

		_, err = n.Next()

		require.ErrorIs(t, err, kernel.ErrSequenceExhausted)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value cannot advance", func(t *testing.T) {
		var n kernel.DocumentNumber

		_, err := n.Next()

		require.ErrorIs(t, err, kernel.ErrDocumentNumberIsNotConstructed)
	})
}

func TestDocumentNumber_LexicographicOrder(t *testing.T) {
	previous := ""
	for _, seq := range []int{1, 2, 9, 10, 99, 100, 999, 1000, 9999} {
		n, err := kernel.NewDocumentNumber(kernel.CostEstimatePrefix, 2026, seq)
		require.NoError(t, err)

		assert.Greater(t, n.String(), previous)
		previous = n.String()
	}
}

func TestDocumentPrefix_YearPattern(t *testing.T) {
	assert.Equal(t, "PO-2026-%", kernel.PurchaseOrderPrefix.YearPattern(2026))
	assert.Equal(t, "CE-0999-%", kernel.CostEstimatePrefix.YearPattern(999))
}
