package services

import (
	"fmt"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// DocumentNumberer issues sequential document numbers within a (prefix, year)
// partition.
//
// The caller passes the greatest number already stored for the partition, as found
// by a lexicographic search for "<PREFIX>-<year>-%", or nil when the year has none.
// The result continues from it, or starts at 0001. Past 9999 it fails closed with
// kernel.ErrSequenceExhausted.
//
// The numberer itself is stateless; uniqueness under concurrent creators comes from
// the unique index on the number column together with retrying the whole unit of
// work.
//
// Example usage:
//
//	last, err := repo.LastNumber(ctx, kernel.PurchaseOrderPrefix, year)
//	next, err := services.NewDocumentNumberer().Next(kernel.PurchaseOrderPrefix, year, last)
type DocumentNumberer struct{}

// NewDocumentNumberer creates a DocumentNumberer.
func NewDocumentNumberer() DocumentNumberer {
	return DocumentNumberer{}
}

// Next returns the number following last in the given partition.
func (DocumentNumberer) Next(prefix kernel.DocumentPrefix, year int, last *kernel.DocumentNumber) (kernel.DocumentNumber, error) {
	if last == nil {
		return kernel.NewDocumentNumber(prefix, year, kernel.MinSequence)
	}
	if last.Prefix() != prefix || last.Year() != year {
		return kernel.DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"last number",
			fmt.Errorf("%s is outside partition %s", last, prefix.YearPattern(year)),
		)
	}
	return last.Next()
}
