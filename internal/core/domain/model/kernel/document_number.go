package kernel

import (
	"fmt"
	"strconv"
	"strings"

	"procurement/internal/pkg/errs"
)

// DocumentPrefix distinguishes the numbering partitions.
type DocumentPrefix string

const (
	PurchaseOrderPrefix DocumentPrefix = "PO"
	CostEstimatePrefix  DocumentPrefix = "CE"
)

const (
	// MinSequence is the first sequence number of a year.
	MinSequence = 1
	// MaxSequence is the last sequence number that fits in four digits.
	MaxSequence = 9999

	minYear = 1
	maxYear = 9999
)

var (
	// ErrDocumentNumberIsNotConstructed is returned when validating the zero DocumentNumber.
	ErrDocumentNumberIsNotConstructed = errs.NewValueIsRequiredError("document number")

	// ErrSequenceExhausted is returned when the year already used sequence 9999.
	ErrSequenceExhausted = errs.NewValueIsOutOfRangeError("sequence", MaxSequence+1, MinSequence, MaxSequence)
)

// DocumentNumber is a business identifier of the form "<PREFIX>-<year>-<seq>", where
// seq is zero-padded to four digits, e.g. "PO-2026-0001". Lexicographic order of the
// rendered form equals numeric order within one (prefix, year) partition.
type DocumentNumber struct {
	prefix   DocumentPrefix
	year     int
	sequence int
}

// NewDocumentNumber validates its parts and builds a DocumentNumber.
func NewDocumentNumber(prefix DocumentPrefix, year, sequence int) (DocumentNumber, error) {
	if err := prefix.Validate(); err != nil {
		return DocumentNumber{}, err
	}
	if year < minYear || year > maxYear {
		return DocumentNumber{}, errs.NewValueIsOutOfRangeError("year", year, minYear, maxYear)
	}
	if sequence > MaxSequence {
		return DocumentNumber{}, ErrSequenceExhausted
	}
	if sequence < MinSequence {
		return DocumentNumber{}, errs.NewValueIsOutOfRangeError("sequence", sequence, MinSequence, MaxSequence)
	}
	return DocumentNumber{prefix: prefix, year: year, sequence: sequence}, nil
}

// ParseDocumentNumber reads back a number rendered by String.
func ParseDocumentNumber(s string) (DocumentNumber, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[1]) != 4 || len(parts[2]) != 4 {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"document number",
			fmt.Errorf("%q does not match <PREFIX>-<yyyy>-<nnnn>", s),
		)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number", err)
	}
	sequence, err := strconv.Atoi(parts[2])
	if err != nil {
		return DocumentNumber{}, errs.NewValueIsInvalidErrorWithCause("document number", err)
	}
	return NewDocumentNumber(DocumentPrefix(parts[0]), year, sequence)
}

// Prefix returns the numbering partition.
func (n DocumentNumber) Prefix() DocumentPrefix {
	return n.prefix
}

// Year returns the year the number was issued in.
func (n DocumentNumber) Year() int {
	return n.year
}

// Sequence returns the position within the year.
func (n DocumentNumber) Sequence() int {
	return n.sequence
}

// Next returns the following number of the same partition or ErrSequenceExhausted.
func (n DocumentNumber) Next() (DocumentNumber, error) {
	if err := n.Validate(); err != nil {
		return DocumentNumber{}, err
	}
	return NewDocumentNumber(n.prefix, n.year, n.sequence+1)
}

func (n DocumentNumber) String() string {
	return fmt.Sprintf("%s-%04d-%04d", n.prefix, n.year, n.sequence)
}

// IsEqual compares the rendered forms.
func (n DocumentNumber) IsEqual(other DocumentNumber) bool {
	return n == other
}

// Validate rejects the zero value.
func (n DocumentNumber) Validate() error {
	if n.prefix == "" || n.sequence == 0 {
		return ErrDocumentNumberIsNotConstructed
	}
	return nil
}

// Validate accepts the known prefixes only.
func (p DocumentPrefix) Validate() error {
	switch p {
	case PurchaseOrderPrefix, CostEstimatePrefix:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("prefix", fmt.Errorf("%q is not a document prefix", string(p)))
	}
}

// YearPattern returns the SQL LIKE pattern matching every number of the partition.
func (p DocumentPrefix) YearPattern(year int) string {
	return fmt.Sprintf("%s-%04d-%%", p, year)
}
