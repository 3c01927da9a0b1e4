// Package kernel provides the value objects shared by every aggregate of the
// procurement domain.
//
// The package includes:
//   - UUID: identifier of users, purchase orders, cost estimates and their items
//   - Money: a non-negative fixed-point amount with two fractional digits
//   - Quantity: a strictly positive fixed-point amount with two fractional digits
//   - DocumentNumber: the year-scoped "<PREFIX>-<year>-<seq>" business number
//
// Amounts are backed by github.com/shopspring/decimal; no floating point value is
// ever used for money.
package kernel
