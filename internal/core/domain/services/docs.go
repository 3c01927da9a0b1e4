// Package services provides domain services that do not belong to a single
// aggregate root.
//
// The package includes:
//   - DocumentNumberer: issues the next year-scoped "<PREFIX>-<year>-<seq>" number
//     for purchase orders and cost estimates
package services
