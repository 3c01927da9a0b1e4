// Package purchaseorder implements the PurchaseOrder aggregate root and its status
// state machine.
//
// The package includes:
//   - PurchaseOrder: the root workflow entity, numbered "PO-<year>-<seq>"
//   - Status: the nine lifecycle states and their guarded transitions
//   - Priority: low, medium, high or urgent (medium by default)
//
// Driven transitions:
//
//	Draft ──────────────┐
//	                    ├──> Validated ──> CEBOQCreated
//	PendingValidation ──┘        ^              │
//	                             └──────────────┘ (its draft cost estimate was deleted)
//
//	InProgress ──> Completed
//
// PendingCEBOQ, CEBOQApproved, InProgress and Cancelled are reserved: they can be
// stored and restored, but no transition of this package produces them. Completed
// and Cancelled are terminal.
//
// Audit markers follow the status: validated_by/at are present exactly when the
// order has passed validation, completed_by/at exactly when it is completed.
package purchaseorder
