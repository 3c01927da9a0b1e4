// Package costestimate implements the CostEstimate aggregate (a cost estimate or a
// bill of quantities attached to one purchase order) and its line items.
//
// Status transitions:
//
//	Draft ───────────┬──> Approved
//	                 │
//	PendingApproval ─┴──> Rejected
//
// Only Draft estimates may be revised or deleted. Revising replaces the whole item
// set; the total amount is recomputed from the items after every change and is
// never taken from the caller or from storage.
package costestimate
