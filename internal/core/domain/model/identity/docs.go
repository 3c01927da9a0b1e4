// Package identity models the actors of the procurement workflow.
//
// The package includes:
//   - Role: the six business roles (superadmin, admin, unit_kerja, bsp, kkf, dau)
//   - Capability: the five permissions a role may grant
//   - User: the aggregate that acts on purchase orders and cost estimates
//
// Capabilities are a pure function of the role. There is no role inheritance and no
// persisted permission table: the sets overlap on purpose (bsp validates purchase
// orders and creates cost estimates, dau only approves cost estimates).
//
// User.Authorize is the single entry point used by the command handlers; it fails
// with errs.CapabilityError when the role lacks the capability or the account is
// inactive.
package identity
