// Package ports defines the contracts between the procurement core and its
// infrastructure: repositories bound to a unit of work, the clock and the
// password hasher.
package ports
