// Package errs provides the typed error kinds of the procurement service.
// Every kind follows the same shape so callers can classify failures with
// errors.Is against the sentinel or errors.As against the struct:
//   - a sentinel error variable (e.g. ErrGuardFailed)
//   - a struct type carrying the details of the failure
//   - constructor functions, with and without a cause where a cause makes sense
//   - Error() for the message and Unwrap() returning the sentinel
//
// Validation kinds (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
// carry the offending parameter name so the transport layer can report them per field.
// Workflow kinds (CapabilityError, GuardFailedError, SelfDeleteError, HasDependentsError)
// describe why a state change was refused. Lookup kinds (ObjectNotFoundError,
// ObjectAlreadyExistsError) describe the state of the store.
//
// Messages are plain English and never localized; rendering is left to callers.
package errs
