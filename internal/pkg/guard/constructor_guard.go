package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate when the guarded
// object is a zero value and no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Commands and value
// objects embed it so a zero-value struct literal fails validation.
//
// Example usage:
//
//	type ValidatePurchaseOrderCommand struct {
//	    actorID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c ValidatePurchaseOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrValidatePurchaseOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owner as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
