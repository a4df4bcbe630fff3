// Package instance provides Handle, a shared owning reference that can
// never refer to nothing.
//
// The check for an absent value happens once, where a handle is built or
// reassigned, so code receiving a Handle can use it without nil checks:
//
//	conn, err := instance.New[instance.ErrorReporter](dial())
//	if err != nil {
//	    return err // dial returned nil
//	}
//	defer conn.Release()
//	conn.Get().Ping()
//
// What happens on an absent value is a policy chosen by the Reporter type
// parameter. Instance uses PanicReporter; LogReporter logs and ErrorReporter
// stays silent, and in both cases the operation returns an error wrapping
// ErrInvariantViolation and leaves its target unchanged.
//
// Handles follow the explicit ownership rules of package ownership: Clone
// adds a reference, Move transfers one and Release drops one.
package instance
