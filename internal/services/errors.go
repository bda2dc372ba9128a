package services

import "fmt"

// Service errors are returned, never panicked, and carry enough for handlers
// to pick a status and a user-facing message without inspecting internals.

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type ThrottledError struct {
	RetryAfterMinutes int
}

func (e *ThrottledError) Error() string {
	return fmt.Sprintf("too many attempts. please try again in %d minutes", e.RetryAfterMinutes)
}

type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

type InvalidCredentialsError struct{}

func (e *InvalidCredentialsError) Error() string { return "incorrect password" }

type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string { return "not logged in" }

// StoreUnavailableError marks a transport/infrastructure failure of the
// backing store, as opposed to a missing row.
type StoreUnavailableError struct {
	Err error
}

func (e *StoreUnavailableError) Error() string { return "store unavailable: " + e.Err.Error() }

func (e *StoreUnavailableError) Unwrap() error { return e.Err }

// OrderPersistenceError marks a failed order write; the transaction wrapper
// guarantees no partial order is left behind when it is returned.
type OrderPersistenceError struct {
	Err error
}

func (e *OrderPersistenceError) Error() string { return "order persistence failed: " + e.Err.Error() }

func (e *OrderPersistenceError) Unwrap() error { return e.Err }
