package docstore

import "fmt"

// NotFoundError is returned when a referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return e.Entity + " not found"
	}
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// ConflictError is returned when an insert violates a uniqueness invariant
// (duplicate email, duplicate (client, title) pair).
type ConflictError struct {
	Entity string
	Detail string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Detail)
}

// ValidationError is returned for bad caller input. It is never retried.
type ValidationError struct {
	Detail string
}

func (e *ValidationError) Error() string {
	return "invalid input: " + e.Detail
}
