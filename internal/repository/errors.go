// internal/repository/errors.go
package repository

import "errors"

// Sentinel errors surfaced by every repository operation. The service
// layer maps these to gRPC status codes; raw storage errors never leave
// this package unwrapped.
var (
	// ErrNotFound covers both "the plan/task does not exist" and "the
	// caller has no relationship to it", deliberately conflated so that
	// plan existence never leaks to unauthorized callers.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the caller has a relationship to the
	// plan but not the access the operation requires.
	ErrPermissionDenied = errors.New("insufficient permission")

	// ErrInvalidOperation covers rejected requests: deleting the last
	// task, empty updates, self-shares, plans created without tasks,
	// completing a plan with no current task.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrConflict means the plan's cursor moved between read and write.
	// The operation was rolled back; the caller may re-issue it.
	ErrConflict = errors.New("concurrent modification")
)
