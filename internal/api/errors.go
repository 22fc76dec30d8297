package api

import (
	"fmt"
	"net/http"
)

// PersistenceError reports a failed create/update/delete/status call. The
// record the caller holds is untouched and can be resubmitted as-is.
type PersistenceError struct {
	Op         string // "create property", "update status", ...
	StatusCode int    // 0 when the service was unreachable
	Body       string
	Err        error
}

func (e *PersistenceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s: service unreachable: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Rejected reports whether the backend refused the payload itself, as opposed
// to being unreachable or missing the endpoint.
func (e *PersistenceError) Rejected() bool {
	return e.StatusCode == http.StatusBadRequest || e.StatusCode == http.StatusUnprocessableEntity
}

// Unreachable reports whether the call never produced a usable response:
// network failure, or an endpoint the backend has not implemented.
func (e *PersistenceError) Unreachable() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusNotFound ||
		e.StatusCode == http.StatusNotImplemented ||
		e.StatusCode == http.StatusBadGateway ||
		e.StatusCode == http.StatusServiceUnavailable
}

// LoadError reports a failed record fetch. It is not fatal: the editor falls
// back to whatever stub data it already has.
type LoadError struct {
	ID  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading property %s: %v", e.ID, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
