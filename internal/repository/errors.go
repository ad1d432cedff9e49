// Package repository defines the storage layer: MySQL backed users and the
// per-session booking draft store.  Sentinel errors declared here let the
// handlers distinguish "not found" from genuine storage failures.
package repository

import "errors"

// ErrUserNotFound is returned when no users row matches the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrUserNotFound = errors.New("user not found")

// ErrDraftNotFound is returned by a DraftStore when the session has no saved
// draft.  Callers start a fresh, inactive wizard in that case.
var ErrDraftNotFound = errors.New("draft not found")
