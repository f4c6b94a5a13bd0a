// Package common defines shared constants, sentinel errors and small helpers
// used across the WordTrail client layers. Callers should use errors.Is to
// match the error values.
package common

import "errors"

var (
	// ErrNotAuthenticated is returned when no identity can be derived from
	// any local source (cached identity, split fields or token claims).
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrStoreRead marks a local read that failed to decode. It never reaches
	// callers of the services; it is only used to tag log records.
	ErrStoreRead = errors.New("store read failure")

	// ErrRemoteSync marks a failed remote synchronization attempt.
	ErrRemoteSync = errors.New("remote sync failure")
)
