package services

import "errors"

// Resource-level failures. Handlers translate these with errors.Is; anything
// else coming out of a service is a storage failure and surfaces as a 500,
// never as "resource absent".
var (
	// ErrNotFound covers both a resource that does not exist and one owned
	// by another user. The two cases are indistinguishable on purpose, so a
	// caller cannot probe for the existence of other users' data.
	ErrNotFound = errors.New("resource not found")

	// ErrGoalForbidden is returned when creating a transaction under a goal
	// the caller does not own. Unlike direct reads, the parent reference is
	// reported as inaccessible rather than absent.
	ErrGoalForbidden = errors.New("goal inaccessible")
)
