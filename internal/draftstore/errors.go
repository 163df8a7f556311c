// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draftstore

import "errors"

var (
	// ErrStorageUnavailable means the durable store could not be opened or
	// carries a schema this build does not understand.
	ErrStorageUnavailable = errors.New("draft storage unavailable")

	// ErrReadFailure means a read transaction failed.
	ErrReadFailure = errors.New("draft read failed")

	// ErrWriteFailure means a write transaction failed and was rolled back.
	ErrWriteFailure = errors.New("draft write failed")

	// ErrNotFound means no draft carries the requested id.
	ErrNotFound = errors.New("draft not found")
)
