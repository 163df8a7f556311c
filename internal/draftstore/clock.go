// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package draftstore

import "time"

// Clock supplies the current time for draft timestamps.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the wall clock.
var SystemClock Clock = systemClock{}
