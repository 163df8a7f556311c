// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDraftTimes(t *testing.T) {
	d := Draft{CreatedAt: 1_700_000_000_000, UpdatedAt: 1_700_000_000_250}
	assert.Equal(t, time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC), d.Created())
	assert.Equal(t, 250*time.Millisecond, d.Updated().Sub(d.Created()))
}

func TestDraftDisplayTitle(t *testing.T) {
	assert.Equal(t, "Untitled Draft", Draft{}.DisplayTitle())
	assert.Equal(t, "Notes", Draft{Title: "Notes"}.DisplayTitle())
}
