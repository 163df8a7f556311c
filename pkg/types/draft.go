// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Draft is a persisted user-authored text artifact.
type Draft struct {
	// ID is assigned by the store on creation and never reused.
	ID int64 `json:"id" yaml:"id"`

	// Title is caller supplied and may be empty.
	Title string `json:"title" yaml:"title"`

	// Content is the artifact body, stored and exported verbatim.
	Content string `json:"content" yaml:"content"`

	// CreatedAt is milliseconds since the Unix epoch, set once on creation.
	CreatedAt int64 `json:"createdAt" yaml:"created_at"`

	// UpdatedAt is milliseconds since the Unix epoch, refreshed on every update.
	UpdatedAt int64 `json:"updatedAt" yaml:"updated_at"`
}

// Updated returns UpdatedAt as a time.Time in UTC.
func (d Draft) Updated() time.Time {
	return time.UnixMilli(d.UpdatedAt).UTC()
}

// Created returns CreatedAt as a time.Time in UTC.
func (d Draft) Created() time.Time {
	return time.UnixMilli(d.CreatedAt).UTC()
}

// DisplayTitle returns the title, or "Untitled Draft" when it is empty.
func (d Draft) DisplayTitle() string {
	if d.Title == "" {
		return "Untitled Draft"
	}
	return d.Title
}
