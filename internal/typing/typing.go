// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package typing plays text back one character at a time.
package typing

import (
	"context"
	"io"
	"time"
)

// DefaultInterval is the delay between characters.
const DefaultInterval = 10 * time.Millisecond

// Emit receives the next chunk of text.
type Emit func(chunk string) error

// Play emits text one rune at a time, waiting interval between runes. A
// non-positive interval emits the whole text in one call. Play stops with
// ctx.Err() when ctx is cancelled and with the first error from emit.
func Play(ctx context.Context, text string, interval time.Duration, emit Emit) error {
	if text == "" {
		return nil
	}
	if interval <= 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		return emit(text)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i, r := range text {
		if i > 0 {
			select {
			case <-ctx.Done():
			case <-ticker.C:
			}
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := emit(string(r)); err != nil {
			return err
		}
	}
	return nil
}

// Writer returns an Emit that writes each chunk to w.
func Writer(w io.Writer) Emit {
	return func(chunk string) error {
		_, err := io.WriteString(w, chunk)
		return err
	}
}
