// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package generate runs the content tools against a generation backend.
//
// Each tool is a single request/response call: the input record is
// validated, rendered into a prompt, sent to the backend once, and the
// JSON reply is decoded into the output record. Retrying a rate-limited
// call is the transport's concern; a tool never re-issues a request.
package generate

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pdiddy/contentspark/pkg/types"
)

var (
	// ErrEmptyInput means a required text or topic was empty.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInvalidOption means a tone or platform is not one of the accepted values.
	ErrInvalidOption = errors.New("invalid option")

	// ErrMalformedInput means an input record could not be decoded.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownTool means the tool name is not recognised.
	ErrUnknownTool = errors.New("unknown tool")

	// ErrGeneration means the backend failed or returned an unusable reply.
	ErrGeneration = errors.New("generation failed")
)

// Generator runs each content tool.
type Generator interface {
	Brainstorm(ctx context.Context, in types.BrainstormInput) (types.BrainstormOutput, error)
	Rewrite(ctx context.Context, in types.RewriteInput) (types.RewriteOutput, error)
	Proofread(ctx context.Context, in types.ProofreadInput) (types.ProofreadOutput, error)
	Summarize(ctx context.Context, in types.SummarizeInput) (types.SummarizeOutput, error)
	Expand(ctx context.Context, in types.ExpandInput) (types.ExpandOutput, error)
	Social(ctx context.Context, in types.SocialInput) (types.SocialOutput, error)
}

func requireText(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyInput, field)
	}
	return nil
}

// ParseTone matches s against the accepted tones, ignoring case.
func ParseTone(s string) (types.Tone, error) {
	for _, t := range types.Tones {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: tone %q (want one of %s)", ErrInvalidOption, s, joinNames(types.Tones))
}

// ParsePlatform matches s against the accepted platforms, ignoring case.
func ParsePlatform(s string) (types.Platform, error) {
	for _, p := range types.Platforms {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: platform %q (want one of %s)", ErrInvalidOption, s, joinNames(types.Platforms))
}

// ParseTool matches s against the generation tools.
func ParseTool(s string) (types.Tool, error) {
	t := types.Tool(strings.ToLower(s))
	if !slices.Contains(types.Tools, t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, s)
	}
	return t, nil
}

func joinNames[T ~string](vs []T) string {
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// Validate checks an input record before it reaches a backend.
func Validate(in any) error {
	switch v := in.(type) {
	case types.BrainstormInput:
		return requireText("topic", v.Topic)
	case types.RewriteInput:
		if err := requireText("text", v.Text); err != nil {
			return err
		}
		if !slices.Contains(types.Tones, v.Tone) {
			_, err := ParseTone(string(v.Tone))
			return err
		}
		return nil
	case types.ProofreadInput:
		return requireText("text", v.Text)
	case types.SummarizeInput:
		return requireText("text", v.Text)
	case types.ExpandInput:
		return requireText("text", v.Text)
	case types.SocialInput:
		if err := requireText("topic", v.Topic); err != nil {
			return err
		}
		if !slices.Contains(types.Platforms, v.Platform) {
			_, err := ParsePlatform(string(v.Platform))
			return err
		}
		return nil
	default:
		return fmt.Errorf("%w: input %T", ErrUnknownTool, in)
	}
}
