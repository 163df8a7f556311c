// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pdiddy/contentspark/pkg/types"
)

// Result is the outcome of one tool run.
type Result struct {
	Tool types.Tool `json:"tool"`

	// Output is the tool's typed output record.
	Output any `json:"output"`

	// Text is the displayable result and the body of a saved draft.
	Text string `json:"text"`

	// Title is the title a saved draft would carry.
	Title string `json:"title"`
}

// Run decodes raw into the input record for tool, runs it on g and builds
// the displayable Result.
func Run(ctx context.Context, g Generator, tool types.Tool, raw json.RawMessage) (Result, error) {
	switch tool {
	case types.ToolBrainstorm:
		var in types.BrainstormInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		out, err := g.Brainstorm(ctx, in)
		return result(tool, in.Topic, out, err)
	case types.ToolRewrite:
		var in types.RewriteInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		if in.Tone != "" {
			tone, err := ParseTone(string(in.Tone))
			if err != nil {
				return Result{}, err
			}
			in.Tone = tone
		}
		out, err := g.Rewrite(ctx, in)
		return result(tool, in.Text, out, err)
	case types.ToolProofread:
		var in types.ProofreadInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		out, err := g.Proofread(ctx, in)
		return result(tool, in.Text, out, err)
	case types.ToolSummarize:
		var in types.SummarizeInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		out, err := g.Summarize(ctx, in)
		return result(tool, in.Text, out, err)
	case types.ToolExpand:
		var in types.ExpandInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		out, err := g.Expand(ctx, in)
		return result(tool, in.Text, out, err)
	case types.ToolSocial:
		var in types.SocialInput
		if err := decode(raw, &in); err != nil {
			return Result{}, err
		}
		if in.Platform != "" {
			p, err := ParsePlatform(string(in.Platform))
			if err != nil {
				return Result{}, err
			}
			in.Platform = p
		}
		out, err := g.Social(ctx, in)
		return result(tool, in.Topic, out, err)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
}

func decode(raw json.RawMessage, v any) error {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return nil
}

func result(tool types.Tool, source string, out any, err error) (Result, error) {
	if err != nil {
		return Result{}, err
	}
	return Result{
		Tool:   tool,
		Output: out,
		Text:   Content(tool, out),
		Title:  DraftTitle(tool, source),
	}, nil
}
