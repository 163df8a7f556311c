// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pdiddy/contentspark/pkg/types"
)

// Offline is the demo-mode Generator. It never leaves the process and
// returns canned results shaped like real ones.
type Offline struct {
	// Delay simulates backend latency. Zero answers at once.
	Delay time.Duration
}

var _ Generator = (*Offline)(nil)

var (
	tehPattern   = regexp.MustCompile(`(?i)teh`)
	wierdPattern = regexp.MustCompile(`(?i)wierd`)
)

func (o *Offline) wait(ctx context.Context, in any) error {
	if err := Validate(in); err != nil {
		return err
	}
	if o.Delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(o.Delay):
		return nil
	}
}

func (o *Offline) Brainstorm(ctx context.Context, in types.BrainstormInput) (types.BrainstormOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.BrainstormOutput{}, err
	}
	return types.BrainstormOutput{Ideas: []string{
		fmt.Sprintf("Idea 1 for \"%s\": A completely novel concept.", in.Topic),
		fmt.Sprintf("Idea 2 for \"%s\": A twist on a classic theme.", in.Topic),
		fmt.Sprintf("Idea 3 for \"%s\": An unexpected combination.", in.Topic),
	}}, nil
}

func (o *Offline) Rewrite(ctx context.Context, in types.RewriteInput) (types.RewriteOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.RewriteOutput{}, err
	}
	return types.RewriteOutput{RewrittenText: fmt.Sprintf(
		"This is a mock rewritten text in a %s tone for: \"%s...\"",
		strings.ToLower(string(in.Tone)), truncate(in.Text, 50))}, nil
}

// Proofread fixes "teh" and "wierd" and flags the first of each.
func (o *Offline) Proofread(ctx context.Context, in types.ProofreadInput) (types.ProofreadOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.ProofreadOutput{}, err
	}
	corrected := tehPattern.ReplaceAllString(in.Text, "the")
	corrected = wierdPattern.ReplaceAllString(corrected, "weird")

	var suggestions []types.Suggestion
	for _, fix := range []struct{ wrong, right string }{{"teh", "the"}, {"wierd", "weird"}} {
		i := strings.Index(in.Text, fix.wrong)
		if i < 0 {
			continue
		}
		suggestions = append(suggestions, types.Suggestion{
			StartIndex: utf8.RuneCountInString(in.Text[:i]),
			Length:     len(fix.wrong),
			Suggestion: fmt.Sprintf("Corrected %q to %q.", fix.wrong, fix.right),
		})
	}
	return types.ProofreadOutput{CorrectedText: corrected, Suggestions: suggestions}, nil
}

// Summarize keeps the first two sentences.
func (o *Offline) Summarize(ctx context.Context, in types.SummarizeInput) (types.SummarizeOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.SummarizeOutput{}, err
	}
	parts := strings.Split(in.Text, ".")
	if len(parts) > 2 {
		parts = parts[:2]
	}
	return types.SummarizeOutput{
		Summary: "This is a mock summary of your text. " + strings.Join(parts, ".") + ".",
	}, nil
}

func (o *Offline) Expand(ctx context.Context, in types.ExpandInput) (types.ExpandOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.ExpandOutput{}, err
	}
	return types.ExpandOutput{ExpandedContent: fmt.Sprintf(
		"This is a mock expansion of: \"%s...\" It builds on the original idea with added detail, explanation, and context.",
		truncate(in.Text, 50))}, nil
}

func (o *Offline) Social(ctx context.Context, in types.SocialInput) (types.SocialOutput, error) {
	if err := o.wait(ctx, in); err != nil {
		return types.SocialOutput{}, err
	}
	return types.SocialOutput{Post: fmt.Sprintf(
		"This is a mock %s post about \"%s\". #contentspark #demo", in.Platform, in.Topic)}, nil
}
