// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"

	"github.com/pdiddy/contentspark/pkg/types"
)

// DraftTitle returns the title given to a draft saved from tool. source is
// the topic for brainstorm and social, the input text for the text tools,
// and the draft body for the writer.
func DraftTitle(tool types.Tool, source string) string {
	switch tool {
	case types.ToolBrainstorm:
		return "Brainstorm: " + truncate(source, 30) + "..."
	case types.ToolRewrite:
		return "Rewritten: " + truncate(source, 20) + "..."
	case types.ToolProofread:
		return "Proofread: " + truncate(source, 20) + "..."
	case types.ToolSummarize:
		return "Summary: " + truncate(source, 20) + "..."
	case types.ToolExpand:
		return "Expanded: " + truncate(source, 20) + "..."
	case types.ToolSocial:
		return "Social Post: " + truncate(source, 30) + "..."
	default:
		return "Writer Draft: " + truncate(source, 20) + "..."
	}
}

// Content returns the draft body for a tool output. Brainstorm ideas are
// separated by a blank line.
func Content(tool types.Tool, out any) string {
	switch v := out.(type) {
	case types.BrainstormOutput:
		return strings.Join(v.Ideas, "\n\n")
	case types.RewriteOutput:
		return v.RewrittenText
	case types.ProofreadOutput:
		return v.CorrectedText
	case types.SummarizeOutput:
		return v.Summary
	case types.ExpandOutput:
		return v.ExpandedContent
	case types.SocialOutput:
		return v.Post
	case string:
		return v
	default:
		return ""
	}
}

// truncate returns at most n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
