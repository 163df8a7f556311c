// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/contentspark/pkg/types"
)

func TestDraftTitle(t *testing.T) {
	long := strings.Repeat("abcdefghij", 5)

	tests := []struct {
		tool   types.Tool
		source string
		want   string
	}{
		{types.ToolBrainstorm, "AI in healthcare", "Brainstorm: AI in healthcare..."},
		{types.ToolBrainstorm, long, "Brainstorm: " + long[:30] + "..."},
		{types.ToolRewrite, long, "Rewritten: " + long[:20] + "..."},
		{types.ToolProofread, long, "Proofread: " + long[:20] + "..."},
		{types.ToolSummarize, long, "Summary: " + long[:20] + "..."},
		{types.ToolExpand, long, "Expanded: " + long[:20] + "..."},
		{types.ToolSocial, long, "Social Post: " + long[:30] + "..."},
		{types.ToolWriter, long, "Writer Draft: " + long[:20] + "..."},
		{types.ToolWriter, "", "Writer Draft: ..."},
		{types.ToolRewrite, "ééééééééééééééééééééééé", "Rewritten: éééééééééééééééééééé..."},
	}

	for _, tt := range tests {
		t.Run(string(tt.tool)+"/"+tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, DraftTitle(tt.tool, tt.source))
		})
	}
}

func TestContent(t *testing.T) {
	tests := []struct {
		name string
		tool types.Tool
		out  any
		want string
	}{
		{"brainstorm", types.ToolBrainstorm, types.BrainstormOutput{Ideas: []string{"a", "b"}}, "a\n\nb"},
		{"rewrite", types.ToolRewrite, types.RewriteOutput{RewrittenText: "r"}, "r"},
		{"proofread", types.ToolProofread, types.ProofreadOutput{CorrectedText: "p"}, "p"},
		{"summarize", types.ToolSummarize, types.SummarizeOutput{Summary: "s"}, "s"},
		{"expand", types.ToolExpand, types.ExpandOutput{ExpandedContent: "e"}, "e"},
		{"social", types.ToolSocial, types.SocialOutput{Post: "o"}, "o"},
		{"writer text", types.ToolWriter, "typed", "typed"},
		{"unknown", types.ToolWriter, 3, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Content(tt.tool, tt.out))
		})
	}
}
