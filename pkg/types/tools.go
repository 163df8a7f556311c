// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Tool names one generation capability.
type Tool string

const (
	ToolBrainstorm Tool = "brainstorm"
	ToolRewrite    Tool = "rewrite"
	ToolProofread  Tool = "proofread"
	ToolSummarize  Tool = "summarize"
	ToolExpand     Tool = "expand"
	ToolSocial     Tool = "social"

	// ToolWriter is the free-form writer. It never calls the model; it only
	// titles drafts saved straight from user input.
	ToolWriter Tool = "writer"
)

// Tools lists every tool that calls the generation collaborator.
var Tools = []Tool{ToolBrainstorm, ToolRewrite, ToolProofread, ToolSummarize, ToolExpand, ToolSocial}

// Tone selects the voice of a rewrite.
type Tone string

const (
	ToneFormal   Tone = "Formal"
	ToneCasual   Tone = "Casual"
	ToneCreative Tone = "Creative"
	ToneConcise  Tone = "Concise"
)

// Tones lists the accepted rewrite tones.
var Tones = []Tone{ToneFormal, ToneCasual, ToneCreative, ToneConcise}

// Platform selects the social network a post is written for.
type Platform string

const (
	PlatformTwitter   Platform = "Twitter"
	PlatformLinkedIn  Platform = "LinkedIn"
	PlatformInstagram Platform = "Instagram"
)

// Platforms lists the accepted social platforms.
var Platforms = []Platform{PlatformTwitter, PlatformLinkedIn, PlatformInstagram}

// BrainstormInput asks for blog post ideas about a topic.
type BrainstormInput struct {
	Topic string `json:"topic"`
}

// BrainstormOutput holds the generated ideas, each a self-contained block
// with title, audience, keywords and outline.
type BrainstormOutput struct {
	Ideas []string `json:"ideas"`
}

// RewriteInput asks for text rewritten in a tone.
type RewriteInput struct {
	Text string `json:"text"`
	Tone Tone   `json:"tone"`
}

// RewriteOutput holds the rewritten text.
type RewriteOutput struct {
	RewrittenText string `json:"rewrittenText"`
}

// ProofreadInput asks for grammar, spelling and clarity corrections.
type ProofreadInput struct {
	Text string `json:"text"`
}

// Suggestion marks one issue in the original text.
type Suggestion struct {
	// StartIndex is the offset of the issue in the original text.
	StartIndex int `json:"startIndex"`

	// Length is the length of the flagged span.
	Length int `json:"length"`

	// Suggestion describes the correction.
	Suggestion string `json:"suggestion"`
}

// ProofreadOutput holds the corrected text and optional suggestions.
type ProofreadOutput struct {
	CorrectedText string       `json:"correctedText"`
	Suggestions   []Suggestion `json:"suggestions,omitempty"`
}

// SummarizeInput asks for a summary of text.
type SummarizeInput struct {
	Text string `json:"text"`
}

// SummarizeOutput holds the summary.
type SummarizeOutput struct {
	Summary string `json:"summary"`
}

// ExpandInput asks for short text or bullet points grown into a paragraph.
type ExpandInput struct {
	Text string `json:"text"`
}

// ExpandOutput holds the expanded paragraph.
type ExpandOutput struct {
	ExpandedContent string `json:"expandedContent"`
}

// SocialInput asks for a post about a topic for one platform.
type SocialInput struct {
	Topic    string   `json:"topic"`
	Platform Platform `json:"platform"`
}

// SocialOutput holds the generated post.
type SocialOutput struct {
	Post string `json:"post"`
}
