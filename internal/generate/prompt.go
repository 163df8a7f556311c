// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/rs/zerolog"

	"github.com/pdiddy/contentspark/pkg/types"
)

// promptTemplates holds one prompt per tool. Each asks for a single JSON
// object matching the tool's output record.
var promptTemplates = map[types.Tool]*template.Template{
	types.ToolBrainstorm: template.Must(template.New("brainstorm").Parse(`You are an expert Content Strategist and SEO specialist. Your goal is to generate compelling blog post ideas based on a given topic.

For the topic below, generate 3 distinct and creative blog post ideas. For each idea, provide the following:
- A catchy, SEO-friendly title.
- The target audience for the post.
- A primary keyword and 2-3 secondary keywords.
- A brief, 2-3 sentence outline of the blog post structure.

Format each idea as one self-contained block of plain text.

Respond with a JSON object of the form {"ideas": ["...", "...", "..."]}. Do not include any text outside the JSON object.

Topic: {{.Topic}}
`)),

	types.ToolRewrite: template.Must(template.New("rewrite").Parse(`You are a helpful AI assistant that rewrites text in a specific tone.

Rewrite the following text in a {{.Tone}} tone.

Respond with a JSON object of the form {"rewrittenText": "..."}. Do not include any text outside the JSON object.

Text:
{{.Text}}
`)),

	types.ToolProofread: template.Must(template.New("proofread").Parse(`You are a professional proofreader. Review the following text for grammar, punctuation, spelling, and clarity issues. Provide a corrected version of the text and, if possible, a list of suggestions for each identified issue, including the start index, length, and suggested correction.

Respond with a JSON object of the form {"correctedText": "...", "suggestions": [{"startIndex": 0, "length": 3, "suggestion": "..."}]}. Omit "suggestions" when there are none. Do not include any text outside the JSON object.

Text to proofread:
{{.Text}}
`)),

	types.ToolSummarize: template.Must(template.New("summarize").Parse(`You are an expert editor. Summarize the following text in a few clear sentences that keep its key points, facts and conclusions. Do not add information that is not in the text.

Respond with a JSON object of the form {"summary": "..."}. Do not include any text outside the JSON object.

Text:
{{.Text}}
`)),

	types.ToolExpand: template.Must(template.New("expand").Parse(`You are a skilled content writer. Take the following sentence, phrase, or bullet points and expand it into a well-written, coherent paragraph. Maintain the core idea of the original text but build upon it with additional detail, explanation, or context.

Respond with a JSON object of the form {"expandedContent": "..."}. Do not include any text outside the JSON object.

Original text:
{{.Text}}
`)),

	types.ToolSocial: template.Must(template.New("social").Parse(`You are a social media marketing expert. Your task is to create a compelling social media post based on the provided topic and target platform.

- If 'Twitter', write a concise, impactful tweet (under 280 characters) with 2-3 relevant hashtags.
- If 'LinkedIn', write a professional, insightful post (2-3 short paragraphs) with a clear hook, valuable content, and relevant business-oriented hashtags.
- If 'Instagram', write an engaging and slightly more personal caption (1-2 paragraphs) with a strong call-to-action or question, and include 5-7 relevant and popular hashtags.

Respond with a JSON object of the form {"post": "..."}. Do not include any text outside the JSON object.

Topic: {{.Topic}}
Platform: {{.Platform}}
`)),
}

// renderPrompt executes the prompt template for tool with in.
func renderPrompt(tool types.Tool, in any) (string, error) {
	tmpl, ok := promptTemplates[tool]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownTool, tool)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, in); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Backend sends one prompt to a language model and returns its text reply.
type Backend interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// AI is the Generator that prompts a Backend.
type AI struct {
	backend Backend
	log     zerolog.Logger
}

var _ Generator = (*AI)(nil)

// NewAI returns a Generator over backend.
func NewAI(backend Backend, log zerolog.Logger) *AI {
	return &AI{backend: backend, log: log.With().Str("component", "generate").Logger()}
}

// call validates in, prompts the backend once and decodes the reply into out.
func (a *AI) call(ctx context.Context, tool types.Tool, in, out any) error {
	if err := Validate(in); err != nil {
		return err
	}

	prompt, err := renderPrompt(tool, in)
	if err != nil {
		return fmt.Errorf("rendering %s prompt: %w", tool, err)
	}

	a.log.Debug().Str("tool", string(tool)).Int("prompt_bytes", len(prompt)).Msg("calling backend")
	reply, err := a.backend.Complete(ctx, prompt)
	if err != nil {
		a.log.Error().Err(err).Str("tool", string(tool)).Msg("backend call failed")
		return fmt.Errorf("%w: %s: %w", ErrGeneration, tool, err)
	}

	if err := decodeReply(reply, out); err != nil {
		a.log.Error().Err(err).Str("tool", string(tool)).Msg("unusable backend reply")
		return fmt.Errorf("%w: %s: %w", ErrGeneration, tool, err)
	}
	return nil
}

// decodeReply parses the JSON object in reply, tolerating code fences or
// prose around it.
func decodeReply(reply string, out any) error {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end < start {
		return fmt.Errorf("no JSON object in reply")
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), out); err != nil {
		return fmt.Errorf("parsing reply JSON: %w", err)
	}
	return nil
}

func emptyReply(tool types.Tool, field string) error {
	return fmt.Errorf("%w: %s: reply has no %s", ErrGeneration, tool, field)
}

func (a *AI) Brainstorm(ctx context.Context, in types.BrainstormInput) (types.BrainstormOutput, error) {
	var out types.BrainstormOutput
	if err := a.call(ctx, types.ToolBrainstorm, in, &out); err != nil {
		return types.BrainstormOutput{}, err
	}
	if len(out.Ideas) == 0 {
		return types.BrainstormOutput{}, emptyReply(types.ToolBrainstorm, "ideas")
	}
	return out, nil
}

func (a *AI) Rewrite(ctx context.Context, in types.RewriteInput) (types.RewriteOutput, error) {
	var out types.RewriteOutput
	if err := a.call(ctx, types.ToolRewrite, in, &out); err != nil {
		return types.RewriteOutput{}, err
	}
	if out.RewrittenText == "" {
		return types.RewriteOutput{}, emptyReply(types.ToolRewrite, "rewrittenText")
	}
	return out, nil
}

func (a *AI) Proofread(ctx context.Context, in types.ProofreadInput) (types.ProofreadOutput, error) {
	var out types.ProofreadOutput
	if err := a.call(ctx, types.ToolProofread, in, &out); err != nil {
		return types.ProofreadOutput{}, err
	}
	if out.CorrectedText == "" {
		return types.ProofreadOutput{}, emptyReply(types.ToolProofread, "correctedText")
	}
	if len(out.Suggestions) == 0 {
		out.Suggestions = nil
	}
	return out, nil
}

func (a *AI) Summarize(ctx context.Context, in types.SummarizeInput) (types.SummarizeOutput, error) {
	var out types.SummarizeOutput
	if err := a.call(ctx, types.ToolSummarize, in, &out); err != nil {
		return types.SummarizeOutput{}, err
	}
	if out.Summary == "" {
		return types.SummarizeOutput{}, emptyReply(types.ToolSummarize, "summary")
	}
	return out, nil
}

func (a *AI) Expand(ctx context.Context, in types.ExpandInput) (types.ExpandOutput, error) {
	var out types.ExpandOutput
	if err := a.call(ctx, types.ToolExpand, in, &out); err != nil {
		return types.ExpandOutput{}, err
	}
	if out.ExpandedContent == "" {
		return types.ExpandOutput{}, emptyReply(types.ToolExpand, "expandedContent")
	}
	return out, nil
}

func (a *AI) Social(ctx context.Context, in types.SocialInput) (types.SocialOutput, error) {
	var out types.SocialOutput
	if err := a.call(ctx, types.ToolSocial, in, &out); err != nil {
		return types.SocialOutput{}, err
	}
	if out.Post == "" {
		return types.SocialOutput{}, emptyReply(types.ToolSocial, "post")
	}
	return out, nil
}
