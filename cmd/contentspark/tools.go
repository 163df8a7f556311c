// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/typing"
	"github.com/pdiddy/contentspark/pkg/types"
)

// runTool runs one tool on input, prints the result and saves it when
// --save is set.
func runTool(cmd *cobra.Command, tool types.Tool, input any) error {
	ctx := cmd.Context()

	raw, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("encoding %s input: %w", tool, err)
	}
	gen, err := newGenerator()
	if err != nil {
		return err
	}

	res, err := generate.Run(ctx, gen, tool, raw)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	interval := cfg.Generation.TypingInterval
	if typed, _ := cmd.Flags().GetBool("typing"); !typed {
		interval = 0
	}
	if err := typing.Play(ctx, res.Text, interval, typing.Writer(out)); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if p, ok := res.Output.(types.ProofreadOutput); ok && len(p.Suggestions) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, headerStyle.Render("Suggestions"))
		for _, s := range p.Suggestions {
			fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render(fmt.Sprintf("[%d+%d]", s.StartIndex, s.Length)), s.Suggestion)
		}
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Add(ctx, res.Title, res.Text)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved draft %d: %s\n", id, res.Title)
	}
	return nil
}

// toolText resolves the input text of a text tool from the handoff buffer,
// --file or the arguments, in that order.
func toolText(cmd *cobra.Command, args []string) (string, error) {
	if fromHandoff, _ := cmd.Flags().GetBool("from-handoff"); fromHandoff {
		buf, cleanup, err := sharedHandoff()
		if err != nil {
			return "", err
		}
		defer cleanup()

		content, ok, err := buf.Consume(cmd.Context())
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("the handoff buffer is empty")
		}
		return content, nil
	}
	file, _ := cmd.Flags().GetString("file")
	return readText(file, args)
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("save", false, "save the result as a draft")
	cmd.Flags().Bool("typing", false, "print the result one character at a time")
}

func addTextFlags(cmd *cobra.Command) {
	cmd.Flags().String("file", "", "read the input text from a file, or - for stdin")
	cmd.Flags().Bool("from-handoff", false, "take the input text from the handoff buffer")
	addOutputFlags(cmd)
}

var brainstormCmd = &cobra.Command{
	Use:   "brainstorm <topic...>",
	Short: "Generate three blog post ideas for a topic",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTool(cmd, types.ToolBrainstorm, types.BrainstormInput{Topic: strings.Join(args, " ")})
	},
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text...]",
	Short: "Rewrite text in a chosen tone",
	Long:  `Rewrite restates the input in one of the tones Formal, Casual, Creative or Concise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		toneFlag, _ := cmd.Flags().GetString("tone")
		tone, err := generate.ParseTone(toneFlag)
		if err != nil {
			return err
		}
		text, err := toolText(cmd, args)
		if err != nil {
			return err
		}
		return runTool(cmd, types.ToolRewrite, types.RewriteInput{Text: text, Tone: tone})
	},
}

var proofreadCmd = &cobra.Command{
	Use:   "proofread [text...]",
	Short: "Correct grammar, spelling and clarity",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := toolText(cmd, args)
		if err != nil {
			return err
		}
		return runTool(cmd, types.ToolProofread, types.ProofreadInput{Text: text})
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize [text...]",
	Short: "Summarize text",
	Long: `Summarize condenses the input. Load a text file with --file, or take the
text handed over from another tool with --from-handoff.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := toolText(cmd, args)
		if err != nil {
			return err
		}
		return runTool(cmd, types.ToolSummarize, types.SummarizeInput{Text: text})
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand [text...]",
	Short: "Expand a phrase or bullet points into a paragraph",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := toolText(cmd, args)
		if err != nil {
			return err
		}
		return runTool(cmd, types.ToolExpand, types.ExpandInput{Text: text})
	},
}

var socialCmd = &cobra.Command{
	Use:   "social <topic...>",
	Short: "Write a social media post for Twitter, LinkedIn or Instagram",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		platformFlag, _ := cmd.Flags().GetString("platform")
		platform, err := generate.ParsePlatform(platformFlag)
		if err != nil {
			return err
		}
		return runTool(cmd, types.ToolSocial, types.SocialInput{Topic: strings.Join(args, " "), Platform: platform})
	},
}

func init() {
	addOutputFlags(brainstormCmd)

	rewriteCmd.Flags().String("tone", string(types.ToneFormal), "tone: Formal, Casual, Creative or Concise")
	for _, c := range []*cobra.Command{rewriteCmd, proofreadCmd, summarizeCmd, expandCmd} {
		addTextFlags(c)
	}

	socialCmd.Flags().String("platform", string(types.PlatformTwitter), "platform: Twitter, LinkedIn or Instagram")
	addOutputFlags(socialCmd)

	rootCmd.AddCommand(brainstormCmd, rewriteCmd, proofreadCmd, summarizeCmd, expandCmd, socialCmd)
}
