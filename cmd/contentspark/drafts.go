// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/pdiddy/contentspark/internal/draftstore"
	"github.com/pdiddy/contentspark/internal/export"
	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/render"
	"github.com/pdiddy/contentspark/pkg/types"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#5A4FCF", Dark: "#A79BFF"})
	idStyle     = lipgloss.NewStyle().Width(6).Align(lipgloss.Right).PaddingRight(1)
	titleStyle  = lipgloss.NewStyle().Width(44).MaxWidth(44)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#888888", Dark: "#777777"})
)

var draftsCmd = &cobra.Command{
	Use:   "drafts",
	Short: "List, view, edit and export saved drafts",
}

var draftsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts, most recently updated first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		drafts, err := store.GetAll(cmd.Context())
		if err != nil {
			return err
		}
		printDraftList(cmd.OutOrStdout(), drafts)
		return nil
	},
}

func printDraftList(w io.Writer, drafts []types.Draft) {
	if len(drafts) == 0 {
		fmt.Fprintln(w, mutedStyle.Render("No drafts yet. Save a tool result with --save or add one with 'drafts add'."))
		return
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
		idStyle.Inherit(headerStyle).Render("ID"),
		titleStyle.Inherit(headerStyle).Render("TITLE"),
		headerStyle.Render("UPDATED")))
	for _, d := range drafts {
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(fmt.Sprint(d.ID)),
			titleStyle.Render(d.DisplayTitle()),
			mutedStyle.Render(d.Updated().Local().Format(time.DateTime))))
	}
}

var draftsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a draft's content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		d, found, err := store.GetByID(cmd.Context(), id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("draft %d: %w", id, draftstore.ErrNotFound)
		}

		out := cmd.OutOrStdout()
		if asHTML, _ := cmd.Flags().GetBool("html"); asHTML {
			out.Write(render.HTML([]byte(d.Content)))
			return nil
		}
		fmt.Fprintln(out, headerStyle.Render(d.DisplayTitle()))
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("created %s  updated %s",
			d.Created().Local().Format(time.DateTime), d.Updated().Local().Format(time.DateTime))))
		fmt.Fprintln(out)
		fmt.Fprintln(out, d.Content)
		return nil
	},
}

var draftsAddCmd = &cobra.Command{
	Use:   "add [content...]",
	Short: "Save text as a new draft",
	Long: `Add saves text from the arguments, --file, or stdin (--file -) as a new
draft. Without --title the draft is titled from its first characters.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		content, err := readText(file, args)
		if err != nil {
			return err
		}
		title := generate.DraftTitle(types.ToolWriter, content)
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.Add(cmd.Context(), title, content)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved draft %d: %s\n", id, title)
		return nil
	},
}

var draftsEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a draft's title or content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") && !cmd.Flags().Changed("file") {
			return fmt.Errorf("nothing to change: pass --title, --content or --file")
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		d, found, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("draft %d: %w", id, draftstore.ErrNotFound)
		}

		if cmd.Flags().Changed("title") {
			d.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("content") {
			d.Content, _ = cmd.Flags().GetString("content")
		}
		if file, _ := cmd.Flags().GetString("file"); file != "" {
			if d.Content, err = readText(file, nil); err != nil {
				return err
			}
		}

		updated, err := store.Update(ctx, d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Updated draft %d: %s\n", updated.ID, updated.DisplayTitle())
		return nil
	},
}

var draftsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Delete(cmd.Context(), id); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted draft %d\n", id)
		return nil
	},
}

var draftsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every draft",
	Long:  `Clear removes every saved draft. This cannot be undone, so --yes is required.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			return fmt.Errorf("refusing to delete all drafts without --yes")
		}
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All drafts deleted")
		return nil
	},
}

var draftsExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a draft as a .txt or .md file",
	Long: `Export writes the draft content to a file named after its title, in
export.dir by default or to the configured S3 bucket with --s3.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		formatFlag, _ := cmd.Flags().GetString("format")
		format, err := export.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		toS3, _ := cmd.Flags().GetBool("s3")
		if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
			cfg.Export.Dir = dir
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		d, found, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("draft %d: %w", id, draftstore.ErrNotFound)
		}

		ex, err := newExporter(ctx, toS3)
		if err != nil {
			return err
		}
		name, err := export.Draft(ctx, ex, d, format)
		if err != nil {
			return err
		}

		switch e := ex.(type) {
		case *export.DirExporter:
			fmt.Fprintf(cmd.OutOrStdout(), "Exported draft %d to %s\n", id, e.Path(name))
		case *export.S3Exporter:
			fmt.Fprintf(cmd.OutOrStdout(), "Exported draft %d to s3://%s/%s\n", id, cfg.Export.S3.Bucket, e.Key(name))
		}
		return nil
	},
}

var draftsArchiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Dump every draft as YAML or JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		drafts, err := store.GetAll(cmd.Context())
		if err != nil {
			return err
		}
		data, err := export.Archive(drafts, export.ArchiveFormat(format))
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(output, data, 0o644); err != nil {
			return fmt.Errorf("writing archive: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Archived %d drafts to %s\n", len(drafts), output)
		return nil
	},
}

var draftsSendCmd = &cobra.Command{
	Use:   "send <id>",
	Short: "Place a draft's content in the handoff buffer for another tool",
	Long: `Send puts the draft content into the handoff buffer. The next tool run
with --from-handoff, or the next consume, receives it exactly once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		buf, cleanup, err := sharedHandoff()
		if err != nil {
			return err
		}
		defer cleanup()

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		ctx := cmd.Context()
		d, found, err := store.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("draft %d: %w", id, draftstore.ErrNotFound)
		}
		if err := buf.Set(ctx, d.Content); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Draft %d is ready in the handoff buffer\n", id)
		return nil
	},
}

func init() {
	draftsShowCmd.Flags().Bool("html", false, "render the content from Markdown to HTML")

	draftsAddCmd.Flags().String("title", "", "draft title (default: derived from the content)")
	draftsAddCmd.Flags().String("file", "", "read content from a file, or - for stdin")

	draftsEditCmd.Flags().String("title", "", "new title")
	draftsEditCmd.Flags().String("content", "", "new content")
	draftsEditCmd.Flags().String("file", "", "read new content from a file, or - for stdin")

	draftsClearCmd.Flags().Bool("yes", false, "confirm deleting every draft")

	draftsExportCmd.Flags().String("format", "txt", "file format: txt or md")
	draftsExportCmd.Flags().String("dir", "", "export directory (default: export.dir)")
	draftsExportCmd.Flags().Bool("s3", false, "upload to the configured S3 bucket instead of a local directory")

	draftsArchiveCmd.Flags().String("format", "yaml", "archive format: yaml or json")
	draftsArchiveCmd.Flags().StringP("output", "o", "", "write to a file instead of stdout")

	draftsCmd.AddCommand(draftsListCmd, draftsShowCmd, draftsAddCmd, draftsEditCmd,
		draftsDeleteCmd, draftsClearCmd, draftsExportCmd, draftsArchiveCmd, draftsSendCmd)
	rootCmd.AddCommand(draftsCmd)
}
