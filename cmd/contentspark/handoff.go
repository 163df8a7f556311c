// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var handoffCmd = &cobra.Command{
	Use:   "handoff",
	Short: "Set or consume the one-shot handoff buffer",
	Long: `The handoff buffer holds one piece of text for the next tool. Reading it
empties it. Between separate commands it needs handoff.backend=redis.`,
}

var handoffSetCmd = &cobra.Command{
	Use:   "set [text...]",
	Short: "Put text in the handoff buffer",
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")
		text, err := readText(file, args)
		if err != nil {
			return err
		}
		buf, cleanup, err := sharedHandoff()
		if err != nil {
			return err
		}
		defer cleanup()

		if err := buf.Set(cmd.Context(), text); err != nil {
			return err
		}
		fmt.Fprintln(cmd.ErrOrStderr(), "Handoff buffer set")
		return nil
	},
}

var handoffConsumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Print and empty the handoff buffer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, cleanup, err := sharedHandoff()
		if err != nil {
			return err
		}
		defer cleanup()

		content, ok, err := buf.Consume(cmd.Context())
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Handoff buffer is empty")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), content)
		return nil
	},
}

var handoffClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Empty the handoff buffer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		buf, cleanup, err := sharedHandoff()
		if err != nil {
			return err
		}
		defer cleanup()
		return buf.Clear(cmd.Context())
	},
}

func init() {
	handoffSetCmd.Flags().String("file", "", "read the text from a file, or - for stdin")

	handoffCmd.AddCommand(handoffSetCmd, handoffConsumeCmd, handoffClearCmd)
	rootCmd.AddCommand(handoffCmd)
}
