// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the contentspark CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/contentspark/internal/config"
	"github.com/pdiddy/contentspark/internal/httputil"
	"github.com/pdiddy/contentspark/internal/logger"
	"github.com/pdiddy/contentspark/internal/secrets"
	"github.com/pdiddy/contentspark/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	// cfg is the resolved configuration, loaded before every subcommand.
	cfg types.Config

	// log is the process logger.
	log = zerolog.Nop()
)

// rootCmd is the base command for the contentspark CLI.
var rootCmd = &cobra.Command{
	Use:   "contentspark",
	Short: "Prompt-driven content tools with a local draft store",
	Long: `contentspark runs content tools (brainstorm, rewrite, proofread, summarize,
expand, social) against a hosted language model and keeps the results as drafts
in a local database.

A handoff buffer carries one piece of text from one tool to the next: send a
draft to it, then run a tool with --from-handoff. The serve command exposes the
same operations over HTTP and WebSocket.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is normal.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}

		loaded, err := config.Load(viper.GetViper(), s)
		if err != nil {
			return err
		}
		cfg = loaded

		log = logger.New(cfg.Log.Level)
		httputil.SetLogger(log)
		if keys := s.Keys(); len(keys) > 0 {
			log.Debug().Strs("keys", keys).Msg("loaded secrets")
		}
		for _, name := range s.Unreadable {
			log.Warn().Str("file", name).Msg("could not read secret")
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.Debug().Str("file", used).Msg("using config file")
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./contentspark.yaml or ~/.config/contentspark/contentspark.yaml)")
	rootCmd.PersistentFlags().Bool("demo", false, "use canned offline responses instead of the model")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("generation.demo_mode", rootCmd.PersistentFlags().Lookup("demo"))
	viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("contentspark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "contentspark"))
		}
	}

	config.SetDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintln(os.Stderr, "Error reading config file:", err)
		}
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
