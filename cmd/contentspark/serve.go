// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/contentspark/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and WebSocket API",
	Long: `Serve exposes the drafts, tools and handoff buffer over HTTP, and streams
generated text over /ws/generate. It runs until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	gen, err := newGenerator()
	if err != nil {
		return err
	}
	buf, _, cleanup := newHandoff()
	defer cleanup()

	gin.SetMode(gin.ReleaseMode)
	srv := server.New(server.Options{
		Store:          store,
		Generator:      gen,
		Handoff:        buf,
		TypingInterval: cfg.Generation.TypingInterval,
		Logger:         log,
	})
	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}

	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		log.Info().Str("addr", addr).Bool("demo", cfg.Generation.DemoMode).Msg("serving")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info().Msg("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
