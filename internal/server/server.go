// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes drafts, the content tools and the handoff buffer
// over HTTP and WebSocket for a browser front end.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pdiddy/contentspark/internal/draftstore"
	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/handoff"
	"github.com/pdiddy/contentspark/pkg/types"
)

// DraftStore is the persistence the API needs.
type DraftStore interface {
	Add(ctx context.Context, title, content string) (int64, error)
	GetAll(ctx context.Context) ([]types.Draft, error)
	GetByID(ctx context.Context, id int64) (types.Draft, bool, error)
	Update(ctx context.Context, d types.Draft) (types.Draft, error)
	Delete(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

var _ DraftStore = (*draftstore.Store)(nil)

// Options wires the server's collaborators.
type Options struct {
	Store     DraftStore
	Generator generate.Generator
	Handoff   handoff.Buffer

	// TypingInterval paces WebSocket chunks. Zero sends each result in one chunk.
	TypingInterval time.Duration

	Logger zerolog.Logger
}

// Server is the HTTP API.
type Server struct {
	store    DraftStore
	gen      generate.Generator
	buf      handoff.Buffer
	interval time.Duration
	log      zerolog.Logger
	engine   *gin.Engine
}

// New builds the server and its routes.
func New(opts Options) *Server {
	buf := opts.Handoff
	if buf == nil {
		buf = handoff.NewSlot()
	}
	s := &Server{
		store:    opts.Store,
		gen:      opts.Generator,
		buf:      buf,
		interval: opts.TypingInterval,
		log:      opts.Logger.With().Str("component", "server").Logger(),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the http.Handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(requestID(), accessLog(s.log), recovery(s.log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		drafts := api.Group("/drafts")
		drafts.GET("", s.listDrafts)
		drafts.POST("", s.createDraft)
		drafts.DELETE("", s.clearDrafts)
		drafts.GET("/:id", s.getDraft)
		drafts.PUT("/:id", s.updateDraft)
		drafts.DELETE("/:id", s.deleteDraft)
		drafts.GET("/:id/preview", s.previewDraft)
		drafts.GET("/:id/export", s.exportDraft)
		drafts.POST("/:id/handoff", s.handoffDraft)

		api.POST("/tools/:tool", s.runTool)

		api.PUT("/handoff", s.setHandoff)
		api.POST("/handoff/consume", s.consumeHandoff)
	}

	r.GET("/ws/generate", s.generateStream)
	return r
}

// statusFor maps a domain error to an HTTP status and a client-safe message.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, draftstore.ErrNotFound):
		return http.StatusNotFound, "draft not found"
	case errors.Is(err, generate.ErrEmptyInput),
		errors.Is(err, generate.ErrInvalidOption),
		errors.Is(err, generate.ErrMalformedInput),
		errors.Is(err, generate.ErrUnknownTool):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, draftstore.ErrStorageUnavailable), errors.Is(err, handoff.ErrUnavailable):
		return http.StatusServiceUnavailable, "storage is unavailable"
	case errors.Is(err, generate.ErrGeneration):
		return http.StatusBadGateway, "content generation failed, please try again"
	default:
		return http.StatusInternalServerError, "internal error"
	}
}
