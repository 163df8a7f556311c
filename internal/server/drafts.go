// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/contentspark/internal/draftstore"
	"github.com/pdiddy/contentspark/internal/export"
	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/internal/render"
	"github.com/pdiddy/contentspark/pkg/types"
)

// draftRequest is the body of create and update calls. A nil Title on
// create titles the draft the way the writer does.
type draftRequest struct {
	Title   *string `json:"title"`
	Content string  `json:"content"`
}

func draftID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusBadRequest, fmt.Sprintf("invalid draft id %q", c.Param("id")))
		return 0, false
	}
	return id, true
}

// loadDraft fetches the draft named by the :id parameter, writing the error
// response itself when it cannot.
func (s *Server) loadDraft(c *gin.Context) (types.Draft, bool) {
	id, valid := draftID(c)
	if !valid {
		return types.Draft{}, false
	}
	d, found, err := s.store.GetByID(c.Request.Context(), id)
	if err != nil {
		s.failErr(c, err)
		return types.Draft{}, false
	}
	if !found {
		s.failErr(c, draftstore.ErrNotFound)
		return types.Draft{}, false
	}
	return d, true
}

func (s *Server) listDrafts(c *gin.Context) {
	drafts, err := s.store.GetAll(c.Request.Context())
	if err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, drafts)
}

func (s *Server) createDraft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid draft body")
		return
	}
	title := generate.DraftTitle(types.ToolWriter, req.Content)
	if req.Title != nil {
		title = *req.Title
	}

	ctx := c.Request.Context()
	id, err := s.store.Add(ctx, title, req.Content)
	if err != nil {
		s.failErr(c, err)
		return
	}
	d, _, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusCreated, d)
}

func (s *Server) getDraft(c *gin.Context) {
	d, found := s.loadDraft(c)
	if !found {
		return
	}
	ok(c, http.StatusOK, d)
}

func (s *Server) updateDraft(c *gin.Context) {
	id, valid := draftID(c)
	if !valid {
		return
	}
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid draft body")
		return
	}

	d := types.Draft{ID: id, Content: req.Content}
	if req.Title != nil {
		d.Title = *req.Title
	}
	updated, err := s.store.Update(c.Request.Context(), d)
	if err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, updated)
}

func (s *Server) deleteDraft(c *gin.Context) {
	id, valid := draftID(c)
	if !valid {
		return
	}
	if err := s.store.Delete(c.Request.Context(), id); err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": id})
}

func (s *Server) clearDrafts(c *gin.Context) {
	if err := s.store.Clear(c.Request.Context()); err != nil {
		s.failErr(c, err)
		return
	}
	s.log.Info().Str("request_id", c.GetString(requestIDKey)).Msg("all drafts cleared")
	ok(c, http.StatusOK, gin.H{"cleared": true})
}

func (s *Server) previewDraft(c *gin.Context) {
	d, found := s.loadDraft(c)
	if !found {
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", render.Page(d.DisplayTitle(), []byte(d.Content)))
}

func (s *Server) exportDraft(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatText)))
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	d, found := s.loadDraft(c)
	if !found {
		return
	}
	name := export.Filename(d.Title, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Data(http.StatusOK, format.ContentType(), []byte(d.Content))
}

// handoffDraft places a draft's content in the handoff buffer so another
// tool can pick it up.
func (s *Server) handoffDraft(c *gin.Context) {
	d, found := s.loadDraft(c)
	if !found {
		return
	}
	if err := s.buf.Set(c.Request.Context(), d.Content); err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"id": d.ID})
}
