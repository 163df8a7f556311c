// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pdiddy/contentspark/internal/generate"
	"github.com/pdiddy/contentspark/pkg/types"
)

const maxBodyBytes = 1 << 20

// toolResponse is a tool result plus the id of the saved draft, if any.
type toolResponse struct {
	generate.Result
	DraftID int64 `json:"draft_id,omitempty"`
}

func (s *Server) runTool(c *gin.Context) {
	tool, err := generate.ParseTool(c.Param("tool"))
	if err != nil {
		s.failErr(c, err)
		return
	}
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodyBytes))
	if err != nil {
		fail(c, http.StatusBadRequest, "could not read request body")
		return
	}

	ctx := c.Request.Context()
	res, err := generate.Run(ctx, s.gen, tool, json.RawMessage(raw))
	if err != nil {
		s.failErr(c, err)
		return
	}

	resp := toolResponse{Result: res}
	if c.Query("save") == "true" {
		id, err := s.store.Add(ctx, res.Title, res.Text)
		if err != nil {
			s.failErr(c, err)
			return
		}
		resp.DraftID = id
	}
	ok(c, http.StatusOK, resp)
}

// handoffBody carries the buffer content. On set, a null or missing
// content clears the buffer; on consume, null means it was empty.
type handoffBody struct {
	Content *string `json:"content"`
}

func (s *Server) setHandoff(c *gin.Context) {
	var req handoffBody
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid handoff body")
		return
	}

	ctx := c.Request.Context()
	if req.Content == nil {
		err := s.buf.Clear(ctx)
		if err != nil {
			s.failErr(c, err)
			return
		}
		ok(c, http.StatusOK, gin.H{"set": false})
		return
	}
	if err := s.buf.Set(ctx, *req.Content); err != nil {
		s.failErr(c, err)
		return
	}
	ok(c, http.StatusOK, gin.H{"set": true})
}

func (s *Server) consumeHandoff(c *gin.Context) {
	content, found, err := s.buf.Consume(c.Request.Context())
	if err != nil {
		s.failErr(c, err)
		return
	}
	var p handoffBody
	if found {
		p.Content = &content
	}
	ok(c, http.StatusOK, p)
}

// generateFrame is one WebSocket message from the server.
type generateFrame struct {
	Type    string           `json:"type"`
	Text    string           `json:"text,omitempty"`
	Result  *generate.Result `json:"result,omitempty"`
	DraftID int64            `json:"draft_id,omitempty"`
	Error   string           `json:"error,omitempty"`
}

// generateRequest is the single message a WebSocket client sends.
type generateRequest struct {
	Tool  types.Tool      `json:"tool"`
	Input json.RawMessage `json:"input"`
	Save  bool            `json:"save"`
}
